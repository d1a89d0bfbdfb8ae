package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ErrNoConverter is returned by LookAccurate for a type with no registered
// converter.
var ErrNoConverter = errors.New("panel: no converter registered for type")

// ScribeMode says which direction a Scribe moves data.
type ScribeMode uint8

const (
	ScribeSaving  ScribeMode = iota // Look functions write values into the document
	ScribeLoading                   // Look functions read values out of the document
)

// Scribe is a flat document of named fields. The same Look calls save and
// load a value depending on the mode, so one function describes both.
type Scribe struct {
	mode   ScribeMode
	fields map[string]json.RawMessage
}

// NewSaveScribe creates an empty scribe in saving mode.
func NewSaveScribe() *Scribe {
	return &Scribe{mode: ScribeSaving, fields: make(map[string]json.RawMessage)}
}

// LoadScribe parses a document produced by Bytes and returns a scribe in
// loading mode.
func LoadScribe(data []byte) (*Scribe, error) {
	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("load scribe: %w", err)
	}
	return &Scribe{mode: ScribeLoading, fields: fields}, nil
}

// Mode returns the scribe's direction.
func (s *Scribe) Mode() ScribeMode { return s.mode }

// Bytes encodes the document as indented JSON.
func (s *Scribe) Bytes() ([]byte, error) {
	return json.MarshalIndent(s.fields, "", "  ")
}

// Has reports whether the document holds name.
func (s *Scribe) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

func (s *Scribe) write(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("scribe: write %q: %w", name, err)
	}
	s.fields[name] = raw
	return nil
}

func (s *Scribe) read(name string, v any) (bool, error) {
	raw, ok := s.fields[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("scribe: read %q: %w", name, err)
	}
	return true, nil
}

type converter struct {
	format func(any) string
	parse  func(string) (any, error)
}

var converters = map[reflect.Type]converter{}

// RegisterConverter installs the string form used by LookAccurate for T,
// replacing any earlier converter for the same type.
func RegisterConverter[T any](format func(T) string, parse func(string) (T, error)) {
	converters[reflect.TypeFor[T]()] = converter{
		format: func(v any) string { return format(v.(T)) },
		parse: func(s string) (any, error) {
			v, err := parse(s)
			return v, err
		},
	}
	debugf("added converter for type %v", reflect.TypeFor[T]())
}

// LookAccurate saves or loads *value under name through T's registered
// converter.
//
// Saving skips the zero value, and a value equal to a non-zero def. Loading
// sets *value to def when the field is absent.
func LookAccurate[T comparable](s *Scribe, value *T, name string, def T) error {
	conv, ok := converters[reflect.TypeFor[T]()]
	if !ok {
		return fmt.Errorf("look %q: %w %v", name, ErrNoConverter, reflect.TypeFor[T]())
	}
	var zero T
	switch s.mode {
	case ScribeSaving:
		if *value == zero || (def != zero && *value == def) {
			return nil
		}
		return s.write(name, conv.format(*value))
	case ScribeLoading:
		var str string
		found, err := s.read(name, &str)
		if err != nil {
			return err
		}
		if !found {
			*value = def
			return nil
		}
		v, err := conv.parse(str)
		if err != nil {
			return fmt.Errorf("look %q: %w", name, err)
		}
		*value = v.(T)
	}
	return nil
}

// LookMap saves or loads a string-keyed map under name. V must be JSON
// encodable. A nil map is written as empty and loaded maps are never nil.
func LookMap[V any](s *Scribe, m *map[string]V, name string) error {
	if *m == nil {
		*m = make(map[string]V)
	}
	switch s.mode {
	case ScribeSaving:
		return s.write(name, *m)
	case ScribeLoading:
		loaded := make(map[string]V)
		found, err := s.read(name, &loaded)
		if err != nil {
			return err
		}
		if found && loaded != nil {
			*m = loaded
		}
	}
	return nil
}

// LookTreeState saves or loads which categories of t are closed, keyed by
// label. Trees from TreeBuilder use canonical paths as labels, so the state
// survives rebuilding the tree from the same entries.
func LookTreeState[I any](s *Scribe, t *Tree[I, string], name string) error {
	switch s.mode {
	case ScribeSaving:
		var closed []string
		t.Walk(func(n Node[I, string], _ int) bool {
			if c, ok := n.(*Category[I, string]); ok && !c.Open {
				closed = append(closed, c.Label)
			}
			return true
		})
		if len(closed) == 0 {
			return nil
		}
		slices.Sort(closed)
		return s.write(name, closed)
	case ScribeLoading:
		var closed []string
		found, err := s.read(name, &closed)
		if err != nil || !found {
			return err
		}
		t.Walk(func(n Node[I, string], _ int) bool {
			if c, ok := n.(*Category[I, string]); ok {
				c.Open = !slices.Contains(closed, c.Label)
			}
			return true
		})
	}
	return nil
}

// FormatVec2 writes v with five decimal places, "x,y".
func FormatVec2(v Vec2) string {
	return fmt.Sprintf("%.5f,%.5f", v.X, v.Y)
}

// ParseVec2 reads "x,y", "(x, y)" or "x|y". Components that fail to parse
// are left at zero and logged in debug mode.
func ParseVec2(s string) (Vec2, error) {
	var v Vec2
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '(' || r == ')' || r == ',' || r == '|'
	})
	for i, p := range parts {
		if i > 1 {
			break
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			debugf("unable to parse element %d of vec2 %q: %v", i, s, err)
			continue
		}
		if i == 0 {
			v.X = f
		} else {
			v.Y = f
		}
	}
	return v, nil
}

func init() {
	RegisterConverter(FormatVec2, ParseVec2)
	RegisterConverter(func(v string) string { return v }, func(s string) (string, error) { return s, nil })
	RegisterConverter(strconv.Itoa, strconv.Atoi)
	RegisterConverter(strconv.FormatBool, strconv.ParseBool)
	RegisterConverter(
		func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
		func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	)
}

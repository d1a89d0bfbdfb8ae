package panel

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyPath is returned when a path contains no segments after splitting.
var ErrEmptyPath = errors.New("panel: empty path")

// PathKey is an immutable, normalized tree path. It is parsed from a string
// split on '/' and '\' with empty segments dropped, and stored in canonical
// form (segments NFC-normalized and joined by '/'). Two PathKeys built from
// "a/b", "a//b" and "a\b" are ==, so PathKey can be used directly as a map key.
//
// The zero PathKey has no segments and is used as "absent" by Parent.
type PathKey struct {
	canon string
}

// ParsePath parses path into a PathKey. It fails with ErrEmptyPath when no
// segment survives splitting.
func ParsePath(path string) (PathKey, error) {
	segs := strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' })
	if len(segs) == 0 {
		return PathKey{}, ErrEmptyPath
	}
	for i, s := range segs {
		segs[i] = norm.NFC.String(s)
	}
	return PathKey{canon: strings.Join(segs, "/")}, nil
}

// MustParsePath is ParsePath that panics on error. Intended for literals.
func MustParsePath(path string) PathKey {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}
	return p
}

// IsZero reports whether p is the absent PathKey.
func (p PathKey) IsZero() bool { return p.canon == "" }

// String returns the canonical '/'-joined form.
func (p PathKey) String() string { return p.canon }

// RawPath returns the canonical path string. Sibling ordering during tree
// construction compares its length.
func (p PathKey) RawPath() string { return p.canon }

// Segments returns a fresh copy of the ordered segment list.
func (p PathKey) Segments() []string {
	if p.canon == "" {
		return nil
	}
	return strings.Split(p.canon, "/")
}

// Depth is the number of segments.
func (p PathKey) Depth() int {
	if p.canon == "" {
		return 0
	}
	return strings.Count(p.canon, "/") + 1
}

// Root returns the first segment.
func (p PathKey) Root() string {
	if i := strings.IndexByte(p.canon, '/'); i >= 0 {
		return p.canon[:i]
	}
	return p.canon
}

// Name returns the last segment.
func (p PathKey) Name() string {
	return p.canon[strings.LastIndexByte(p.canon, '/')+1:]
}

// Parent returns the path without its last segment. ok is false for
// single-segment (and zero) paths.
func (p PathKey) Parent() (parent PathKey, ok bool) {
	i := strings.LastIndexByte(p.canon, '/')
	if i < 0 {
		return PathKey{}, false
	}
	return PathKey{canon: p.canon[:i]}, true
}

// IsAncestorOf reports whether p is a strict prefix of other by segments.
func (p PathKey) IsAncestorOf(other PathKey) bool {
	return p.canon != "" && len(other.canon) > len(p.canon) &&
		strings.HasPrefix(other.canon, p.canon) && other.canon[len(p.canon)] == '/'
}

// Join appends segment(s) parsed from child to p.
func (p PathKey) Join(child string) (PathKey, error) {
	c, err := ParsePath(child)
	if err != nil {
		return PathKey{}, err
	}
	if p.canon == "" {
		return c, nil
	}
	return PathKey{canon: p.canon + "/" + c.canon}, nil
}

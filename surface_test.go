package panel

import "testing"

// drawCall is one primitive issued to a recordingSurface.
type drawCall struct {
	kind  string // "label", "box", "outline", "icon"
	r     Rect
	text  string
	icon  Icon
	color Color
}

// recordingSurface is a Surface that lays out with a Listing and records
// draw calls instead of drawing.
type recordingSurface struct {
	*Listing
	calls []drawCall
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{Listing: NewListing(Rect{0, 0, w, h})}
}

func (s *recordingSurface) DrawLabel(r Rect, text string, _ TextAlign) {
	s.calls = append(s.calls, drawCall{kind: "label", r: r, text: text})
}

func (s *recordingSurface) DrawBox(r Rect, c Color) {
	s.calls = append(s.calls, drawCall{kind: "box", r: r, color: c})
}

func (s *recordingSurface) DrawOutline(r Rect, c Color, _ float64) {
	s.calls = append(s.calls, drawCall{kind: "outline", r: r, color: c})
}

func (s *recordingSurface) DrawIcon(r Rect, icon Icon, c Color) {
	s.calls = append(s.calls, drawCall{kind: "icon", r: r, icon: icon, color: c})
}

// frame restarts the flow and forgets earlier draw calls.
func (s *recordingSurface) frame() {
	s.Begin(s.Bounds())
	s.calls = s.calls[:0]
}

func (s *recordingSurface) labels() []string {
	var out []string
	for _, c := range s.calls {
		if c.kind == "label" {
			out = append(out, c.text)
		}
	}
	return out
}

// labelRect returns the rect of the first label with the given text.
func (s *recordingSurface) labelRect(text string) (Rect, bool) {
	for _, c := range s.calls {
		if c.kind == "label" && c.text == text {
			return c.r, true
		}
	}
	return Rect{}, false
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, c := range s.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

var _ Surface = (*recordingSurface)(nil)
var _ Surface = (*Canvas)(nil)

func TestListingRect(t *testing.T) {
	l := NewListing(Rect{10, 20, 200, 300})
	a := l.Rect(30)
	b := l.Rect(20)
	if want := (Rect{10, 20, 200, 30}); a != want {
		t.Errorf("first Rect = %v, want %v", a, want)
	}
	if want := (Rect{10, 50, 200, 20}); b != want {
		t.Errorf("second Rect = %v, want %v", b, want)
	}
	if l.CurHeight() != 50 {
		t.Errorf("CurHeight() = %v, want 50", l.CurHeight())
	}
}

func TestListingIndentOutdent(t *testing.T) {
	l := NewListing(Rect{0, 0, 100, 100})
	l.Indent()
	l.Indent()
	r := l.Rect(10)
	if r.X != 2*defaultIndentWidth || r.Width != 100-2*defaultIndentWidth {
		t.Errorf("indented Rect = %v", r)
	}
	if l.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", l.Depth())
	}
	l.Outdent()
	l.Outdent()
	l.Outdent() // extra call ignored
	if r := l.Rect(10); r.X != 0 || r.Width != 100 {
		t.Errorf("outdented Rect = %v", r)
	}
}

func TestListingGapRemaining(t *testing.T) {
	l := NewListing(Rect{0, 0, 100, 100})
	l.Rect(20)
	l.Gap(5)
	if want := (Rect{0, 25, 100, 75}); l.Remaining() != want {
		t.Errorf("Remaining() = %v, want %v", l.Remaining(), want)
	}
	l.Begin(Rect{5, 5, 50, 50})
	if l.CurHeight() != 0 || l.Depth() != 0 {
		t.Error("Begin should reset the flow")
	}
}

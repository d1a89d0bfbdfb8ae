package panel

// Surface is the immediate-mode layout and draw target widgets render into.
// Rect allocates the next row of a vertical flow; the Draw methods issue
// primitive draw calls inside a rect. Canvas is the ebiten implementation.
type Surface interface {
	// Rect allocates a row of height h at the current flow position and
	// advances the flow.
	Rect(h float64) Rect
	// Indent shifts subsequent rows right by one indent step.
	Indent()
	// Outdent undoes one Indent.
	Outdent()
	// Gap advances the flow by h without allocating a row.
	Gap(h float64)

	DrawLabel(r Rect, s string, align TextAlign)
	DrawBox(r Rect, c Color)
	DrawOutline(r Rect, c Color, thickness float64)
	DrawIcon(r Rect, icon Icon, c Color)
}

const defaultIndentWidth = 12

// Listing is the vertical flow allocator behind Surface.Rect. It holds no
// draw state and can be embedded by any Surface implementation.
type Listing struct {
	// IndentWidth is the horizontal step applied by Indent.
	IndentWidth float64

	bounds Rect
	curX   float64
	curY   float64
	depth  int
}

// NewListing creates a listing flowing down from the top of bounds.
func NewListing(bounds Rect) *Listing {
	l := &Listing{IndentWidth: defaultIndentWidth}
	l.Begin(bounds)
	return l
}

// Begin resets the flow to the top-left of bounds.
func (l *Listing) Begin(bounds Rect) {
	l.bounds = bounds
	l.curX = 0
	l.curY = 0
	l.depth = 0
}

// Bounds returns the rect passed to Begin.
func (l *Listing) Bounds() Rect { return l.bounds }

// Rect allocates a full-width (minus indentation) row of height h.
func (l *Listing) Rect(h float64) Rect {
	r := Rect{
		X:      l.bounds.X + l.curX,
		Y:      l.bounds.Y + l.curY,
		Width:  l.bounds.Width - l.curX,
		Height: h,
	}
	l.curY += h
	return r
}

// Gap advances the flow by h.
func (l *Listing) Gap(h float64) { l.curY += h }

func (l *Listing) Indent() {
	l.depth++
	l.curX += l.IndentWidth
}

// Outdent undoes one Indent. Extra calls are ignored.
func (l *Listing) Outdent() {
	if l.depth == 0 {
		return
	}
	l.depth--
	l.curX -= l.IndentWidth
}

// Depth returns the current indentation level.
func (l *Listing) Depth() int { return l.depth }

// CurHeight returns how far the flow has advanced from the top.
func (l *Listing) CurHeight() float64 { return l.curY }

// Remaining returns the unallocated part of bounds below the flow.
func (l *Listing) Remaining() Rect {
	return Rect{
		X:      l.bounds.X + l.curX,
		Y:      l.bounds.Y + l.curY,
		Width:  l.bounds.Width - l.curX,
		Height: l.bounds.Height - l.curY,
	}
}

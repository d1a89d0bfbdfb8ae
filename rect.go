package panel

// Rect arithmetic used by widgets to carve row rectangles into hit regions.
// All methods are pure and return new values.

// ShrinkLeft moves the left edge right by p.
func (r Rect) ShrinkLeft(p float64) Rect { return Rect{r.X + p, r.Y, r.Width - p, r.Height} }

// ShrinkRight moves the right edge left by p.
func (r Rect) ShrinkRight(p float64) Rect { return Rect{r.X, r.Y, r.Width - p, r.Height} }

// ShrinkTop moves the top edge down by p.
func (r Rect) ShrinkTop(p float64) Rect { return Rect{r.X, r.Y + p, r.Width, r.Height - p} }

// ShrinkBottom moves the bottom edge up by p.
func (r Rect) ShrinkBottom(p float64) Rect { return Rect{r.X, r.Y, r.Width, r.Height - p} }

func (r Rect) GrowLeft(p float64) Rect   { return r.ShrinkLeft(-p) }
func (r Rect) GrowRight(p float64) Rect  { return r.ShrinkRight(-p) }
func (r Rect) GrowTop(p float64) Rect    { return r.ShrinkTop(-p) }
func (r Rect) GrowBottom(p float64) Rect { return r.ShrinkBottom(-p) }

// Move translates the rect by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect { return Rect{r.X + dx, r.Y + dy, r.Width, r.Height} }

// Square returns the largest square anchored at the top-left corner.
func (r Rect) Square() Rect {
	s := min(r.Width, r.Height)
	return Rect{r.X, r.Y, s, s}
}

// ExpandedBy grows the rect by dx on the left and right and dy on the top
// and bottom. Negative values contract.
func (r Rect) ExpandedBy(dx, dy float64) Rect {
	return Rect{r.X - dx, r.Y - dy, r.Width + 2*dx, r.Height + 2*dy}
}

// ContractedBy is ExpandedBy with the signs flipped.
func (r Rect) ContractedBy(dx, dy float64) Rect { return r.ExpandedBy(-dx, -dy) }

// LeftPart returns the left pct (0..1) of the width.
func (r Rect) LeftPart(pct float64) Rect { return r.LeftPartPixels(r.Width * pct) }

// RightPart returns the right pct (0..1) of the width.
func (r Rect) RightPart(pct float64) Rect { return r.RightPartPixels(r.Width * pct) }

// TopPart returns the top pct (0..1) of the height.
func (r Rect) TopPart(pct float64) Rect { return r.TopPartPixels(r.Height * pct) }

// BottomPart returns the bottom pct (0..1) of the height.
func (r Rect) BottomPart(pct float64) Rect { return r.BottomPartPixels(r.Height * pct) }

func (r Rect) LeftPartPixels(w float64) Rect  { return Rect{r.X, r.Y, w, r.Height} }
func (r Rect) RightPartPixels(w float64) Rect { return Rect{r.X + r.Width - w, r.Y, w, r.Height} }
func (r Rect) TopPartPixels(h float64) Rect   { return Rect{r.X, r.Y, r.Width, h} }
func (r Rect) BottomPartPixels(h float64) Rect {
	return Rect{r.X, r.Y + r.Height - h, r.Width, h}
}

func (r Rect) LeftHalf() Rect   { return r.LeftPart(0.5) }
func (r Rect) RightHalf() Rect  { return r.RightPart(0.5) }
func (r Rect) TopHalf() Rect    { return r.TopPart(0.5) }
func (r Rect) BottomHalf() Rect { return r.BottomPart(0.5) }

// SplitVerticallyPct splits the rect into a left column holding pct of the
// width and a right column holding the rest, separated by margin.
func (r Rect) SplitVerticallyPct(pct, margin float64) (left, right Rect) {
	lw := r.Width * pct
	left = Rect{r.X, r.Y, lw, r.Height}
	right = Rect{r.X + lw + margin, r.Y, r.Width - lw - margin, r.Height}
	return left, right
}

// RectsIn lays n square cells along the rect's long axis. The cell side is
// the short axis times ratio; a negative gap selects 10% of the short axis.
// With reverse set, cells are laid from the far edge inward.
func (r Rect) RectsIn(n int, reverse bool, gap, ratio float64) []Rect {
	if n <= 0 {
		return nil
	}
	horizontal := r.Width > r.Height
	size := r.Width
	if horizontal {
		size = r.Height
	}
	if gap < 0 {
		gap = size * 0.1
	}
	if ratio <= 0 {
		ratio = 1
	}
	size *= ratio

	out := make([]Rect, n)
	for i := range out {
		off := float64(i) * (size + gap)
		if horizontal {
			x := r.X + off
			if reverse {
				x = r.X + r.Width - size - off
			}
			out[i] = Rect{x, r.Y, size, r.Height}
		} else {
			y := r.Y + off
			if reverse {
				y = r.Y + r.Height - size - off
			}
			out[i] = Rect{r.X, y, r.Width, size}
		}
	}
	return out
}

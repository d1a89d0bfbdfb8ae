package panel

import "fmt"

var (
	optionColor       = Color{0.18, 0.18, 0.2, 1}
	optionActiveColor = Color{0.35, 0.4, 0.5, 1}
)

// Choice draws a row of option buttons and writes the clicked option into a
// caller-owned value.
type Choice[T comparable] struct {
	Options []T
	// Label returns the button text. Nil formats with %v.
	Label func(v T) string
	// ColorOf turns a button into a colored swatch.
	ColorOf func(v T) (Color, bool)
	// Gap between buttons. Negative selects 10% of the button size.
	Gap float64
	// Reverse lays buttons from the far edge.
	Reverse bool
	// SizeRatio scales the button size relative to the rect's short side.
	SizeRatio float64

	Feedback Feedback

	ledger *ValueLedger[*T, T]
}

// NewChoice creates a choice over options.
func NewChoice[T comparable](options ...T) *Choice[T] {
	return &Choice[T]{
		Options:   options,
		Gap:       -1,
		SizeRatio: 1,
		ledger:    NewValueLedger[*T, T](),
	}
}

// Render draws the buttons inside r and applies a click to *target. It
// reports whether *target changed.
func (c *Choice[T]) Render(s Surface, in Input, r Rect, target *T) bool {
	if c.ledger == nil {
		c.ledger = NewValueLedger[*T, T]()
	}
	cells := r.RectsIn(len(c.Options), c.Reverse, c.Gap, c.SizeRatio)
	for i, opt := range c.Options {
		cell := cells[i]
		active := *target == opt
		if col, ok := c.colorOf(opt); ok {
			vis := cell.ContractedBy(2, 2)
			if !active {
				col = col.Darken(0.6)
			}
			s.DrawBox(vis, col)
			if active {
				s.DrawOutline(cell, ColorWhite, 1)
			}
		} else if active {
			s.DrawBox(cell, optionActiveColor)
		} else {
			s.DrawBox(cell, optionColor)
		}
		if _, ok := in.Clicked(cell); ok {
			play(c.Feedback, FeedbackClick)
			c.ledger.Notify(target, opt)
		}
		s.DrawLabel(cell, c.label(opt), TextAlignCenter)
	}

	v, ok := c.ledger.TryConsume(target)
	if !ok || v == *target {
		return false
	}
	*target = v
	return true
}

func (c *Choice[T]) colorOf(v T) (Color, bool) {
	if c.ColorOf == nil {
		return Color{}, false
	}
	return c.ColorOf(v)
}

func (c *Choice[T]) label(v T) string {
	if c.Label == nil {
		return fmt.Sprint(v)
	}
	return c.Label(v)
}

package panel

import (
	"fmt"
	"slices"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Placement says where a dropped element goes relative to its target.
type Placement uint8

const (
	PlacementBefore Placement = iota // insert ahead of the target
	PlacementAfter                   // insert behind the target (last row only)
	PlacementSwap                    // exchange positions with the target
)

func (p Placement) String() string {
	switch p {
	case PlacementBefore:
		return "before"
	case PlacementAfter:
		return "after"
	case PlacementSwap:
		return "onto"
	default:
		return fmt.Sprintf("Placement(%d)", p)
	}
}

// Reorder moves dragged relative to target inside values, in place, and
// reports whether the order changed. Elements are located by ==; the drop is
// ignored when either is missing or both are the same element.
//
// Before and After remove dragged first and shift the target index down by
// one when dragged came from in front of it. Swap exchanges the two slots
// and moves nothing else.
func Reorder[T comparable](values []T, dragged, target T, p Placement) bool {
	from := slices.Index(values, dragged)
	to := slices.Index(values, target)
	if from < 0 || to < 0 || from == to {
		return false
	}
	if p == PlacementSwap {
		values[from], values[to] = values[to], values[from]
		return true
	}
	if from < to {
		to--
	}
	if p == PlacementAfter {
		to++
	}
	if to == from {
		return false
	}
	moveElement(values, from, to)
	return true
}

// moveElement removes values[from] and reinserts it so it ends up at index to.
func moveElement[T any](values []T, from, to int) {
	v := values[from]
	if from < to {
		copy(values[from:to], values[from+1:to+1])
	} else {
		copy(values[to+1:from+1], values[to:from])
	}
	values[to] = v
}

// RowRegions are the drop regions of one reorder row.
type RowRegions struct {
	// Before is a strip centered on the row's top edge.
	Before Rect
	// After is a strip centered on the row's bottom edge. It only accepts
	// drops on the last row.
	After Rect
	// Body is the whole row; dropping here swaps.
	Body Rect
	// NextBefore is where the following row's Before strip will be. The body
	// yields to it so a strip always wins over a swap.
	NextBefore Rect
}

// RegionsFor computes the drop regions of row given the inter-row gap and
// the splitter margin (the half-height of the insertion strips).
func RegionsFor(row Rect, gap, splitter float64) RowRegions {
	before := row.TopPartPixels(0).ExpandedBy(0, splitter)
	after := row.BottomPartPixels(0).ExpandedBy(0, splitter)
	return RowRegions{
		Before:     before,
		After:      after,
		Body:       row,
		NextBefore: before.Move(0, row.Height+gap),
	}
}

// Hit classifies p against the regions. Strips win over the body.
func (rr RowRegions) Hit(p Vec2, last bool) (Placement, bool) {
	switch {
	case rr.Before.ContainsVec(p):
		return PlacementBefore, true
	case last && rr.After.ContainsVec(p):
		return PlacementAfter, true
	case rr.NextBefore.ContainsVec(p):
		return 0, false
	case rr.Body.ContainsVec(p):
		return PlacementSwap, true
	}
	return 0, false
}

// HitTestRows returns the row index and placement a drop at p would target
// for rows laid out top to bottom.
func HitTestRows(rows []Rect, gap, splitter float64, p Vec2) (int, Placement, bool) {
	for i, r := range rows {
		last := i == len(rows)-1
		if pl, ok := RegionsFor(r, gap, splitter).Hit(p, last); ok {
			return i, pl, true
		}
	}
	return -1, 0, false
}

const (
	defaultReorderRowHeight = 30
	defaultReorderGap       = 2
	defaultReorderMargin    = 2
	defaultSplitterMargin   = 8
	dropFlashSeconds        = 0.4
)

var (
	reorderRowColor       = Color{0.22, 0.22, 0.25, 1}
	reorderRowActiveColor = Color{0.32, 0.36, 0.45, 1}
	reorderIndicatorColor = Color{0.95, 0.75, 0.2, 1}
	reorderHoverColor     = Color{1, 1, 1, 0.35}
)

// ReorderList renders a caller-owned slice as rows that can be reordered by
// dragging a row's handle onto another row (swap) or onto the thin strip
// between rows (insert). The slice is only mutated on the frame a drag is
// dropped.
type ReorderList[T comparable] struct {
	RowHeight float64
	Gap       float64
	// Margin insets the content area passed to Draw.
	Margin float64
	// SplitterMargin is the half-height of the insertion strips. Larger
	// values favor inserting over swapping.
	SplitterMargin float64
	// NoDrag hides drag handles and disables drop regions.
	NoDrag bool
	// ButtonSize is the fraction of the row width, at the right, left to
	// Draw for its own buttons. Clicks there do not reach OnClick.
	ButtonSize float64

	// Draw renders the content of v into r.
	Draw func(v T, index int, r Rect, s Surface)
	// OnClick is called when a row body is clicked. Rows are only clickable
	// while it is set.
	OnClick func(v T, index int)
	// ColorOf gives a row a custom background color.
	ColorOf func(v T) (Color, bool)
	// IsActive highlights a row.
	IsActive func(v T) bool
	// OnDrop replaces Reorder when set. It reports whether values changed.
	OnDrop func(values []T, dragged, target T, p Placement) bool

	Feedback Feedback
	Events   EventSink

	group      DragGroup
	flash      *gween.Tween
	flashValue T
	flashAlpha float32
}

// NewReorderList creates a list with default geometry and its own drag group.
func NewReorderList[T comparable](draw func(v T, index int, r Rect, s Surface)) *ReorderList[T] {
	return &ReorderList[T]{
		RowHeight:      defaultReorderRowHeight,
		Gap:            defaultReorderGap,
		Margin:         defaultReorderMargin,
		SplitterMargin: defaultSplitterMargin,
		Draw:           draw,
		group:          NewDragGroup(),
	}
}

// Group returns the list's drag group.
func (l *ReorderList[T]) Group() DragGroup { return l.group }

// Measure returns the height Render allocates for n rows.
func (l *ReorderList[T]) Measure(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*l.RowHeight + float64(n)*l.Gap
}

type pendingDrop[T any] struct {
	target    T
	index     int
	placement Placement
}

// Render draws values and handles click, drag and drop. It reports whether
// values was reordered this frame.
func (l *ReorderList[T]) Render(s Surface, in Input, values []T) bool {
	dragged, dragging := l.dragged(in)
	var drop *pendingDrop[T]

	rows := slices.Clone(values)
	for i, v := range rows {
		row := s.Rect(l.RowHeight)
		last := i == len(rows)-1
		regions := RegionsFor(row, l.Gap, l.SplitterMargin)

		var hit Placement
		hitOK := false
		if dragging && !l.NoDrag {
			hit, hitOK = regions.Hit(in.Pointer(), last)
		}

		l.drawBackground(s, v, row, dragging && dragged == v)

		dragSize := 0.0
		if !l.NoDrag {
			dragSize = row.Height
		}
		body := row.ShrinkLeft(dragSize)
		clickArea := body.LeftPart(1 - l.ButtonSize)
		if l.OnClick != nil {
			if !dragging && in.Over(clickArea) {
				s.DrawOutline(row, reorderHoverColor, 1)
			}
			if _, ok := in.Clicked(clickArea); ok {
				play(l.Feedback, FeedbackSelect)
				emit(l.Events, Event{Type: EventSelect, From: i, To: -1})
				l.OnClick(v, i)
			}
		}

		if !l.NoDrag {
			handle := row.LeftPartPixels(dragSize)
			s.DrawIcon(handle.ContractedBy(l.Margin*2, l.Margin*2), IconDragHandle, ColorWhite)
			in.Draggable(l.group, handle, v)
		}

		if hitOK {
			switch hit {
			case PlacementBefore:
				l.drawIndicator(s, row.Y-l.Gap/2, row)
				if _, ok := in.Drop(l.group, regions.Before); ok {
					drop = &pendingDrop[T]{target: v, index: i, placement: hit}
				}
			case PlacementAfter:
				l.drawIndicator(s, row.Y+row.Height+l.Gap/2, row)
				if _, ok := in.Drop(l.group, regions.After); ok {
					drop = &pendingDrop[T]{target: v, index: i, placement: hit}
				}
			case PlacementSwap:
				if dragged != v {
					s.DrawOutline(row, reorderIndicatorColor, 2)
				}
				if _, ok := in.Drop(l.group, regions.Body); ok {
					drop = &pendingDrop[T]{target: v, index: i, placement: hit}
				}
			}
		}

		if l.Draw != nil {
			l.Draw(v, i, body.ContractedBy(l.Margin, 0), s)
		}
		s.Gap(l.Gap)
	}

	if drop == nil || !dragging {
		return false
	}
	return l.applyDrop(values, dragged, *drop)
}

func (l *ReorderList[T]) dragged(in Input) (T, bool) {
	var zero T
	if l.NoDrag {
		return zero, false
	}
	payload, ok := in.Dragging(l.group)
	if !ok {
		return zero, false
	}
	v, ok := payload.(T)
	return v, ok
}

func (l *ReorderList[T]) applyDrop(values []T, dragged T, d pendingDrop[T]) bool {
	from := slices.Index(values, dragged)
	debugf("dropping %v %s %d (from %d)", dragged, d.placement, d.index, from)

	var changed bool
	if l.OnDrop != nil {
		changed = l.OnDrop(values, dragged, d.target, d.placement)
	} else {
		changed = Reorder(values, dragged, d.target, d.placement)
	}
	if !changed {
		return false
	}
	play(l.Feedback, FeedbackDrop)
	emit(l.Events, Event{Type: EventDrop, From: from, To: d.index, Placement: d.placement})
	l.flashValue = dragged
	l.flash = gween.New(1, 0, dropFlashSeconds, ease.OutCubic)
	l.flashAlpha = 1
	return true
}

// Update advances the drop highlight by dt seconds. Call it once per tick,
// not per Render, so the fade keeps its duration at any display rate.
func (l *ReorderList[T]) Update(dt float32) {
	if l.flash == nil {
		return
	}
	alpha, done := l.flash.Update(dt)
	l.flashAlpha = alpha
	if done {
		l.flash = nil
		l.flashAlpha = 0
	}
}

func (l *ReorderList[T]) drawBackground(s Surface, v T, row Rect, beingDragged bool) {
	active := l.IsActive != nil && l.IsActive(v)
	bg := reorderRowColor
	if active {
		bg = reorderRowActiveColor
	}
	if l.ColorOf != nil {
		if c, ok := l.ColorOf(v); ok {
			bg = c
			if active {
				bg = c.Mix(ColorWhite, 0.25)
			}
		}
	}
	if beingDragged {
		bg = bg.Darken(0.4)
	}
	s.DrawBox(row, bg)
	if l.flash != nil && l.flashValue == v {
		s.DrawBox(row, ColorWhite.WithAlpha(float64(l.flashAlpha)*0.5))
	}
}

func (l *ReorderList[T]) drawIndicator(s Surface, y float64, row Rect) {
	s.DrawBox(Rect{X: row.X, Y: y - 1, Width: row.Width, Height: 2}, reorderIndicatorColor)
}

package panel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultWheelStep      = 30
	defaultScrollbarWidth = 8
)

var (
	scrollTrackColor = Color{1, 1, 1, 0.08}
	scrollThumbColor = Color{1, 1, 1, 0.35}
)

// ScrollView keeps the scroll offset of a clipped region whose content can be
// taller than the region itself.
type ScrollView struct {
	// Offset is how far the content is scrolled up, in pixels.
	Offset float64
	// WheelStep is the distance of one wheel notch.
	WheelStep float64
	// ScrollbarWidth is reserved at the right edge when content overflows.
	ScrollbarWidth float64

	tween *gween.Tween
}

// NewScrollView creates a scroll view at the top.
func NewScrollView() *ScrollView {
	return &ScrollView{WheelStep: defaultWheelStep, ScrollbarWidth: defaultScrollbarWidth}
}

// MaxOffset returns the largest valid offset for content of the given height
// shown in a view of height view.
func MaxOffset(view, content float64) float64 {
	return max(content-view, 0)
}

// Begin clips c to outer and redirects its flow so rows allocated until end
// is called are laid out in scrolled content space. Wheel input over outer
// scrolls. The returned Input ignores the pointer outside outer, so rows
// scrolled out of view cannot be clicked or dropped on.
func (v *ScrollView) Begin(c *Canvas, in Input, outer Rect, contentHeight float64) (Input, func()) {
	if w := in.Wheel(); w != 0 && in.Over(outer) {
		v.tween = nil
		v.Offset -= w * v.WheelStep
	}
	v.Offset = min(max(v.Offset, 0), MaxOffset(outer.Height, contentHeight))

	view := outer
	if contentHeight > outer.Height {
		bar := outer.RightPartPixels(v.ScrollbarWidth)
		view = outer.ShrinkRight(v.ScrollbarWidth)
		c.DrawBox(bar, scrollTrackColor)
		c.DrawBox(v.thumb(bar, contentHeight), scrollThumbColor)
	}

	restoreClip := c.Clip(outer)
	saved := c.Listing
	c.Listing.Begin(Rect{X: view.X, Y: view.Y - v.Offset, Width: view.Width, Height: contentHeight})
	return &clipInput{Input: in, clip: outer}, func() {
		c.Listing = saved
		restoreClip()
	}
}

func (v *ScrollView) thumb(bar Rect, contentHeight float64) Rect {
	h := bar.Height * bar.Height / contentHeight
	travel := bar.Height - h
	y := bar.Y
	if m := MaxOffset(bar.Height, contentHeight); m > 0 {
		y += travel * v.Offset / m
	}
	return Rect{X: bar.X, Y: y, Width: bar.Width, Height: h}
}

// ScrollTo animates the offset to y over duration seconds. Begin clamps the
// result to the content.
func (v *ScrollView) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	v.tween = gween.New(float32(v.Offset), float32(y), duration, easeFn)
}

// Animating reports whether a ScrollTo is in progress.
func (v *ScrollView) Animating() bool { return v.tween != nil }

// Update advances a ScrollTo animation by dt seconds.
func (v *ScrollView) Update(dt float32) {
	if v.tween == nil {
		return
	}
	val, done := v.tween.Update(dt)
	v.Offset = float64(val)
	if done {
		v.tween = nil
	}
}

// clipInput hides pointer interaction outside clip.
type clipInput struct {
	Input
	clip Rect
}

func (c *clipInput) Over(r Rect) bool {
	return c.Input.Over(c.clip) && c.Input.Over(r)
}

func (c *clipInput) Clicked(r Rect) (MouseButton, bool) {
	if !c.Input.Over(c.clip) {
		return 0, false
	}
	return c.Input.Clicked(r)
}

func (c *clipInput) Draggable(group DragGroup, r Rect, payload any) {
	if c.Input.Over(c.clip) {
		c.Input.Draggable(group, r, payload)
	}
}

func (c *clipInput) Drop(group DragGroup, r Rect) (any, bool) {
	if !c.Input.Over(c.clip) {
		return nil, false
	}
	return c.Input.Drop(group, r)
}

package panel

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the ebiten Surface: a Listing that draws into an *ebiten.Image.
// Call Begin each frame with the screen (or an offscreen image) before
// rendering widgets.
type Canvas struct {
	Listing

	// Font is used by DrawLabel. Nil uses DefaultFont.
	Font *Font
	// TextColor is the label color before tinting.
	TextColor Color

	dst  *ebiten.Image
	tint Color
}

// NewCanvas creates a canvas with the default font and indent.
func NewCanvas(font *Font) *Canvas {
	if font == nil {
		font = DefaultFont()
	}
	return &Canvas{
		Listing:   Listing{IndentWidth: defaultIndentWidth},
		Font:      font,
		TextColor: ColorWhite,
		tint:      ColorWhite,
	}
}

// Begin targets dst and restarts the flow at the top of bounds.
func (c *Canvas) Begin(dst *ebiten.Image, bounds Rect) {
	c.dst = dst
	c.tint = ColorWhite
	c.Listing.Begin(bounds)
}

// Target returns the image currently drawn into.
func (c *Canvas) Target() *ebiten.Image { return c.dst }

// PushTint multiplies every following draw by col until the returned restore
// func is called.
func (c *Canvas) PushTint(col Color) (restore func()) {
	prev := c.tint
	c.tint = Color{prev.R * col.R, prev.G * col.G, prev.B * col.B, prev.A * col.A}
	return func() { c.tint = prev }
}

// Clip restricts drawing to r until the returned restore func is called.
// Nested clips intersect.
func (c *Canvas) Clip(r Rect) (restore func()) {
	prev := c.dst
	if prev == nil {
		return func() {}
	}
	clip := image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	).Intersect(prev.Bounds())
	c.dst = prev.SubImage(clip).(*ebiten.Image)
	return func() { c.dst = prev }
}

func (c *Canvas) tinted(col Color) Color {
	return Color{col.R * c.tint.R, col.G * c.tint.G, col.B * c.tint.B, col.A * c.tint.A}
}

func (c *Canvas) font() *Font {
	if c.Font == nil {
		c.Font = DefaultFont()
	}
	return c.Font
}

// DrawLabel draws s on a single line, vertically centered in r.
func (c *Canvas) DrawLabel(r Rect, s string, align TextAlign) {
	if c.dst == nil || s == "" {
		return
	}
	f := c.font()
	op := &text.DrawOptions{}
	op.LineSpacing = f.LineHeight()
	op.SecondaryAlign = text.AlignCenter
	x := r.X
	switch align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		x = r.X + r.Width/2
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		x = r.X + r.Width
	default:
		op.PrimaryAlign = text.AlignStart
	}
	op.GeoM.Translate(x, r.Y+r.Height/2)
	op.ColorScale.ScaleWithColor(c.tinted(c.TextColor))
	text.Draw(c.dst, s, f.Face(), op)
}

// DrawBox fills r. Fully transparent colors draw nothing.
func (c *Canvas) DrawBox(r Rect, col Color) {
	col = c.tinted(col)
	if c.dst == nil || col.A <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col, false)
}

// DrawOutline strokes the border of r.
func (c *Canvas) DrawOutline(r Rect, col Color, thickness float64) {
	col = c.tinted(col)
	if c.dst == nil || col.A <= 0 || thickness <= 0 {
		return
	}
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(thickness), col, false)
}

// ColoredBox fills r with col and outlines it with a darker shade.
func (c *Canvas) ColoredBox(r Rect, col Color) {
	c.DrawBox(r, col)
	c.DrawOutline(r, col.Darken(0.4), 1)
}

// DrawIcon draws a built-in glyph with vector strokes, centered in r.
func (c *Canvas) DrawIcon(r Rect, icon Icon, col Color) {
	col = c.tinted(col)
	if c.dst == nil || col.A <= 0 {
		return
	}
	s := float32(min(r.Width, r.Height))
	cx := float32(r.X + r.Width/2)
	cy := float32(r.Y + r.Height/2)
	h := s * 0.3
	w := max(s*0.08, 1)
	line := func(x0, y0, x1, y1 float32) {
		vector.StrokeLine(c.dst, x0, y0, x1, y1, w, col, true)
	}

	switch icon {
	case IconCollapse:
		line(cx-h, cy-h/2, cx, cy+h/2)
		line(cx, cy+h/2, cx+h, cy-h/2)
	case IconReveal:
		line(cx-h/2, cy-h, cx+h/2, cy)
		line(cx+h/2, cy, cx-h/2, cy+h)
	case IconAdd:
		line(cx-h, cy, cx+h, cy)
		line(cx, cy-h, cx, cy+h)
	case IconDelete:
		line(cx-h, cy-h, cx+h, cy+h)
		line(cx-h, cy+h, cx+h, cy-h)
	case IconDragHandle:
		for _, dy := range []float32{-h / 1.5, 0, h / 1.5} {
			line(cx-h, cy+dy, cx+h, cy+dy)
		}
	}
}

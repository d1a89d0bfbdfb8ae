package panel

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font wraps an Ebitengine text/v2 face with its cached line height.
type Font struct {
	face text.Face
	lh   float64
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("panel: failed to parse TTF data: %w", err)
	}
	return NewFont(&text.GoTextFace{Source: source, Size: size}), nil
}

// DefaultFont returns the 7x13 bitmap face from x/image. It needs no assets.
func DefaultFont() *Font {
	return NewFont(text.NewGoXFace(basicfont.Face7x13))
}

// NewFont wraps any text/v2 face.
func NewFont(face text.Face) *Font {
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 { return f.lh }

// Face returns the underlying face for direct text/v2 rendering.
func (f *Font) Face() text.Face { return f.face }

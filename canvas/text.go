package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// textPad is the transparent margin around a rendered text run; it keeps
// glyph overhang (accents, italics) inside the sprite.
const textPad = 4

// MeasureText returns the advance width of s in pixels.
func MeasureText(face font.Face, s string) float64 {
	if face == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(face, s))
}

// FillText draws s centred horizontally on x with its vertical middle on y,
// matching textAlign "center" and textBaseline "middle".
// The run is rendered upright in local space, so the current transform
// rotates and mirrors the glyphs with it.
func (c *Canvas) FillText(face font.Face, s string, x, y float64, col color.Color) {
	if face == nil || s == "" {
		return
	}
	sprite, advance, ascent, descent := renderText(face, s, col)
	if sprite == nil {
		return
	}
	left := x - advance/2 - textPad
	top := y - (ascent+descent)/2 - textPad
	c.DrawImage(sprite, left, top, float64(sprite.Rect.Dx()), float64(sprite.Rect.Dy()))
}

// renderText rasterises s into an upright premultiplied sprite.
func renderText(face font.Face, s string, col color.Color) (sprite *image.RGBA, advance, ascent, descent float64) {
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	advance = fixedToFloat(adv)
	ascent = fixedToFloat(m.Ascent)
	descent = fixedToFloat(m.Descent)

	w := int(math.Ceil(advance)) + 2*textPad
	h := int(math.Ceil(ascent+descent)) + 2*textPad
	if w <= 2*textPad || h <= 2*textPad {
		return nil, 0, 0, 0
	}
	sprite = image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  sprite,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(textPad), Y: fixed.I(textPad) + m.Ascent},
	}
	d.DrawString(s)
	return sprite, advance, ascent, descent
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

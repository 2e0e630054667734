package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/texcomp/internal/blend"
)

// DrawImage draws img stretched into the local rectangle (x, y, w, h).
// A nil or empty image draws nothing.
func (c *Canvas) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w == 0 || h == 0 {
		return
	}
	sr := img.Bounds()
	if sr.Empty() {
		return
	}
	m := c.state.matrix.
		Multiply(Translate(x, y)).
		Multiply(Scale(w/float64(sr.Dx()), h/float64(sr.Dy()))).
		Multiply(Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))

	c.paint(m.bounds(sr), func(layer *image.RGBA) {
		if dx, dy, ok := m.integerTranslation(); ok {
			draw.Draw(layer, sr.Add(image.Pt(dx, dy)), img, sr.Min, draw.Over)
			return
		}
		draw.BiLinear.Transform(layer, m.aff3(), img, sr, draw.Over, nil)
	})
}

// FillRect fills the local rectangle (x, y, w, h) with col.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	var p Path
	p.Rect(x, y, w, h)
	c.FillPath(&p, col)
}

// FillPath fills p with col using the non-zero winding rule.
func (c *Canvas) FillPath(p *Path, col color.Color) {
	if p == nil || len(p.ops) == 0 {
		return
	}
	m := c.state.matrix
	c.paint(m.boundsOf(p.points()), func(layer *image.RGBA) {
		r := layer.Rect
		z := vector.NewRasterizer(r.Dx(), r.Dy())
		origin := Point{X: float64(r.Min.X), Y: float64(r.Min.Y)}
		dev := func(q Point) (float32, float32) {
			d := m.TransformPoint(q)
			return float32(d.X - origin.X), float32(d.Y - origin.Y)
		}
		for _, op := range p.ops {
			switch op.kind {
			case opMove:
				z.MoveTo(dev(op.pts[0]))
			case opLine:
				z.LineTo(dev(op.pts[0]))
			case opQuad:
				bx, by := dev(op.pts[0])
				cx, cy := dev(op.pts[1])
				z.QuadTo(bx, by, cx, cy)
			case opCube:
				bx, by := dev(op.pts[0])
				cx, cy := dev(op.pts[1])
				dx, dy := dev(op.pts[2])
				z.CubeTo(bx, by, cx, cy, dx, dy)
			case opClose:
				z.ClosePath()
			}
		}
		z.Draw(layer, r, image.NewUniform(col), image.Point{})
	})
}

// paint renders one draw call into a scratch layer covering r and
// composites the layer onto the canvas with the current state.
func (c *Canvas) paint(r image.Rectangle, render func(layer *image.RGBA)) {
	if c.state.alpha == 0 {
		return
	}
	pad := 0
	if c.state.blur > 0 {
		pad = int(math.Ceil(c.state.blur * 3))
	}
	r = r.Inset(-pad).Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	layer := image.NewRGBA(r)
	render(layer)
	if c.state.blur > 0 {
		layer = blurLayer(layer, c.state.blur)
	}
	c.composite(layer)
}

func (c *Canvas) composite(layer *image.RGBA) {
	r := layer.Rect.Intersect(c.img.Rect)
	if r.Empty() {
		return
	}
	alpha := byte(math.Round(c.state.alpha * 255))
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := c.img.PixOffset(r.Min.X, y)
		s := layer.PixOffset(r.Min.X, y)
		blend.Span(c.img.Pix[d:d+n], layer.Pix[s:s+n], c.state.mode, alpha)
	}
}

// blurLayer applies a Gaussian blur to a layer. imaging weights colour by
// alpha while blurring, so the result is converted straight back to
// premultiplied form.
func blurLayer(layer *image.RGBA, sigma float64) *image.RGBA {
	out := imaging.Blur(layer, sigma)
	res := image.NewRGBA(layer.Rect)
	draw.Draw(res, res.Rect, out, out.Rect.Min, draw.Src)
	return res
}

// Package pattern generates the tileable decoration rasters offered by the
// customizer: dots, checkerboard, an illusionistic wave and four fixed
// stripe recipes.
//
// Every pattern is parameterised by an ordered colour list whose meaning is
// pattern specific. Colour indices beyond the supplied list wrap around.
package pattern

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/texcomp/canvas"
	"github.com/gogpu/texcomp/zone"
)

// Name identifies a pattern recipe.
type Name string

const (
	Dots          Name = "dots"
	Checkerboard  Name = "checkerboard"
	Illusionistic Name = "illusionistic"
	Custom1       Name = "custom1"
	Custom2       Name = "custom2"
	Custom3       Name = "custom3"
	Custom4       Name = "custom4"
)

// Names returns every known pattern name in catalogue order.
func Names() []Name {
	return []Name{Dots, Checkerboard, Illusionistic, Custom1, Custom2, Custom3, Custom4}
}

// Spec selects a pattern and its colours. ZoneHint records which logo zone
// the customizer suggested alongside the pattern; generation ignores it.
type Spec struct {
	Name     Name
	Colors   []color.NRGBA
	ZoneHint zone.Zone
}

// at returns the i'th colour, wrapping around the list.
func (s Spec) at(i int) color.NRGBA {
	return s.Colors[i%len(s.Colors)]
}

// Repeat describes how a tile is laid across the canvas.
type Repeat uint8

const (
	RepeatXY Repeat = iota // tiled in both directions
	RepeatX                // tiled horizontally only
)

// TileSize is the edge length of the small repeatable tiles.
const TileSize = 100

// Tile is a generated pattern raster.
type Tile struct {
	Image  *image.RGBA
	Repeat Repeat
}

// Generate renders the tile for spec. Stripe recipes are rendered at the
// full canvasHeight and repeat horizontally only.
// It reports false for an unknown name or an empty colour list.
func Generate(spec Spec, canvasHeight int) (*Tile, bool) {
	if len(spec.Colors) == 0 {
		return nil, false
	}
	switch spec.Name {
	case Dots:
		return &Tile{Image: dots(spec)}, true
	case Checkerboard:
		return &Tile{Image: checkerboard(spec)}, true
	case Illusionistic:
		return &Tile{Image: illusionistic(spec)}, true
	}
	stripes, ok := stripeRecipes[spec.Name]
	if !ok || canvasHeight <= 0 {
		return nil, false
	}
	return &Tile{Image: striped(spec, stripes, canvasHeight), Repeat: RepeatX}, true
}

// Fill lays t across the whole of dst, starting at the top-left corner.
func Fill(dst *canvas.Canvas, t *Tile) {
	if t == nil || t.Image == nil {
		return
	}
	tw, th := t.Image.Rect.Dx(), t.Image.Rect.Dy()
	if tw == 0 || th == 0 {
		return
	}
	rows := 1
	if t.Repeat == RepeatXY {
		rows = int(math.Ceil(float64(dst.Height()) / float64(th)))
	}
	for row := 0; row < rows; row++ {
		for x := 0; x < dst.Width(); x += tw {
			dst.DrawImage(t.Image, float64(x), float64(row*th), float64(tw), float64(th))
		}
	}
}

func dots(spec Spec) *image.RGBA {
	const (
		radius  = 20
		spacing = 50
	)
	c := canvas.New(TileSize, TileSize)
	c.FillRect(0, 0, TileSize, TileSize, spec.at(3))
	for y := radius; y < TileSize; y += spacing {
		for x := radius; x < TileSize; x += spacing {
			var p canvas.Path
			p.Circle(float64(x), float64(y), radius)
			c.FillPath(&p, spec.at((x+y)%3))
		}
	}
	return c.Image()
}

func checkerboard(spec Spec) *image.RGBA {
	const square = 50
	c := canvas.New(TileSize, TileSize)
	for row := 0; row*square < TileSize; row++ {
		for col := 0; col*square < TileSize; col++ {
			c.FillRect(float64(col*square), float64(row*square), square, square, spec.at(col+row))
		}
	}
	return c.Image()
}

func illusionistic(spec Spec) *image.RGBA {
	const (
		band      = 40
		amplitude = 10
		hairline  = 10
	)
	c := canvas.New(TileSize, TileSize)
	half := float64(TileSize) / 2
	// The band above the tile covers the wave crest at y=0; odd indices keep
	// colors[0] on the band starting at the top edge.
	for i, y := 1, -float64(band); y < TileSize; i, y = i+1, y+band {
		var p canvas.Path
		p.MoveTo(0, y)
		p.QuadTo(half/2, y-amplitude, half, y)
		p.QuadTo(half*1.5, y+amplitude, TileSize, y)
		p.LineTo(TileSize, y+band)
		p.QuadTo(half*1.5, y+band+amplitude, half, y+band)
		p.QuadTo(half/2, y+band-amplitude, 0, y+band)
		p.Close()
		c.FillPath(&p, spec.at(i%2))
	}
	for x := 0; x < TileSize; x += hairline {
		c.FillRect(float64(x), 0, 1, TileSize, spec.at(2))
	}
	return c.Image()
}

// Package zone places a logo image on the product texture.
//
// A zone is a list of draw groups. Each group draws the logo into a set of
// anchored rectangles and grid cells with its own opacity and blur, inside
// a saved drawer state so neither leaks into later layers.
package zone

import (
	"image"

	"github.com/gogpu/texcomp/layout"
)

// Zone names a logo placement. The values are the strings the customizer
// sends.
type Zone string

const (
	Calf        Zone = "calf"
	Footbed     Zone = "footbed"
	CalfFootbed Zone = "calf_footbed"
	Repeating   Zone = "repeating"
)

// Zones returns every known zone.
func Zones() []Zone {
	return []Zone{Calf, Footbed, CalfFootbed, Repeating}
}

// Group is one set of logo draws sharing opacity and blur.
//
// Alpha <= 0 means fully opaque. Grid cells are CellW×CellH and are only
// drawn when they lie entirely inside the canvas.
type Group struct {
	Alpha float64       `toml:"alpha"`
	Blur  float64       `toml:"blur"`
	Rects []layout.Rect `toml:"rects"`
	Grid  *layout.Grid  `toml:"grid"`
	CellW float64       `toml:"cell_w"`
	CellH float64       `toml:"cell_h"`
}

// Spec is the ordered list of groups drawn for a zone.
type Spec struct {
	Groups []Group `toml:"groups"`
}

// Table maps zones to their specs.
type Table map[Zone]Spec

// DefaultTable returns the zones tuned to the 2048×2048 sock texture.
func DefaultTable() Table {
	calf := Group{
		Rects: []layout.Rect{
			{X: 240, Y: 330, W: 300, H: 200},
			{X: 240, Y: 330, W: 300, H: 200, AnchorX: layout.End},
		},
	}
	footbedRects := []layout.Rect{
		{X: 40, Y: 180, W: 350, H: 100, AnchorY: layout.End},
		{X: 40, Y: 180, W: 320, H: 100, AnchorX: layout.End, AnchorY: layout.End},
	}
	return Table{
		Calf:    {Groups: []Group{calf}},
		Footbed: {Groups: []Group{{Alpha: 0.8, Blur: 1, Rects: footbedRects}}},
		CalfFootbed: {Groups: []Group{
			{Alpha: 1, Rects: calf.Rects},
			{Alpha: 1, Blur: 1, Rects: footbedRects},
		}},
		Repeating: {Groups: []Group{{
			Grid: &layout.Grid{
				X: 60, Y: 40,
				ColStep: 400, RowStep: 170, Stagger: 200,
				Cols: 5, Rows: 12,
			},
			CellW: 50, CellH: 50,
		}}},
	}
}

// Drawer is the canvas surface logos are drawn on. *canvas.Canvas
// implements it.
type Drawer interface {
	Width() int
	Height() int
	Save()
	Restore()
	SetGlobalAlpha(alpha float64)
	SetBlur(sigma float64)
	DrawImage(img image.Image, x, y, w, h float64)
}

// Place draws logo at every position of zone z and returns the number of
// draws. A nil logo or a zone missing from table draws nothing.
func Place(dst Drawer, logo image.Image, z Zone, table Table) int {
	spec, ok := table[z]
	if !ok || logo == nil {
		return 0
	}
	n := 0
	for _, g := range spec.Groups {
		n += g.place(dst, logo)
	}
	return n
}

func (g Group) place(dst Drawer, logo image.Image) int {
	dst.Save()
	defer dst.Restore()
	if g.Alpha > 0 {
		dst.SetGlobalAlpha(g.Alpha)
	}
	if g.Blur > 0 {
		dst.SetBlur(g.Blur)
	}

	width, height := dst.Width(), dst.Height()
	n := 0
	for _, r := range g.Rects {
		x, y, w, h := r.Resolve(width, height)
		dst.DrawImage(logo, x, y, w, h)
		n++
	}
	if g.Grid == nil {
		return n
	}
	for _, p := range g.Grid.Points() {
		if p.X < 0 || p.Y < 0 || p.X+g.CellW > float64(width) || p.Y+g.CellH > float64(height) {
			continue
		}
		dst.DrawImage(logo, p.X, p.Y, g.CellW, g.CellH)
		n++
	}
	return n
}

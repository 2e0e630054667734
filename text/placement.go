package text

import "github.com/gogpu/texcomp/layout"

// Placement names where text goes on the product. The values are the
// strings the customizer sends.
type Placement string

const (
	Front      Placement = "Front"
	Bottom     Placement = "bottom"
	Calf       Placement = "Calf"
	CalfBottom Placement = "Calf+Bottom"
	Repeat     Placement = "Repeat"
)

// Placements returns every known placement.
func Placements() []Placement {
	return []Placement{Front, Bottom, Calf, CalfBottom, Repeat}
}

// Frame describes one placement: the coordinate frame text is drawn in and
// the anchor points of every copy.
//
// The frame origin is the canvas centre. Rotation is applied first, then
// the x axis is mirrored if MirrorX is set. Points and Grid cells are in
// the resulting local coordinates; each copy is centred on its anchor.
// Grid cells whose anchor lands outside the canvas are skipped.
type Frame struct {
	Rotation      float64        `toml:"rotation"` // degrees
	MirrorX       bool           `toml:"mirror_x"`
	WidthFraction float64        `toml:"width_fraction"`
	StartSize     float64        `toml:"start_size"`
	Points        []layout.Point `toml:"points"`
	Grid          *layout.Grid   `toml:"grid"`
}

// Table maps placements to frames.
type Table map[Placement]Frame

// DefaultTable returns the frames tuned to the 2048×2048 sock texture.
func DefaultTable() Table {
	calf := []layout.Point{{X: -275, Y: 300}, {X: 280, Y: 300}}
	bottom := []layout.Point{{X: 620, Y: 768}, {X: -580, Y: 768}}
	return Table{
		Front: {
			Rotation: -90, MirrorX: true,
			WidthFraction: 0.8, StartSize: 160,
			Points: []layout.Point{{X: 0, Y: 0}},
		},
		Bottom: {
			Rotation: -90, MirrorX: true,
			WidthFraction: 0.4, StartSize: 120,
			Points: bottom,
		},
		Calf: {
			Rotation: -90, MirrorX: true,
			WidthFraction: 0.4, StartSize: 120,
			Points: calf,
		},
		CalfBottom: {
			Rotation: -90, MirrorX: true,
			WidthFraction: 0.4, StartSize: 120,
			Points: append(append([]layout.Point{}, calf...), bottom...),
		},
		Repeat: {
			Rotation: 180, MirrorX: true,
			WidthFraction: 0.15, StartSize: 60,
			Grid: &layout.Grid{
				X: -964, Y: 984,
				ColStep: 400, RowStep: -170, Stagger: 200,
				Cols: 5, Rows: 12,
			},
		},
	}
}

// anchors returns the explicit points followed by the grid cells.
func (f Frame) anchors() (points, grid []layout.Point) {
	if f.Grid != nil {
		grid = f.Grid.Points()
	}
	return f.Points, grid
}

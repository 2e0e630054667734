// Package layout holds the geometry vocabulary shared by the zone and text
// placement tables: anchored rectangles, points and staggered grids.
//
// All values are literal pixel offsets tuned to one base texture's UV
// layout. Tables built from these types can be swapped per base texture
// without touching the compositing logic.
package layout

// Anchor selects the canvas edge an offset is measured from.
type Anchor string

const (
	Start  Anchor = ""       // left or top edge
	End    Anchor = "end"    // right or bottom edge, measured to the far side of the rect
	Center Anchor = "center" // canvas centre, measured to the rect centre
)

// Point is an offset in the coordinate space of the table that holds it.
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Rect is a draw rectangle whose origin may be anchored to any canvas edge.
type Rect struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	W       float64 `toml:"w"`
	H       float64 `toml:"h"`
	AnchorX Anchor  `toml:"anchor_x"`
	AnchorY Anchor  `toml:"anchor_y"`
}

// Resolve returns the top-left corner and size of r on a canvas of the
// given dimensions.
func (r Rect) Resolve(width, height int) (x, y, w, h float64) {
	return resolve(r.X, r.W, r.AnchorX, float64(width)),
		resolve(r.Y, r.H, r.AnchorY, float64(height)),
		r.W, r.H
}

func resolve(offset, size float64, a Anchor, extent float64) float64 {
	switch a {
	case End:
		return extent - offset - size
	case Center:
		return extent/2 + offset - size/2
	default:
		return offset
	}
}

// Grid is a zig-zag tiling: Cols cells per row, Rows rows, every odd row
// shifted by Stagger along x.
type Grid struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	ColStep float64 `toml:"col_step"`
	RowStep float64 `toml:"row_step"`
	Stagger float64 `toml:"stagger"`
	Cols    int     `toml:"cols"`
	Rows    int     `toml:"rows"`
}

// Points returns the cell origins row by row.
func (g Grid) Points() []Point {
	if g.Cols <= 0 || g.Rows <= 0 {
		return nil
	}
	pts := make([]Point, 0, g.Cols*g.Rows)
	for row := 0; row < g.Rows; row++ {
		shift := 0.0
		if row%2 == 1 {
			shift = g.Stagger
		}
		for col := 0; col < g.Cols; col++ {
			pts = append(pts, Point{
				X: g.X + float64(col)*g.ColStep + shift,
				Y: g.Y + float64(row)*g.RowStep,
			})
		}
	}
	return pts
}

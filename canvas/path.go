package canvas

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498307936

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCube
	opClose
)

type pathOp struct {
	kind opKind
	pts  [3]Point
}

// Path is a sequence of sub-paths in local coordinates.
// The zero value is an empty path ready to use.
type Path struct {
	ops []pathOp
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.ops = append(p.ops, pathOp{kind: opMove, pts: [3]Point{{x, y}}})
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.ops = append(p.ops, pathOp{kind: opLine, pts: [3]Point{{x, y}}})
}

// QuadTo adds a quadratic Bézier segment with control point (cx, cy) ending at (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.ops = append(p.ops, pathOp{kind: opQuad, pts: [3]Point{{cx, cy}, {x, y}}})
}

// CubeTo adds a cubic Bézier segment ending at (x, y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.ops = append(p.ops, pathOp{kind: opCube, pts: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

// Close closes the current sub-path.
func (p *Path) Close() {
	p.ops = append(p.ops, pathOp{kind: opClose})
}

// Rect adds a closed axis-aligned rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed circle approximated by four cubic arcs.
func (p *Path) Circle(cx, cy, r float64) {
	k := r * kappa
	p.MoveTo(cx+r, cy)
	p.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	p.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	p.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	p.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	p.Close()
}

// points returns every on-curve and control point; their hull bounds the path.
func (p *Path) points() []Point {
	var pts []Point
	for _, op := range p.ops {
		switch op.kind {
		case opMove, opLine:
			pts = append(pts, op.pts[0])
		case opQuad:
			pts = append(pts, op.pts[0], op.pts[1])
		case opCube:
			pts = append(pts, op.pts[:]...)
		}
	}
	return pts
}

// Package blend implements the premultiplied-alpha compositing operators
// used by the texture canvas.
//
// All operations work on premultiplied RGBA bytes in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode represents a compositing operation.
type Mode uint8

const (
	SourceOver Mode = iota // Result: S + D*(1-Sa) [default]
	SourceAtop             // Result: S*Da + D*(1-Sa)
	Multiply               // Result: S*(1-Da) + D*(1-Sa) + S*D
)

// String returns the canvas name of the mode.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case SourceAtop:
		return "source-atop"
	case Multiply:
		return "multiply"
	default:
		return "unknown"
	}
}

// Func is the signature for blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// FuncFor returns the blend function for the given mode.
// Returns the source-over function for unknown modes.
func FuncFor(mode Mode) Func {
	switch mode {
	case SourceAtop:
		return sourceAtop
	case Multiply:
		return multiply
	default:
		return sourceOver
	}
}

// Span composites src onto dst in place. Both slices hold premultiplied
// RGBA pixels and must have the same length. alpha scales every source
// pixel before blending; 255 leaves the source unchanged.
//
// Fully transparent source pixels leave dst untouched, which holds for
// every supported mode.
func Span(dst, src []byte, mode Mode, alpha byte) {
	fn := FuncFor(mode)
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i+3 < n; i += 4 {
		sr, sg, sb, sa := src[i], src[i+1], src[i+2], src[i+3]
		if alpha != 255 {
			sr = mulDiv255(sr, alpha)
			sg = mulDiv255(sg, alpha)
			sb = mulDiv255(sb, alpha)
			sa = mulDiv255(sa, alpha)
		}
		if sa == 0 && sr == 0 && sg == 0 && sb == 0 {
			continue
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = fn(sr, sg, sb, sa, dst[i], dst[i+1], dst[i+2], dst[i+3])
	}
}

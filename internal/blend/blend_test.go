package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMulDiv255IdentityOnOpaque(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := mulDiv255(byte(v), 255); got != byte(v) {
			t.Fatalf("mulDiv255(%d, 255) = %d, want %d", v, got, v)
		}
	}
}

func TestBlendModes(t *testing.T) {
	type px [4]byte
	tests := []struct {
		name string
		mode Mode
		src  px
		dst  px
		want px
	}{
		{"over opaque src replaces", SourceOver, px{10, 20, 30, 255}, px{200, 200, 200, 255}, px{10, 20, 30, 255}},
		{"over transparent src keeps", SourceOver, px{0, 0, 0, 0}, px{200, 100, 50, 255}, px{200, 100, 50, 255}},
		{"over half alpha", SourceOver, px{128, 0, 0, 128}, px{0, 0, 255, 255}, px{128, 0, 127, 255}},
		{"atop on opaque dst", SourceAtop, px{255, 0, 0, 255}, px{0, 255, 0, 255}, px{255, 0, 0, 255}},
		{"atop on transparent dst", SourceAtop, px{255, 0, 0, 255}, px{0, 0, 0, 0}, px{0, 0, 0, 0}},
		{"atop keeps dst alpha", SourceAtop, px{255, 255, 255, 255}, px{64, 64, 64, 128}, px{128, 128, 128, 128}},
		{"multiply red tint", Multiply, px{255, 0, 0, 255}, px{200, 150, 100, 255}, px{200, 0, 0, 255}},
		{"multiply white is identity", Multiply, px{255, 255, 255, 255}, px{12, 34, 56, 255}, px{12, 34, 56, 255}},
		{"multiply black", Multiply, px{0, 0, 0, 255}, px{12, 34, 56, 255}, px{0, 0, 0, 255}},
		{"multiply onto transparent", Multiply, px{40, 50, 60, 255}, px{0, 0, 0, 0}, px{40, 50, 60, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := FuncFor(tt.mode)
			r, g, b, a := fn(tt.src[0], tt.src[1], tt.src[2], tt.src[3], tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			if got := (px{r, g, b, a}); got != tt.want {
				t.Errorf("%v(%v, %v) = %v, want %v", tt.mode, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

func TestSpan(t *testing.T) {
	dst := []byte{
		100, 100, 100, 255,
		100, 100, 100, 255,
	}
	src := []byte{
		255, 0, 0, 255,
		0, 0, 0, 0,
	}
	Span(dst, src, SourceOver, 255)
	want := []byte{255, 0, 0, 255, 100, 100, 100, 255}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("Span() = %v, want %v", dst, want)
		}
	}
}

func TestSpanAlpha(t *testing.T) {
	dst := []byte{0, 0, 0, 255}
	src := []byte{255, 255, 255, 255}
	Span(dst, src, SourceOver, 204)
	if dst[0] != 204 || dst[3] != 255 {
		t.Errorf("Span() with alpha 204 = %v, want [204 204 204 255]", dst)
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		SourceOver: "source-over",
		SourceAtop: "source-atop",
		Multiply:   "multiply",
		Mode(99):   "unknown",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

package pattern

import (
	"image/color"
	"testing"

	"github.com/gogpu/texcomp/canvas"
)

var (
	red    = color.NRGBA{R: 255, A: 255}
	green  = color.NRGBA{G: 255, A: 255}
	blue   = color.NRGBA{B: 255, A: 255}
	yellow = color.NRGBA{R: 255, G: 255, A: 255}
)

func opaque(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func TestDotsTile(t *testing.T) {
	colors := []color.NRGBA{red, green, blue, yellow}
	tile, ok := Generate(Spec{Name: Dots, Colors: colors}, 2048)
	if !ok {
		t.Fatal("Generate(dots) reported unknown pattern")
	}
	if tile.Repeat != RepeatXY {
		t.Errorf("dots repeat = %v, want RepeatXY", tile.Repeat)
	}
	if b := tile.Image.Bounds(); b.Dx() != TileSize || b.Dy() != TileSize {
		t.Fatalf("dots tile size = %v, want %dx%d", b, TileSize, TileSize)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"circle at (20,20)", 20, 20, colors[(20+20)%3]},
		{"circle at (70,20)", 70, 20, colors[(70+20)%3]},
		{"circle at (70,70)", 70, 70, colors[(70+70)%3]},
		{"background", 99, 99, colors[3]},
		{"between circles", 45, 45, colors[3]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tile.Image.RGBAAt(tt.x, tt.y); got != opaque(tt.want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCheckerboardParity(t *testing.T) {
	tile, ok := Generate(Spec{Name: Checkerboard, Colors: []color.NRGBA{red, green}}, 2048)
	if !ok {
		t.Fatal("Generate(checkerboard) reported unknown pattern")
	}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, red},
		{50, 0, green},
		{0, 50, green},
		{50, 50, red},
		{49, 49, red},
		{99, 0, green},
	}
	for _, tt := range tests {
		if got := tile.Image.RGBAAt(tt.x, tt.y); got != opaque(tt.want) {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCheckerboardCyclesColors(t *testing.T) {
	tile, _ := Generate(Spec{Name: Checkerboard, Colors: []color.NRGBA{red, green, blue}}, 2048)
	if got := tile.Image.RGBAAt(50, 50); got != opaque(blue) {
		t.Errorf("pixel (50,50) with three colours = %v, want blue", got)
	}
}

func TestIllusionisticHairlines(t *testing.T) {
	tile, ok := Generate(Spec{Name: Illusionistic, Colors: []color.NRGBA{red, green, blue}}, 2048)
	if !ok {
		t.Fatal("Generate(illusionistic) reported unknown pattern")
	}
	if got := tile.Image.RGBAAt(10, 37); got != opaque(blue) {
		t.Errorf("hairline pixel = %v, want blue", got)
	}
	// Band centres away from the wave edges alternate colours.
	if got := tile.Image.RGBAAt(5, 20); got != opaque(red) {
		t.Errorf("first band = %v, want colors[0] red", got)
	}
	if got := tile.Image.RGBAAt(5, 60); got != opaque(green) {
		t.Errorf("second band = %v, want colors[1] green", got)
	}
	if got := tile.Image.RGBAAt(5, 90); got != opaque(red) {
		t.Errorf("third band = %v, want colors[0] red", got)
	}
}

func TestStripeRecipes(t *testing.T) {
	colors := []color.NRGBA{red, green, blue, yellow}
	for _, name := range []Name{Custom1, Custom2, Custom3, Custom4} {
		t.Run(string(name), func(t *testing.T) {
			tile, ok := Generate(Spec{Name: name, Colors: colors}, 2048)
			if !ok {
				t.Fatalf("Generate(%s) reported unknown pattern", name)
			}
			if tile.Repeat != RepeatX {
				t.Errorf("repeat = %v, want RepeatX", tile.Repeat)
			}
			if got := tile.Image.Bounds().Dy(); got != 2048 {
				t.Errorf("height = %d, want full canvas height 2048", got)
			}
			for _, s := range stripeRecipes[name] {
				y := int(s.y + s.thickness/2)
				if got := tile.Image.RGBAAt(50, y); got != opaque(colors[s.color]) {
					t.Errorf("stripe at y=%d = %v, want %v", y, got, colors[s.color])
				}
			}
		})
	}

	tile, _ := Generate(Spec{Name: Custom1, Colors: colors}, 2048)
	if got := tile.Image.RGBAAt(0, 10); got != opaque(red) {
		t.Errorf("custom1 background = %v, want red", got)
	}
}

func TestGenerateNoop(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		height int
	}{
		{"unknown name", Spec{Name: "zigzag", Colors: []color.NRGBA{red}}, 100},
		{"no colours", Spec{Name: Dots}, 100},
		{"stripes without height", Spec{Name: Custom2, Colors: []color.NRGBA{red}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tile, ok := Generate(tt.spec, tt.height); ok || tile != nil {
				t.Errorf("Generate() = %v, %v; want nil, false", tile, ok)
			}
		})
	}
}

func TestColorsWrap(t *testing.T) {
	tile, ok := Generate(Spec{Name: Dots, Colors: []color.NRGBA{red, green}}, 100)
	if !ok {
		t.Fatal("Generate(dots) with two colours failed")
	}
	// colors[3] wraps to colors[1].
	if got := tile.Image.RGBAAt(99, 99); got != opaque(green) {
		t.Errorf("background = %v, want green", got)
	}
}

func TestFillRepeatsTile(t *testing.T) {
	tile, _ := Generate(Spec{Name: Checkerboard, Colors: []color.NRGBA{red, green}}, 250)
	c := canvas.New(250, 250)
	Fill(c, tile)

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{100, 0, red},
		{150, 0, green},
		{249, 249, red},
		{0, 150, green},
	}
	for _, tt := range tests {
		if got := c.Image().RGBAAt(tt.x, tt.y); got != opaque(tt.want) {
			t.Errorf("filled pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFillRepeatX(t *testing.T) {
	colors := []color.NRGBA{red, green, blue}
	tile, _ := Generate(Spec{Name: Custom1, Colors: colors}, 300)
	c := canvas.New(250, 300)
	Fill(c, tile)
	if got := c.Image().RGBAAt(230, 140); got != opaque(green) {
		t.Errorf("repeated stripe pixel = %v, want green", got)
	}
	if got := c.Image().RGBAAt(230, 299); got != opaque(red) {
		t.Errorf("bottom row = %v, want red", got)
	}
}

func TestNames(t *testing.T) {
	for _, n := range Names() {
		if _, ok := Generate(Spec{Name: n, Colors: []color.NRGBA{red}}, 100); !ok {
			t.Errorf("Names() lists %q but Generate rejects it", n)
		}
	}
}

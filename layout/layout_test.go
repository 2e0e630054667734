package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectResolve(t *testing.T) {
	tests := []struct {
		name       string
		r          Rect
		wantX      float64
		wantY      float64
		wantW      float64
		wantH      float64
		canvasW, h int
	}{
		{"start", Rect{X: 10, Y: 20, W: 30, H: 40}, 10, 20, 30, 40, 100, 100},
		{"end x", Rect{X: 10, Y: 20, W: 30, H: 40, AnchorX: End}, 60, 20, 30, 40, 100, 100},
		{"end y", Rect{X: 10, Y: 20, W: 30, H: 40, AnchorY: End}, 10, 140, 30, 40, 100, 200},
		{"center", Rect{X: 5, Y: -5, W: 20, H: 10, AnchorX: Center, AnchorY: Center}, 45, 40, 20, 10, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.r.Resolve(tt.canvasW, tt.h)
			if x != tt.wantX || y != tt.wantY || w != tt.wantW || h != tt.wantH {
				t.Errorf("Resolve() = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
					x, y, w, h, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestGridPoints(t *testing.T) {
	g := Grid{X: 10, Y: 5, ColStep: 100, RowStep: 50, Stagger: 25, Cols: 3, Rows: 2}
	want := []Point{
		{10, 5}, {110, 5}, {210, 5},
		{35, 55}, {135, 55}, {235, 55},
	}
	if diff := cmp.Diff(want, g.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
}

func TestGridPointsEmpty(t *testing.T) {
	if pts := (Grid{Cols: 0, Rows: 4}).Points(); pts != nil {
		t.Errorf("Points() with no columns = %v, want nil", pts)
	}
}

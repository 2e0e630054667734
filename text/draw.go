package text

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"
)

// Drawer is the canvas surface text is drawn on. *canvas.Canvas implements it.
type Drawer interface {
	Width() int
	Height() int
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)
	TransformPoint(x, y float64) (float64, float64)
	FillText(face font.Face, s string, x, y float64, col color.Color)
}

// Draw fits content to the placement's width budget and draws every copy
// of it. It returns the number of copies drawn; an unknown placement or
// empty content draws nothing.
func Draw(dst Drawer, fonts *Fonts, content string, col color.Color, p Placement, family string, table Table) int {
	frame, ok := table[p]
	if !ok || fonts == nil {
		return 0
	}
	content = norm.NFC.String(content)
	if strings.TrimSpace(content) == "" {
		return 0
	}

	w, h := float64(dst.Width()), float64(dst.Height())
	size, _ := FitToWidth(fonts.Measurer(family, content), w*frame.WidthFraction, frame.StartSize)
	face := fonts.Face(family, size)
	if face == nil {
		return 0
	}
	defer face.Close()

	dst.Save()
	defer dst.Restore()
	dst.Translate(w/2, h/2)
	dst.Rotate(frame.Rotation * math.Pi / 180)
	if frame.MirrorX {
		dst.Scale(-1, 1)
	}

	points, grid := frame.anchors()
	n := 0
	for _, pt := range points {
		dst.FillText(face, content, pt.X, pt.Y, col)
		n++
	}
	for _, pt := range grid {
		x, y := dst.TransformPoint(pt.X, pt.Y)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		dst.FillText(face, content, pt.X, pt.Y, col)
		n++
	}
	return n
}

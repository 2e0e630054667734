// Package canvas provides the offscreen raster surface the compositing
// pipeline draws on.
//
// A Canvas is a premultiplied RGBA buffer with an HTML-canvas-like state
// model: an affine transform stack (Save/Restore), a compositing mode, a
// global alpha and a blur filter. Every draw call is rasterised into a
// scratch layer covering only the affected pixels and then composited onto
// the buffer with the current mode, so the supported modes (source-over,
// source-atop, multiply) behave exactly as their canvas counterparts.
//
// Canvas is not safe for concurrent use.
package canvas

import (
	"image"
	"math"

	"github.com/gogpu/texcomp/internal/blend"
)

// BlendMode selects how a draw is combined with the pixels already on the canvas.
type BlendMode = blend.Mode

// Supported blend modes.
const (
	SourceOver = blend.SourceOver
	SourceAtop = blend.SourceAtop
	Multiply   = blend.Multiply
)

// state is the drawing state captured by Save and restored by Restore.
type state struct {
	matrix Matrix
	mode   BlendMode
	alpha  float64
	blur   float64
}

func defaultState() state {
	return state{matrix: Identity(), mode: SourceOver, alpha: 1}
}

// Canvas is an offscreen drawing surface.
type Canvas struct {
	img   *image.RGBA
	state state
	stack []state
}

// New creates a transparent canvas with the given dimensions.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		state: defaultState(),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

// Image returns the backing premultiplied buffer. The buffer is not copied;
// callers that keep drawing must clone it first.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear resets every pixel to transparent black. The drawing state is kept.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// Save pushes the current drawing state onto the stack.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved drawing state.
// Restore without a matching Save resets to the default state.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.state = defaultState()
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin of the local coordinate system.
func (c *Canvas) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Translate(x, y))
}

// Rotate rotates the local coordinate system (angle in radians).
func (c *Canvas) Rotate(angle float64) {
	c.state.matrix = c.state.matrix.Multiply(Rotate(angle))
}

// Scale scales the local coordinate system. Negative factors mirror it.
func (c *Canvas) Scale(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(Scale(x, y))
}

// Matrix returns the current local-to-device transform.
func (c *Canvas) Matrix() Matrix {
	return c.state.matrix
}

// TransformPoint maps a local point to device coordinates.
func (c *Canvas) TransformPoint(x, y float64) (float64, float64) {
	p := c.state.matrix.TransformPoint(Point{X: x, Y: y})
	return p.X, p.Y
}

// SetGlobalAlpha sets the opacity applied to every following draw.
// Values are clamped to [0, 1].
func (c *Canvas) SetGlobalAlpha(alpha float64) {
	c.state.alpha = math.Max(0, math.Min(1, alpha))
}

// SetBlur sets the Gaussian blur radius (standard deviation in pixels)
// applied to every following draw. Zero disables the filter.
func (c *Canvas) SetBlur(sigma float64) {
	c.state.blur = math.Max(0, sigma)
}

// BlendMode returns the current compositing mode.
func (c *Canvas) BlendMode() BlendMode {
	return c.state.mode
}

// WithBlend runs fn with the compositing mode set to mode and restores the
// previous mode afterwards, even if fn panics.
func (c *Canvas) WithBlend(mode BlendMode, fn func()) {
	prev := c.state.mode
	c.state.mode = mode
	defer func() { c.state.mode = prev }()
	fn()
}

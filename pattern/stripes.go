package pattern

import (
	"image"

	"github.com/gogpu/texcomp/canvas"
)

// stripeWidth is the width of a stripe tile; stripes repeat along x only.
const stripeWidth = 100

// stripe is one horizontal band of a stripe recipe.
type stripe struct {
	y, thickness float64
	color        int
}

// stripeRecipes are the fixed custom stripe sets. Offsets are literal
// pixel rows of the reference sock texture, not derived values.
var stripeRecipes = map[Name][]stripe{
	Custom1: {
		{y: 120, thickness: 40, color: 1},
		{y: 200, thickness: 40, color: 2},
		{y: 1700, thickness: 60, color: 1},
	},
	Custom2: {
		{y: 0, thickness: 80, color: 1},
		{y: 160, thickness: 20, color: 2},
		{y: 200, thickness: 20, color: 2},
		{y: 240, thickness: 20, color: 2},
		{y: 1900, thickness: 80, color: 1},
	},
	Custom3: {
		{y: 300, thickness: 120, color: 1},
		{y: 460, thickness: 30, color: 2},
		{y: 520, thickness: 30, color: 3},
		{y: 1200, thickness: 120, color: 1},
	},
	Custom4: {
		{y: 60, thickness: 10, color: 1},
		{y: 90, thickness: 10, color: 1},
		{y: 120, thickness: 10, color: 1},
		{y: 150, thickness: 10, color: 2},
		{y: 180, thickness: 10, color: 2},
		{y: 210, thickness: 10, color: 2},
		{y: 1600, thickness: 200, color: 3},
	},
}

func striped(spec Spec, stripes []stripe, height int) *image.RGBA {
	c := canvas.New(stripeWidth, height)
	c.FillRect(0, 0, stripeWidth, float64(height), spec.at(0))
	for _, s := range stripes {
		c.FillRect(0, s.y, stripeWidth, s.thickness, spec.at(s.color))
	}
	return c.Image()
}

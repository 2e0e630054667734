package texcomp

import (
	"image"
	"image/color"

	"github.com/gogpu/texcomp/pattern"
	"github.com/gogpu/texcomp/text"
	"github.com/gogpu/texcomp/zone"
)

// Decoration is the base decoration multiplied over the base texture.
// It is implemented only by Tint, Pattern and Upload, so a request can
// never carry two of them.
type Decoration interface {
	decoration()
}

// Tint multiplies the base texture by a flat colour.
type Tint struct {
	Color color.NRGBA
}

// Pattern multiplies the base texture by a generated pattern.
type Pattern struct {
	Spec pattern.Spec
}

// Upload multiplies the base texture by a customer image stretched to the
// canvas.
type Upload struct {
	Image image.Image
}

func (Tint) decoration()    {}
func (Pattern) decoration() {}
func (Upload) decoration()  {}

// Logo places an image at a zone.
type Logo struct {
	Image image.Image
	Zone  zone.Zone
}

// Text annotates the texture with a short string.
type Text struct {
	Content   string
	Color     color.NRGBA
	Placement text.Placement
	Font      string // family name; empty selects text.DefaultFamily
}

// Request is the sole input of a compositing call.
type Request struct {
	Base       image.Image
	Decoration Decoration // nil for none
	Logo       *Logo
	Text       *Text
}

// DefaultRecipe returns the recipe matching the request's decoration.
func (r Request) DefaultRecipe() Recipe {
	switch r.Decoration.(type) {
	case Pattern, Upload:
		return RecipePattern
	default:
		return RecipeColor
	}
}

package texcomp

import (
	"image"
	"image/color"

	"github.com/gogpu/texcomp/pattern"
)

// Selection holds a customer's current choices the way a customizer UI
// does. Setting a decoration replaces whichever decoration was set before.
// Each setter also records the recipe its change renders with.
//
// Selection is not safe for concurrent use.
type Selection struct {
	decoration Decoration
	logo       *Logo
	text       *Text
	recipe     Recipe
}

// SetTint selects a flat tint decoration.
func (s *Selection) SetTint(c color.NRGBA) {
	s.decoration = Tint{Color: c}
	s.recipe = RecipeColor
}

// SetPattern selects a pattern decoration.
func (s *Selection) SetPattern(spec pattern.Spec) {
	spec.Colors = append([]color.NRGBA(nil), spec.Colors...)
	s.decoration = Pattern{Spec: spec}
	s.recipe = RecipePattern
}

// SetUpload selects an uploaded image decoration.
func (s *Selection) SetUpload(img image.Image) {
	s.decoration = Upload{Image: img}
	s.recipe = RecipePattern
}

// ClearDecoration removes the decoration.
func (s *Selection) ClearDecoration() {
	s.decoration = nil
	s.recipe = RecipeColor
}

// SetLogo places a logo. Logo changes render with RecipeLogo.
func (s *Selection) SetLogo(l Logo) {
	s.logo = &l
	s.recipe = RecipeLogo
}

// ClearLogo removes the logo.
func (s *Selection) ClearLogo() {
	s.logo = nil
	s.recipe = RecipeLogo
}

// SetText sets the text annotation. Text changes keep the recipe of the
// current decoration.
func (s *Selection) SetText(t Text) {
	s.text = &t
	s.recipe = s.decorationRecipe()
}

// ClearText removes the text annotation.
func (s *Selection) ClearText() {
	s.text = nil
	s.recipe = s.decorationRecipe()
}

func (s *Selection) decorationRecipe() Recipe {
	return Request{Decoration: s.decoration}.DefaultRecipe()
}

// Decoration returns the active decoration, or nil.
func (s *Selection) Decoration() Decoration {
	return s.decoration
}

// Recipe returns the recipe of the last change.
func (s *Selection) Recipe() Recipe {
	return s.recipe
}

// Request returns the request for the current selection over base.
// The logo and text are copied so later changes do not alias it.
func (s *Selection) Request(base image.Image) Request {
	req := Request{Base: base, Decoration: s.decoration}
	if s.logo != nil {
		l := *s.logo
		req.Logo = &l
	}
	if s.text != nil {
		t := *s.text
		req.Text = &t
	}
	return req
}

package texcomp

import "fmt"

// Recipe selects the layer order of a compositing call.
type Recipe uint8

const (
	// RecipeColor renders after a tint change: decoration, text, logo.
	RecipeColor Recipe = iota
	// RecipePattern renders after a pattern or upload change:
	// decoration, text, logo.
	RecipePattern
	// RecipeLogo renders after a logo change: decoration, logo, text.
	RecipeLogo
)

var recipeNames = [...]string{
	RecipeColor:   "color",
	RecipePattern: "pattern",
	RecipeLogo:    "logo",
}

func (r Recipe) String() string {
	if int(r) < len(recipeNames) {
		return recipeNames[r]
	}
	return fmt.Sprintf("Recipe(%d)", r)
}

// ParseRecipe parses a recipe name as returned by Recipe.String.
func ParseRecipe(s string) (Recipe, error) {
	for i, name := range recipeNames {
		if name == s {
			return Recipe(i), nil
		}
	}
	return 0, fmt.Errorf("texcomp: unknown recipe %q", s)
}

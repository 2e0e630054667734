package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFamily is returned when a font is registered without a family name.
	ErrEmptyFamily = errors.New("text: empty font family")
)

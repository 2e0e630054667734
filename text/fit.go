package text

// MinFontSize is the floor of the font-size search.
const MinFontSize = 10

// FitToWidth shrinks the font size one pixel at a time, starting at
// startSize, until the measured width fits maxWidth or the size reaches
// MinFontSize. It returns the chosen size and the width measured at it.
//
// The search is linear, so the result is the largest whole-pixel step
// below startSize that fits.
func FitToWidth(measure func(size float64) float64, maxWidth, startSize float64) (size, width float64) {
	size = startSize
	width = measure(size)
	for width > maxWidth && size > MinFontSize {
		size--
		width = measure(size)
	}
	return size, width
}

package blend

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
// Exact for a == 255 or b == 255, which keeps opaque tints lossless.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two byte values with clamping to 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// Package text lays out short text annotations on a product texture.
//
// The pipeline has three steps:
//
//   - Fonts: a registry of parsed font families (Go fonts built in, custom
//     TTF/OTF files registered at startup)
//   - FitToWidth: a linear font-size search that shrinks the run until it
//     fits a width budget, never below MinFontSize
//   - Draw: places the fitted run at one of five placements, each a rotated
//     and mirrored coordinate frame plus a list of anchor points
//
// # Example usage
//
//	fonts := text.NewFonts()
//	n := text.Draw(dc, fonts, "TEAM", color.NRGBA{A: 255}, text.Calf, "Go Bold", text.DefaultTable())
//
// Draw saves and restores the drawer state around every placement, so it
// never leaks transforms into later layers. Blend modes are the caller's
// concern.
package text

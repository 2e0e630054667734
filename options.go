package texcomp

import (
	"github.com/gogpu/texcomp/text"
	"github.com/gogpu/texcomp/zone"
)

// Option configures a Compositor during creation.
//
// Example:
//
//	// Default geometry and the built-in Go fonts
//	c := texcomp.New()
//
//	// Brand fonts and geometry for another base texture
//	c := texcomp.New(texcomp.WithFonts(fonts), texcomp.WithLayout(layout))
type Option func(*options)

type options struct {
	fonts         *text.Fonts
	layout        Layout
	tileCacheSize int
}

// DefaultTileCacheSize is the number of generated pattern tiles a
// Compositor keeps by default.
const DefaultTileCacheSize = 32

func defaultOptions() options {
	return options{layout: DefaultLayout(), tileCacheSize: DefaultTileCacheSize}
}

// WithFonts sets the font registry text is drawn with.
// By default a registry of the built-in Go fonts is used.
func WithFonts(f *text.Fonts) Option {
	return func(o *options) {
		o.fonts = f
	}
}

// WithZoneTable replaces the logo zone geometry.
func WithZoneTable(t zone.Table) Option {
	return func(o *options) {
		o.layout.Zones = t
	}
}

// WithTextTable replaces the text placement geometry.
func WithTextTable(t text.Table) Option {
	return func(o *options) {
		o.layout.Text = t
	}
}

// WithLayout replaces both geometry tables, typically with the result of
// LoadLayout.
func WithLayout(l Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithTileCacheSize sets how many generated pattern tiles are kept between
// renders. Stripe tiles span the full canvas height, so each costs
// 400 bytes per canvas row.
func WithTileCacheSize(n int) Option {
	return func(o *options) {
		o.tileCacheSize = n
	}
}

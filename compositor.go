package texcomp

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/texcomp/canvas"
	"github.com/gogpu/texcomp/internal/cache"
	"github.com/gogpu/texcomp/pattern"
	"github.com/gogpu/texcomp/text"
	"github.com/gogpu/texcomp/zone"
)

// ErrNoBase is returned when a request has no base texture or an empty one.
var ErrNoBase = errors.New("texcomp: base texture missing or empty")

// Compositor renders requests into output textures.
//
// A Compositor is safe for concurrent use: its tables are never mutated,
// cached pattern tiles are only read and every call renders onto canvases
// of its own.
type Compositor struct {
	fonts *text.Fonts
	zones zone.Table
	text  text.Table
	tiles *cache.LRU[string, *pattern.Tile]
}

// New creates a Compositor.
func New(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = text.NewFonts()
	}
	return &Compositor{
		fonts: o.fonts,
		zones: o.layout.Zones,
		text:  o.layout.Text,
		tiles: cache.New[string, *pattern.Tile](o.tileCacheSize),
	}
}

// Composite renders req with the recipe matching its decoration.
func (c *Compositor) Composite(req Request) (*image.RGBA, error) {
	return c.Render(req.DefaultRecipe(), req)
}

// Render renders req with an explicit recipe. The result has the size of
// the base texture and is freshly allocated. Absent or unknown layers are
// skipped; the only error is ErrNoBase.
func (c *Compositor) Render(recipe Recipe, req Request) (*image.RGBA, error) {
	if req.Base == nil || req.Base.Bounds().Empty() {
		return nil, ErrNoBase
	}
	b := req.Base.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	log := Logger().With(slog.String("recipe", recipe.String()))

	dc := canvas.New(b.Dx(), b.Dy())
	dc.DrawImage(req.Base, 0, 0, w, h)

	decorated := c.decorate(dc, req.Decoration, log)
	switch recipe {
	case RecipeLogo:
		c.drawLogo(dc, req.Logo, log)
		c.drawText(dc, req.Text, log)
	default:
		if decorated {
			c.drawText(dc, req.Text, log)
		} else if req.Text != nil {
			log.Debug("texcomp: text skipped without decoration")
		}
		c.drawLogo(dc, req.Logo, log)
	}
	return dc.Image(), nil
}

// decorate multiplies the decoration over the canvas and reports whether
// anything was applied.
func (c *Compositor) decorate(dc *canvas.Canvas, d Decoration, log *slog.Logger) bool {
	w, h := float64(dc.Width()), float64(dc.Height())
	switch d := d.(type) {
	case Tint:
		dc.WithBlend(canvas.Multiply, func() {
			dc.FillRect(0, 0, w, h, d.Color)
		})
		log.Debug("texcomp: tint applied", slog.Any("color", d.Color))
		return true
	case Pattern:
		tile, ok := c.tile(d.Spec, dc.Height())
		if !ok {
			log.Warn("texcomp: pattern skipped",
				slog.String("pattern", string(d.Spec.Name)),
				slog.Int("colors", len(d.Spec.Colors)))
			return false
		}
		aux := canvas.New(dc.Width(), dc.Height())
		pattern.Fill(aux, tile)
		multiplyLayer(dc, aux.Image())
		log.Debug("texcomp: pattern applied",
			slog.String("pattern", string(d.Spec.Name)),
			slog.String("zone_hint", string(d.Spec.ZoneHint)))
		return true
	case Upload:
		if d.Image == nil || d.Image.Bounds().Empty() {
			log.Warn("texcomp: empty upload skipped")
			return false
		}
		aux := canvas.New(dc.Width(), dc.Height())
		aux.DrawImage(d.Image, 0, 0, w, h)
		multiplyLayer(dc, aux.Image())
		log.Debug("texcomp: upload applied")
		return true
	default:
		return false
	}
}

// tile returns the generated tile for spec, from the cache when possible.
func (c *Compositor) tile(spec pattern.Spec, height int) (*pattern.Tile, bool) {
	key := fmt.Sprintf("%s|%d|%v", spec.Name, height, spec.Colors)
	return c.tiles.GetOrCreate(key, func() (*pattern.Tile, bool) {
		return pattern.Generate(spec, height)
	})
}

func multiplyLayer(dc *canvas.Canvas, layer image.Image) {
	dc.WithBlend(canvas.Multiply, func() {
		dc.DrawImage(layer, 0, 0, float64(dc.Width()), float64(dc.Height()))
	})
}

func (c *Compositor) drawText(dc *canvas.Canvas, t *Text, log *slog.Logger) {
	if t == nil {
		return
	}
	var n int
	dc.WithBlend(canvas.SourceAtop, func() {
		n = text.Draw(dc, c.fonts, t.Content, t.Color, t.Placement, t.Font, c.text)
	})
	if _, ok := c.text[t.Placement]; !ok {
		log.Warn("texcomp: unknown text placement", slog.String("placement", string(t.Placement)))
		return
	}
	log.Debug("texcomp: text drawn",
		slog.String("placement", string(t.Placement)),
		slog.String("font", t.Font),
		slog.Int("copies", n))
}

func (c *Compositor) drawLogo(dc *canvas.Canvas, l *Logo, log *slog.Logger) {
	if l == nil {
		return
	}
	if _, ok := c.zones[l.Zone]; !ok {
		log.Warn("texcomp: unknown logo zone", slog.String("zone", string(l.Zone)))
		return
	}
	n := zone.Place(dc, l.Image, l.Zone, c.zones)
	log.Debug("texcomp: logo placed", slog.String("zone", string(l.Zone)), slog.Int("draws", n))
}

// Package wire decodes JSON composite requests.
//
// A document names the decoration, logo and text of one render. Images are
// referenced by name and resolved through a Loader, so the CLI can read
// files next to the document while the server reads multipart uploads.
//
//	{
//	  "recipe": "logo",
//	  "pattern": {"name": "dots", "colors": ["navy", "#fc0", "#ffffff", "tomato"]},
//	  "logo": {"qr": "https://example.com/team", "zone": "calf"},
//	  "text": {"content": "TEAM", "color": "#000", "placement": "Calf+Bottom", "font": "Go Bold"}
//	}
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/texcomp"
	"github.com/gogpu/texcomp/internal/imageio"
	"github.com/gogpu/texcomp/pattern"
	"github.com/gogpu/texcomp/text"
	"github.com/gogpu/texcomp/zone"
)

// DefaultQRSize is the edge length of generated QR logos.
const DefaultQRSize = 512

// ErrMultipleDecorations is returned when a document sets more than one of
// tint, pattern and upload.
var ErrMultipleDecorations = errors.New("wire: at most one of tint, pattern and upload may be set")

// Document is the JSON form of a composite request.
type Document struct {
	Recipe  string      `json:"recipe,omitempty"`
	Tint    string      `json:"tint,omitempty"`
	Pattern *PatternDoc `json:"pattern,omitempty"`
	Upload  string      `json:"upload,omitempty"`
	Logo    *LogoDoc    `json:"logo,omitempty"`
	Text    *TextDoc    `json:"text,omitempty"`
}

// PatternDoc selects a generated pattern.
type PatternDoc struct {
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	ZoneHint string   `json:"zone_hint,omitempty"`
}

// LogoDoc places a logo. Exactly one of Image and QR is set.
type LogoDoc struct {
	Image  string `json:"image,omitempty"`
	QR     string `json:"qr,omitempty"`
	QRSize int    `json:"qr_size,omitempty"`
	Zone   string `json:"zone"`
}

// TextDoc is a text annotation. Color defaults to black.
type TextDoc struct {
	Content   string `json:"content"`
	Color     string `json:"color,omitempty"`
	Placement string `json:"placement"`
	Font      string `json:"font,omitempty"`
}

// FieldError reports an invalid document field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("wire: field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Loader resolves an image reference of a document.
type Loader func(ref string) (image.Image, error)

// Decode reads one document. Unknown fields are rejected.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("wire: decode request: %w", err)
	}
	return doc, nil
}

// Build turns doc into a request over base. The recipe is doc.Recipe when
// set, otherwise the one matching the decoration.
//
// Zone, placement and pattern names are passed through unchecked; the
// compositor skips unknown ones.
func Build(doc Document, base image.Image, load Loader) (texcomp.Request, texcomp.Recipe, error) {
	req := texcomp.Request{Base: base}

	d, err := doc.decoration(load)
	if err != nil {
		return texcomp.Request{}, 0, err
	}
	req.Decoration = d

	if doc.Logo != nil {
		logo, err := doc.Logo.build(load)
		if err != nil {
			return texcomp.Request{}, 0, err
		}
		req.Logo = logo
	}
	if doc.Text != nil {
		t, err := doc.Text.build()
		if err != nil {
			return texcomp.Request{}, 0, err
		}
		req.Text = t
	}

	recipe := req.DefaultRecipe()
	if doc.Recipe != "" {
		if recipe, err = texcomp.ParseRecipe(doc.Recipe); err != nil {
			return texcomp.Request{}, 0, &FieldError{Field: "recipe", Err: err}
		}
	}
	return req, recipe, nil
}

func (doc Document) decoration(load Loader) (texcomp.Decoration, error) {
	set := 0
	for _, ok := range []bool{doc.Tint != "", doc.Pattern != nil, doc.Upload != ""} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return nil, ErrMultipleDecorations
	}

	switch {
	case doc.Tint != "":
		c, err := ParseColor(doc.Tint)
		if err != nil {
			return nil, &FieldError{Field: "tint", Err: err}
		}
		return texcomp.Tint{Color: c}, nil
	case doc.Pattern != nil:
		spec := pattern.Spec{
			Name:     pattern.Name(doc.Pattern.Name),
			Colors:   make([]color.NRGBA, 0, len(doc.Pattern.Colors)),
			ZoneHint: zone.Zone(doc.Pattern.ZoneHint),
		}
		for i, s := range doc.Pattern.Colors {
			c, err := ParseColor(s)
			if err != nil {
				return nil, &FieldError{Field: fmt.Sprintf("pattern.colors[%d]", i), Err: err}
			}
			spec.Colors = append(spec.Colors, c)
		}
		return texcomp.Pattern{Spec: spec}, nil
	case doc.Upload != "":
		img, err := resolve(load, doc.Upload)
		if err != nil {
			return nil, &FieldError{Field: "upload", Err: err}
		}
		return texcomp.Upload{Image: img}, nil
	}
	return nil, nil
}

func (l *LogoDoc) build(load Loader) (*texcomp.Logo, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case l.Image != "" && l.QR != "":
		return nil, &FieldError{Field: "logo", Err: errors.New("image and qr are exclusive")}
	case l.Image != "":
		if img, err = resolve(load, l.Image); err != nil {
			return nil, &FieldError{Field: "logo.image", Err: err}
		}
	case l.QR != "":
		size := l.QRSize
		if size <= 0 {
			size = DefaultQRSize
		}
		if img, err = imageio.QR(l.QR, size); err != nil {
			return nil, &FieldError{Field: "logo.qr", Err: err}
		}
	default:
		return nil, &FieldError{Field: "logo", Err: errors.New("image or qr required")}
	}
	return &texcomp.Logo{Image: img, Zone: zone.Zone(l.Zone)}, nil
}

func (t *TextDoc) build() (*texcomp.Text, error) {
	c := color.NRGBA{A: 255}
	if t.Color != "" {
		var err error
		if c, err = ParseColor(t.Color); err != nil {
			return nil, &FieldError{Field: "text.color", Err: err}
		}
	}
	return &texcomp.Text{
		Content:   t.Content,
		Color:     c,
		Placement: text.Placement(t.Placement),
		Font:      t.Font,
	}, nil
}

func resolve(load Loader, ref string) (image.Image, error) {
	if load == nil {
		return nil, fmt.Errorf("no image source for %q", ref)
	}
	return load(ref)
}

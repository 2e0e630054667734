package text

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/text/cases"

	"github.com/gogpu/texcomp/canvas"
)

// DefaultFamily is used when a requested family is not registered.
const DefaultFamily = "Go"

var builtinFamilies = []struct {
	name string
	ttf  []byte
}{
	{DefaultFamily, goregular.TTF},
	{"Go Bold", gobold.TTF},
	{"Go Italic", goitalic.TTF},
	{"Go Bold Italic", gobolditalic.TTF},
	{"Go Medium", gomedium.TTF},
	{"Go Mono", gomono.TTF},
	{"Go Mono Bold", gomonobold.TTF},
	{"Go Smallcaps", gosmallcaps.TTF},
}

// Fonts is a registry of font families.
//
// Fonts is safe for concurrent use. Faces returned by Face are not, so each
// drawing call creates its own.
type Fonts struct {
	mu    sync.RWMutex
	fonts map[string]*opentype.Font
	names map[string]string
}

// NewFonts returns a registry holding the built-in Go font families.
func NewFonts() *Fonts {
	f := &Fonts{
		fonts: make(map[string]*opentype.Font),
		names: make(map[string]string),
	}
	for _, b := range builtinFamilies {
		if err := f.Register(b.name, b.ttf); err != nil {
			panic(err) // embedded fonts always parse
		}
	}
	return f
}

// foldFamily normalises a family name for lookup.
func foldFamily(family string) string {
	return cases.Fold().String(strings.TrimSpace(family))
}

// Register parses TTF or OTF data and makes it available under family,
// replacing any previous font of that family. Family names match
// case-insensitively.
func (f *Fonts) Register(family string, data []byte) error {
	if strings.TrimSpace(family) == "" {
		return ErrEmptyFamily
	}
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: parse font %q: %w", family, err)
	}
	key := foldFamily(family)
	f.mu.Lock()
	f.fonts[key] = parsed
	f.names[key] = strings.TrimSpace(family)
	f.mu.Unlock()
	return nil
}

// LoadDir registers every .ttf and .otf file in dir under its file name
// without extension. It returns the number of fonts registered.
func (f *Fonts) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("text: read font dir: %w", err)
	}
	n := 0
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return n, fmt.Errorf("text: read font: %w", err)
		}
		if err := f.Register(strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())), data); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Families returns the registered family names, sorted.
func (f *Fonts) Families() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.names))
	for _, name := range f.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Has reports whether family is registered.
func (f *Fonts) Has(family string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.fonts[foldFamily(family)]
	return ok
}

func (f *Fonts) lookup(family string) *opentype.Font {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if fnt, ok := f.fonts[foldFamily(family)]; ok {
		return fnt
	}
	return f.fonts[foldFamily(DefaultFamily)]
}

// Face returns a new face of family at size pixels. Unknown families fall
// back to DefaultFamily.
func (f *Fonts) Face(family string, size float64) font.Face {
	fnt := f.lookup(family)
	if fnt == nil {
		return nil
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	return face
}

// Measurer returns a function measuring s in family at a given size.
func (f *Fonts) Measurer(family, s string) func(size float64) float64 {
	return func(size float64) float64 {
		face := f.Face(family, size)
		if face == nil {
			return 0
		}
		defer face.Close()
		return canvas.MeasureText(face, s)
	}
}

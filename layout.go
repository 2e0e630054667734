package texcomp

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/texcomp/text"
	"github.com/gogpu/texcomp/zone"
)

// Layout bundles the geometry tables of one base texture.
type Layout struct {
	Zones zone.Table `toml:"zones"`
	Text  text.Table `toml:"text"`
}

// DefaultLayout returns the geometry of the 2048×2048 sock texture.
func DefaultLayout() Layout {
	return Layout{
		Zones: zone.DefaultTable(),
		Text:  text.DefaultTable(),
	}
}

// LoadLayout reads a TOML layout file. Zones and placements the file does
// not mention keep their default geometry; unknown keys are an error so
// typos do not silently fall back.
func LoadLayout(path string) (Layout, error) {
	var l Layout
	md, err := toml.DecodeFile(path, &l)
	if err != nil {
		return Layout{}, fmt.Errorf("texcomp: load layout: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Layout{}, fmt.Errorf("texcomp: layout %s: unknown keys %v", path, undecoded)
	}

	def := DefaultLayout()
	if l.Zones == nil {
		l.Zones = zone.Table{}
	}
	for z, spec := range def.Zones {
		if _, ok := l.Zones[z]; !ok {
			l.Zones[z] = spec
		}
	}
	if l.Text == nil {
		l.Text = text.Table{}
	}
	for p, frame := range def.Text {
		if _, ok := l.Text[p]; !ok {
			l.Text[p] = frame
		}
	}
	return l, nil
}

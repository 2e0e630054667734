// Package texcomp flattens a product base texture and the customer's
// selections into a single output texture.
//
// # Overview
//
// A [Request] carries the base texture plus at most one [Decoration]
// (a [Tint], a [Pattern] or an [Upload]), an optional [Logo] and an
// optional [Text]. The [Compositor] replays the request onto a fresh
// canvas every call. No layer state carries over between calls and the base
// texture is never mutated; only generated pattern tiles are reused, from a
// bounded cache (see [WithTileCacheSize]).
//
// # Quick Start
//
//	base, _ := imageio.DecodeFile("sock.png")
//	c := texcomp.New()
//	out, err := c.Composite(texcomp.Request{
//	    Base:       base,
//	    Decoration: texcomp.Tint{Color: color.NRGBA{R: 255, A: 255}},
//	    Text:       &texcomp.Text{Content: "TEAM", Placement: text.Calf},
//	})
//
// # Recipes
//
// The layer order depends on which customer action triggered the render:
//
//   - [RecipeColor] and [RecipePattern]: base, decoration (multiply),
//     text (source-atop, only when a decoration was applied), logo
//   - [RecipeLogo]: base, decoration, logo, text (source-atop)
//
// The asymmetry is kept on purpose so existing previews render the same.
// [Selection] tracks the recipe of the last action for UI-style callers.
//
// # Geometry
//
// Logo zones and text placements are lookup tables ([zone.Table] and
// [text.Table]) tuned to one base texture. Load replacements from TOML with
// [LoadLayout] and pass them with [WithLayout].
package texcomp

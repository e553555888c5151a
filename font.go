/*
Package plotfont maps logical font names to font files and applies them to
plot style parameters.

A logical font name is a human-chosen label like "Futura ND Book". The
Resolver translates such a label to a verified font file, registers the
file with a font cache, and applies the family identifier the font itself
carries to a style-parameter store (package plotconf), so that all
subsequent plots render with that font.

Typical usage:

	r := plotfont.New("", "")
	family, err := r.SetFont("Futura ND Book")

For per-label overrides without touching the global default, use Props:

	en, err := r.Props("Futura ND Book")
	jp, err := r.Props("Hiragino")

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package plotfont

import (
	"github.com/npillmayer/plotfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plotfont'
func tracer() tracing.Trace {
	return tracing.Select("plotfont")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont = fontload.ScalableFont

// LoadFont loads an OpenType font (TTF, OTF or TTC) from a file.
func LoadFont(fontfile string) (*ScalableFont, error) {
	return fontload.LoadFont(fontfile)
}

// ParseFont loads an OpenType font from memory. TrueType collections are
// accepted; the first font of the collection is used.
func ParseFont(fbytes []byte) (*ScalableFont, error) {
	return fontload.ParseFont(fbytes)
}

// FamilyName returns the family identifier a font file carries in its own
// metadata. This is the string a font cache derives on registration and
// the string style parameters refer to.
func FamilyName(f *ScalableFont) string {
	return fontload.FamilyName(f)
}

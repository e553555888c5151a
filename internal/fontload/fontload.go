// Package fontload reads scalable font files and answers metadata queries
// needed for font registration, most importantly the family name a font
// carries in its own `name` table.
package fontload

import (
	"os"

	"github.com/npillmayer/plotfont/internal/sfntname"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'plotfont'
func tracer() tracing.Trace {
	return tracing.Select("plotfont")
}

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string // full font name from the font's metadata
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadFont loads an OpenType font (TTF, OTF or TTC) from a file.
func LoadFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseFont loads an OpenType font from memory. TrueType collections are
// accepted; the first font of the collection is used.
func ParseFont(fbytes []byte) (*ScalableFont, error) {
	f := &ScalableFont{Binary: fbytes}
	coll, err := sfnt.ParseCollection(fbytes)
	if err != nil {
		return nil, err
	}
	if f.SFNT, err = coll.Font(0); err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err != nil {
		// unusual name-table encodings defeat the sfnt package; fall back
		// to a raw decode
		f.Fontname, _ = sfntname.Lookup(fbytes, sfntname.NameIDFull)
	}
	tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	return f, nil
}

// FamilyName returns the family identifier of f, as derived from the font
// file's own metadata. The typographic family is preferred over the legacy
// family name; the full font name is the last resort. An empty string means
// the font carries no decodable name records at all.
func FamilyName(f *ScalableFont) string {
	if f == nil || f.SFNT == nil {
		return ""
	}
	if fam, err := f.SFNT.Name(nil, sfnt.NameIDTypographicFamily); err == nil && fam != "" {
		return fam
	}
	if fam, err := f.SFNT.Name(nil, sfnt.NameIDFamily); err == nil && fam != "" {
		return fam
	}
	if fam, ok := sfntname.Family(f.Binary); ok {
		return fam
	}
	return f.Fontname
}

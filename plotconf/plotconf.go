/*
Package plotconf holds style parameters for plot rendering.

A Params store is the moral equivalent of a plotting library's global
rendering configuration: a flat key→value table consulted by rendering
code for defaults. Instead of a hidden singleton, Params is an explicit
object passed by reference; a process-wide default instance is available
through Default for callers that want the classic "set it once, globally"
behavior.

Params instances are not safe for concurrent use. Callers mutating the
same instance from multiple goroutines must provide their own
synchronization.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package plotconf

// Style parameter keys used by the font machinery.
const (
	// KeyFontFamily is the family identifier rendering code uses for text.
	KeyFontFamily = "font.family"
	// KeyUnicodeMinus selects the Unicode minus glyph (U+2212) over the
	// ASCII hyphen-minus for negative tick labels. Fonts without a U+2212
	// glyph render a placeholder box, so applying a custom font turns
	// this off.
	KeyUnicodeMinus = "axes.unicodeminus"
)

// Params is a flat store of style parameters with typed accessors.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty parameter store.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

var defaultParams = NewParams()

// Default returns the process-wide default parameter store.
func Default() *Params {
	return defaultParams
}

// SetString sets key to a string value.
func (p *Params) SetString(key, value string) {
	p.set(key, value)
}

// SetBool sets key to a boolean value.
func (p *Params) SetBool(key string, value bool) {
	p.set(key, value)
}

func (p *Params) set(key string, value any) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// String returns the string value for key, and whether key holds a string.
func (p *Params) String(key string) (string, bool) {
	s, ok := p.values[key].(string)
	return s, ok
}

// Bool returns the boolean value for key, and whether key holds a boolean.
func (p *Params) Bool(key string) (bool, bool) {
	b, ok := p.values[key].(bool)
	return b, ok
}

// Has reports whether key has been set.
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Keys returns all keys that have been set, in first-set order.
func (p *Params) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

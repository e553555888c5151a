/*
Package fontcache keeps a process-wide registration table of font files.

Registering a file parses it once, derives the family identifier from the
font's own metadata, and remembers the result; registering the same path
again is a cheap lookup. The cache mirrors what a plotting library's font
manager does when a font file is added at runtime.

A Cache is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontcache

import (
	"fmt"

	"github.com/npillmayer/plotfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plotfont.cache'
func tracer() tracing.Trace {
	return tracing.Select("plotfont.cache")
}

// Cache is an idempotent font registration table, keyed by file path.
type Cache struct {
	families map[string]string // file path → family identifier
	order    []string          // registration order of paths
	familyOf func(path string) (string, error)
}

// New creates an empty font cache.
func New() *Cache {
	return &Cache{
		families: make(map[string]string),
		familyOf: loadFamily,
	}
}

func loadFamily(path string) (string, error) {
	f, err := fontload.LoadFont(path)
	if err != nil {
		return "", fmt.Errorf("cannot register font %s: %w", path, err)
	}
	fam := fontload.FamilyName(f)
	if fam == "" {
		return "", fmt.Errorf("cannot register font %s: no decodable family name", path)
	}
	return fam, nil
}

// AddFont registers the font file at path and returns the family identifier
// derived from the file's metadata. Calling AddFont repeatedly on the same
// path is safe and returns the cached identifier. Failed registrations are
// not cached.
func (c *Cache) AddFont(path string) (string, error) {
	if fam, ok := c.families[path]; ok {
		return fam, nil
	}
	fam, err := c.familyOf(path)
	if err != nil {
		return "", err
	}
	c.families[path] = fam
	c.order = append(c.order, path)
	tracer().Infof("registered font %s as family %q", path, fam)
	return fam, nil
}

// Family returns the registered family identifier for path, if any.
func (c *Cache) Family(path string) (string, bool) {
	fam, ok := c.families[path]
	return fam, ok
}

// Families returns the registered family identifiers in registration order.
func (c *Cache) Families() []string {
	out := make([]string, 0, len(c.order))
	for _, p := range c.order {
		out = append(out, c.families[p])
	}
	return out
}

// Len returns the number of registered font files.
func (c *Cache) Len() int {
	return len(c.order)
}

package plotfont

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/plotfont/fontcache"
	"github.com/npillmayer/plotfont/fontmap"
	"github.com/npillmayer/plotfont/plotconf"
)

// ErrNotFound flags a resolved font file that does not exist on disk.
var ErrNotFound = errors.New("font file not found")

// Defaults used by New when the corresponding argument is empty.
const (
	DefaultFontDir = "/usr/local/share/fonts"
	DefaultFont    = "Helvetica Neue"
)

// builtinFonts returns the built-in logical-name table. Entries are file
// names relative to the resolver's font directory, or absolute paths.
// Deployments customize this through overrides rather than editing it.
func builtinFonts() *fontmap.Map {
	return fontmap.FromPairs(
		[2]string{"Helvetica Neue", "HelveticaNeue.ttc"},
		[2]string{"Helvetica", "Helvetica.ttc"},
		[2]string{"Futura", "Futura.ttc"},
		[2]string{"Futura ND Book", "Neufville Digital - Futura ND Book.ttf"},
		[2]string{"Futura ND Bold", "Neufville Digital - Futura ND Bold.ttf"},
		[2]string{"Optima", "Optima.ttc"},
		[2]string{"Baskerville", "Baskerville.ttc"},
		[2]string{"Myriad", "MyriadPro-Regular.otf"},
		[2]string{"Hiragino", "ヒラギノ角ゴシック W3.ttc"},
	)
}

// Registry is the font-cache surface the resolver registers files with.
// AddFont must be idempotent per path and return the family identifier
// derived from the font file's metadata.
type Registry interface {
	AddFont(path string) (string, error)
}

// Resolver maps logical font names to font files and applies them to style
// parameters.
//
// A Resolver is not safe for concurrent use: SetFont mutates the shared
// style-parameter store. Callers driving one Resolver (or one Params
// instance) from multiple goroutines must serialize those calls themselves.
type Resolver struct {
	fontDir     string
	defaultFont string
	fonts       *fontmap.Map
	registry    Registry
	params      *plotconf.Params
	loaded      map[string]string // logical name → family identifier
	current     string
	hasCurrent  bool
}

// Option configures a Resolver during New.
type Option func(*config)

type config struct {
	fonts         *fontmap.Map
	overrides     map[string]string
	overridesFile string
	noOverrides   bool
	registry      Registry
	params        *plotconf.Params
}

// WithFontMap replaces the built-in logical-name table entirely.
func WithFontMap(m *fontmap.Map) Option {
	return func(c *config) { c.fonts = m }
}

// WithOverrides overlays caller-supplied entries onto the font table.
// Entries from the on-disk override file still win over these.
func WithOverrides(overrides map[string]string) Option {
	return func(c *config) { c.overrides = overrides }
}

// WithOverridesFile reads the override layer from path instead of the
// default location. An empty path disables override-file loading.
func WithOverridesFile(path string) Option {
	return func(c *config) {
		c.overridesFile = path
		c.noOverrides = path == ""
	}
}

// WithRegistry replaces the production font cache, e.g. by a test double.
func WithRegistry(reg Registry) Option {
	return func(c *config) { c.registry = reg }
}

// WithParams applies fonts to an explicit style-parameter store instead of
// the process-wide default.
func WithParams(p *plotconf.Params) Option {
	return func(c *config) { c.params = p }
}

// New creates a Resolver. Empty fontDir and defaultFont select
// DefaultFontDir and DefaultFont.
//
// The font table is assembled from three layers, later layers winning on
// key collision: the built-in table, caller-supplied overrides, and the
// on-disk override file. A missing override file is skipped silently; a
// malformed one is reported as a warning and its layer is forfeited —
// a broken customization file must never prevent font resolution.
func New(fontDir, defaultFont string, opts ...Option) *Resolver {
	if fontDir == "" {
		fontDir = DefaultFontDir
	}
	if defaultFont == "" {
		defaultFont = DefaultFont
	}
	cfg := config{overridesFile: DefaultOverridesPath()}
	for _, opt := range opts {
		opt(&cfg)
	}
	fonts := cfg.fonts
	if fonts == nil {
		fonts = builtinFonts()
	} else {
		fonts = fonts.Clone()
	}
	fonts.MergeFlat(cfg.overrides)
	if !cfg.noOverrides && cfg.overridesFile != "" {
		layer, err := LoadOverrides(cfg.overridesFile)
		switch {
		case err == nil:
			fonts.Merge(layer)
		case errors.Is(err, fs.ErrNotExist):
			// no override file, nothing to do
		default:
			tracer().Errorf("ignoring font overrides: %v", err)
		}
	}
	reg := cfg.registry
	if reg == nil {
		reg = fontcache.New()
	}
	params := cfg.params
	if params == nil {
		params = plotconf.Default()
	}
	return &Resolver{
		fontDir:     fontDir,
		defaultFont: defaultFont,
		fonts:       fonts,
		registry:    reg,
		params:      params,
		loaded:      make(map[string]string),
	}
}

// ResolvePath resolves a logical font name to an existing font file path.
// Unknown names fall back to the entry of the configured default font;
// callers constructing custom tables must keep that entry present.
// Relative file references are joined with the resolver's font directory.
func (r *Resolver) ResolvePath(name string) (string, error) {
	fname, ok := r.fonts.Get(name)
	if !ok {
		if fname, ok = r.fonts.Get(r.defaultFont); !ok {
			return "", fmt.Errorf("%w: no entry for default font %q", ErrNotFound, r.defaultFont)
		}
	}
	path := fname
	if !filepath.IsAbs(fname) {
		path = filepath.Join(r.fontDir, fname)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return path, nil
}

// SetFont activates a font globally: it resolves name, registers the font
// file with the registry, and sets the style parameters `font.family` and
// `axes.unicodeminus` on the resolver's parameter store. Registration is
// memoized per logical name for the process lifetime.
//
// On any failure the parameter store is left untouched. The returned
// string is the family identifier now in effect.
func (r *Resolver) SetFont(name string) (string, error) {
	path, err := r.ResolvePath(name)
	if err != nil {
		return "", err
	}
	family, ok := r.loaded[name]
	if !ok {
		if family, err = r.registry.AddFont(path); err != nil {
			return "", err
		}
		r.loaded[name] = family
	}
	r.params.SetString(plotconf.KeyFontFamily, family)
	r.params.SetBool(plotconf.KeyUnicodeMinus, false)
	r.current = family
	r.hasCurrent = true
	tracer().Infof("active plot font is now %q (%s)", family, name)
	return family, nil
}

// CurrentFont returns the family identifier applied by the last SetFont
// call. ok is false before the first successful SetFont.
func (r *Resolver) CurrentFont() (family string, ok bool) {
	return r.current, r.hasCurrent
}

// LogicalNames returns all logical font names known to the resolver, in
// insertion order. These are the valid arguments to SetFont.
func (r *Resolver) LogicalNames() []string {
	return r.fonts.Keys()
}

// Props is a lightweight font handle for a single rendering call. Passing
// it to rendering code overrides the font for that call only, without
// touching any style parameters.
type Props struct {
	Name string // logical font name
	Path string // resolved font file path
}

// Props resolves name without registering the font or mutating any global
// state. Failure semantics are those of ResolvePath.
func (r *Resolver) Props(name string) (Props, error) {
	path, err := r.ResolvePath(name)
	if err != nil {
		return Props{}, err
	}
	return Props{Name: name, Path: path}, nil
}

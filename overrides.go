package plotfont

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/plotfont/fontmap"
)

// OverridesFileName is the fixed name of the on-disk override layer, a flat
// JSON object mapping logical font names to file names or absolute paths.
// The file format is what `pf-tools buildmap` emits.
const OverridesFileName = "pfm.json"

// ErrMalformedOverrides flags an override file that exists but does not
// contain a flat name→file JSON object.
var ErrMalformedOverrides = errors.New("malformed font overrides")

// DefaultOverridesPath returns the default location of the override file,
// inside the user's configuration directory. It returns the empty string if
// no configuration directory can be determined.
func DefaultOverridesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "plotfont", OverridesFileName)
}

// LoadOverrides reads an override layer from path. A missing file is
// reported as an fs.ErrNotExist error; content that is not a flat
// name→file object is reported as ErrMalformedOverrides. LoadOverrides
// itself never logs — deciding whether a failure is worth a warning is the
// caller's business.
func LoadOverrides(path string) (*fontmap.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	layer := fontmap.New()
	if err := json.Unmarshal(data, layer); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedOverrides, path, err)
	}
	return layer, nil
}

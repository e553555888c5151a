/*
Package fcscan discovers installed font files and builds logical-name
mappings from them.

The primary discovery path shells out to fontconfig's `fc-list`, asking
for one `path:family` record per line. For hosts without fontconfig,
ScanDirs walks font directories instead and reads family names straight
from the font files. Either way the result feeds BuildMap, which produces
the flat JSON artifact package plotfont consumes as an override layer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fcscan

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/npillmayer/plotfont/fontmap"
	"github.com/npillmayer/plotfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plotfont.scan'
func tracer() tracing.Trace {
	return tracing.Select("plotfont.scan")
}

// ErrToolMissing flags an absent font-discovery tool (fontconfig not
// installed).
var ErrToolMissing = errors.New("font discovery tool not found")

// ErrToolFailed flags a font-discovery tool that ran but exited non-zero.
var ErrToolFailed = errors.New("font discovery tool failed")

// Entry is one discovered font file with its canonical family name.
type Entry struct {
	Path   string
	Family string
}

const (
	defaultTool = "fc-list"
	listFormat  = "%{file}:%{family}\n"
)

// Scanner discovers installed fonts through an external fontconfig tool.
// The zero value uses `fc-list` from PATH.
type Scanner struct {
	Cmd string // discovery tool to invoke; empty selects fc-list
}

func (s Scanner) tool() string {
	if s.Cmd == "" {
		return defaultTool
	}
	return s.Cmd
}

// List invokes the discovery tool and returns one entry per installed font,
// in tool output order. It returns ErrToolMissing if the tool is not
// installed and ErrToolFailed if it exits non-zero; no partial output is
// returned in either case.
func (s Scanner) List() ([]Entry, error) {
	cmd := exec.Command(s.tool(), "-f", listFormat)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s (install fontconfig)", ErrToolMissing, s.tool())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = exitErr.String()
			}
			return nil, fmt.Errorf("%w: %s: %s", ErrToolFailed, s.tool(), msg)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrToolFailed, s.tool(), err)
	}
	entries := parseListing(stdout.String())
	tracer().Infof("%s reported %d usable fonts", s.tool(), len(entries))
	return entries, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// parseListing parses `path:family` lines as produced by the discovery
// tool. The family field may hold several comma-separated aliases; the
// first one is canonical. Whitespace runs inside family names are collapsed
// and records without a usable family are dropped.
func parseListing(output string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(output, "\n") {
		path, family, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		family, _, _ = strings.Cut(family, ",")
		family = whitespaceRun.ReplaceAllString(strings.TrimSpace(family), " ")
		if family == "" {
			continue
		}
		entries = append(entries, Entry{Path: strings.TrimSpace(path), Family: family})
	}
	return entries
}

// fontFileExtensions are the file types ScanDirs considers to be fonts.
var fontFileExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
}

// ScanDirs walks font directories and derives family names by reading each
// font file's metadata. It is the fontconfig-free alternative to List.
// Files that cannot be parsed as fonts are skipped; unreadable directories
// fail the walk.
func ScanDirs(dirs ...string) ([]Entry, error) {
	var entries []Entry
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !fontFileExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			f, err := fontload.LoadFont(path)
			if err != nil {
				tracer().Debugf("skipping %s: %v", path, err)
				return nil
			}
			family := fontload.FamilyName(f)
			if family == "" {
				tracer().Debugf("skipping %s: no decodable family name", path)
				return nil
			}
			entries = append(entries, Entry{Path: path, Family: family})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("cannot scan font directory %s: %w", dir, err)
		}
	}
	return entries, nil
}

// BuildMap turns discovered entries into a logical-name mapping. Entries
// are processed in order; the first occurrence of a family wins. A non-nil
// filter keeps only families it matches (unanchored search). Paths are
// stored in absolute form.
func BuildMap(entries []Entry, filter *regexp.Regexp) *fontmap.Map {
	m := fontmap.New()
	for _, e := range entries {
		if filter != nil && !filter.MatchString(e.Family) {
			continue
		}
		path := e.Path
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		m.SetIfAbsent(e.Family, path)
	}
	return m
}

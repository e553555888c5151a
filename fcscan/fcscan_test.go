package fcscan

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseListing(t *testing.T) {
	output := "/a/HelveticaNeue.ttc:Helvetica Neue,HelveticaNeue DeskInterface\n" +
		"/b/Weird.ttf:  Futura \t ND   Book  \n" +
		"no colon on this line\n" +
		"/c/empty.ttf:,Alias Only\n" +
		"\n"
	entries := parseListing(output)
	want := []Entry{
		{Path: "/a/HelveticaNeue.ttc", Family: "Helvetica Neue"},
		{Path: "/b/Weird.ttf", Family: "Futura ND Book"},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("parsed entries differ (-want +got):\n%s", diff)
	}
}

func TestBuildMapFirstOccurrenceWins(t *testing.T) {
	entries := []Entry{
		{Path: "/a/Foo.ttf", Family: "Foo"},
		{Path: "/b/Foo.ttf", Family: "Foo"},
		{Path: "/c/Bar.ttf", Family: "Bar"},
	}
	m := BuildMap(entries, nil)
	assert.Equal(t, []string{"Foo", "Bar"}, m.Keys())
	foo, _ := m.Get("Foo")
	assert.Equal(t, "/a/Foo.ttf", foo)
	bar, _ := m.Get("Bar")
	assert.Equal(t, "/c/Bar.ttf", bar)
}

func TestBuildMapFilter(t *testing.T) {
	entries := []Entry{
		{Path: "/a/Foo.ttf", Family: "Foo"},
		{Path: "/b/Foo.ttf", Family: "Foo"},
		{Path: "/c/Bar.ttf", Family: "Bar"},
	}
	m := BuildMap(entries, regexp.MustCompile("Ba"))
	assert.Equal(t, []string{"Bar"}, m.Keys(), "unanchored filter expected to match substrings")
}

func TestBuildMapAbsolutePaths(t *testing.T) {
	m := BuildMap([]Entry{{Path: "relative/Foo.ttf", Family: "Foo"}}, nil)
	foo, _ := m.Get("Foo")
	assert.True(t, filepath.IsAbs(foo))
}

func TestListToolMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "plotfont.scan")
	defer teardown()
	s := Scanner{Cmd: "plotfont-no-such-discovery-tool"}
	entries, err := s.List()
	assert.ErrorIs(t, err, ErrToolMissing)
	assert.Nil(t, entries, "no partial output on failure")
}

func TestListToolFailed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "plotfont.scan")
	defer teardown()
	s := Scanner{Cmd: "false"} // exits non-zero, ignores arguments
	entries, err := s.List()
	assert.ErrorIs(t, err, ErrToolFailed)
	assert.Nil(t, entries)
}

func TestScanDirsSkipsNonFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "plotfont.scan")
	defer teardown()
	dir := t.TempDir()
	for _, name := range []string{"notes.txt", "broken.ttf"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("not a font"), 0644)
		assert.NoError(t, err)
	}
	entries, err := ScanDirs(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries, "unparsable and non-font files are skipped")
}

func TestScanDirsMissingDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "plotfont.scan")
	defer teardown()
	_, err := ScanDirs(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

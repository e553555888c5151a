package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("pf-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for building and inspecting plot font mappings.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("buildmap").
		SetDescription("Scrape the system font database and write a logical-name → file JSON mapping to stdout. " +
			"Edit the result and keep only the fonts you care about before using it as a pfm.json override file.").
		SetShortDescription("build a font map").
		AddFlag("filter,f", "regex to filter family names (e.g. 'Futura|Helvetica')", commando.String, "-").
		AddFlag("indent,n", "indent level for JSON output", commando.Int, 4).
		AddFlag("scan,s", "scan these directories (comma separated) instead of invoking fc-list", commando.String, "-").
		SetAction(runBuildMapCommand)

	commando.
		Register("font").
		SetDescription("Print name diagnostics for a single font file.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path (TTF, OTF or TTC)", "").
		SetAction(runFontCommand)

	commando.Parse(nil)
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "pf-tools: "+format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"fmt"
	"regexp"

	"github.com/npillmayer/plotfont/fcscan"
	"github.com/thatisuday/commando"
)

func runBuildMapCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	var filter *regexp.Regexp
	if spec := mustFlagString(flags["filter"], "filter"); spec != "" && spec != "-" {
		var err error
		if filter, err = regexp.Compile(spec); err != nil {
			fatalf("invalid --filter regex: %v", err)
		}
	}

	var entries []fcscan.Entry
	var err error
	if dirs := mustFlagString(flags["scan"], "scan"); dirs != "" && dirs != "-" {
		entries, err = fcscan.ScanDirs(splitCSVSpace(dirs)...)
	} else {
		entries, err = fcscan.Scanner{}.List()
	}
	if err != nil {
		fatalf("%v", err)
	}

	mapping := fcscan.BuildMap(entries, filter)
	out, err := mapping.MarshalIndent(mustFlagInt(flags["indent"], "indent"))
	if err != nil {
		fatalf("cannot encode font map: %v", err)
	}
	fmt.Println(string(out))
}

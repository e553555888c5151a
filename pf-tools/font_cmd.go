package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/plotfont"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f, err := plotfont.LoadFont(fontPath)
	if err != nil {
		fatalf("cannot load font %s: %v", fontPath, err)
	}
	fmt.Printf("Path: %s\n", fontPath)
	fmt.Printf("Family: %s\n", plotfont.FamilyName(f))
	if f.Fontname != "" {
		fmt.Printf("Full name: %s\n", f.Fontname)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/plotfont"
	"github.com/npillmayer/plotfont/plotconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'plotfont'
func tracer() tracing.Trace {
	return tracing.Select("plotfont")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.plotfont":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontDir := flag.String("dir", "", "Directory where font files live")
	deflt := flag.String("default", "", "Logical name of the fallback font")
	overrides := flag.String("overrides", "", "Path to a pfm.json override file")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the plot font CLI")
	//
	// set up REPL
	repl, err := readline.New("pf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	var opts []plotfont.Option
	if *overrides != "" {
		opts = append(opts, plotfont.WithOverridesFile(*overrides))
	}
	intp := &Intp{
		repl:     repl,
		resolver: plotfont.New(*fontDir, *deflt, opts...),
		params:   plotconf.Default(),
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	resolver *plotfont.Resolver
	params   *plotconf.Params
}

func (intp *Intp) String() string {
	if fam, ok := intp.resolver.CurrentFont(); ok {
		return fmt.Sprintf("( font=%q )", fam)
	}
	return "( no font applied )"
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (error, bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit", "exit":
		return nil, true
	case "help":
		help()
	case "list":
		intp.printNames()
	case "current":
		pterm.Println(intp.String())
		if fam, ok := intp.params.String(plotconf.KeyFontFamily); ok {
			pterm.Printf("%s = %q\n", plotconf.KeyFontFamily, fam)
		}
		if minus, ok := intp.params.Bool(plotconf.KeyUnicodeMinus); ok {
			pterm.Printf("%s = %v\n", plotconf.KeyUnicodeMinus, minus)
		}
	case "resolve":
		if arg == "" {
			return errors.New("usage: resolve <logical name>"), false
		}
		path, err := intp.resolver.ResolvePath(arg)
		if err != nil {
			return err, false
		}
		pterm.Printf("%s -> %s\n", arg, path)
	case "use":
		if arg == "" {
			return errors.New("usage: use <logical name>"), false
		}
		fam, err := intp.resolver.SetFont(arg)
		if err != nil {
			return err, false
		}
		pterm.Info.Printf("plots now use family %q\n", fam)
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd), false
	}
	return nil, false
}

func (intp *Intp) printNames() {
	data := [][]string{
		{"Logical name", "File"},
	}
	for _, name := range intp.resolver.LogicalNames() {
		file := "?"
		if props, err := intp.resolver.Props(name); err == nil {
			file = props.Path
		}
		data = append(data, []string{name, file})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	list               list all logical font names and their files
	resolve <name>     resolve a logical name to a font file path
	use <name>         apply a font globally to plot style parameters
	current            show the currently applied font family
	quit               leave the CLI
	`)
}

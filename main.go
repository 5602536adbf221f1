package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobanhawi/chronoview/internal/demo"
	"github.com/mobanhawi/chronoview/internal/ingest"
	"github.com/mobanhawi/chronoview/internal/tui"
)

var version = "dev"

// osExit and runProgram are indirected so tests can stub process exit and
// the bubbletea event loop without spawning a real terminal program.
var osExit = os.Exit
var runProgram = func(p *tea.Program) (tea.Model, error) { return p.Run() }

func main() {
	osExit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("chronoview", flag.ContinueOnError)
	input := fs.String("input", "abc", "session input string threaded to the demo generator")
	demoName := fs.String("demo", "greeting", fmt.Sprintf("demo to run, one of %v", demo.Names()))
	theme := fs.String("theme", "", "path to an optional TOML theme file")
	showVersion := fs.Bool("version", false, "print the version and exit")
	fs.BoolVar(showVersion, "v", false, "print the version and exit (shorthand)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: chronoview [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Printf("chronoview version %s\n", version)
		return 0
	}

	gen, err := demo.Lookup(*demoName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *theme != "" {
		if !tui.ThemeFileExists(*theme) {
			fmt.Fprintf(os.Stderr, "error: theme file %q not found\n", *theme)
			return 1
		}
		th, err := tui.LoadTheme(*theme)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading theme: %v\n", err)
			return 1
		}
		tui.ApplyTheme(th)
	}

	states := ingest.Adapt(gen(*input))
	model := tui.New(states)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := runProgram(p); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		return 1
	}
	return 0
}

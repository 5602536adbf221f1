package demo

import (
	"fmt"
	"iter"

	"github.com/mobanhawi/chronoview/internal/stateviz"
)

// Generator is the common F: session -> Sequence<State> shape every demo in
// this package implements, mirroring AocVizApp::new's compute argument.
type Generator func(session string) iter.Seq[stateviz.Text]

var registry = map[string]Generator{
	"greeting":  Greeting,
	"countdown": Countdown,
	"pairs":     EvenPairs,
	"drift":     FrequencyDrift,
}

// Names lists the demo keys accepted by the -demo flag, in a stable order.
func Names() []string {
	return []string{"greeting", "countdown", "pairs", "drift"}
}

// Lookup resolves a -demo flag value to its Generator.
func Lookup(name string) (Generator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("demo: unknown demo %q (want one of %v)", name, Names())
	}
	return g, nil
}

// Package demo restores the example F functions the distilled spec
// dropped (original_source/examples/*.rs): Greeting, Countdown, EvenPairs
// and FrequencyDrift.
package demo

import (
	"fmt"
	"iter"

	"github.com/mobanhawi/chronoview/internal/stateviz"
)

// Greeting yields "Hello", "world!", ... one word per step, translated
// from original_source/examples/hello_world.rs. session is accepted only
// to satisfy the common F: string -> Sequence<State> signature; it is
// ignored, matching the Rust reference's own `_input: String`.
func Greeting(session string) iter.Seq[stateviz.Text] {
	words := []string{"Hello", "world!", "This", "is", "my", "cargo-aoc", "app"}
	return func(yield func(stateviz.Text) bool) {
		for _, w := range words {
			if !yield(stateviz.NewText(w)) {
				return
			}
		}
	}
}

// Countdown yields "Hello world ! 0" through "Hello world ! 9", translated
// from original_source/examples/display_hello.rs.
func Countdown(session string) iter.Seq[stateviz.Text] {
	return func(yield func(stateviz.Text) bool) {
		for i := 0; i < 10; i++ {
			if !yield(stateviz.NewText(fmt.Sprintf("Hello world ! %d", i))) {
				return
			}
		}
	}
}

// EvenPairs yields the even numbers from 1..10 as single-line text states,
// translated from original_source/examples/ten_first_pairs.rs.
func EvenPairs(session string) iter.Seq[stateviz.Text] {
	return func(yield func(stateviz.Text) bool) {
		for x := 1; x < 10; x++ {
			if x%2 != 0 {
				continue
			}
			if !yield(stateviz.NewText(fmt.Sprintf("%d", x))) {
				return
			}
		}
	}
}

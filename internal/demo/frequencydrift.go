package demo

import (
	"fmt"
	"iter"

	"github.com/mobanhawi/chronoview/internal/stateviz"
)

// frequencyChanges stands in for the original_source/examples/input/2018_day1.txt
// fixture (not carried into this pack) with a representative frequency-change
// list of the same shape.
var frequencyChanges = []int{+7, +7, -2, -7, -4, +1, +1, -6, +11, -14}

// FrequencyDrift yields a running "current: N\nsum: S" two-line state per
// step, translated from original_source/examples/2018_day_1.rs. Unlike
// Greeting/Countdown/EvenPairs it has two lines per state, and their widths
// vary across steps (some frequency totals are negative), which is why it
// is the one demo kept in SPEC_FULL.md to exercise multi-line delta
// tracking end to end.
func FrequencyDrift(session string) iter.Seq[stateviz.Text] {
	return func(yield func(stateviz.Text) bool) {
		sum := 0
		for _, x := range frequencyChanges {
			sum += x
			state := fmt.Sprintf("current: %d\nsum: %d", x, sum)
			if !yield(stateviz.NewText(state)) {
				return
			}
		}
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	humanize "github.com/dustin/go-humanize"

	"github.com/mobanhawi/chronoview/internal/timeline"
)

// renderTimeBar draws the time-axis widget described in
// original_source/src/view/time.rs ("min ... |||current|||... max"),
// reimplemented as a lipgloss-styled label over a bubbles/progress bar
// instead of raw cursor-positioned pipe characters.
func renderTimeBar(bar progress.Model, snap timeline.Snapshot, width int) string {
	if width < 4 {
		width = 4
	}

	label := fmt.Sprintf(" step %s / %s ", humanize.Comma(int64(snap.Current)), humanize.Comma(int64(snap.Max)))

	fraction := 0.0
	if snap.Max > snap.Min {
		fraction = float64(snap.Current-snap.Min) / float64(snap.Max-snap.Min)
	} else if snap.Max == snap.Min && snap.Max > 0 {
		fraction = 1.0
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	bar.Width = width - 2
	if bar.Width < 1 {
		bar.Width = 1
	}

	return styleDivider.Render(strings.Repeat("─", width)) + "\n" +
		styleStatus.Render(label) + "\n" +
		bar.ViewAs(fraction)
}

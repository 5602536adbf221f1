package tui

import "github.com/charmbracelet/lipgloss"

// Default palette, overridden by an optional theme file (theme.go).
var (
	colorAccent = lipgloss.Color("#9b59b6")
	colorWhite  = lipgloss.Color("#e8e8f0")
	colorDim    = lipgloss.Color("#444466")
	colorGray   = lipgloss.Color("#888899")
	colorRed    = lipgloss.Color("#e74c3c")
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorAccent).
			Padding(0, 2)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorGray).
			Background(lipgloss.Color("#111122")).
			Padding(0, 1)

	styleDivider = lipgloss.NewStyle().
			Foreground(colorDim)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorGray)

	stylePromptLabel = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)
)

// rebuildStyles recomputes the derived styles after the palette colors
// change; called once by ApplyTheme.
func rebuildStyles() {
	styleHeader = styleHeader.Foreground(colorWhite).Background(colorAccent)
	styleFooter = styleFooter.Foreground(colorGray)
	styleDivider = styleDivider.Foreground(colorDim)
	styleError = styleError.Foreground(colorRed)
	styleStatus = styleStatus.Foreground(colorGray)
	stylePromptLabel = stylePromptLabel.Foreground(colorAccent)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// fadeWindow is how many steps a recently changed cell keeps fading back
// toward the base foreground color.
const fadeWindow = 12

// fadeColor blends colorAccent toward colorWhite in Lab space as a cell's
// last change recedes into the past, giving "just wrote this" cells a
// visible highlight that smoothly fades out instead of popping on and off.
func fadeColor(lastChange, current uint64) lipgloss.Color {
	if current < lastChange {
		return colorWhite
	}
	age := current - lastChange
	if age >= fadeWindow {
		return colorWhite
	}

	accent, aErr := colorful.Hex(string(colorAccent))
	base, bErr := colorful.Hex(string(colorWhite))
	if aErr != nil || bErr != nil {
		return colorWhite
	}

	t := float64(age) / float64(fadeWindow)
	blended := accent.BlendLab(base, t)
	return lipgloss.Color(blended.Hex())
}

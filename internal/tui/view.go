package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mobanhawi/chronoview/internal/viewport"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing…"
	}

	header := styleHeader.Width(m.width).Render("  chronoview")
	body := m.renderCanvas()
	snap := m.cursor.Read()
	timeBar := renderTimeBar(m.bar, snap, m.width)
	footer := styleFooter.Width(m.width).Render(m.help.View(m.keys))

	lines := []string{header, body, timeBar}

	if !m.producerDone {
		lines = append(lines, styleStatus.Render(fmt.Sprintf(" %s ingesting…", m.sp.View())))
	}
	if m.lastErr != nil {
		lines = append(lines, styleError.Render(fmt.Sprintf(" ✗ %v (showing ingested prefix)", m.lastErr)))
	}
	if m.showGoto {
		prompt := stylePromptLabel.Render(" goto step ") + m.gotoInput.View()
		if m.gotoErr != "" {
			prompt += "  " + styleError.Render(m.gotoErr)
		}
		lines = append(lines, prompt)
	}

	lines = append(lines, footer)
	return strings.Join(lines, "\n")
}

// renderCanvas paints the current viewport window, coloring each cell by
// how recently it changed (SPEC_FULL.md §4.8) and accounting for
// double-width runes (SPEC_FULL.md §4.9) so wide demo glyphs don't desync
// the screen grid.
func (m Model) renderCanvas() string {
	current := m.cursor.Read().Current
	world := m.view.WorldCoords()
	screen := m.view.ScreenCoords()
	values := m.cache.View(world, current)

	width, height := m.view.Width, m.view.Height
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = m.cache.Default()
		}
	}

	lastChangeColor := make([][]lipgloss.Color, height)
	for y := range lastChangeColor {
		lastChangeColor[y] = make([]lipgloss.Color, width)
		for x := range lastChangeColor[y] {
			lastChangeColor[y][x] = colorWhite
		}
	}

	for i, sc := range screen {
		if sc.SY >= height || sc.SX >= width {
			continue
		}
		grid[sc.SY][sc.SX] = values[i]
		if lc, ok := m.cache.LastChange(world[i], current); ok {
			lastChangeColor[sc.SY][sc.SX] = fadeColor(lc, current)
		}
	}

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		skip := false
		for x := 0; x < width; x++ {
			if skip {
				skip = false
				continue
			}
			r := grid[y][x]
			sb.WriteString(lipgloss.NewStyle().Foreground(lastChangeColor[y][x]).Render(string(r)))
			if viewport.CellWidth(r) == 2 {
				skip = true
			}
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

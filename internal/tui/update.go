package tui

import (
	"context"
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vh := m.height - headerFooterRows
		if vh < 1 {
			vh = 1
		}
		m.view.Layout(m.width, vh)
		return m, nil

	case spinner.TickMsg:
		if m.producerDone {
			return m, nil
		}
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd

	case ingestDoneMsg:
		m.producerDone = true
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.lastErr = msg.err
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showGoto {
		return m.handleGotoKey(msg)
	}

	switch {
	case msg.String() == "q" || msg.String() == "ctrl+c":
		return m, tea.Quit
	case msg.String() == "left" || msg.String() == "h":
		m.view.Pan(-1, 0)
	case msg.String() == "right" || msg.String() == "l":
		m.view.Pan(1, 0)
	case msg.String() == "up" || msg.String() == "k":
		m.view.Pan(0, -1)
	case msg.String() == "down" || msg.String() == "j":
		m.view.Pan(0, 1)
	case msg.String() == "n":
		m.cursor.Forward()
	case msg.String() == "b":
		m.cursor.Backward()
	case msg.String() == "g":
		m.showGoto = true
		m.gotoErr = ""
		m.gotoInput.SetValue("")
		m.gotoInput.Focus()
		return m, nil
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showGoto = false
		m.gotoInput.Blur()
		return m, nil
	case "enter":
		n, err := strconv.ParseUint(m.gotoInput.Value(), 10, 64)
		if err != nil {
			m.gotoErr = "not a step number"
			return m, nil
		}
		if !m.cursor.SetCurrent(n) {
			m.gotoErr = "out of range"
			return m, nil
		}
		m.showGoto = false
		m.gotoInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

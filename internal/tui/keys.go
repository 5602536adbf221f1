package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the AppKernel's key contract: pan with arrows or h/j/k/l, scrub
// time with n/b, open a goto-step prompt with g, quit with q. Implements
// help.KeyMap so the footer can be rendered by bubbles/help.
type keyMap struct {
	Left, Right, Up, Down key.Binding
	Forward, Backward     key.Binding
	Goto                  key.Binding
	Help, Quit            key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "pan left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "pan right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "pan up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "pan down"),
		),
		Forward: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "step backward"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "goto step"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Forward, k.Backward, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Forward, k.Backward, k.Goto},
		{k.Help, k.Quit},
	}
}

// Package tui wires the store, timeline, and viewport together, spawns the
// ingestion worker, and dispatches input events as a
// github.com/charmbracelet/bubbletea model, split across Init/Update/View.
package tui

import (
	"context"
	"iter"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobanhawi/chronoview/internal/ingest"
	"github.com/mobanhawi/chronoview/internal/stateviz"
	"github.com/mobanhawi/chronoview/internal/timeline"
	"github.com/mobanhawi/chronoview/internal/viewport"
)

// headerFooterRows is how many lines the header, time bar and footer reserve
// out of the terminal height, leaving the remainder for the canvas.
const headerFooterRows = 7

// ingestDoneMsg is sent once the producer goroutine returns, successfully
// or otherwise.
type ingestDoneMsg struct{ err error }

// Model is the bubbletea AppKernel.
type Model struct {
	cache    *ingest.Cache
	cursor   *timeline.Cursor
	view     *viewport.Viewport
	producer *ingest.Producer
	states   iter.Seq[stateviz.StateViz]

	sp        spinner.Model
	help      help.Model
	keys      keyMap
	gotoInput textinput.Model
	bar       progress.Model

	width, height int
	showGoto      bool
	gotoErr       string
	producerDone  bool
	lastErr       error
}

// New constructs an AppKernel around a lazy state sequence. states is
// typically produced by wrapping a demo generator with ingest.Adapt.
func New(states iter.Seq[stateviz.StateViz]) Model {
	cache := ingest.NewCache(' ')
	cursor := timeline.NewCursor(0, 0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = stylePromptLabel

	ti := textinput.New()
	ti.Placeholder = "step index"
	ti.CharLimit = 20
	ti.Prompt = "goto: "

	return Model{
		cache:     cache,
		cursor:    cursor,
		view:      viewport.New(),
		producer:  ingest.NewProducer(cache, cursor),
		states:    states,
		sp:        sp,
		help:      help.New(),
		keys:      newKeyMap(),
		gotoInput: ti,
		bar:       progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sp.Tick, startIngest(m.producer, m.states))
}

// CursorSnapshot exposes the current time-axis state for tests and for any
// host embedding this model outside of tea.Program.
func (m Model) CursorSnapshot() timeline.Snapshot {
	return m.cursor.Read()
}

// ViewportOrigin exposes the current pan offset for tests.
func (m Model) ViewportOrigin() (int, int) {
	return m.view.OriginX, m.view.OriginY
}

// startIngest runs the producer to completion on a worker goroutine and
// reports back with ingestDoneMsg once it finishes.
func startIngest(p *ingest.Producer, states iter.Seq[stateviz.StateViz]) tea.Cmd {
	return func() tea.Msg {
		err := p.Run(context.Background(), states)
		return ingestDoneMsg{err: err}
	}
}

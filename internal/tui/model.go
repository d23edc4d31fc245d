package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"wisp/internal/suggest"
	"wisp/internal/tracker"
	"wisp/internal/tui/components"
	"wisp/internal/tui/components/omnibar"
)

// Model represents the Bubble Tea model for the TUI
type Model struct {
	omnibar    omnibar.Model
	trackers   *tracker.Store
	source     *suggest.Source
	statusline *components.StatuslineComponent
	panel      *components.TrackerPanelComponent
	out        *sender

	currentURL string
	showPanel  bool
	ready      bool
	viewport   struct {
		width  int
		height int
	}
}

// QueryMsg carries the debounced, normalized query text.
type QueryMsg struct {
	Query string
}

// SuggestionResultMsg carries a completion candidate for a query. An empty
// candidate means the lookup found nothing.
type SuggestionResultMsg struct {
	Query     string
	Candidate string
}

// BeginEditingMsg fires when the user starts interacting with the omnibar.
type BeginEditingMsg struct{}

// CancelMsg fires on an explicit cancel gesture.
type CancelMsg struct{}

// PasteAndGoMsg fires when the user requests paste-and-go.
type PasteAndGoMsg struct{}

// PasteResultMsg carries the clipboard contents for paste-and-go.
type PasteResultMsg struct {
	Text string
	Err  error
}

// TrackerSavedMsg fires once a tracker block-state write attempt finishes.
type TrackerSavedMsg struct {
	Category tracker.Category
	Blocked  bool
}

// NewModel creates a new TUI model
func NewModel(bar omnibar.Model, trackers *tracker.Store, source *suggest.Source, out *sender) Model {
	m := Model{
		omnibar:    bar,
		trackers:   trackers,
		source:     source,
		statusline: components.NewStatuslineComponent(80),
		panel:      components.NewTrackerPanelComponent(40),
		out:        out,
	}
	m.omnibar.Focus()
	return m
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"wisp/internal/logger"
	"wisp/internal/suggest"
	"wisp/internal/tracker"
	"wisp/internal/tui/components/omnibar"
)

const statusDuration = 3 * time.Second

// Update handles all TUI messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.width = msg.Width
		m.viewport.height = msg.Height
		m.omnibar.SetWidth(msg.Width)
		m.statusline.SetWidth(msg.Width)
		m.panel.SetWidth(min(msg.Width, 44))
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case debounceFiredMsg:
		msg.fn()
		return m, nil

	case QueryMsg:
		return m, lookupSuggestion(m.source, msg.Query)

	case SuggestionResultMsg:
		m.omnibar.SetSuggestion(msg.Candidate)
		return m, nil

	case omnibar.NavigateMsg:
		return m.handleNavigate(msg.URL)

	case omnibar.ClearedMsg:
		m.statusline.Info("cleared", statusDuration)
		return m, nil

	case BeginEditingMsg:
		logger.Debug("tui: begin editing")
		return m, nil

	case CancelMsg:
		// Cancel restores whatever was last committed.
		m.omnibar.Controller().SetTextWithoutSearching(m.currentURL)
		m.statusline.Info("canceled", statusDuration)
		return m, nil

	case PasteAndGoMsg:
		return m, readClipboard

	case PasteResultMsg:
		if msg.Err != nil {
			logger.Error("tui: clipboard read: %v", msg.Err)
			m.statusline.Error("clipboard unavailable", statusDuration)
			return m, nil
		}
		if msg.Text == "" {
			return m, nil
		}
		m.omnibar.Controller().SetTextWithoutSearching(msg.Text)
		return m.handleNavigate(msg.Text)

	case TrackerSavedMsg:
		verb := "unblocked"
		if msg.Blocked {
			verb = "blocked"
		}
		m.statusline.Info(fmt.Sprintf("%s trackers %s", msg.Category.Name, verb), statusDuration)
		m.panel.SetBlocked(m.trackers.Blocked())
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "ctrl+t":
		m.showPanel = !m.showPanel
		if m.showPanel {
			m.omnibar.Blur()
			m.panel.SetBlocked(m.trackers.Blocked())
		} else {
			m.omnibar.Focus()
		}
		return m, nil
	}

	if m.showPanel {
		return m.handlePanelKey(msg)
	}

	var cmd tea.Cmd
	m.omnibar, cmd = m.omnibar.Update(msg)
	return m, cmd
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.panel.SelectPrev()
	case "down", "j":
		m.panel.SelectNext()
	case " ":
		cat := m.panel.Selected()
		state := tracker.StateBlocked
		if m.trackers.IsBlocked(cat.ID) {
			state = tracker.StateUnset
		}
		blocked := state == tracker.StateBlocked
		out := m.out
		m.trackers.Upsert(cat.ID, state, func() {
			out.Send(TrackerSavedMsg{Category: cat, Blocked: blocked})
		})
	case "esc":
		m.showPanel = false
		m.omnibar.Focus()
	}
	return m, nil
}

func (m Model) handleNavigate(url string) (tea.Model, tea.Cmd) {
	m.currentURL = url
	if err := m.source.RecordVisit(url); err != nil {
		logger.Error("tui: record visit: %v", err)
	}
	blocked := len(m.trackers.Blocked())
	m.statusline.Info(fmt.Sprintf("→ %s (%d tracker categories blocked)", url, blocked), statusDuration)
	return m, nil
}

// lookupSuggestion resolves a completion candidate off the update loop.
func lookupSuggestion(source *suggest.Source, query string) tea.Cmd {
	return func() tea.Msg {
		candidate, ok := source.SuggestionFor(query)
		if !ok {
			candidate = ""
		}
		return SuggestionResultMsg{Query: query, Candidate: candidate}
	}
}

func readClipboard() tea.Msg {
	text, err := clipboard.ReadAll()
	return PasteResultMsg{Text: text, Err: err}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	pageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := titleStyle.Render(" wisp ") +
		dimStyle.Render(" ctrl+t trackers · tab accept · enter go · ctrl+c quit")

	bar := m.omnibar.View()

	var body string
	if m.showPanel {
		body = m.panel.Render()
	} else {
		body = m.renderPage()
	}

	statusline := m.statusline.Render()

	// Pad the body so the statusline sits on the bottom row.
	used := lipgloss.Height(title) + lipgloss.Height(bar) + lipgloss.Height(body) + 1
	padding := m.viewport.height - used
	if padding < 0 {
		padding = 0
	}

	return title + "\n" + bar + "\n" + body + strings.Repeat("\n", padding+1) + statusline
}

func (m Model) renderPage() string {
	if m.currentURL == "" {
		return dimStyle.Render("  Nothing loaded. Type an address and press enter.")
	}
	blocked := len(m.trackers.Blocked())
	return pageStyle.Render(fmt.Sprintf("  %s", m.currentURL)) + "\n" +
		dimStyle.Render(fmt.Sprintf("  %d tracker categories blocked on this page", blocked))
}

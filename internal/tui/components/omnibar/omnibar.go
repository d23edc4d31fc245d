// Package omnibar is the address-bar widget. It owns an overlay.Controller
// and translates terminal key events into the controller's operations; the
// suggested completion renders as dim ghost text after the caret.
package omnibar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"wisp/internal/overlay"
)

// NavigateMsg is emitted when the user confirms the entered text.
type NavigateMsg struct {
	URL string
}

// ClearedMsg is emitted after the field is cleared.
type ClearedMsg struct{}

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ghostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	caretStyle   = lipgloss.NewStyle().Reverse(true)
	clearStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	composeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Underline(true)
	borderStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// Model is the omnibar widget.
type Model struct {
	ctrl    *overlay.Controller
	keys    KeyMap
	width   int
	focused bool
	prompt  string
}

// New creates an omnibar around an already-wired controller.
func New(ctrl *overlay.Controller) Model {
	return Model{
		ctrl:   ctrl,
		keys:   DefaultKeyMap(),
		width:  80,
		prompt: "» ",
	}
}

// Controller exposes the underlying overlay controller.
func (m Model) Controller() *overlay.Controller { return m.ctrl }

// Focused reports whether the omnibar has focus.
func (m Model) Focused() bool { return m.focused }

// Focus gives the omnibar focus. A direct interaction with the field always
// lands on committed text, so any active suggestion is applied first.
func (m *Model) Focus() {
	m.focused = true
	m.ctrl.HandleCommitGesture()
	m.ctrl.HandleBeginEditing()
}

// Blur removes focus.
func (m *Model) Blur() {
	m.focused = false
}

// SetWidth updates the rendered width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetSuggestion forwards a completion candidate to the controller. Stale
// candidates are rejected there, so callers need no query bookkeeping.
func (m *Model) SetSuggestion(suggestion string) {
	m.ctrl.SetSuggestion(suggestion)
}

// Update handles key input while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.ctrl.HandleLeftEdge()

	case key.Matches(keyMsg, m.keys.Right):
		m.ctrl.HandleRightEdge()

	case key.Matches(keyMsg, m.keys.Delete):
		m.ctrl.HandleDeleteBackward()

	case key.Matches(keyMsg, m.keys.Commit):
		m.ctrl.HandleCommitGesture()

	case key.Matches(keyMsg, m.keys.Return):
		if m.ctrl.ShouldReturn() {
			url := m.ctrl.Text()
			if url != "" {
				return m, func() tea.Msg { return NavigateMsg{URL: url} }
			}
		}

	case key.Matches(keyMsg, m.keys.Clear):
		if m.ctrl.ShouldClear() {
			m.ctrl.SetTextWithoutSearching("")
			return m, func() tea.Msg { return ClearedMsg{} }
		}

	case key.Matches(keyMsg, m.keys.Cancel):
		m.ctrl.HandleCancel()

	case key.Matches(keyMsg, m.keys.PasteAndGo):
		m.ctrl.HandlePasteAndGo()

	case key.Matches(keyMsg, m.keys.Compose):
		if m.ctrl.Composing() {
			m.ctrl.OnCompositionEnded()
		} else {
			m.ctrl.OnCompositionWillBegin()
		}

	default:
		if keyMsg.Type == tea.KeyRunes {
			m.ctrl.InsertText(string(keyMsg.Runes))
		} else if keyMsg.Type == tea.KeySpace {
			m.ctrl.InsertText(" ")
		}
	}

	return m, nil
}

// View renders the omnibar in a bordered box.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.prompt))

	runes := []rune(m.ctrl.Text())
	cur := m.ctrl.Cursor()
	if cur > len(runes) {
		cur = len(runes)
	}

	b.WriteString(textStyle.Render(string(runes[:cur])))

	caretVisible := m.focused && !m.ctrl.CursorHidden()
	switch {
	case caretVisible && cur < len(runes):
		b.WriteString(caretStyle.Render(string(runes[cur])))
		b.WriteString(textStyle.Render(string(runes[cur+1:])))
	case caretVisible:
		b.WriteString(caretStyle.Render(" "))
	default:
		b.WriteString(textStyle.Render(string(runes[cur:])))
	}

	if completion := m.ctrl.Completion(); completion != "" {
		b.WriteString(ghostStyle.Render(completion))
	}
	if m.ctrl.Composing() {
		b.WriteString(composeStyle.Render(" [compose]"))
	}

	line := b.String()
	if m.ctrl.ShowClear() {
		affordance := clearStyle.Render("✕")
		if pad := m.width - 6 - lipgloss.Width(line) - runewidth.StringWidth("✕"); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		line += affordance
	}

	return borderStyle.Width(m.width - 2).Render(line)
}

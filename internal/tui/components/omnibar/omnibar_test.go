package omnibar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wisp/internal/overlay"
)

func newTestBar() Model {
	m := New(overlay.New(nil, nil))
	m.Focus()
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Msg) {
	t.Helper()
	m, cmd := m.Update(msg)
	if cmd == nil {
		return m, nil
	}
	return m, cmd()
}

func TestTyping_InsertsRunes(t *testing.T) {
	m := newTestBar()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, "go ", m.Controller().Text())
}

func TestTabCommitsSuggestion(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})
	m.SetSuggestion("google.com")
	require.True(t, m.Controller().OverlayActive())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Equal(t, "google.com", m.Controller().Text())
	assert.False(t, m.Controller().OverlayActive())
}

func TestBackspaceDismissesSuggestionFirst(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})
	m.SetSuggestion("google.com")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "goo", m.Controller().Text())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "go", m.Controller().Text())
}

func TestEnterEmitsNavigateWithCommittedText(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})
	m.SetSuggestion("google.com")

	_, out := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.IsType(t, NavigateMsg{}, out)
	assert.Equal(t, "google.com", out.(NavigateMsg).URL, "return commits the overlay before navigating")
}

func TestEnterOnEmptyFieldDoesNothing(t *testing.T) {
	m := newTestBar()

	_, out := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, out)
}

func TestClearEmitsClearedAndEmptiesField(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})

	m, out := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU})

	assert.IsType(t, ClearedMsg{}, out)
	assert.Equal(t, "", m.Controller().Text())
}

func TestArrowsCommitOverlay(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})
	m.SetSuggestion("google.com")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, "google.com", m.Controller().Text())
	assert.Equal(t, 10, m.Controller().Cursor())
}

func TestComposeModeSuppressesSuggestions(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.True(t, m.Controller().Composing())

	m.SetSuggestion("google.com")
	assert.False(t, m.Controller().OverlayActive())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.False(t, m.Controller().Composing())
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New(overlay.New(nil, nil))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})

	assert.Equal(t, "", m.Controller().Text())
}

func TestFocusCommitsPendingSuggestion(t *testing.T) {
	m := New(overlay.New(nil, nil))
	m.Focus()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})
	m.SetSuggestion("google.com")
	m.Blur()

	m.Focus()

	assert.Equal(t, "google.com", m.Controller().Text(), "a tap lands on committed text")
}

func TestView_RendersGhostAndClearAffordance(t *testing.T) {
	m := newTestBar()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("goo")})
	m.SetSuggestion("google.com")

	view := m.View()

	assert.Contains(t, view, "goo")
	assert.Contains(t, view, "gle.com")
}

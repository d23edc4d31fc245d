package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatuslineMessageType represents the type of statusline message
type StatuslineMessageType int

const (
	StatuslineInfo StatuslineMessageType = iota
	StatuslineError
)

// StatuslineMessage represents a message to display in the statusline
type StatuslineMessage struct {
	Type     StatuslineMessageType
	Text     string
	Duration time.Duration
	ShowTime time.Time
}

// StatuslineComponent handles the rendering of the statusline
type StatuslineComponent struct {
	message *StatuslineMessage
	width   int
}

// NewStatuslineComponent creates a new statusline component
func NewStatuslineComponent(width int) *StatuslineComponent {
	return &StatuslineComponent{width: width}
}

// Info shows a transient info message.
func (s *StatuslineComponent) Info(text string, d time.Duration) {
	s.message = &StatuslineMessage{Type: StatuslineInfo, Text: text, Duration: d, ShowTime: time.Now()}
}

// Error shows a transient error message.
func (s *StatuslineComponent) Error(text string, d time.Duration) {
	s.message = &StatuslineMessage{Type: StatuslineError, Text: text, Duration: d, ShowTime: time.Now()}
}

// ClearMessage clears the current message
func (s *StatuslineComponent) ClearMessage() {
	s.message = nil
}

// HasExpired checks if the current message has expired
func (s *StatuslineComponent) HasExpired() bool {
	if s.message == nil || s.message.Duration == 0 {
		return false
	}
	return time.Since(s.message.ShowTime) > s.message.Duration
}

// SetWidth updates the width of the statusline
func (s *StatuslineComponent) SetWidth(width int) {
	s.width = width
}

// Render renders the statusline
func (s *StatuslineComponent) Render() string {
	if s.message == nil || s.HasExpired() {
		return lipgloss.NewStyle().
			Background(lipgloss.Color("0")).
			Width(s.width).
			Render(" ")
	}

	fg := lipgloss.Color("252")
	if s.message.Type == StatuslineError {
		fg = lipgloss.Color("196")
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(lipgloss.Color("0")).
		Width(s.width).
		Padding(0, 1).
		Render(s.message.Text)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// sender forwards messages into the running Bubble Tea program. The program
// handle only exists after the model is built, so the runner wires the send
// function in just before Run.
type sender struct {
	send func(tea.Msg)
}

func (s *sender) Send(msg tea.Msg) {
	if s.send != nil {
		s.send(msg)
	}
}

// appDelegate translates overlay.Delegate notifications into Bubble Tea
// messages so they are handled on the update loop.
type appDelegate struct {
	out *sender
}

func (d *appDelegate) OnTextEntered(normalized string) { d.out.Send(QueryMsg{Query: normalized}) }
func (d *appDelegate) ShouldReturn() bool              { return true }
func (d *appDelegate) ShouldClear() bool               { return true }
func (d *appDelegate) OnBeginEditing()                 { d.out.Send(BeginEditingMsg{}) }
func (d *appDelegate) OnCancel()                       { d.out.Send(CancelMsg{}) }
func (d *appDelegate) OnPasteAndGo()                   { d.out.Send(PasteAndGoMsg{}) }

// debounceFiredMsg trampolines a scheduled callback onto the update loop.
type debounceFiredMsg struct {
	fn func()
}

// debounceScheduler is the overlay.Scheduler used by the TUI. The timer
// fires on its own goroutine, but the callback itself runs inside Update via
// debounceFiredMsg, so the controller is only ever touched on the loop.
type debounceScheduler struct {
	delay time.Duration
	out   *sender
	timer *time.Timer
}

func (s *debounceScheduler) Schedule(fn func()) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		s.out.Send(debounceFiredMsg{fn: fn})
	})
}

func (s *debounceScheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

package overlay

import (
	"sync"
	"time"
)

// Scheduler defers a single callback until a quiet period has elapsed.
// Scheduling again before the callback fires cancels the prior one, so a
// burst of calls collapses to one callback after the burst ends.
type Scheduler interface {
	Schedule(fn func())
	Stop()
}

// TimerScheduler is the production Scheduler, backed by time.AfterFunc.
// The callback fires on the timer's goroutine; hosts that require all
// controller access on one event loop should trampoline the callback back
// onto that loop before it touches shared state.
type TimerScheduler struct {
	Delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler creates a scheduler with the given quiet period.
func NewTimerScheduler(delay time.Duration) *TimerScheduler {
	return &TimerScheduler{Delay: delay}
}

func (s *TimerScheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.Delay, fn)
}

func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

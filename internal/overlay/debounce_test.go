package overlay

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerScheduler_RescheduleCancelsPrior(t *testing.T) {
	s := NewTimerScheduler(30 * time.Millisecond)
	var fired atomic.Int32

	s.Schedule(func() { fired.Add(1) })
	s.Schedule(func() { fired.Add(1) })
	s.Schedule(func() { fired.Add(1) })

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestTimerScheduler_StopCancelsPending(t *testing.T) {
	s := NewTimerScheduler(20 * time.Millisecond)
	var fired atomic.Int32

	s.Schedule(func() { fired.Add(1) })
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

package scroll

import (
	"sync"
	"time"
)

// Scheduler schedules one-shot callbacks. The default implementation uses
// the runtime timer heap; tests inject a manual scheduler via SetScheduler
// to control delayed activations deterministically.
type Scheduler interface {
	// After runs fn once after d. The returned cancel stops the callback
	// if it has not fired yet and is safe to call more than once.
	After(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler runs callbacks on runtime timers.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, fn)
	return func() { timer.Stop() }
}

var (
	schedulerMu sync.RWMutex
	scheduler   Scheduler = TimerScheduler{}
)

// SetScheduler replaces the package scheduler. Returns the previous
// scheduler so callers can restore it during cleanup. Pass nil to restore
// the default TimerScheduler.
func SetScheduler(s Scheduler) Scheduler {
	schedulerMu.Lock()
	defer schedulerMu.Unlock()
	prev := scheduler
	if s == nil {
		s = TimerScheduler{}
	}
	scheduler = s
	return prev
}

func currentScheduler() Scheduler {
	schedulerMu.RLock()
	defer schedulerMu.RUnlock()
	return scheduler
}

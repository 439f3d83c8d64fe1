package scrolltest

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler implements scroll.Scheduler with a controllable clock.
// Scheduled callbacks fire only when Advance moves the clock past their due
// time, in due order. All methods are safe for concurrent use.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	tasks  map[int]*manualTask
}

type manualTask struct {
	id  int
	due time.Time
	fn  func()
}

// NewManualScheduler returns a ManualScheduler starting at a fixed epoch.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{
		now:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		tasks: make(map[int]*manualTask),
	}
}

// Now returns the current fake time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// After schedules fn to fire once the clock reaches now+d. The returned
// cancel removes the task if it has not fired yet.
func (s *ManualScheduler) After(d time.Duration, fn func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.tasks[id] = &manualTask{id: id, due: s.now.Add(d), fn: fn}
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.tasks, id)
		s.mu.Unlock()
	}
}

// Pending returns the number of tasks that have not fired or been cancelled.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Advance moves the clock forward by d and fires every task whose due time
// has been reached, in due order. Callbacks run without the scheduler lock
// held, so they may schedule or cancel further tasks.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	due := make([]*manualTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		if !task.due.After(s.now) {
			due = append(due, task)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})
	for _, task := range due {
		delete(s.tasks, task.id)
	}
	s.mu.Unlock()

	for _, task := range due {
		task.fn()
	}
}

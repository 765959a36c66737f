package retained

import (
	"sync"
	"time"
)

// DefaultDebounce is the window within which successive mutations coalesce
// into a single layout pass. Chosen to align with a typical display refresh.
const DefaultDebounce = 16 * time.Millisecond

// scheduler is a single-shot debounce timer: arm on mutation, fire once
// after the interval, re-arm (resetting the countdown) on each new
// mutation. There is no periodic schedule; an idle container costs nothing.
type scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	fire     func()
	timer    *time.Timer
	stopped  bool
}

func newScheduler(interval time.Duration, fire func()) *scheduler {
	return &scheduler{interval: interval, fire: fire}
}

// arm starts or restarts the countdown.
func (s *scheduler) arm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.fire)
}

// stop cancels any pending fire. The scheduler cannot be re-armed after.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

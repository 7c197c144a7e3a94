// ABOUTME: Deferred-callback scheduling for post-mount measurement
// ABOUTME: TimerScheduler waits one frame interval; ManualScheduler runs frames on demand in tests

package anchor

import (
	"sync"
	"time"
)

// DefaultFrameInterval is the delay TimerScheduler uses when none is set,
// roughly one frame at 60 fps.
const DefaultFrameInterval = 16 * time.Millisecond

// Frame is a scheduled callback that has not necessarily run yet.
type Frame interface {
	// Cancel prevents the callback from running if it has not started.
	// Safe to call more than once.
	Cancel()
}

// Scheduler defers a callback to "after the next render".
type Scheduler interface {
	Schedule(fn func()) Frame
}

// TimerScheduler runs callbacks on a timer goroutine after Interval.
type TimerScheduler struct {
	Interval time.Duration
}

// Schedule implements Scheduler.
func (s TimerScheduler) Schedule(fn func()) Frame {
	d := s.Interval
	if d <= 0 {
		d = DefaultFrameInterval
	}
	return timerFrame{t: time.AfterFunc(d, fn)}
}

type timerFrame struct {
	t *time.Timer
}

func (f timerFrame) Cancel() {
	f.t.Stop()
}

// ManualScheduler queues callbacks until Flush or FireAll is called.
type ManualScheduler struct {
	mu     sync.Mutex
	frames []*manualFrame
}

type manualFrame struct {
	s         *ManualScheduler
	fn        func()
	cancelled bool
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (s *ManualScheduler) Schedule(fn func()) Frame {
	f := &manualFrame{s: s, fn: fn}
	s.mu.Lock()
	s.frames = append(s.frames, f)
	s.mu.Unlock()
	return f
}

func (f *manualFrame) Cancel() {
	f.s.mu.Lock()
	f.cancelled = true
	f.s.mu.Unlock()
}

// Len returns the number of queued frames that have not been cancelled.
func (s *ManualScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, f := range s.frames {
		if !f.cancelled {
			n++
		}
	}
	return n
}

// Flush runs every queued frame that was not cancelled and returns how many
// ran. Frames scheduled by those callbacks wait for the next Flush.
func (s *ManualScheduler) Flush() int {
	return s.run(false)
}

// FireAll runs every queued frame including cancelled ones, simulating a
// callback that was already in flight when Cancel was called.
func (s *ManualScheduler) FireAll() int {
	return s.run(true)
}

func (s *ManualScheduler) run(includeCancelled bool) int {
	s.mu.Lock()
	queue := s.frames
	s.frames = nil
	s.mu.Unlock()

	ran := 0
	for _, f := range queue {
		s.mu.Lock()
		skip := f.cancelled && !includeCancelled
		s.mu.Unlock()
		if skip {
			continue
		}
		f.fn()
		ran++
	}
	return ran
}

// ABOUTME: Bubble Tea scheduler for post-mount measurement frames
// ABOUTME: Each frame becomes a tea.Tick yielding FrameMsg; Dispatch runs it on the Update goroutine

package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/apuya/react-basics-ui-sub003/pkg/tui/anchor"
)

// FrameMsg tells the model that frame ID is due.
type FrameMsg struct {
	ID uint64
}

// FrameScheduler implements anchor.Scheduler for Bubble Tea programs.
// Schedule queues a tick command; the model returns Cmd() from Update and
// forwards FrameMsg to Dispatch, so frame callbacks run between renders.
type FrameScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	nextID   uint64
	frames   map[uint64]func()
	queued   []tea.Cmd
}

// NewFrameScheduler creates a scheduler that delivers frames after interval.
func NewFrameScheduler(interval time.Duration) *FrameScheduler {
	if interval <= 0 {
		interval = anchor.DefaultFrameInterval
	}
	return &FrameScheduler{
		interval: interval,
		frames:   make(map[uint64]func()),
	}
}

// SetInterval changes the delay for frames scheduled from now on. Ticks
// already queued keep their delay. Non-positive values are ignored.
func (s *FrameScheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

// Interval returns the current frame delay.
func (s *FrameScheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

type teaFrame struct {
	s  *FrameScheduler
	id uint64
}

func (f teaFrame) Cancel() {
	f.s.mu.Lock()
	delete(f.s.frames, f.id)
	f.s.mu.Unlock()
}

// Schedule implements anchor.Scheduler.
func (s *FrameScheduler) Schedule(fn func()) anchor.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.frames[id] = fn
	s.queued = append(s.queued, tea.Tick(s.interval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	}))
	return teaFrame{s: s, id: id}
}

// Cmd drains the tick commands queued since the last call.
func (s *FrameScheduler) Cmd() tea.Cmd {
	s.mu.Lock()
	queued := s.queued
	s.queued = nil
	s.mu.Unlock()
	return tea.Batch(queued...)
}

// Dispatch runs the frame named by msg unless it was cancelled. It reports
// whether a callback ran.
func (s *FrameScheduler) Dispatch(msg FrameMsg) bool {
	s.mu.Lock()
	fn, ok := s.frames[msg.ID]
	delete(s.frames, msg.ID)
	s.mu.Unlock()

	if !ok {
		return false
	}
	fn()
	return true
}

// Pending returns the number of frames scheduled and not yet run or cancelled.
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames)
}

package timer

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to a bubbletea Update when a TeaScheduler timer
// elapses. Pass it to TeaScheduler.Fire.
type FiredMsg struct {
	ID uint64
}

// TeaScheduler turns Schedule calls into tea.Tick commands. Callbacks run
// inside Update when the matching FiredMsg arrives, so cancellation is a
// synchronous map delete and callbacks never race the model.
type TeaScheduler struct {
	mu      sync.Mutex
	next    uint64
	pending map[uint64]*teaTimer
	queued  []tea.Cmd
}

type teaTimer struct {
	entry
	s  *TeaScheduler
	id uint64
	fn func()
}

func (t *teaTimer) Cancel() bool {
	if !t.cancel() {
		return false
	}
	t.s.mu.Lock()
	delete(t.s.pending, t.id)
	t.s.mu.Unlock()
	return true
}

// NewTeaScheduler creates an empty scheduler.
func NewTeaScheduler() *TeaScheduler {
	return &TeaScheduler{pending: make(map[uint64]*teaTimer)}
}

// Schedule implements Scheduler. The tick command is queued until Flush.
func (s *TeaScheduler) Schedule(d time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	id := s.next
	t := &teaTimer{s: s, id: id, fn: fn}
	s.pending[id] = t
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id}
	}))
	return t
}

// Flush returns the tick commands queued since the last Flush, batched, or
// nil when nothing was scheduled.
func (s *TeaScheduler) Flush() tea.Cmd {
	s.mu.Lock()
	cmds := s.queued
	s.queued = nil
	s.mu.Unlock()
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Fire runs the callback for msg if it is still pending and reports whether
// it ran. Canceled and unknown timers are ignored.
func (s *TeaScheduler) Fire(msg FiredMsg) bool {
	s.mu.Lock()
	t, ok := s.pending[msg.ID]
	delete(s.pending, msg.ID)
	s.mu.Unlock()
	if !ok || !t.claim() {
		return false
	}
	if t.fn != nil {
		t.fn()
	}
	return true
}

// Pending counts armed timers.
func (s *TeaScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

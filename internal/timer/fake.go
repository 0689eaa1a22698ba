package timer

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced clock for tests. Callbacks run synchronously
// inside Advance, in deadline order; ties run in scheduling order.
type Fake struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*fakeTimer
}

type fakeTimer struct {
	entry
	at  time.Duration
	seq int
	fn  func()
}

func (t *fakeTimer) Cancel() bool { return t.cancel() }

// NewFake returns a clock at time zero.
func NewFake() *Fake { return &Fake{} }

// Schedule implements Scheduler.
func (f *Fake) Schedule(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{at: f.now + d, seq: f.seq, fn: fn}
	f.pending = append(f.pending, t)
	return t
}

// Now returns the elapsed fake time.
func (f *Fake) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Pending counts callbacks that are armed and not canceled.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.pending {
		t.mu.Lock()
		if !t.canceled && !t.fired {
			n++
		}
		t.mu.Unlock()
	}
	return n
}

// Advance moves the clock forward by d, running every callback that comes
// due, including callbacks scheduled by earlier callbacks within the window.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		next := f.popDue(target)
		if next == nil {
			break
		}
		if next.claim() && next.fn != nil {
			next.fn()
		}
	}

	f.mu.Lock()
	f.now = target
	f.mu.Unlock()
}

func (f *Fake) popDue(target time.Duration) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	sort.SliceStable(f.pending, func(i, j int) bool {
		if f.pending[i].at != f.pending[j].at {
			return f.pending[i].at < f.pending[j].at
		}
		return f.pending[i].seq < f.pending[j].seq
	})
	if len(f.pending) == 0 || f.pending[0].at > target {
		return nil
	}
	next := f.pending[0]
	f.pending = f.pending[1:]
	if next.at > f.now {
		f.now = next.at
	}
	return next
}

package timer

import (
	"sync"
	"time"
)

// Loop measures delays with real timers but hands elapsed callbacks back to
// the caller's event loop. The timer goroutine only queues the callback and
// signals Ready; nothing runs until the loop calls RunDue.
//
//	for {
//		select {
//		case <-loop.Ready():
//			loop.RunDue()
//		case ev := <-events:
//			handle(ev)
//		}
//	}
type Loop struct {
	mu    sync.Mutex
	due   []*loopTimer
	ready chan struct{}
}

type loopTimer struct {
	entry
	t  *time.Timer
	fn func()
}

func (t *loopTimer) Cancel() bool {
	if !t.cancel() {
		return false
	}
	t.t.Stop()
	return true
}

// NewLoop creates an empty Loop.
func NewLoop() *Loop {
	return &Loop{ready: make(chan struct{}, 1)}
}

// Schedule implements Scheduler.
func (l *Loop) Schedule(d time.Duration, fn func()) Token {
	lt := &loopTimer{fn: fn}
	lt.t = time.AfterFunc(d, func() { l.enqueue(lt) })
	return lt
}

func (l *Loop) enqueue(lt *loopTimer) {
	l.mu.Lock()
	l.due = append(l.due, lt)
	l.mu.Unlock()
	select {
	case l.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value whenever at least one callback has come due since
// the last RunDue.
func (l *Loop) Ready() <-chan struct{} { return l.ready }

// RunDue runs the elapsed callbacks on the calling goroutine, in the order
// they came due, and returns how many ran. Callbacks canceled after their
// delay elapsed are skipped. Callbacks scheduled by a running callback wait
// for a later RunDue.
func (l *Loop) RunDue() int {
	l.mu.Lock()
	batch := l.due
	l.due = nil
	l.mu.Unlock()

	n := 0
	for _, lt := range batch {
		if !lt.claim() {
			continue
		}
		if lt.fn != nil {
			lt.fn()
		}
		n++
	}
	return n
}

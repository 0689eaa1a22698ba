// Package timer provides cancelable one-shot timers behind an interface so
// that the overlay controller runs the same way on a real event loop, under a
// bubbletea program and in tests.
package timer

import (
	"sync"
	"time"
)

// Token is a handle on a scheduled callback.
type Token interface {
	// Cancel prevents the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}

// Scheduler arms one-shot callbacks.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Token
}

// Func adapts a function to Scheduler.
type Func func(d time.Duration, fn func()) Token

// Schedule implements Scheduler.
func (f Func) Schedule(d time.Duration, fn func()) Token { return f(d, fn) }

// Real schedules callbacks on time.AfterFunc. Callbacks run on their own
// goroutine, so it is only safe for callers that lock around every call into
// the code they schedule. Overlay controllers default to Loop instead.
type Real struct{}

// Schedule implements Scheduler.
func (Real) Schedule(d time.Duration, fn func()) Token {
	return realToken{time.AfterFunc(d, fn)}
}

type realToken struct{ t *time.Timer }

func (r realToken) Cancel() bool { return r.t.Stop() }

// Cancel is a nil-safe tok.Cancel.
func Cancel(tok Token) bool {
	if tok == nil {
		return false
	}
	return tok.Cancel()
}

var (
	defaultLoop     *Loop
	defaultLoopOnce sync.Once
)

// Default returns the process-wide Loop. Its callbacks only run when the
// owning event loop calls RunDue.
func Default() *Loop {
	defaultLoopOnce.Do(func() { defaultLoop = NewLoop() })
	return defaultLoop
}

// entry is the cancel/fire bookkeeping shared by the in-process schedulers.
type entry struct {
	mu       sync.Mutex
	canceled bool
	fired    bool
}

func (e *entry) claim() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.canceled || e.fired {
		return false
	}
	e.fired = true
	return true
}

func (e *entry) cancel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.canceled || e.fired {
		return false
	}
	e.canceled = true
	return true
}

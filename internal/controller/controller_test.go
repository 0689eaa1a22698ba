package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/keepopen"
	"github.com/alexisbeaulieu97/overlay/internal/timer"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

type transition struct{ from, to State }

func newController(t *testing.T, opts Options) (*Controller, *timer.Fake, *[]transition) {
	t.Helper()
	clock := timer.NewFake()
	opts.Scheduler = clock
	c := New(opts)
	var seen []transition
	c.Subscribe(func(from, to State) { seen = append(seen, transition{from, to}) })
	return c, clock, &seen
}

func TestShowDelayCanceledByClose(t *testing.T) {
	c, clock, seen := newController(t, Options{ShowDelay: 200 * time.Millisecond})

	c.OnOpenIntent()
	assert.Equal(t, PendingOpen, c.State())

	clock.Advance(100 * time.Millisecond)
	c.OnCloseIntent()
	assert.Equal(t, Closed, c.State())

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, Closed, c.State())
	assert.Zero(t, clock.Pending())
	assert.Equal(t, []transition{{Closed, PendingOpen}, {PendingOpen, Closed}}, *seen)
}

func TestShowDelayOpensWhenTimerFires(t *testing.T) {
	c, clock, _ := newController(t, Options{ShowDelay: 200 * time.Millisecond})

	c.OnOpenIntent()
	clock.Advance(150 * time.Millisecond)
	c.OnOpenIntent()
	assert.Equal(t, 1, clock.Pending(), "repeated open intent must not re-arm")

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, Open, c.State(), "original deadline preserved")
}

func TestZeroDelaysAreSynchronous(t *testing.T) {
	c, clock, seen := newController(t, Options{})

	c.OnOpenIntent()
	assert.Equal(t, Open, c.State())
	c.OnCloseIntent()
	assert.Equal(t, Closed, c.State())
	assert.Zero(t, clock.Pending())
	assert.Equal(t, []transition{{Closed, Open}, {Open, Closed}}, *seen)
}

func TestHideDelayCanceledByReentry(t *testing.T) {
	c, clock, _ := newController(t, Options{HideDelay: 300 * time.Millisecond})

	c.OnOpenIntent()
	c.OnCloseIntent()
	assert.Equal(t, PendingClose, c.State())
	assert.True(t, c.Visible())

	clock.Advance(200 * time.Millisecond)
	c.OnOpenIntent()
	assert.Equal(t, Open, c.State())

	clock.Advance(time.Second)
	assert.Equal(t, Open, c.State())
	assert.Zero(t, clock.Pending())
}

func TestRepeatedCloseKeepsDeadline(t *testing.T) {
	c, clock, _ := newController(t, Options{HideDelay: 300 * time.Millisecond})

	c.OnOpenIntent()
	c.OnCloseIntent()
	clock.Advance(250 * time.Millisecond)
	c.OnCloseIntent()
	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, Closed, c.State())
}

func TestKeepOpenPolicyDefersClose(t *testing.T) {
	hovering := true
	c, clock, _ := newController(t, Options{
		HideDelay: 300 * time.Millisecond,
		KeepOpen:  keepopen.Manual(func() bool { return hovering }),
	})

	c.OnOpenIntent()
	c.OnCloseIntent()

	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, PendingClose, c.State())

	clock.Advance(2 * time.Second)
	assert.Equal(t, PendingClose, c.State(), "stays visible while the policy votes true")
	assert.Equal(t, 1, clock.Pending(), "exactly one poll armed")

	hovering = false
	clock.Advance(DefaultFrameInterval)
	assert.Equal(t, Closed, c.State(), "closes within one polling interval")
	assert.Zero(t, clock.Pending())
}

func TestKeepOpenWithZeroHideDelayPolls(t *testing.T) {
	hovering := true
	c, clock, _ := newController(t, Options{
		FrameInterval: 10 * time.Millisecond,
		KeepOpen:      keepopen.Manual(func() bool { return hovering }),
	})

	c.OnOpenIntent()
	c.OnCloseIntent()
	assert.Equal(t, PendingClose, c.State())

	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, PendingClose, c.State())

	hovering = false
	clock.Advance(10 * time.Millisecond)
	assert.Equal(t, Closed, c.State())
}

func TestReentryDuringPollingCancelsPoll(t *testing.T) {
	c, clock, _ := newController(t, Options{
		HideDelay: 100 * time.Millisecond,
		KeepOpen:  keepopen.Manual(func() bool { return true }),
	})

	c.OnOpenIntent()
	c.OnCloseIntent()
	clock.Advance(150 * time.Millisecond)
	require.Equal(t, PendingClose, c.State())

	c.OnOpenIntent()
	assert.Equal(t, Open, c.State())
	assert.Zero(t, clock.Pending())
}

func TestForceClose(t *testing.T) {
	c, clock, seen := newController(t, Options{
		HideDelay: 300 * time.Millisecond,
		KeepOpen:  keepopen.Manual(func() bool { return true }),
	})

	c.ForceClose()
	assert.Equal(t, Closed, c.State())
	assert.Empty(t, *seen, "force close on closed controller is a no-op")
	assert.Zero(t, clock.Pending())

	c.OnOpenIntent()
	c.OnCloseIntent()
	c.ForceClose()
	assert.Equal(t, Closed, c.State())
	assert.Zero(t, clock.Pending())

	c.ForceClose()
	assert.Zero(t, clock.Pending())
}

func TestUnsubscribe(t *testing.T) {
	c := New(Options{Scheduler: timer.NewFake()})
	calls := 0
	unsubscribe := c.Subscribe(func(State, State) { calls++ })
	keep := 0
	c.Subscribe(func(State, State) { keep++ })
	c.Subscribe(nil)

	c.OnOpenIntent()
	unsubscribe()
	unsubscribe()
	c.OnCloseIntent()

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, keep)
}

func TestDestroyCancelsTimersAndPanicsAfterwards(t *testing.T) {
	c, clock, seen := newController(t, Options{ShowDelay: 50 * time.Millisecond, Name: "tooltip"})

	c.OnOpenIntent()
	c.Destroy()
	c.Destroy()
	assert.True(t, c.Destroyed())
	assert.Zero(t, clock.Pending())

	clock.Advance(time.Second)
	assert.Len(t, *seen, 1, "no callback fires after destroy")

	for name, op := range map[string]func(){
		"OnOpenIntent":  c.OnOpenIntent,
		"OnCloseIntent": c.OnCloseIntent,
		"ForceClose":    c.ForceClose,
		"State":         func() { _ = c.State() },
		"Subscribe":     func() { c.Subscribe(func(State, State) {}) },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				var destroyed *overlayerrors.DestroyedError
				require.True(t, errors.As(err, &destroyed))
				assert.Equal(t, "tooltip", destroyed.Component)
				assert.Equal(t, name, destroyed.Op)
			}()
			op()
		})
	}
}

func TestListenerMayDestroy(t *testing.T) {
	c := New(Options{Scheduler: timer.NewFake()})
	second := false
	c.Subscribe(func(State, State) { c.Destroy() })
	c.Subscribe(func(State, State) { second = true })

	c.OnOpenIntent()
	assert.False(t, second)
	assert.True(t, c.Destroyed())
}

func TestDefaultSchedulerRunsOnCallerLoop(t *testing.T) {
	c := New(Options{ShowDelay: time.Millisecond})
	loop := timer.Default()
	c.OnOpenIntent()

	deadline := time.After(time.Second)
	for c.State() == PendingOpen {
		select {
		case <-loop.Ready():
			assert.Equal(t, PendingOpen, c.State(), "elapsed timers wait for RunDue")
			loop.RunDue()
		case <-deadline:
			t.Fatal("show delay never came due")
		}
	}
	assert.Equal(t, Open, c.State())

	c.OnCloseIntent()
	assert.Equal(t, Closed, c.State())
	c.Destroy()
}

func TestDefaultSchedulerSkipsDestroyedControllers(t *testing.T) {
	c := New(Options{ShowDelay: time.Millisecond})
	loop := timer.Default()
	c.OnOpenIntent()

	time.Sleep(5 * time.Millisecond)
	c.Destroy()
	loop.RunDue()
	assert.True(t, c.Destroyed())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending-close", PendingClose.String())
	assert.Equal(t, "State(9)", State(9).String())
	assert.False(t, PendingOpen.Visible())
}

// Package controller implements the open/close state machine shared by every
// overlay. It consumes open and close intents, owns the show and hide delay
// timers and consults a keep-open policy before it lets an overlay close.
//
// A Controller is driven from a single event loop goroutine. Timer callbacks
// must be delivered on that same loop (see timer.TeaScheduler and timer.Loop).
package controller

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/overlay/internal/keepopen"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/timer"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

// State is the controller phase.
type State int

const (
	Closed State = iota
	PendingOpen
	Open
	PendingClose
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case PendingOpen:
		return "pending-open"
	case Open:
		return "open"
	case PendingClose:
		return "pending-close"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Visible reports whether an overlay in this state is showing.
func (s State) Visible() bool { return s == Open || s == PendingClose }

// DefaultFrameInterval is the keep-open polling period.
const DefaultFrameInterval = 16 * time.Millisecond

// Options configures a Controller.
type Options struct {
	ShowDelay time.Duration
	HideDelay time.Duration
	// FrameInterval is how often the keep-open policy is polled once the
	// hide delay has elapsed. Defaults to DefaultFrameInterval.
	FrameInterval time.Duration
	KeepOpen      keepopen.Policy
	// Scheduler defaults to timer.Default, whose callbacks run only when the
	// event loop calls RunDue.
	Scheduler timer.Scheduler
	Logger        *logger.Logger
	// Name identifies the controller in logs and panics.
	Name string
}

// Listener observes state transitions.
type Listener func(from, to State)

type subscription struct {
	id int
	fn Listener
}

// Controller is the open/close state machine.
type Controller struct {
	opts  Options
	log   *logger.Logger
	state State

	show timer.Token
	hide timer.Token
	poll timer.Token
	// gen invalidates callbacks of timers that were canceled but had
	// already been dispatched.
	gen uint64

	subs      []subscription
	nextSubID int
	destroyed bool
}

// New creates a Closed controller.
func New(opts Options) *Controller {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.ShowDelay < 0 {
		opts.ShowDelay = 0
	}
	if opts.HideDelay < 0 {
		opts.HideDelay = 0
	}
	if opts.KeepOpen == nil {
		opts.KeepOpen = keepopen.Never()
	}
	if opts.Scheduler == nil {
		opts.Scheduler = timer.Default()
	}
	if opts.Name == "" {
		opts.Name = "controller"
	}
	return &Controller{
		opts: opts,
		log:  opts.Logger.WithComponent("controller").ForOverlay(opts.Name),
	}
}

// SetKeepOpen replaces the keep-open policy. A nil policy means Never.
func (c *Controller) SetKeepOpen(p keepopen.Policy) {
	c.abortIfDestroyed("SetKeepOpen")
	if p == nil {
		p = keepopen.Never()
	}
	c.opts.KeepOpen = p
}

// State returns the current phase.
func (c *Controller) State() State {
	c.abortIfDestroyed("State")
	return c.state
}

// Visible reports whether the overlay is Open or PendingClose.
func (c *Controller) Visible() bool { return c.State().Visible() }

// Destroyed reports whether Destroy was called.
func (c *Controller) Destroyed() bool { return c.destroyed }

// Subscribe registers fn for every transition and returns a function that
// removes it. Listeners run synchronously in subscription order.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.abortIfDestroyed("Subscribe")
	if fn == nil {
		return func() {}
	}
	c.nextSubID++
	id := c.nextSubID
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// OnOpenIntent handles a request to show the overlay.
func (c *Controller) OnOpenIntent() {
	c.abortIfDestroyed("OnOpenIntent")
	switch c.state {
	case Closed:
		if c.opts.ShowDelay == 0 {
			c.transition(Open, "open-intent")
			return
		}
		c.armShow()
		c.transition(PendingOpen, "open-intent")
	case PendingClose:
		c.cancelHide()
		c.transition(Open, "open-intent")
	}
}

// OnCloseIntent handles a request to hide the overlay.
func (c *Controller) OnCloseIntent() {
	c.abortIfDestroyed("OnCloseIntent")
	switch c.state {
	case PendingOpen:
		c.cancelShow()
		c.transition(Closed, "close-intent")
	case Open:
		if c.opts.HideDelay > 0 {
			c.armHide()
			c.transition(PendingClose, "close-intent")
			return
		}
		if c.opts.KeepOpen.ShouldStayOpen() {
			c.armPoll()
			c.transition(PendingClose, "close-intent")
			return
		}
		c.transition(Closed, "close-intent")
	}
}

// ForceClose closes immediately, ignoring delays and the keep-open policy.
// It does nothing when already Closed.
func (c *Controller) ForceClose() {
	c.abortIfDestroyed("ForceClose")
	if c.state == Closed {
		return
	}
	c.cancelShow()
	c.cancelHide()
	c.transition(Closed, "force-close")
}

// Destroy cancels every pending timer and drops all listeners. Any later use
// other than Destroy panics.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.cancelShow()
	c.cancelHide()
	c.destroyed = true
	c.subs = nil
	c.log.Debug("controller destroyed", "state", c.state.String())
}

func (c *Controller) transition(to State, cause string) {
	from := c.state
	if from == to {
		return
	}
	c.state = to
	c.log.Transition(from, to, cause)
	for _, s := range append([]subscription(nil), c.subs...) {
		if c.destroyed {
			return
		}
		s.fn(from, to)
	}
}

func (c *Controller) armShow() {
	if c.show != nil {
		return
	}
	gen := c.bump()
	c.show = c.opts.Scheduler.Schedule(c.opts.ShowDelay, func() {
		if c.destroyed || gen != c.gen || c.state != PendingOpen {
			return
		}
		c.show = nil
		c.transition(Open, "show-delay")
	})
}

func (c *Controller) armHide() {
	if c.hide != nil || c.poll != nil {
		return
	}
	gen := c.bump()
	c.hide = c.opts.Scheduler.Schedule(c.opts.HideDelay, func() {
		if c.destroyed || gen != c.gen || c.state != PendingClose {
			return
		}
		c.hide = nil
		c.settle("hide-delay")
	})
}

func (c *Controller) armPoll() {
	gen := c.bump()
	c.poll = c.opts.Scheduler.Schedule(c.opts.FrameInterval, func() {
		if c.destroyed || gen != c.gen || c.state != PendingClose {
			return
		}
		c.poll = nil
		c.settle("keep-open-released")
	})
}

// settle closes unless the keep-open policy still holds the overlay open, in
// which case it polls again next frame.
func (c *Controller) settle(cause string) {
	if c.opts.KeepOpen.ShouldStayOpen() {
		c.armPoll()
		return
	}
	c.transition(Closed, cause)
}

func (c *Controller) cancelShow() {
	if c.show != nil {
		c.show.Cancel()
		c.show = nil
		c.bump()
	}
}

func (c *Controller) cancelHide() {
	if c.hide != nil || c.poll != nil {
		timer.Cancel(c.hide)
		timer.Cancel(c.poll)
		c.hide, c.poll = nil, nil
		c.bump()
	}
}

func (c *Controller) bump() uint64 {
	c.gen++
	return c.gen
}

func (c *Controller) abortIfDestroyed(op string) {
	overlayerrors.AbortIfDestroyed(c.destroyed, c.opts.Name, op)
}

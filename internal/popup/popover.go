// Package popup composes the overlay engine into end-user widgets: a
// Popover that shows arbitrary content next to an anchor, and a Tooltip
// that renders themed text with an arrow.
package popup

import (
	"errors"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/overlay/internal/breakpoint"
	"github.com/alexisbeaulieu97/overlay/internal/controller"
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/host"
	"github.com/alexisbeaulieu97/overlay/internal/keepopen"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/mount"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/target"
	"github.com/alexisbeaulieu97/overlay/internal/timer"
	"github.com/alexisbeaulieu97/overlay/internal/trigger"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

// ContentFunc renders the floating content for the arrow the current
// placement calls for.
type ContentFunc func(arrow placement.Arrow) string

// Options configures a Popover.
type Options struct {
	// Target is the trigger target. Required.
	Target target.Target
	// PlacementTarget is what the box is positioned against. Defaults to
	// Target.
	PlacementTarget target.Target

	// Strategy overrides Placement and Offset when set.
	Strategy  placement.Strategy
	Placement placement.Placement
	Offset    float64

	ShowDelay     time.Duration
	HideDelay     time.Duration
	FrameInterval time.Duration

	// Trigger maps host events to intents. Defaults to
	// trigger.OnHoverOrFocus.
	Trigger trigger.Strategy
	// KeepOpen defaults to keepopen.NeverStrategy.
	KeepOpen     keepopen.Strategy
	ExtraRegions []host.Region
	// Tracker supplies pointer and focus state to keep-open policies.
	Tracker host.Tracker

	// Host defaults to mount.Default.
	Host *mount.Host
	// Scheduler defaults to timer.Default. Its callbacks run when the host
	// loop calls RunDue.
	Scheduler timer.Scheduler
	Logger    *logger.Logger

	// Display suppresses painting at viewport widths it rejects.
	Display  breakpoint.Rule
	Viewport func() geometry.Size
	// HiddenStyle, if set, paints the content through this style while the
	// popover waits out its show delay. Otherwise nothing paints until Open.
	HiddenStyle *lipgloss.Style

	Content ContentFunc
	Name    string
}

// Popover is a floating box bound to an anchor.
type Popover struct {
	opts     Options
	log      *logger.Logger
	ctrl     *controller.Controller
	host     *mount.Host
	surfaces trigger.Surfaces

	slot    mount.Slot
	hasSlot bool
	result  placement.Result

	unsubscribe func()
	unmounted   bool
}

// ErrNoTarget is returned when Options.Target is nil.
var ErrNoTarget = errors.New("popup: trigger target is required")

// ErrNoContent is returned when Options.Content is nil.
var ErrNoContent = errors.New("popup: content renderer is required")

// NewPopover validates opts and wires the controller, trigger and keep-open
// policy. The popover starts Closed with no slot reserved.
func NewPopover(opts Options) (*Popover, error) {
	if opts.Target == nil {
		return nil, ErrNoTarget
	}
	if opts.Content == nil {
		return nil, ErrNoContent
	}
	if opts.PlacementTarget == nil {
		opts.PlacementTarget = opts.Target
	}
	if opts.Strategy == nil {
		opts.Strategy = placement.New(opts.Placement, opts.Offset)
	}
	if opts.Trigger == nil {
		opts.Trigger = trigger.OnHoverOrFocus()
	}
	if opts.KeepOpen == nil {
		opts.KeepOpen = keepopen.NeverStrategy()
	}
	if opts.Host == nil {
		opts.Host = mount.Default()
	}
	if opts.Name == "" {
		opts.Name = "popover"
	}

	p := &Popover{
		opts: opts,
		log:  opts.Logger.WithComponent("popover").ForOverlay(opts.Name),
		host: opts.Host,
	}
	anchor := target.Region(opts.Target)
	floating := host.RectRegion(p.floatingBounds)
	p.surfaces = trigger.Surfaces{Anchor: anchor, Floating: floating, Tracker: opts.Tracker}

	p.ctrl = controller.New(controller.Options{
		ShowDelay:     opts.ShowDelay,
		HideDelay:     opts.HideDelay,
		FrameInterval: opts.FrameInterval,
		Scheduler:     opts.Scheduler,
		Logger:        opts.Logger,
		Name:          opts.Name,
		KeepOpen: opts.KeepOpen(keepopen.Surfaces{
			Anchor:   anchor,
			Floating: floating,
			Tracker:  opts.Tracker,
			Extra:    opts.ExtraRegions,
		}),
	})
	p.unsubscribe = p.ctrl.Subscribe(p.onTransition)
	return p, nil
}

// HandleEvent feeds a host event, already dispatched through the document,
// to the trigger wiring. Layout events reposition the box.
func (p *Popover) HandleEvent(ev host.Event) {
	p.abortIfUnmounted("HandleEvent")
	if p.ctrl.State() != controller.Closed && target.Resolve(p.opts.Target) == nil {
		p.log.Debug("trigger target detached, closing")
		p.ctrl.ForceClose()
		return
	}
	if !ev.Relayout() {
		p.opts.Trigger.Handle(ev, p.surfaces, p.ctrl)
	}
	p.Reposition()
}

// Reposition recomputes the box position from the current anchor, content
// and viewport, and applies it to the mounted node.
func (p *Popover) Reposition() {
	p.abortIfUnmounted("Reposition")
	if !p.hasSlot {
		return
	}
	state := p.ctrl.State()
	if state != controller.Closed && target.Resolve(p.opts.Target) == nil {
		p.log.Debug("trigger target detached, closing")
		p.ctrl.ForceClose()
		return
	}

	node := p.host.ContentsOf(p.slot)
	anchor, ok := target.Bounds(p.opts.PlacementTarget)
	if !ok {
		p.log.Debug("placement target unresolved, hiding")
		node.SetVisible(false)
		return
	}
	if !p.displayAllowed() {
		node.SetVisible(false)
		return
	}

	content, result := Layout(p.opts.Strategy, anchor, p.opts.Content)
	if state == controller.PendingOpen {
		if p.opts.HiddenStyle == nil {
			node.SetVisible(false)
			return
		}
		content = p.opts.HiddenStyle.Render(content)
	}

	p.result = result
	node.SetContent(content)
	node.SetOrigin(result.Origin)
	node.SetArrow(result.Arrow)
	node.SetVisible(true)
}

// Layout measures content, places it with strategy and re-renders if the
// chosen placement calls for a different arrow.
func Layout(strategy placement.Strategy, anchor geometry.Rect, content ContentFunc) (string, placement.Result) {
	rendered := content(placement.NoArrow)
	result := strategy.Compute(anchor, measure(rendered))

	rendered = content(result.Arrow)
	settled := strategy.Compute(anchor, measure(rendered))
	if settled.Arrow != result.Arrow {
		rendered = content(settled.Arrow)
	}
	return rendered, settled
}

func (p *Popover) displayAllowed() bool {
	if p.opts.Display == nil || p.opts.Viewport == nil {
		return true
	}
	return p.opts.Display.Allows(int(p.opts.Viewport().Width))
}

func (p *Popover) floatingBounds() (geometry.Rect, bool) {
	if p.unmounted || !p.hasSlot || !p.host.Holds(p.slot) {
		return geometry.Rect{}, false
	}
	node := p.host.ContentsOf(p.slot)
	if !node.Visible() {
		return geometry.Rect{}, false
	}
	return node.Bounds(), true
}

func (p *Popover) onTransition(from, to controller.State) {
	switch {
	case to == controller.Closed:
		p.release()
	case !p.hasSlot:
		p.slot = p.host.Reserve()
		p.hasSlot = true
		p.log.Debug("slot reserved", "from", from.String(), "to", to.String())
	}
	p.Reposition()
}

func (p *Popover) release() {
	if !p.hasSlot {
		return
	}
	p.host.Release(p.slot)
	p.hasSlot = false
	p.slot = mount.Slot{}
	p.result = placement.Result{}
	p.log.Debug("slot released")
}

// Open requests the popover to show, honouring the show delay.
func (p *Popover) Open() {
	p.abortIfUnmounted("Open")
	p.ctrl.OnOpenIntent()
}

// Close requests the popover to hide, honouring the hide delay and the
// keep-open policy.
func (p *Popover) Close() {
	p.abortIfUnmounted("Close")
	p.ctrl.OnCloseIntent()
}

// ForceClose hides immediately.
func (p *Popover) ForceClose() {
	p.abortIfUnmounted("ForceClose")
	p.ctrl.ForceClose()
}

// State returns the controller phase.
func (p *Popover) State() controller.State {
	p.abortIfUnmounted("State")
	return p.ctrl.State()
}

// Visible reports whether the box is painted.
func (p *Popover) Visible() bool {
	p.abortIfUnmounted("Visible")
	if !p.hasSlot {
		return false
	}
	return p.host.ContentsOf(p.slot).Visible()
}

// Placement returns the placement last applied. It is meaningful only while
// Visible.
func (p *Popover) Placement() placement.Placement {
	p.abortIfUnmounted("Placement")
	return p.result.Placement
}

// Result returns the last applied placement result.
func (p *Popover) Result() placement.Result {
	p.abortIfUnmounted("Result")
	return p.result
}

// Node returns a read-only view of the mounted node, or nil while nothing is
// reserved. The view goes blank once its slot is released, even if the host
// hands the underlying node to another overlay.
func (p *Popover) Node() *NodeView {
	p.abortIfUnmounted("Node")
	if !p.hasSlot {
		return nil
	}
	return &NodeView{host: p.host, slot: p.slot}
}

// Unmount cancels pending timers, releases the slot and detaches the
// popover. Further use panics. Calling Unmount again does nothing.
func (p *Popover) Unmount() {
	if p.unmounted {
		return
	}
	p.unsubscribe()
	p.ctrl.Destroy()
	p.release()
	p.unmounted = true
}

func (p *Popover) abortIfUnmounted(op string) {
	overlayerrors.AbortIfDestroyed(p.unmounted, p.opts.Name, op)
}

func measure(content string) geometry.Size {
	if content == "" {
		return geometry.Size{}
	}
	w, h := lipgloss.Size(content)
	return geometry.Sz(float64(w), float64(h))
}

// Package playground is an interactive bubbletea program that lays out the
// anchors from a configuration file as buttons and attaches a tooltip to
// each one.
package playground

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/host"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/mount"
	"github.com/alexisbeaulieu97/overlay/internal/popup"
	"github.com/alexisbeaulieu97/overlay/internal/target"
	"github.com/alexisbeaulieu97/overlay/internal/timer"
	"github.com/alexisbeaulieu97/overlay/internal/ui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Options configures the playground.
type Options struct {
	// Config defaults to config.Default.
	Config *config.Config
	// ConfigPath is shown in the header and re-read on ctrl+r.
	ConfigPath string
	// Watcher, when set, feeds live reloads into the program.
	Watcher *config.Watcher
	Logger  *logger.Logger
}

// anchor is one button and its tooltip.
type anchor struct {
	cfg      config.Anchor
	resolved config.Resolved
	el       *host.Element
	button   *components.Button
	tip      *popup.Tooltip
}

// Model is the playground state. Overlay objects are shared by pointer, so
// copies of a Model returned from Update stay consistent.
type Model struct {
	cfg        *config.Config
	configPath string
	watcher    *config.Watcher
	log        *logger.Logger

	theme  components.Theme
	ctx    components.RenderContext
	doc    *host.Document
	bar    *host.Element
	mounts *mount.Host
	sched  *timer.TeaScheduler

	anchors []*anchor

	keys     keyMap
	help     help.Model
	showHelp bool

	status   string
	errorMsg string

	screen *screen
}

// screen is the terminal size, shared between Model copies and read by
// tooltip viewport callbacks.
type screen struct {
	width  int
	height int
}

func (s *screen) size() geometry.Size {
	return geometry.Sz(float64(s.width), float64(s.height))
}

// NewModel builds the playground for opts.Config.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		configPath: opts.ConfigPath,
		watcher:    opts.Watcher,
		log:        opts.Logger.WithComponent("playground"),
		mounts:     mount.NewHost(),
		sched:      timer.NewTeaScheduler(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		screen:     &screen{width: defaultWidth, height: defaultHeight},
	}
	if err := m.applyConfig(cfg); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init starts listening for config reloads when a watcher is attached.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForReloadCmd(m.watcher)
}

// applyConfig tears down the current anchors and builds new ones.
func (m *Model) applyConfig(cfg *config.Config) error {
	theme, err := cfg.Theme.BuildTheme()
	if err != nil {
		return fmt.Errorf("build theme: %w", err)
	}

	m.teardown()
	m.cfg = cfg
	m.theme = theme
	m.ctx = components.DefaultContext().WithTheme(theme)
	if cfg.Theme.Tooltip.MaxWidth > 0 {
		m.ctx = m.ctx.WithMaxWidth(cfg.Theme.Tooltip.MaxWidth)
	}

	m.doc = host.NewDocument()
	m.bar = host.NewElement("div", "anchors")
	m.doc.Append(m.bar)

	anchors := make([]*anchor, 0, len(cfg.Anchors))
	for _, ac := range cfg.Anchors {
		a, err := m.newAnchor(ac)
		if err != nil {
			for _, built := range anchors {
				built.tip.Unmount()
			}
			return fmt.Errorf("anchor %q: %w", ac.ID, err)
		}
		anchors = append(anchors, a)
	}
	m.anchors = anchors
	m.layout()
	m.log.Info("anchors built", "count", len(anchors))
	return nil
}

func (m *Model) newAnchor(ac config.Anchor) (*anchor, error) {
	resolved := m.cfg.Resolve(ac.Behavior)
	el := host.NewElement("button", ac.ID).SetFocusable(true)
	m.bar.AddChild(el)

	text := ac.Tooltip
	if text == "" {
		text = ac.Label
	}
	tip, err := popup.NewTooltip(popup.TooltipOptions{
		Options: popup.Options{
			Target:    target.Of(el),
			Placement: resolved.Placement,
			Offset:    resolved.Offset,
			ShowDelay: resolved.ShowDelay,
			HideDelay: resolved.HideDelay,
			Trigger:   resolved.Trigger.Strategy(),
			KeepOpen:  resolved.KeepOpen.Strategy(),
			Tracker:   m.doc,
			Host:      m.mounts,
			Scheduler: m.sched,
			Logger:    m.log,
			Display:   resolved.Display,
			Viewport:  m.screen.size,
			Name:      "tooltip:" + ac.ID,
		},
		Text:      text,
		HideArrow: !resolved.Arrow,
		Context:   m.ctx,
		Bounded:   resolved.Bounded,
	})
	if err != nil {
		return nil, err
	}
	return &anchor{
		cfg:      ac,
		resolved: resolved,
		el:       el,
		button:   components.NewButton(ac.Label),
		tip:      tip,
	}, nil
}

func (m *Model) teardown() {
	for _, a := range m.anchors {
		a.tip.Unmount()
	}
	m.anchors = nil
}

// Anchor returns the tooltip attached to the anchor with id.
func (m Model) Anchor(id string) (*popup.Tooltip, bool) {
	for _, a := range m.anchors {
		if a.cfg.ID == id {
			return a.tip, true
		}
	}
	return nil, false
}

// Element returns the button element for id.
func (m Model) Element(id string) *host.Element {
	return m.doc.Query("#" + id)
}

// Document exposes the host document.
func (m Model) Document() *host.Document { return m.doc }

// Status returns the last status line.
func (m Model) Status() string { return m.status }

// Error returns the last error banner, if any.
func (m Model) Error() string { return m.errorMsg }

// Size returns the current terminal size.
func (m Model) Size() (int, int) { return m.screen.width, m.screen.height }

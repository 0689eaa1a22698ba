package playground

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/overlay/internal/controller"
	"github.com/alexisbeaulieu97/overlay/internal/geometry"
	"github.com/alexisbeaulieu97/overlay/internal/host"
	"github.com/alexisbeaulieu97/overlay/internal/timer"
)

// Update handles incoming messages and updates the model. Every branch that
// can arm a timer returns the scheduler's pending ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.width = msg.Width
		m.screen.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		m.broadcast(host.Resize(float64(msg.Width), float64(msg.Height)))
		return m, m.sched.Flush()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.broadcast(host.PointerLeave())
		return m, m.sched.Flush()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case timer.FiredMsg:
		m.sched.Fire(msg)
		return m, m.sched.Flush()

	case ConfigReloadedMsg:
		if err := m.applyConfig(msg.Config); err != nil {
			m.errorMsg = err.Error()
		} else {
			m.errorMsg = ""
			m.status = fmt.Sprintf("config reloaded: %d anchors", len(m.anchors))
			m.broadcast(host.Resize(float64(m.screen.width), float64(m.screen.height)))
		}
		return m, m.continueWatching()

	case ConfigErrorMsg:
		m.errorMsg = fmt.Sprintf("config reload failed: %v", msg.Err)
		m.log.Warn("config reload failed", "error", msg.Err.Error())
		return m, m.continueWatching()

	case watchClosedMsg:
		m.watcher = nil
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.broadcast(host.PointerMove(float64(msg.X), float64(msg.Y)))

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		el := m.doc.ElementAt(geometry.Pt(float64(msg.X), float64(msg.Y)))
		if el != nil && !el.Focusable() {
			el = nil
		}
		m.broadcast(host.FocusOn(el))
	}
	return m, m.sched.Flush()
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.broadcast(host.FocusOn(m.doc.FocusNext(1)))

	case key.Matches(msg, m.keys.Prev):
		m.broadcast(host.FocusOn(m.doc.FocusNext(-1)))

	case key.Matches(msg, m.keys.Blur):
		m.broadcast(host.FocusOn(nil))

	case key.Matches(msg, m.keys.Toggle):
		if a := m.focused(); a != nil {
			switch a.tip.State() {
			case controller.Closed, controller.PendingClose:
				a.tip.Open()
			default:
				a.tip.Close()
			}
		}

	case key.Matches(msg, m.keys.Reload):
		if m.configPath == "" {
			m.status = "no config file to reload"
			return m, nil
		}
		return m, reloadCmd(m.configPath)
	}

	return m, m.sched.Flush()
}

func (m Model) continueWatching() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForReloadCmd(m.watcher)
}

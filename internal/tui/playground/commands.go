package playground

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/overlay/internal/config"
)

// waitForReloadCmd blocks until the watcher delivers a configuration or an
// error. Update re-issues it after each delivery.
func waitForReloadCmd(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates():
			if !ok {
				return watchClosedMsg{}
			}
			return ConfigReloadedMsg{Config: cfg}
		case err, ok := <-w.Errors():
			if !ok {
				return watchClosedMsg{}
			}
			return ConfigErrorMsg{Err: err}
		}
	}
}

// reloadCmd re-reads the configuration file.
func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.ParseConfig(path)
		if err != nil {
			return ConfigErrorMsg{Err: err}
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

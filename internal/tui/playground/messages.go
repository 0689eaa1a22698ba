package playground

import "github.com/alexisbeaulieu97/overlay/internal/config"

// ConfigReloadedMsg carries a configuration that replaced the current one.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a configuration that failed to load. The running
// configuration is kept.
type ConfigErrorMsg struct {
	Err error
}

// watchClosedMsg is sent once the watcher channels close.
type watchClosedMsg struct{}

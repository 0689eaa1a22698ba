package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/overlay/internal/logger"
)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *logger.Logger
	fs       *fsnotify.Watcher
	updates  chan *Config
	errs     chan error
}

// NewWatcher watches the directory holding path, so that editors that
// replace the file on save are still observed.
func NewWatcher(path string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		log:      log.WithComponent("config-watch"),
		fs:       fsw,
		updates:  make(chan *Config, 1),
		errs:     make(chan error, 1),
	}, nil
}

// Updates delivers each successfully reloaded configuration.
func (w *Watcher) Updates() <-chan *Config { return w.updates }

// Errors delivers reload failures. The previous configuration stays in
// effect.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Run processes file events until ctx is done, then closes the watcher and
// both channels.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer close(w.errs)
	defer w.fs.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("config file event", "path", event.Name, "op", event.Op.String())
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			w.reload(ctx)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "error", err.Error())
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := ParseConfig(w.path)
	if err != nil {
		w.log.Warn("config reload failed", "path", w.path, "error", err.Error())
		deliver(ctx, w.errs, err)
		return
	}
	w.log.Info("config reloaded", "path", w.path, "anchors", len(cfg.Anchors))
	deliver(ctx, w.updates, cfg)
}

// deliver replaces any undelivered value so consumers always see the latest.
func deliver[T any](ctx context.Context, ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		case <-ctx.Done():
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

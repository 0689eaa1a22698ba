package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/tui/playground"
)

type rootFlags struct {
	logFile  string
	logLevel string
	logHuman bool
}

type playgroundOptions struct {
	configPath string
	watch      bool
}

// isTerminal is swapped in tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	opts := &playgroundOptions{}

	cmd := &cobra.Command{
		Use:           "overlay",
		Short:         "Tooltip and popover placement for terminal UIs",
		Long:          "Launches an interactive playground that attaches tooltips to the anchors declared in a configuration file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayground(cmd, flags, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file (discarded by default)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.logHuman, "log-human", false, "Write human readable logs instead of JSON")

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Playground configuration file")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the configuration when the file changes")

	cmd.AddCommand(newPlaceCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// openLogger builds the logger described by flags. Without --log-file,
// entries go to fallback, or nowhere when fallback is nil.
func openLogger(flags *rootFlags, fallback io.Writer) (*logger.Logger, func(), error) {
	noop := func() {}
	writer := fallback
	closer := noop
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		closer = func() { _ = f.Close() }
	}
	if writer == nil {
		return logger.Discard(), noop, nil
	}

	log, err := logger.New(logger.Options{Level: flags.logLevel, HumanReadable: flags.logHuman, Writer: writer})
	if err != nil {
		closer()
		return nil, noop, fmt.Errorf("configure logger: %w", err)
	}
	return log, closer, nil
}

func runPlayground(cmd *cobra.Command, flags *rootFlags, opts *playgroundOptions) error {
	if opts.watch && opts.configPath == "" {
		return newCommandError("start playground", "validating flags", errors.New("--watch requires --config"), "Pass the configuration file to watch with --config.")
	}
	if !isTerminal(os.Stdout) {
		return newCommandError("start playground", "checking terminal", errors.New("stdout is not a terminal"), "Run 'overlay place' for non-interactive output.")
	}

	log, closeLog, err := openLogger(flags, nil)
	if err != nil {
		return newCommandError("start playground", "configuring logging", err, "Check --log-file and --log-level.")
	}
	defer closeLog()

	cfg := config.Default()
	if opts.configPath != "" {
		cfg, err = config.ParseConfig(opts.configPath)
		if err != nil {
			return newCommandError("start playground", "loading configuration", err, "Run 'overlay config validate' for details.")
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var watcher *config.Watcher
	if opts.watch {
		watcher, err = config.NewWatcher(opts.configPath, config.DefaultDebounce, log)
		if err != nil {
			return newCommandError("start playground", "watching configuration", err, "")
		}
		go watcher.Run(ctx)
	}

	m, err := playground.NewModel(playground.Options{
		Config:     cfg,
		ConfigPath: opts.configPath,
		Watcher:    watcher,
		Logger:     log,
	})
	if err != nil {
		return newCommandError("start playground", "building anchors", err, "")
	}

	log.Info("playground starting", "config", opts.configPath, "watch", opts.watch)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Error(err, "playground failed")
		return fmt.Errorf("run playground: %w", err)
	}
	log.Info("playground closed")
	return nil
}

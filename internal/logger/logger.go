package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog with key/value helpers and overlay-scoped fields.
// A nil *Logger is valid and discards everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger}, nil
}

// Discard returns a logger that drops every entry.
func Discard() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// WithComponent tags every entry with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Str("component", name).Logger()}
	return &derived
}

// ForOverlay tags every entry with the overlay it concerns. Components that
// serve many overlays derive one logger per overlay.
func (l *Logger) ForOverlay(name string) *Logger {
	if l == nil || name == "" {
		return l
	}
	derived := Logger{base: l.base.With().Str("overlay", name).Logger()}
	return &derived
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	if l == nil {
		return false
	}
	return l.base.GetLevel() <= level && level != zerolog.Disabled
}

// Transition records an overlay phase change at debug level. Cause names
// what moved it, such as "open-intent" or "hide-delay".
func (l *Logger) Transition(from, to fmt.Stringer, cause string) {
	if !l.Enabled(zerolog.DebugLevel) {
		return
	}
	l.base.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("cause", cause).
		Msg("overlay transition")
}

// Info writes an informational log entry. Fields are key/value pairs.
func (l *Logger) Info(msg string, fields ...any) {
	if l == nil {
		return
	}
	l.base.Info().Fields(fields).Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, fields ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Fields(fields).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, fields ...any) {
	if l == nil {
		return
	}
	l.base.Warn().Fields(fields).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Fields(fields).Msg(msg)
}

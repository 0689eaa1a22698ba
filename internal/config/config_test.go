package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/overlay/internal/breakpoint"
	"github.com/alexisbeaulieu97/overlay/internal/keepopen"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	"github.com/alexisbeaulieu97/overlay/internal/placement"
	"github.com/alexisbeaulieu97/overlay/internal/trigger"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

const validYAML = `version: "1.0"
defaults:
  placement: top
  show_delay: 250ms
  keep_open: hover-or-focus
theme:
  name: dark
  tooltip:
    background: "#1f2937"
    border_style: thick
    padding_x: 2
anchors:
  - id: save
    label: Save
    tooltip: "Save\n\nctrl+s"
    placement: bottom-left
    hide_delay: 0s
    display_from: md
  - id: open
    label: Open
    trigger: focus
`

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Len(t, cfg.Anchors, 2)
				assert.Equal(t, "save", cfg.Anchors[0].ID)
				assert.Equal(t, "Save\n\nctrl+s", cfg.Anchors[0].Tooltip)
				require.NotNil(t, cfg.Defaults.ShowDelay)
				assert.Equal(t, 250*time.Millisecond, *cfg.Defaults.ShowDelay)
			},
		},
		{
			name:     "malformed yaml reports the line",
			contents: "version: \"1.0\"\nanchors:\n  - id: [\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *overlayerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
				assert.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: "version: \"1.0\"\nplacment: top\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *overlayerrors.ParseError
				require.True(t, errors.As(err, &parseErr))
			},
		},
		{
			name:     "bad version",
			contents: "version: beta\n",
			assert:   expectField("version"),
		},
		{
			name:     "unknown placement",
			contents: "version: \"1.0\"\ndefaults:\n  placement: middle\n",
			assert:   expectField("defaults.placement"),
		},
		{
			name:     "unknown trigger on anchor",
			contents: "version: \"1.0\"\nanchors:\n  - id: a\n    label: A\n    trigger: click\n",
			assert:   expectField("anchors[0].trigger"),
		},
		{
			name:     "bad colour",
			contents: "version: \"1.0\"\ntheme:\n  tooltip:\n    border: red\n",
			assert:   expectField("theme.tooltip.border"),
		},
		{
			name:     "bad anchor id",
			contents: "version: \"1.0\"\nanchors:\n  - id: Save!\n    label: A\n",
			assert:   expectField("anchors[0].id"),
		},
		{
			name:     "duplicate anchor id",
			contents: "version: \"1.0\"\nanchors:\n  - id: a\n    label: A\n  - id: a\n    label: B\n",
			assert:   expectField("anchors[1].id"),
		},
		{
			name:     "negative delay",
			contents: "version: \"1.0\"\ndefaults:\n  hide_delay: -1s\n",
			assert:   expectField("defaults.hide_delay"),
		},
		{
			name:     "conflicting display bounds",
			contents: "version: \"1.0\"\ndefaults:\n  display_from: sm\n  display_until: lg\n",
			assert:   expectField("defaults"),
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "overlay.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func expectField(field string) func(t *testing.T, cfg *Config, err error) {
	return func(t *testing.T, cfg *Config, err error) {
		t.Helper()
		require.Error(t, err)
		assert.Nil(t, cfg)
		var validationErr *overlayerrors.ValidationError
		require.True(t, errors.As(err, &validationErr), "got %v", err)
		assert.Equal(t, field, validationErr.Field)
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *overlayerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolveMergesAnchorOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(validYAML), "inline")
	require.NoError(t, err)

	save := cfg.Resolve(cfg.Anchors[0].Behavior)
	assert.Equal(t, placement.BottomLeft, save.Placement)
	assert.Equal(t, 250*time.Millisecond, save.ShowDelay)
	assert.Zero(t, save.HideDelay)
	assert.Equal(t, keepopen.KindHoverOrFocus, save.KeepOpen)
	assert.Equal(t, trigger.KindHoverOrFocus, save.Trigger)
	assert.True(t, save.Arrow)
	require.NotNil(t, save.Display)
	assert.False(t, save.Display.Allows(int(breakpoint.SM)))
	assert.True(t, save.Display.Allows(int(breakpoint.MD)))

	open := cfg.Resolve(cfg.Anchors[1].Behavior)
	assert.Equal(t, placement.Top, open.Placement)
	assert.Equal(t, trigger.KindFocus, open.Trigger)
	assert.Equal(t, DefaultHideDelay, open.HideDelay)
	assert.Nil(t, open.Display)
}

func TestBuildTheme(t *testing.T) {
	cfg, err := Parse([]byte(validYAML), "inline")
	require.NoError(t, err)

	theme, err := cfg.Theme.BuildTheme()
	require.NoError(t, err)
	assert.Equal(t, "#1f2937", theme.Tooltip.Background.Light)
	assert.Equal(t, 2, theme.Tooltip.PaddingX)
	assert.Equal(t, theme.Borders.Thick, theme.Tooltip.BorderStyle)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))

	data, err := Marshal(cfg)
	require.NoError(t, err)
	roundTrip, err := Parse(data, "default")
	require.NoError(t, err)
	assert.Len(t, roundTrip.Anchors, len(cfg.Anchors))
}

func TestValidateNil(t *testing.T) {
	var validationErr *overlayerrors.ValidationError
	require.True(t, errors.As(ValidateConfig(nil), &validationErr))
}

func TestWatcherDeliversReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\n"), 0o600))

	w, err := NewWatcher(path, 20*time.Millisecond, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	writeAtomic(t, path, validYAML)
	select {
	case cfg := <-w.Updates():
		require.NotNil(t, cfg)
		assert.Len(t, cfg.Anchors, 2)
	case err := <-w.Errors():
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered")
	}

	writeAtomic(t, path, "version: nope\n")
	select {
	case err := <-w.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error delivered")
	}

	cancel()
	for range w.Updates() {
	}
}

// writeAtomic replaces path in one rename, the way editors save.
func writeAtomic(t *testing.T, path, contents string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(contents), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

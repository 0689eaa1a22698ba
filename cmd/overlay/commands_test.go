package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-01"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-01")
}

func decodePlace(t *testing.T, output string) placeOutput {
	t.Helper()
	var raw struct {
		Placement string      `json:"placement"`
		Origin    pointOutput `json:"origin"`
		Size      sizeOutput  `json:"size"`
		Arrow     *arrowOutput
		Flipped   bool `json:"flipped"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &raw), output)

	var out placeOutput
	require.NoError(t, out.Placement.UnmarshalText([]byte(raw.Placement)))
	out.Origin, out.Size, out.Arrow, out.Flipped = raw.Origin, raw.Size, raw.Arrow, raw.Flipped
	return out
}

func TestPlaceFixed(t *testing.T) {
	output, err := execute(t, "place", "--anchor", "10,5,6,1", "--size", "12x3", "--placement", "top", "--json")
	require.NoError(t, err)

	out := decodePlace(t, output)
	assert.Equal(t, "top", out.Placement.String())
	assert.Equal(t, pointOutput{X: 7, Y: 2}, out.Origin)
	require.NotNil(t, out.Arrow)
	assert.Equal(t, "bottom", out.Arrow.Edge)
	assert.Equal(t, "down", out.Arrow.Direction)
	assert.False(t, out.Flipped)
}

func TestPlaceBoundedFlips(t *testing.T) {
	output, err := execute(t, "place", "--anchor", "10,1,6,1", "--size", "12x3",
		"--placement", "top", "--viewport", "40x10", "--bounded", "--json")
	require.NoError(t, err)

	out := decodePlace(t, output)
	assert.Equal(t, "bottom", out.Placement.String())
	assert.Equal(t, float64(2), out.Origin.Y)
	assert.True(t, out.Flipped)
}

func TestPlaceNoArrow(t *testing.T) {
	output, err := execute(t, "place", "--anchor", "0,0,4,1", "--size", "3x1", "--no-arrow", "--json")
	require.NoError(t, err)
	assert.Nil(t, decodePlace(t, output).Arrow)
}

func TestPlaceTextPreview(t *testing.T) {
	output, err := execute(t, "place", "--anchor", "2,1,8,1", "--text", `Save\nctrl+s`, "--viewport", "30x8", "--preview")
	require.NoError(t, err)

	assert.Contains(t, output, "placement: bottom")
	assert.Contains(t, output, "########")
	assert.Contains(t, output, "Save")
	assert.Contains(t, output, "ctrl+s")
	assert.Contains(t, output, "▲")
}

func TestPlaceViewportAuto(t *testing.T) {
	original := terminalSize
	t.Cleanup(func() { terminalSize = original })

	terminalSize = func() (int, int, error) { return 0, 0, errors.New("not a terminal") }
	_, err := execute(t, "place", "--anchor", "0,0,1,1", "--size", "1x1", "--viewport", "auto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")

	terminalSize = func() (int, int, error) { return 20, 5, nil }
	output, err := execute(t, "place", "--anchor", "0,3,4,1", "--size", "4x2", "--viewport", "auto", "--bounded", "--json")
	require.NoError(t, err)
	assert.Equal(t, "top", decodePlace(t, output).Placement.String())
}

func TestPlaceRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		"bad anchor":        {"place", "--anchor", "1,2,3", "--size", "1x1"},
		"negative anchor":   {"place", "--anchor", "1,2,-3,1", "--size", "1x1"},
		"bad size":          {"place", "--anchor", "1,2,3,4", "--size", "tall"},
		"bad placement":     {"place", "--anchor", "1,2,3,4", "--size", "1x1", "--placement", "middle"},
		"preview no view":   {"place", "--anchor", "1,2,3,4", "--size", "1x1", "--preview"},
		"missing box":       {"place", "--anchor", "1,2,3,4"},
		"size and text":     {"place", "--anchor", "1,2,3,4", "--size", "1x1", "--text", "hi"},
		"missing anchor":    {"place", "--size", "1x1"},
		"unexpected args":   {"place", "extra", "--anchor", "1,2,3,4", "--size", "1x1"},
		"bad viewport size": {"place", "--anchor", "1,2,3,4", "--size", "1x1", "--viewport", "wide"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("version: \"1.0\"\nanchors:\n  - id: save\n    label: Save\n"), 0o600))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: \"1.0\"\nanchors:\n  - id: save\n    label: Save\n    placement: middle\n"), 0o600))

	output, err := execute(t, "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, output, "valid (version 1.0, 1 anchors)")

	_, err = execute(t, "config", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anchors[0].placement")
}

func TestConfigDefaultRoundTrips(t *testing.T) {
	output, err := execute(t, "config", "default")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "default.yaml")
	require.NoError(t, os.WriteFile(path, []byte(output), 0o600))
	_, err = execute(t, "config", "validate", path)
	require.NoError(t, err)
}

func TestRootRequiresTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(*os.File) bool { return false }

	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")

	_, err = execute(t, "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires --config")
}

func TestLogFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.log")
	_, err := execute(t, "--log-file", path, "--log-level", "debug", "place", "--anchor", "0,0,1,1", "--size", "1x1")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "place requested"))

	_, err = execute(t, "--log-level", "loud", "place", "--anchor", "0,0,1,1", "--size", "1x1")
	assert.Error(t, err)
}

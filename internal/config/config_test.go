package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingDefaultFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "viewlog"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(xdg, "viewlog", "config.toml"), []byte(`
[display]
timestamps = true
`), 0o600))

	assert.Equal(t, filepath.Join(xdg, "viewlog", "config.toml"), GetConfigPath())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Display.Timestamps)
	assert.False(t, cfg.Display.DiscardOld)
}

func TestLoad_ParsesAllSections(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[display]
timestamps = true
discard_old = true
highlight = true

[watch]
poll_interval = "750ms"

[log]
file = "~/logs/viewlog.log"
level = "debug"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Display.Timestamps)
	assert.True(t, cfg.Display.DiscardOld)
	assert.True(t, cfg.Display.Highlight)
	assert.Equal(t, 750*time.Millisecond, cfg.Watch.PollInterval.Duration)
	assert.Equal(t, filepath.Join(home, "logs", "viewlog.log"), cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[display`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_InvalidDurationFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[watch]\npoll_interval = \"soon\"\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte(" 2s ")))
	assert.Equal(t, 2*time.Second, d.Duration)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2s", string(text))

	require.NoError(t, d.UnmarshalText(nil))
	assert.Zero(t, d.Duration)

	assert.Error(t, d.UnmarshalText([]byte("-1s")))
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a", "b.log"), got)

	got, err = ExpandPath("relative.log")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, "relative.log"))

	_, err = ExpandPath("  ")
	assert.Error(t, err)
}

func TestAbbreviateHome(t *testing.T) {
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{"under home", "/home/ana/logs/app.log", "/home/ana", "~/logs/app.log"},
		{"home itself", "/home/ana", "/home/ana", "~"},
		{"sibling prefix is not home", "/home/anabel/app.log", "/home/ana", "/home/anabel/app.log"},
		{"outside home", "/var/log/syslog", "/home/ana", "/var/log/syslog"},
		{"home with trailing slash", "/home/ana/x", "/home/ana/", "~/x"},
		{"no home", "/var/log/syslog", "", "/var/log/syslog"},
		{"root home", "/var/log/syslog", "/", "/var/log/syslog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbbreviateHome(filepath.FromSlash(tt.path), filepath.FromSlash(tt.home)))
		})
	}
}

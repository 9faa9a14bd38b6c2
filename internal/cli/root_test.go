package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimelordUK/viewlog/internal/app"
)

type captured struct {
	opts  app.Options
	calls int
}

func (c *captured) run(_ context.Context, opts app.Options) error {
	c.calls++
	c.opts = opts
	return nil
}

func execute(t *testing.T, args ...string) (*captured, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := &captured{}
	cmd := newCommand(c.run)
	cmd.SetArgs(args)
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})
	return c, cmd.ExecuteContext(context.Background())
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestCommand_RequiresExactlyOneFile(t *testing.T) {
	c, err := execute(t)
	assert.Error(t, err)
	assert.Zero(t, c.calls)

	c, err = execute(t, "a.log", "b.log")
	assert.Error(t, err)
	assert.Zero(t, c.calls)
}

func TestCommand_Defaults(t *testing.T) {
	c, err := execute(t, "app.log")
	require.NoError(t, err)
	require.Equal(t, 1, c.calls)

	assert.Equal(t, "app.log", c.opts.Path)
	require.NotNil(t, c.opts.Config)
	assert.False(t, c.opts.Config.Display.Timestamps)
	assert.False(t, c.opts.Config.Display.DiscardOld)
	assert.False(t, c.opts.Config.Display.Highlight)
	assert.Zero(t, c.opts.Config.Watch.PollInterval.Duration)
}

func TestCommand_Flags(t *testing.T) {
	dir := t.TempDir()
	c, err := execute(t, "-t", "-d", "--highlight",
		"--log-file", filepath.Join(dir, "v.log"),
		"--log-level", "debug",
		"--poll", "250ms",
		"app.log")
	require.NoError(t, err)

	cfg := c.opts.Config
	assert.True(t, cfg.Display.Timestamps)
	assert.True(t, cfg.Display.DiscardOld)
	assert.True(t, cfg.Display.Highlight)
	assert.Equal(t, filepath.Join(dir, "v.log"), cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.PollInterval.Duration)
}

func TestCommand_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[display]
timestamps = true
discard_old = true

[watch]
poll_interval = "1s"
`), 0o600))

	c, err := execute(t, "--config", path, "--timestamps=false", "app.log")
	require.NoError(t, err)

	cfg := c.opts.Config
	assert.False(t, cfg.Display.Timestamps, "explicit flag wins")
	assert.True(t, cfg.Display.DiscardOld, "unset flag keeps file value")
	assert.Equal(t, time.Second, cfg.Watch.PollInterval.Duration)
}

func TestCommand_InvalidPoll(t *testing.T) {
	c, err := execute(t, "--poll", "often", "app.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--poll")
	assert.Zero(t, c.calls)
}

func TestCommand_MissingConfigFile(t *testing.T) {
	c, err := execute(t, "-c", filepath.Join(t.TempDir(), "none.toml"), "app.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
	assert.Zero(t, c.calls)
}

func TestCommand_RunErrorPropagates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	boom := errors.New("boom")
	cmd := newCommand(func(context.Context, app.Options) error { return boom })
	cmd.SetArgs([]string{"app.log"})
	cmd.SetOut(discard{})
	cmd.SetErr(discard{})

	assert.ErrorIs(t, cmd.ExecuteContext(context.Background()), boom)
}

package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.Input.NavInitialDelay)
	assert.Empty(t, cfg.Menu.DefaultAgentName)
	assert.False(t, cfg.Menu.QuitExitsToMenu)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
logging:
  level: debug
input:
  deadzone: 0.2
  nav_repeat: 50ms
menu:
  quit_exits_to_menu: true
  yes_key: j
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 0.2, cfg.Input.Deadzone)
	assert.Equal(t, 50*time.Millisecond, cfg.Input.NavRepeat)
	assert.Equal(t, 300*time.Millisecond, cfg.Input.NavInitialDelay)
	assert.True(t, cfg.Menu.QuitExitsToMenu)
	assert.Equal(t, "j", cfg.Menu.YesKey)
	assert.Equal(t, "b", cfg.Menu.BeginKey)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeConfig(t, dir, "input: [1, 2"))
	assert.ErrorContains(t, err, "decode YAML")

	_, err = Load(writeConfig(t, dir, "input:\n  deadzone: 1.5\n"))
	assert.ErrorContains(t, err, "input.deadzone")

	_, err = Load(writeConfig(t, dir, "menu:\n  begin_key: nosuchkey\n"))
	assert.ErrorContains(t, err, "menu.begin_key")

	_, err = Load(writeConfig(t, dir, "logging:\n  level: loud\n"))
	assert.ErrorContains(t, err, "logging.level")
}

func TestCursor(t *testing.T) {
	c := Default().Input.Cursor()
	assert.Equal(t, 400.0, c.Speed)
	assert.Equal(t, 0.1, c.Deadzone)
	assert.Equal(t, 1.25, c.AccelPower)
}

func TestCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	SetCurrent(nil)
	assert.Equal(t, Default(), Current())

	cfg := Default()
	cfg.Menu.DefaultAgentName = "Kyle"
	SetCurrent(cfg)
	assert.Same(t, cfg, Current())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	SetCurrent(nil)

	dir := t.TempDir()
	path := writeConfig(t, dir, "menu:\n  default_agent_name: First\n")

	w := NewWatcher(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	var got atomic.Pointer[Config]
	w.OnChange(func(c *Config) { got.Store(c) })
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Close() })

	writeConfig(t, dir, "menu:\n  default_agent_name: Second\n")

	assert.Eventually(t, func() bool {
		c := got.Load()
		return c != nil && c.Menu.DefaultAgentName == "Second"
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, Default(), Current(), "the watcher leaves publishing to its callbacks")
}

func TestWatcher_KeepsSettingsOnBadReload(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	dir := t.TempDir()
	path := writeConfig(t, dir, "menu:\n  default_agent_name: Kept\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	SetCurrent(cfg)

	w := NewWatcher(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	var calls atomic.Int32
	w.OnChange(func(*Config) { calls.Add(1) })
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Close() })

	writeConfig(t, dir, "input:\n  deadzone: 7\n")
	time.Sleep(4 * debounceDelay)

	assert.Zero(t, calls.Load())
	assert.Equal(t, "Kept", Current().Menu.DefaultAgentName)
}

func TestWatcher_CloseWithoutStart(t *testing.T) {
	w := NewWatcher("config.yaml", nil)
	assert.NoError(t, w.Close())
}

// Package setup builds a session: logging, config, strings, key names and the
// agent roster, and wires them into the agent menu.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"darkforces/pkg/engine/input"
	"darkforces/pkg/engine/logger"
	"darkforces/pkg/game/agent"
	"darkforces/pkg/game/config"
	"darkforces/pkg/game/i18n"
	"darkforces/pkg/game/menu"
	"darkforces/pkg/game/state"
)

const saveTimeout = 5 * time.Second

// Flags are the command line overrides. Empty fields keep the config value.
type Flags struct {
	ConfigPath string
	KeyNames   string
	Database   string
	Strings    string
	LogLevel   string
	// Watch enables config hot reload.
	Watch bool
	// LogOutput receives log lines. nil is stderr.
	LogOutput io.Writer
}

// Session owns everything a run of the agent menu needs.
type Session struct {
	Log      *slog.Logger
	Roster   *agent.Roster
	Frontend *state.Frontend
	Gamepad  *input.GamepadCursor

	flags   Flags
	store   agent.Store
	closer  func() error
	watcher *config.Watcher

	mu   sync.Mutex
	menu *menu.Menu

	// pending holds a reloaded config until the frame loop picks it up.
	pending atomic.Pointer[config.Config]
}

// Start loads config and agents. The caller must Close the session.
func Start(ctx context.Context, flags Flags) (*Session, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg, flags)
	config.SetCurrent(cfg)

	log := initLogger(cfg, flags)
	log.Info("config loaded", "path", flags.ConfigPath, "database", cfg.Paths.AgentDatabase)

	if flags.Strings != "" {
		if err := i18n.LoadFile(flags.Strings); err != nil {
			return nil, fmt.Errorf("load strings: %w", err)
		}
	}

	if cfg.Paths.KeyNames != "" {
		switch err := input.LoadKeyNames(cfg.Paths.KeyNames); {
		case errors.Is(err, os.ErrNotExist):
			log.Debug("no key names file", "path", cfg.Paths.KeyNames)
		case err != nil:
			log.Warn("key names not loaded", "error", err)
		}
	}

	store, err := agent.Open(cfg.Paths.AgentDatabase)
	if err != nil {
		return nil, fmt.Errorf("open agents: %w", err)
	}
	roster, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load agents: %w", err)
	}
	log.Info("agents loaded", "count", roster.Count())

	s := &Session{
		Log:      log,
		Roster:   roster,
		Frontend: state.NewFrontend(log),
		Gamepad:  input.NewGamepadCursor(cfg.Input.Cursor(), log),
		flags:    flags,
		store:    store,
		closer:   store.Close,
	}

	if flags.Watch && flags.ConfigPath != "" {
		s.watcher = config.NewWatcher(flags.ConfigPath, log)
		s.watcher.OnChange(func(cfg *config.Config) { s.pending.Store(cfg) })
		if err := s.watcher.Start(ctx); err != nil {
			log.Warn("config hot reload disabled", "error", err)
			s.watcher = nil
		}
	}
	return s, nil
}

func initLogger(cfg *config.Config, flags Flags) *slog.Logger {
	return logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: flags.LogOutput})
}

func applyFlags(cfg *config.Config, flags Flags) {
	if flags.KeyNames != "" {
		cfg.Paths.KeyNames = flags.KeyNames
	}
	if flags.Database != "" {
		cfg.Paths.AgentDatabase = flags.Database
	}
	if flags.LogLevel != "" {
		cfg.Logging.Level = flags.LogLevel
	}
}

// Config returns the active settings, command line overrides included.
func (s *Session) Config() *config.Config {
	return config.Current()
}

// MenuOptions returns the menu options for cfg with the save hook attached.
func (s *Session) MenuOptions(cfg *config.Config) menu.Options {
	opts := menu.OptionsFromConfig(cfg)
	opts.OnRosterChange = s.SaveRoster
	return opts
}

// NewMenu creates the agent menu over the session roster and hooks it to the
// frontend and config reloads.
func (s *Session) NewMenu(canvas menu.Canvas) *menu.Menu {
	m := menu.New(s.Roster, s.Frontend, canvas, s.MenuOptions(s.Config()), s.Log)
	s.Frontend.OnExitToMenu(m.ResetState)

	s.mu.Lock()
	s.menu = m
	s.mu.Unlock()
	return m
}

// SaveRoster writes the roster to the agent database. Failures are logged
// and the in-memory roster is kept.
func (s *Session) SaveRoster(r *agent.Roster) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.store.Save(ctx, r); err != nil {
		s.Log.Error("save agents", "error", err)
		s.Frontend.AddMessage(i18n.Get("SAVE_FAILED"))
		return
	}
	s.Log.Debug("agents saved", "count", r.Count())
}

// ApplyPending applies a config reload, if one arrived since the last call.
// Call it from the frame loop so the menu never changes mid-frame.
func (s *Session) ApplyPending() {
	if cfg := s.pending.Swap(nil); cfg != nil {
		s.reload(cfg)
	}
}

// reload applies a changed config file. Flag overrides still win. Loggers
// handed out earlier follow the new level.
func (s *Session) reload(cfg *config.Config) {
	applyFlags(cfg, s.flags)
	config.SetCurrent(cfg)
	s.Log = initLogger(cfg, s.flags)
	s.Gamepad.SetConfig(cfg.Input.Cursor())

	s.mu.Lock()
	m := s.menu
	s.mu.Unlock()
	if m != nil {
		m.SetOptions(s.MenuOptions(cfg))
	}
	s.Log.Info("config reloaded")
}

// Close stops the watcher and closes the agent database.
func (s *Session) Close() error {
	var errs []error
	if s.watcher != nil {
		errs = append(errs, s.watcher.Close())
	}
	if s.closer != nil {
		errs = append(errs, s.closer())
	}
	return errors.Join(errs...)
}

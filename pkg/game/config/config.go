// Package config loads the game's YAML settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"gopkg.in/yaml.v3"

	"darkforces/pkg/engine/input"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Input   InputConfig   `yaml:"input"`
	Menu    MenuConfig    `yaml:"menu"`
	Paths   PathsConfig   `yaml:"paths"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// InputConfig tunes gamepad handling in menus.
type InputConfig struct {
	Deadzone        float64       `yaml:"deadzone"`
	CursorSpeed     float64       `yaml:"cursor_speed"`
	AccelPower      float64       `yaml:"accel_power"`
	FrameTime       float64       `yaml:"frame_time"`
	NavInitialDelay time.Duration `yaml:"nav_initial_delay"`
	NavRepeat       time.Duration `yaml:"nav_repeat"`
	DialogRepeat    time.Duration `yaml:"dialog_repeat"`
	StickThreshold  float64       `yaml:"stick_threshold"`
}

type MenuConfig struct {
	// Prefilled new-agent name. Empty uses the translated default.
	DefaultAgentName string `yaml:"default_agent_name"`
	QuitExitsToMenu  bool   `yaml:"quit_exits_to_menu"`
	// Language hotkeys, as input key codes ("r", "b", "y").
	RemoveKey string `yaml:"remove_key"`
	BeginKey  string `yaml:"begin_key"`
	YesKey    string `yaml:"yes_key"`
}

type PathsConfig struct {
	KeyNames      string `yaml:"key_names"`
	AgentDatabase string `yaml:"agent_database"`
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Input: InputConfig{
			Deadzone:        0.1,
			CursorSpeed:     400,
			AccelPower:      1.25,
			FrameTime:       1.0 / 60.0,
			NavInitialDelay: 300 * time.Millisecond,
			NavRepeat:       100 * time.Millisecond,
			DialogRepeat:    150 * time.Millisecond,
			StickThreshold:  0.7,
		},
		Menu: MenuConfig{
			RemoveKey: "r",
			BeginKey:  "b",
			YesKey:    "y",
		},
		Paths: PathsConfig{
			KeyNames:      "keynames.toml",
			AgentDatabase: "agents.db",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks ranges and key codes.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	in := c.Input
	if in.Deadzone < 0 || in.Deadzone >= 1 {
		errs = append(errs, fmt.Errorf("input.deadzone: %v out of [0,1)", in.Deadzone))
	}
	if in.CursorSpeed <= 0 {
		errs = append(errs, errors.New("input.cursor_speed: must be positive"))
	}
	if in.AccelPower <= 0 {
		errs = append(errs, errors.New("input.accel_power: must be positive"))
	}
	if in.FrameTime <= 0 {
		errs = append(errs, errors.New("input.frame_time: must be positive"))
	}
	if in.NavInitialDelay < 0 || in.NavRepeat < 0 || in.DialogRepeat < 0 {
		errs = append(errs, errors.New("input: repeat delays must not be negative"))
	}
	if in.StickThreshold <= 0 || in.StickThreshold > 1 {
		errs = append(errs, fmt.Errorf("input.stick_threshold: %v out of (0,1]", in.StickThreshold))
	}

	for name, key := range map[string]string{
		"menu.remove_key": c.Menu.RemoveKey,
		"menu.begin_key":  c.Menu.BeginKey,
		"menu.yes_key":    c.Menu.YesKey,
	} {
		if _, ok := input.ParseKeyCode(key); !ok {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", name, key))
		}
	}
	return errors.Join(errs...)
}

// Cursor converts the input section into gamepad cursor tuning.
func (c InputConfig) Cursor() input.GamepadCursorConfig {
	return input.GamepadCursorConfig{
		Speed:      c.CursorSpeed,
		Deadzone:   c.Deadzone,
		AccelPower: c.AccelPower,
		FrameTime:  c.FrameTime,
	}
}

var current atomic.Pointer[Config]

// Current returns the active settings, or the defaults if none were set.
func Current() *Config {
	if cfg := current.Load(); cfg != nil {
		return cfg
	}
	return Default()
}

// SetCurrent replaces the active settings. nil restores the defaults.
func SetCurrent(cfg *Config) {
	current.Store(cfg)
}

// Package logger sets up the process-wide slog logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"

	"darkforces/pkg/engine/terminal"
)

type Config struct {
	Level  string
	Format string // "text", "json", "console"
	Output io.Writer
	// Color forces coloured level tags on or off. nil colours only a terminal.
	Color *bool
}

var (
	mu sync.Mutex
	lg *slog.Logger

	// level is shared by every handler Init has built.
	level slog.LevelVar
)

// Init installs the logger and makes it the slog default. Later calls replace it.
func Init(cfg Config) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	level.Set(parseLevel(cfg.Level))
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(cfg.Output, &slog.HandlerOptions{Level: &level})
	case "text":
		handler = slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{Level: &level})
	default:
		useColor := false
		if cfg.Color != nil {
			useColor = *cfg.Color
		} else if f, ok := cfg.Output.(*os.File); ok {
			useColor = terminal.IsTerminal(f)
		}
		handler = &consoleHandler{w: cfg.Output, level: &level, color: useColor, mu: &sync.Mutex{}}
	}
	lg = slog.New(handler)
	slog.SetDefault(lg)
	return lg
}

// L returns the process logger, initialising a console logger on first use.
func L() *slog.Logger {
	mu.Lock()
	l := lg
	mu.Unlock()
	if l == nil {
		return Init(Config{Level: "info", Format: "console"})
	}
	return l
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// consoleHandler outputs human-friendly log lines:
//
//	12:00:00 INFO  agent created  component=agent_menu agent=3
type consoleHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Leveler
	color bool
	attrs []slog.Attr
	group string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time.Format(time.TimeOnly)
	lvl := levelTag(r.Level)
	if h.color {
		lvl = levelStyle(r.Level).Sprint(lvl)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", ts, lvl, r.Message)
	for _, a := range h.attrs {
		b.WriteString(formatAttr(h.group, a))
	}
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(formatAttr(h.group, a))
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		w:     h.w,
		mu:    h.mu,
		level: h.level,
		color: h.color,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		group: h.group,
	}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	prefix := name
	if h.group != "" {
		prefix = h.group + "." + name
	}
	return &consoleHandler{
		w:     h.w,
		mu:    h.mu,
		level: h.level,
		color: h.color,
		attrs: append([]slog.Attr{}, h.attrs...),
		group: prefix,
	}
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func levelStyle(l slog.Level) color.Style {
	switch {
	case l >= slog.LevelError:
		return color.Style{color.FgRed, color.OpBold}
	case l >= slog.LevelWarn:
		return color.Style{color.FgYellow, color.OpBold}
	case l >= slog.LevelInfo:
		return color.Style{color.FgGreen}
	default:
		return color.Style{color.FgGray}
	}
}

func formatAttr(group string, a slog.Attr) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	return fmt.Sprintf("  %s=%v", key, a.Value)
}

package input

import (
	"log/slog"
	"math"
)

// GamepadCursorConfig tunes how the left stick drives the menu cursor.
type GamepadCursorConfig struct {
	Speed      float64 // pixels per second at full deflection
	Deadzone   float64 // stick magnitude ignored around the centre
	AccelPower float64 // exponent applied to the remapped magnitude
	FrameTime  float64 // seconds per frame
}

// DefaultGamepadCursorConfig returns the stock cursor tuning.
func DefaultGamepadCursorConfig() GamepadCursorConfig {
	return GamepadCursorConfig{
		Speed:      400,
		Deadzone:   0.1,
		AccelPower: 1.25,
		FrameTime:  1.0 / 60.0,
	}
}

// GamepadCursor turns controller input into mouse input while a menu is open:
// the left stick moves the cursor and the A button acts as the left button.
type GamepadCursor struct {
	cfg GamepadCursorConfig
	log *slog.Logger

	lastMenuContext bool
	lastLeftX       float64
	lastLeftY       float64
	frameCount      uint32

	lastADown    bool
	mouseHeldByA bool
}

// NewGamepadCursor creates a cursor emulator. A nil logger uses slog.Default.
func NewGamepadCursor(cfg GamepadCursorConfig, log *slog.Logger) *GamepadCursor {
	if log == nil {
		log = slog.Default()
	}
	return &GamepadCursor{cfg: cfg, log: log.With("component", "gamepad_cursor")}
}

// SetConfig swaps the tuning, e.g. after a config reload.
func (g *GamepadCursor) SetConfig(cfg GamepadCursorConfig) {
	g.cfg = cfg
}

// StickDelta converts a left stick position into a cursor delta for one frame.
func (c GamepadCursorConfig) StickDelta(x, y float64) (dx, dy int) {
	magnitude := math.Sqrt(x*x + y*y)
	if magnitude < c.Deadzone {
		return 0, 0
	}
	x /= magnitude
	y /= magnitude
	normalized := (magnitude - c.Deadzone) / (1 - c.Deadzone)
	accelerated := math.Pow(normalized, c.AccelPower)

	dx = int(x * accelerated * c.Speed * c.FrameTime)
	dy = int(y * accelerated * c.Speed * c.FrameTime)
	return dx, dy
}

// Update moves the cursor from the left stick. Outside a menu it does nothing.
func (g *GamepadCursor) Update(s *State, inMenu bool) {
	if inMenu != g.lastMenuContext {
		g.log.Debug("menu context changed", "in_menu", inMenu)
		g.lastMenuContext = inMenu
	}
	if !inMenu {
		return
	}

	leftX := float64(s.Axis(AxisLeftX))
	leftY := float64(s.Axis(AxisLeftY))

	// Throttle stick logging to once a second or on large swings.
	g.frameCount++
	shouldLog := (g.frameCount%60 == 0 && (math.Abs(leftX) > 0.01 || math.Abs(leftY) > 0.01)) ||
		math.Abs(leftX-g.lastLeftX) > 0.15 || math.Abs(leftY-g.lastLeftY) > 0.15
	if shouldLog {
		g.lastLeftX, g.lastLeftY = leftX, leftY
	}

	dx, dy := g.cfg.StickDelta(leftX, leftY)
	if shouldLog {
		g.log.Debug("left stick", "x", leftX, "y", leftY, "dx", dx, "dy", dy)
	}
	if dx != 0 || dy != 0 {
		s.SetRelativeMousePos(dx, dy)
	}
}

// HandleMenuInput maps the A button onto the left mouse button while a menu is
// open. Leaving the menu releases a button still held by A.
func (g *GamepadCursor) HandleMenuInput(s *State, inMenu bool) {
	aPressed := s.ButtonPressed(ButtonA)
	aDown := s.ButtonDown(ButtonA)
	if aDown != g.lastADown {
		g.log.Debug("A button changed", "pressed", aPressed, "down", aDown)
		g.lastADown = aDown
	}

	if !inMenu {
		if g.mouseHeldByA {
			g.log.Debug("leaving menu context, releasing mouse button")
			s.SetMouseButtonUp(MouseLeft)
			g.mouseHeldByA = false
		}
		return
	}

	switch {
	case aPressed && !g.mouseHeldByA:
		s.SetMouseButtonDown(MouseLeft)
		g.mouseHeldByA = true
	case !aDown && g.mouseHeldByA:
		s.SetMouseButtonUp(MouseLeft)
		g.mouseHeldByA = false
	}
}

//go:build ebiten

package ebiten

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"darkforces/pkg/engine/input"
	"darkforces/pkg/game/agent"
	"darkforces/pkg/game/menu"
	"darkforces/pkg/game/renderer"
	"darkforces/pkg/game/state"
)

const windowScale = 3

// Options wires the window loop to the menu and frontend state.
type Options struct {
	Menu     *menu.Menu
	Canvas   *Canvas
	Frontend *state.Frontend
	Gamepad  *input.GamepadCursor
	Log      *slog.Logger
	// OnProgress runs when a mission begins and after one changes an
	// agent's progress.
	OnProgress func(*agent.Roster)
	// OnFrame runs at the start of every tick, before input is polled.
	OnFrame func()
}

// Game implements ebiten.Game over the agent menu.
type Game struct {
	log      *slog.Logger
	menu     *menu.Menu
	frontend *state.Frontend
	gamepad  *input.GamepadCursor
	onSave   func(*agent.Roster)
	onFrame  func()

	input  *input.State
	cursor *menu.Cursor
	poller *poller
	canvas *Canvas

	windowOpenedLogged bool
}

func New(opts Options) (*Game, error) {
	if opts.Menu == nil || opts.Canvas == nil || opts.Frontend == nil {
		return nil, errors.New("ebiten: menu, canvas and frontend are required")
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	log = log.With("component", "window")
	gamepad := opts.Gamepad
	if gamepad == nil {
		gamepad = input.NewGamepadCursor(input.DefaultGamepadCursorConfig(), log)
	}
	g := &Game{
		log:      log,
		menu:     opts.Menu,
		frontend: opts.Frontend,
		gamepad:  gamepad,
		onSave:   opts.OnProgress,
		onFrame:  opts.OnFrame,
		input:    input.Current,
		cursor:   menu.NewCursor(),
		poller:   newPoller(log),
		canvas:   opts.Canvas,
	}
	return g, nil
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run(title string) error {
	ebiten.SetWindowSize(menu.ScreenWidth*windowScale, menu.ScreenHeight*windowScale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if !g.windowOpenedLogged {
		g.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		g.log.Info("window opened", "width", w, "height", h)
	}
	if g.frontend.QuitRequested() {
		return ebiten.Termination
	}
	if g.onFrame != nil {
		g.onFrame()
	}

	st := g.input
	defer st.EndFrame()
	st.ApplyAll(g.poller.poll())
	g.logInput(st)

	inMenu := g.frontend.InMenuContext()
	g.gamepad.Update(st, inMenu)
	g.gamepad.HandleMenuInput(st, inMenu)

	g.canvas.reset()
	switch g.frontend.Phase() {
	case state.PhaseAgentMenu:
		if level, stay := g.menu.Update(st, g.cursor); !stay {
			g.frontend.BeginMission(level)
			if g.onSave != nil {
				g.onSave(g.menu.Roster())
			}
		}
	case state.PhaseMission:
		g.updateMission(st)
	}
	return nil
}

// logInput reports this frame's presses by display name at debug level.
func (g *Game) logInput(st *input.State) {
	if !g.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if k := st.KeyPressedAny(false); k != input.KeyUnknown {
		g.log.Debug("key pressed", "key", input.KeyboardName(k), "code", int(k))
	}
	if b := st.ControllerButtonPressed(); b != input.ButtonUnknown {
		g.log.Debug("button pressed", "button", input.ControllerButtonName(b), "code", int(b))
	}
	if a := st.ControllerAnalogDown(); a != input.AxisUnknown {
		g.log.Debug("trigger down", "axis", input.ControllerAxisName(a))
	}
	if b := st.MouseButtonPressed(); b != input.MouseButtonUnknown {
		g.log.Debug("mouse pressed", "button", input.MouseButtonName(b))
	}
}

func (g *Game) updateMission(st *input.State) {
	var a *agent.Data
	if id := g.menu.AgentID(); id >= 0 {
		a = g.menu.Roster().Agent(id)
	}
	if g.frontend.UpdateMission(st, a) && g.onSave != nil {
		g.onSave(g.menu.Roster())
	}

	g.canvas.Clear()
	y := 60
	for _, msg := range g.frontend.Messages() {
		g.canvas.Print(msg, 24, y, renderer.PaletteText)
		y += 12
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.replay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return menu.ScreenWidth, menu.ScreenHeight
}

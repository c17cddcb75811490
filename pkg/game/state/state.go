// Package state tracks where the frontend is: the agent menu, a mission, or
// shutting down. Frontend implements menu.Host.
package state

import (
	"fmt"
	"log/slog"
	"sync"

	"darkforces/pkg/engine/input"
	"darkforces/pkg/game/agent"
	"darkforces/pkg/game/i18n"
)

// Phase is the screen the frontend is showing.
type Phase int

const (
	PhaseAgentMenu Phase = iota
	PhaseMission
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseAgentMenu:
		return "agent_menu"
	case PhaseMission:
		return "mission"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

const maxMessages = 5

// Frontend is the frontend state shared by the window loop and the menu.
type Frontend struct {
	log *slog.Logger

	mu       sync.Mutex
	phase    Phase
	level    int // 1-based, 0 outside a mission
	messages []string

	onExitToMenu func()
}

// NewFrontend starts in the agent menu.
func NewFrontend(log *slog.Logger) *Frontend {
	if log == nil {
		log = slog.Default()
	}
	return &Frontend{log: log.With("component", "frontend")}
}

// OnExitToMenu sets the hook run when the agent menu asks to leave for the
// front menu. There is no front menu, so callers restart the agent menu.
func (f *Frontend) OnExitToMenu(fn func()) {
	f.mu.Lock()
	f.onExitToMenu = fn
	f.mu.Unlock()
}

func (f *Frontend) InMenuContext() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase == PhaseAgentMenu
}

// ExitToMenu returns to the agent menu. Called from the agent menu itself it
// runs the exit hook.
func (f *Frontend) ExitToMenu() {
	f.mu.Lock()
	from := f.phase
	f.phase = PhaseAgentMenu
	f.level = 0
	hook := f.onExitToMenu
	f.mu.Unlock()

	f.log.Info("exit to menu", "from", from.String())
	if from == PhaseAgentMenu && hook != nil {
		hook()
	}
}

func (f *Frontend) PostQuit() {
	f.mu.Lock()
	f.phase = PhaseQuit
	f.mu.Unlock()
	f.log.Info("quit requested")
}

// BeginMission leaves the menu for the given 1-based level.
func (f *Frontend) BeginMission(level int) {
	f.mu.Lock()
	f.phase = PhaseMission
	f.level = level
	f.messages = f.messages[:0]
	f.mu.Unlock()
	f.log.Info("mission started", "level", level)

	f.AddMessage(fmt.Sprintf(i18n.Get("MISSION_BRIEFING"), level, i18n.MissionName(level)))
	f.AddMessage(i18n.Get("MISSION_HELP"))
}

func (f *Frontend) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Frontend) Level() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

func (f *Frontend) QuitRequested() bool {
	return f.Phase() == PhaseQuit
}

// AddMessage appends to the mission screen's message log, keeping the last few.
func (f *Frontend) AddMessage(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	if len(f.messages) > maxMessages {
		f.messages = f.messages[len(f.messages)-maxMessages:]
	}
}

func (f *Frontend) Messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

// UpdateMission runs one frame of the mission stand-in screen. Escape or B
// abandons the mission; 1, 2 or 3 finish it on easy, medium or hard for a.
// It reports whether a's progress changed.
func (f *Frontend) UpdateMission(st *input.State, a *agent.Data) bool {
	if f.Phase() != PhaseMission {
		return false
	}
	if st.KeyPressed(input.KeyEscape) || st.ButtonPressed(input.ButtonB) {
		f.ExitToMenu()
		return false
	}

	var diff agent.Difficulty
	switch {
	case st.KeyPressed(input.Key1):
		diff = agent.DifficultyEasy
	case st.KeyPressed(input.Key2):
		diff = agent.DifficultyMedium
	case st.KeyPressed(input.Key3):
		diff = agent.DifficultyHard
	default:
		return false
	}
	if a == nil {
		return false
	}

	level := f.Level()
	a.CompleteMission(level, diff)
	f.log.Info("mission complete", "agent", a.Name, "level", level, "difficulty", diff.String())
	f.ExitToMenu()
	return true
}

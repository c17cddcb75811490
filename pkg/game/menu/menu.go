// Package menu implements the agent menu: the screen where the player picks
// a profile and a mission before play starts.
package menu

import (
	"image"
	"log/slog"
	"time"

	"darkforces/pkg/engine/input"
	"darkforces/pkg/game/agent"
	"darkforces/pkg/game/config"
	"darkforces/pkg/game/i18n"
)

// NameMaxLen is the longest name the new-agent edit box accepts.
const NameMaxLen = 16

// Host is the frontend that owns the menu.
type Host interface {
	// InMenuContext reports whether gamepad menu navigation is active.
	InMenuContext() bool
	ExitToMenu()
	PostQuit()
}

// LangHotkeys are the language dependent shortcut keys.
type LangHotkeys struct {
	Remove input.KeyboardCode
	Begin  input.KeyboardCode
	Yes    input.KeyboardCode
}

// DefaultLangHotkeys are the English shortcuts.
func DefaultLangHotkeys() LangHotkeys {
	return LangHotkeys{Remove: input.KeyR, Begin: input.KeyB, Yes: input.KeyY}
}

type Options struct {
	Hotkeys         LangHotkeys
	QuitExitsToMenu bool
	// DefaultAgentName prefills the new-agent dialog. Empty uses the translated default.
	DefaultAgentName string
	// MaxLevel is the number of missions the game ships.
	MaxLevel int

	Deadzone        float64
	StickThreshold  float64
	NavInitialDelay time.Duration
	NavRepeat       time.Duration
	DialogRepeat    time.Duration

	// OnRosterChange runs after an agent is created, removed or changes mission.
	OnRosterChange func(*agent.Roster)
	// Now is the clock used for gamepad repeat timing.
	Now func() time.Time
}

// DefaultOptions returns options built from the default config.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig converts the menu and input config sections.
func OptionsFromConfig(cfg *config.Config) Options {
	hk := DefaultLangHotkeys()
	if k, ok := input.ParseKeyCode(cfg.Menu.RemoveKey); ok {
		hk.Remove = k
	}
	if k, ok := input.ParseKeyCode(cfg.Menu.BeginKey); ok {
		hk.Begin = k
	}
	if k, ok := input.ParseKeyCode(cfg.Menu.YesKey); ok {
		hk.Yes = k
	}
	return Options{
		Hotkeys:          hk,
		QuitExitsToMenu:  cfg.Menu.QuitExitsToMenu,
		DefaultAgentName: cfg.Menu.DefaultAgentName,
		MaxLevel:         agent.MaxLevelCount,
		Deadzone:         cfg.Input.Deadzone,
		StickThreshold:   cfg.Input.StickThreshold,
		NavInitialDelay:  cfg.Input.NavInitialDelay,
		NavRepeat:        cfg.Input.NavRepeat,
		DialogRepeat:     cfg.Input.DialogRepeat,
	}
}

// Menu is the agent menu state machine. Call Update once per frame.
type Menu struct {
	log    *slog.Logger
	roster *agent.Roster
	host   Host
	canvas Canvas
	opts   Options

	loaded       bool
	displayInit  bool
	missionBegin bool

	agentID         int
	selectedMission int // 0-based
	// lastSelectedAgent is true while the agent list has keyboard focus.
	lastSelectedAgent bool

	dialog        dialog
	buttonPressed int
	buttonHover   bool

	focusArea   FocusArea
	buttonFocus ButtonID
	dialogFocus DialogButton
	nav         *input.Repeater
	dialogNav   *input.Throttle

	editBox       EditBox
	cursorFlicker int
	cursor        image.Point
}

// New creates the menu over roster. A nil canvas skips drawing.
func New(roster *agent.Roster, host Host, canvas Canvas, opts Options, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.Default()
	}
	if roster == nil {
		roster = agent.NewRoster()
	}
	if canvas == nil {
		canvas = nopCanvas{}
	}
	if opts.MaxLevel <= 0 || opts.MaxLevel > agent.MaxLevelCount {
		opts.MaxLevel = agent.MaxLevelCount
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Menu{
		log:           log.With("component", "agent_menu"),
		roster:        roster,
		host:          host,
		canvas:        canvas,
		opts:          opts,
		agentID:       -1,
		buttonPressed: -1,
	}
	m.lastSelectedAgent = true
	m.nav = input.NewRepeater(opts.NavInitialDelay, opts.NavRepeat)
	m.dialogNav = &input.Throttle{Delay: opts.DialogRepeat}
	m.resetFocus()
	return m
}

// SetOptions swaps the options, e.g. after a config reload. Callbacks and
// the clock are kept when the new options leave them unset.
func (m *Menu) SetOptions(opts Options) {
	if opts.OnRosterChange == nil {
		opts.OnRosterChange = m.opts.OnRosterChange
	}
	if opts.Now == nil {
		opts.Now = m.opts.Now
	}
	if opts.MaxLevel <= 0 || opts.MaxLevel > agent.MaxLevelCount {
		opts.MaxLevel = m.opts.MaxLevel
	}
	m.opts = opts
	m.nav.InitialDelay = opts.NavInitialDelay
	m.nav.Interval = opts.NavRepeat
	m.dialogNav.Delay = opts.DialogRepeat
}

func (m *Menu) Roster() *agent.Roster { return m.roster }

// Update runs one frame: input, state changes and drawing. It returns the
// 1-based level to load and false once the player begins a mission.
func (m *Menu) Update(st *input.State, cursor *Cursor) (levelIndex int, stay bool) {
	if !m.loaded {
		m.startup()
		m.loaded = true
	}
	if !m.displayInit {
		cursor.Reset()
		m.missionBegin = false
		m.displayInit = true
	}

	cursor.Track(st)
	m.cursor = cursor.Pos()
	m.consumeGamepadClick(st)
	m.update(st)
	m.draw()

	if m.missionBegin {
		m.displayInit = false
		m.selectedMission = clamp(m.selectedMission, 0, agent.MaxLevelCount-1)
		m.log.Info("mission begin", "agent", m.agentID, "level", m.selectedMission+1)
	}
	return m.selectedMission + 1, !m.missionBegin
}

// ResetState forgets load and display state so the next Update starts over.
func (m *Menu) ResetState() {
	m.loaded = false
	m.displayInit = false
	m.resetFocus()
}

func (m *Menu) resetFocus() {
	m.focusArea = FocusAgentList
	m.buttonFocus = ButtonNew
	m.dialogFocus = DialogNo
	m.nav.Reset()
}

func (m *Menu) startup() {
	count := m.roster.Normalize()
	if count > 0 {
		m.agentID = 0
		m.selectedMission = max(0, m.roster.Agent(0).SelectedMission-1)
	} else {
		m.agentID = -1
		m.selectedMission = 0
	}
	m.missionBegin = false
	m.log.Debug("agent menu startup", "agents", count)
}

// consumeGamepadClick drops the left click the gamepad cursor synthesizes
// from A, since the menu gives A its own meaning while navigating.
func (m *Menu) consumeGamepadClick(st *input.State) {
	if !m.inMenuContext() {
		return
	}
	if st.ButtonPressed(input.ButtonA) && st.MousePressed(input.MouseLeft) {
		st.ClearMouseButtonPressed(input.MouseLeft)
	}
}

func (m *Menu) inMenuContext() bool {
	return m.host != nil && m.host.InMenuContext()
}

func (m *Menu) defaultAgentName() string {
	if m.opts.DefaultAgentName != "" {
		return m.opts.DefaultAgentName
	}
	return i18n.Get("DEFAULT_AGENT_NAME")
}

func (m *Menu) rosterChanged() {
	if m.opts.OnRosterChange != nil {
		m.opts.OnRosterChange(m.roster)
	}
}

// State accessors, mostly for the frontend and tests.

func (m *Menu) SelectedMission() int { return m.selectedMission }
func (m *Menu) AgentListFocused() bool { return m.lastSelectedAgent }
func (m *Menu) GamepadFocus() FocusArea { return m.focusArea }
func (m *Menu) GamepadButton() ButtonID { return m.buttonFocus }
func (m *Menu) GamepadDialog() DialogButton { return m.dialogFocus }
func (m *Menu) EditBox() *EditBox { return &m.editBox }

// OpenDialog reports which dialog is open, or NoButton when none is.
func (m *Menu) OpenDialog() ButtonID {
	if m.dialog == nil {
		return NoButton
	}
	return m.dialog.owner()
}

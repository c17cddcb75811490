package menu

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkforces/pkg/engine/input"
	"darkforces/pkg/game/agent"
	"darkforces/pkg/game/config"
)

type fakeHost struct {
	inMenu bool
	exits  int
	quits  int
}

func (h *fakeHost) InMenuContext() bool { return h.inMenu }
func (h *fakeHost) ExitToMenu() { h.exits++ }
func (h *fakeHost) PostQuit() { h.quits++ }

// recCanvas records one frame of draw calls as strings.
type recCanvas struct {
	ops []string
}

func (c *recCanvas) add(format string, a ...any) { c.ops = append(c.ops, fmt.Sprintf(format, a...)) }

func (c *recCanvas) Clear() { c.ops = append(c.ops[:0], "clear") }
func (c *recCanvas) MenuFrame(index, dx, dy int) { c.add("menu %d %d %d", index, dx, dy) }
func (c *recCanvas) DialogFrame(index int) { c.add("dialog %d", index) }
func (c *recCanvas) Quad(r image.Rectangle, col uint8) { c.add("quad %v %d", r, col) }
func (c *recCanvas) Print(text string, x, y int, col uint8) {
	c.add("print %s %d %d %d", text, x, y, col)
}
func (c *recCanvas) EditBox(text string, cursor int, show bool, area image.Rectangle) {
	c.add("edit %s %d %t %v", text, cursor, show, area)
}
func (c *recCanvas) Cursor(p image.Point) { c.add("cursor %v", p) }

type fixture struct {
	t       *testing.T
	st      *input.State
	cur     *Cursor
	host    *fakeHost
	canvas  *recCanvas
	m       *Menu
	now     time.Time
	changes int
}

func newFixture(t *testing.T, agents ...agent.Data) *fixture {
	return newFixtureWith(t, nil, agents...)
}

func newFixtureWith(t *testing.T, tweak func(*Options), agents ...agent.Data) *fixture {
	t.Helper()
	f := &fixture{
		t:      t,
		st:     input.NewState(),
		cur:    NewCursor(),
		host:   &fakeHost{},
		canvas: &recCanvas{},
		now:    time.Unix(1000, 0),
	}
	opts := DefaultOptions()
	opts.Now = func() time.Time { return f.now }
	opts.OnRosterChange = func(*agent.Roster) { f.changes++ }
	if tweak != nil {
		tweak(&opts)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.m = New(agent.NewRoster(agents...), f.host, f.canvas, opts, log)
	f.frame()
	return f
}

func (f *fixture) frame() (int, bool) {
	level, stay := f.m.Update(f.st, f.cur)
	f.st.EndFrame()
	return level, stay
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fixture) tap(key input.KeyboardCode) (int, bool) {
	f.st.Apply(input.Event{Device: input.DeviceKeyboard, Kind: input.EventKeyDown, Key: key})
	level, stay := f.frame()
	f.st.Apply(input.Event{Device: input.DeviceKeyboard, Kind: input.EventKeyUp, Key: key})
	return level, stay
}

func (f *fixture) click(x, y int) (int, bool) {
	f.st.SetMousePos(x, y)
	f.st.SetMouseButtonDown(input.MouseLeft)
	f.frame()
	f.st.SetMouseButtonUp(input.MouseLeft)
	return f.frame()
}

// pad presses and releases a controller button, with an idle frame after so
// held-direction repeat starts over.
func (f *fixture) pad(b input.Button) (int, bool) {
	f.st.SetButtonDown(b)
	level, stay := f.frame()
	f.st.SetButtonUp(b)
	f.frame()
	return level, stay
}

func agentAt(name string, next, selected int) agent.Data {
	d := agent.New(name)
	d.NextMission = next
	d.SelectedMission = selected
	return d
}

func TestUpdate_Startup(t *testing.T) {
	roster := agent.NewRoster(agentAt("Kyle", 4, 3), agent.New("Jan"))
	roster.Agent(3).Name = "stale"

	m := New(roster, &fakeHost{}, nil, DefaultOptions(), nil)
	level, stay := m.Update(input.NewState(), NewCursor())

	assert.True(t, stay)
	assert.Equal(t, 3, level)
	assert.Equal(t, 0, m.AgentID())
	assert.Equal(t, 2, m.SelectedMission())
	assert.Equal(t, 2, m.AgentCount())
	assert.Empty(t, roster.Agent(3).Name, "stale slot cleared")
}

func TestUpdate_EmptyRosterNeverBegins(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, -1, f.m.AgentID())

	level, stay := f.tap(input.KeyReturn)
	assert.True(t, stay)
	assert.Equal(t, 1, level)
}

func TestClickBegin(t *testing.T) {
	f := newFixture(t, agentAt("Kyle", 4, 3))

	level, stay := f.click(250, 170)
	assert.False(t, stay)
	assert.Equal(t, 3, level)

	_, stay = f.frame()
	assert.True(t, stay, "display re-initialises after a mission begins")
}

func TestClickDraggedOffButtonDoesNothing(t *testing.T) {
	f := newFixture(t)

	f.st.SetMousePos(30, 170)
	f.st.SetMouseButtonDown(input.MouseLeft)
	f.frame()
	f.st.SetMousePos(5, 5)
	f.frame()
	f.st.SetMouseButtonUp(input.MouseLeft)
	f.frame()

	assert.Equal(t, NoButton, f.m.OpenDialog())
}

func TestClickAgentList(t *testing.T) {
	f := newFixture(t, agent.New("a"), agent.New("b"), agentAt("c", 3, 2))

	f.click(30, 54)
	assert.Equal(t, 2, f.m.AgentID())
	assert.Equal(t, 1, f.m.SelectedMission())
	assert.True(t, f.m.AgentListFocused())

	f.click(30, 36)
	assert.Equal(t, 0, f.m.AgentID())

	f.click(30, 140)
	assert.Equal(t, 2, f.m.AgentID(), "rows past the last agent pick the last agent")
}

func TestClickMissionList(t *testing.T) {
	f := newFixture(t, agentAt("Kyle", 4, 1))

	f.click(200, 35+8*5)
	assert.Equal(t, 3, f.m.SelectedMission(), "clamped to the last unlocked mission")
	assert.Equal(t, 4, f.m.Roster().Agent(0).SelectedMission)
	assert.False(t, f.m.AgentListFocused())
	assert.Equal(t, 1, f.changes)
}

func TestNewAgentDialog_Keyboard(t *testing.T) {
	f := newFixture(t)

	f.tap(input.KeyN)
	require.Equal(t, ButtonNew, f.m.OpenDialog())
	assert.Equal(t, "Player 1", f.m.EditBox().Text())
	assert.Equal(t, 8, f.m.EditBox().Cursor())
	assert.Equal(t, DialogNo, f.m.GamepadDialog())

	f.st.SetBufferedInput("x")
	f.tap(input.KeyReturn)

	assert.Equal(t, NoButton, f.m.OpenDialog())
	require.Equal(t, 1, f.m.AgentCount())
	assert.Equal(t, "Player 1x", f.m.Roster().Agent(0).Name)
	assert.Equal(t, 0, f.m.AgentID())
	assert.Equal(t, 0, f.m.SelectedMission())
	assert.Equal(t, 1, f.changes)
}

func TestNewAgentDialog_Escape(t *testing.T) {
	f := newFixture(t)
	f.tap(input.KeyN)
	f.tap(input.KeyEscape)

	assert.Equal(t, NoButton, f.m.OpenDialog())
	assert.Zero(t, f.m.AgentCount())
}

func TestNewAgentDialog_Mouse(t *testing.T) {
	f := newFixture(t)

	f.tap(input.KeyN)
	f.click(170, 110)
	assert.Equal(t, NoButton, f.m.OpenDialog())
	assert.Zero(t, f.m.AgentCount(), "No closes without creating")

	f.tap(input.KeyN)
	f.click(210, 110)
	assert.Equal(t, NoButton, f.m.OpenDialog())
	require.Equal(t, 1, f.m.AgentCount())
	assert.Equal(t, "Player 1", f.m.Roster().Agent(0).Name)
}

func TestNewAgentDialog_EmptyNameFallsBack(t *testing.T) {
	f := newFixtureWith(t, func(o *Options) { o.DefaultAgentName = "Kyle" })

	f.tap(input.KeyN)
	assert.Equal(t, "Kyle", f.m.EditBox().Text())

	f.m.EditBox().Reset("   ", NameMaxLen)
	f.tap(input.KeyReturn)
	assert.Equal(t, "Kyle", f.m.Roster().Agent(0).Name)
}

func TestNewAgent_RosterNeverExceedsMax(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < agent.MaxAgentCount+2; i++ {
		f.tap(input.KeyN)
		f.tap(input.KeyReturn)
	}
	assert.Equal(t, agent.MaxAgentCount, f.m.AgentCount())
	assert.Equal(t, agent.MaxAgentCount, f.changes)
}

func TestRemoveAgentDialog_YesKey(t *testing.T) {
	f := newFixture(t, agent.New("a"), agent.New("b"), agent.New("c"))

	f.tap(input.KeyDown)
	require.Equal(t, 1, f.m.AgentID())

	f.tap(input.KeyR)
	require.Equal(t, ButtonRemove, f.m.OpenDialog())
	f.tap(input.KeyY)

	assert.Equal(t, NoButton, f.m.OpenDialog())
	require.Equal(t, 2, f.m.AgentCount())
	assert.Equal(t, "a", f.m.Roster().Agent(0).Name)
	assert.Equal(t, "c", f.m.Roster().Agent(1).Name)
	assert.Equal(t, 0, f.m.AgentID())
	assert.Equal(t, 1, f.changes)
}

func TestRemoveAgentDialog_Cancel(t *testing.T) {
	f := newFixture(t, agent.New("a"))

	for _, key := range []input.KeyboardCode{input.KeyN, input.KeyReturn, input.KeyEscape, input.KeyKPEnter} {
		f.tap(input.KeyR)
		require.Equal(t, ButtonRemove, f.m.OpenDialog())
		f.tap(key)
		assert.Equal(t, NoButton, f.m.OpenDialog(), "key %d closes", key)
		assert.Equal(t, 1, f.m.AgentCount())
	}
}

func TestRemoveAgentDialog_MouseYesRemovesLast(t *testing.T) {
	f := newFixture(t, agent.New("a"))

	f.tap(input.KeyR)
	f.click(210, 110)

	assert.Zero(t, f.m.AgentCount())
	assert.Equal(t, -1, f.m.AgentID())
	assert.Equal(t, 0, f.m.SelectedMission())
}

func TestQuitDialog(t *testing.T) {
	tests := []struct {
		name       string
		exitToMenu bool
		confirm    func(f *fixture)
		exits      int
		quits      int
	}{
		{"return quits", false, func(f *fixture) { f.tap(input.KeyReturn) }, 0, 1},
		{"return exits to menu", true, func(f *fixture) { f.tap(input.KeyReturn) }, 1, 0},
		{"yes key", false, func(f *fixture) { f.tap(input.KeyY) }, 0, 1},
		{"yes button", false, func(f *fixture) { f.click(210, 110) }, 0, 1},
		{"no button", false, func(f *fixture) { f.click(170, 110) }, 0, 0},
		{"escape", false, func(f *fixture) { f.tap(input.KeyEscape) }, 0, 0},
		{"n key", false, func(f *fixture) { f.tap(input.KeyN) }, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtureWith(t, func(o *Options) { o.QuitExitsToMenu = tt.exitToMenu })

			f.tap(input.KeyD)
			require.Equal(t, ButtonExit, f.m.OpenDialog())
			tt.confirm(f)

			assert.Equal(t, NoButton, f.m.OpenDialog())
			assert.Equal(t, tt.exits, f.host.exits)
			assert.Equal(t, tt.quits, f.host.quits)
		})
	}
}

func TestKeyboardArrows(t *testing.T) {
	f := newFixture(t, agentAt("a", 3, 1), agent.New("b"), agent.New("c"))

	f.tap(input.KeyUp)
	assert.Equal(t, 2, f.m.AgentID(), "up wraps to the last agent")
	f.tap(input.KeyDown)
	assert.Equal(t, 0, f.m.AgentID())

	f.tap(input.KeyRight)
	assert.False(t, f.m.AgentListFocused())

	f.tap(input.KeyDown)
	assert.Equal(t, 1, f.m.SelectedMission())
	f.tap(input.KeyDown)
	assert.Equal(t, 2, f.m.SelectedMission())
	f.tap(input.KeyDown)
	assert.Equal(t, 0, f.m.SelectedMission(), "wraps past the first locked mission")
	f.tap(input.KeyUp)
	assert.Equal(t, 2, f.m.SelectedMission())

	f.tap(input.KeyLeft)
	assert.True(t, f.m.AgentListFocused())
}

func TestKeyboardArrows_NoMissionsUnlocked(t *testing.T) {
	f := newFixture(t, agent.New("a"))
	f.tap(input.KeyRight)
	f.tap(input.KeyDown)
	assert.Equal(t, 0, f.m.SelectedMission())
}

func TestGamepad_HeldDirectionRepeats(t *testing.T) {
	f := newFixture(t, agent.New("a"), agent.New("b"))
	f.host.inMenu = true

	f.st.SetButtonDown(input.ButtonDPadDown)
	f.frame()
	assert.Equal(t, 1, f.m.AgentID(), "first frame moves")

	f.advance(100 * time.Millisecond)
	f.frame()
	assert.Equal(t, 1, f.m.AgentID())

	f.advance(250 * time.Millisecond)
	f.frame()
	assert.Equal(t, 0, f.m.AgentID(), "repeat after the initial delay")

	f.advance(50 * time.Millisecond)
	f.frame()
	assert.Equal(t, 0, f.m.AgentID())

	f.advance(60 * time.Millisecond)
	f.frame()
	assert.Equal(t, 1, f.m.AgentID())

	f.st.SetButtonUp(input.ButtonDPadDown)
	f.advance(time.Second)
	f.frame()
	assert.Equal(t, 1, f.m.AgentID())
}

func TestGamepad_StickNavigates(t *testing.T) {
	f := newFixture(t, agent.New("a"), agent.New("b"))
	f.host.inMenu = true

	f.st.SetAxis(input.AxisLeftY, 0.5)
	f.frame()
	assert.Equal(t, 1, f.m.AgentID(), "direction is normalised before the threshold")

	f.st.SetAxis(input.AxisLeftY, 0.05)
	f.frame()
	f.st.SetAxis(input.AxisLeftY, -0.9)
	f.frame()
	assert.Equal(t, 0, f.m.AgentID())
}

func TestGamepad_FocusFlow(t *testing.T) {
	f := newFixture(t, agentAt("Kyle", 3, 1))
	f.host.inMenu = true

	f.pad(input.ButtonA)
	assert.Equal(t, FocusMissionList, f.m.GamepadFocus())
	assert.False(t, f.m.AgentListFocused())

	f.pad(input.ButtonDPadDown)
	assert.Equal(t, 1, f.m.SelectedMission())

	f.pad(input.ButtonDPadRight)
	assert.Equal(t, FocusButtons, f.m.GamepadFocus())

	f.pad(input.ButtonDPadDown)
	assert.Equal(t, ButtonRemove, f.m.GamepadButton())
	f.pad(input.ButtonDPadUp)
	f.pad(input.ButtonDPadUp)
	assert.Equal(t, ButtonBegin, f.m.GamepadButton(), "button focus wraps")
	assert.Contains(t, f.canvas.ops, "menu 7 0 0", "focused button is lit")

	f.pad(input.ButtonB)
	assert.Equal(t, FocusAgentList, f.m.GamepadFocus())
	assert.True(t, f.m.AgentListFocused())

	f.pad(input.ButtonDPadRight)
	assert.Equal(t, FocusMissionList, f.m.GamepadFocus())

	level, stay := f.pad(input.ButtonA)
	assert.False(t, stay, "A on the mission list begins")
	assert.Equal(t, 2, level)
}

func TestGamepad_RightWithoutMissionsGoesToButtons(t *testing.T) {
	f := newFixture(t, agent.New("a"))
	f.host.inMenu = true

	f.pad(input.ButtonDPadRight)
	assert.Equal(t, FocusButtons, f.m.GamepadFocus())
	f.pad(input.ButtonDPadLeft)
	assert.Equal(t, FocusAgentList, f.m.GamepadFocus())
}

func TestGamepad_ButtonAndDialog(t *testing.T) {
	f := newFixture(t)
	f.host.inMenu = true

	f.pad(input.ButtonA)
	assert.Equal(t, FocusAgentList, f.m.GamepadFocus(), "no agents to move on to")

	f.pad(input.ButtonDPadRight)
	require.Equal(t, FocusButtons, f.m.GamepadFocus())
	f.pad(input.ButtonDPadDown)
	f.pad(input.ButtonDPadDown)
	require.Equal(t, ButtonExit, f.m.GamepadButton())

	f.pad(input.ButtonA)
	require.Equal(t, ButtonExit, f.m.OpenDialog())

	f.pad(input.ButtonDPadRight)
	assert.Equal(t, DialogYes, f.m.GamepadDialog())
	f.pad(input.ButtonA)

	assert.Equal(t, NoButton, f.m.OpenDialog())
	assert.Equal(t, 1, f.host.quits)
}

func TestGamepad_DialogB(t *testing.T) {
	f := newFixture(t, agent.New("a"))
	f.host.inMenu = true

	f.tap(input.KeyR)
	f.pad(input.ButtonDPadRight)
	f.pad(input.ButtonB)

	assert.Equal(t, NoButton, f.m.OpenDialog())
	assert.Equal(t, 1, f.m.AgentCount())
}

func TestGamepad_DialogStickThrottled(t *testing.T) {
	f := newFixture(t, agent.New("a"))
	f.host.inMenu = true
	f.tap(input.KeyR)

	f.st.SetAxis(input.AxisLeftX, 0.9)
	f.frame()
	assert.Equal(t, DialogYes, f.m.GamepadDialog())

	f.st.SetAxis(input.AxisLeftX, -0.9)
	f.advance(100 * time.Millisecond)
	f.frame()
	assert.Equal(t, DialogYes, f.m.GamepadDialog(), "inside the repeat delay")

	f.advance(60 * time.Millisecond)
	f.frame()
	assert.Equal(t, DialogNo, f.m.GamepadDialog())
}

func TestGamepad_IgnoredOutsideMenuContext(t *testing.T) {
	f := newFixture(t, agentAt("a", 3, 1), agent.New("b"))

	f.pad(input.ButtonA)
	f.pad(input.ButtonDPadDown)
	assert.Equal(t, FocusAgentList, f.m.GamepadFocus())
	assert.Equal(t, 0, f.m.AgentID())
}

func TestGamepad_SyntheticClickConsumed(t *testing.T) {
	f := newFixture(t, agentAt("a", 3, 1))
	f.host.inMenu = true

	f.st.SetMousePos(30, 170)
	f.st.SetButtonDown(input.ButtonA)
	f.st.SetMouseButtonDown(input.MouseLeft)
	f.frame()

	assert.Equal(t, FocusMissionList, f.m.GamepadFocus())
	assert.False(t, f.st.MouseDown(input.MouseLeft))

	f.st.SetButtonUp(input.ButtonA)
	f.frame()
	assert.Equal(t, NoButton, f.m.OpenDialog(), "the click over New never fires")
}

func TestMissionBegin_ClampsSelection(t *testing.T) {
	all := agentAt("done", agent.MaxLevelCount+1, agent.MaxLevelCount+1)
	f := newFixture(t, all)

	level, stay := f.tap(input.KeyB)
	assert.False(t, stay)
	assert.Equal(t, agent.MaxLevelCount, level)
}

func TestResetState(t *testing.T) {
	f := newFixture(t, agentAt("a", 3, 1), agent.New("b"))
	f.host.inMenu = true

	f.tap(input.KeyDown)
	f.pad(input.ButtonA)
	require.Equal(t, 1, f.m.AgentID())
	require.Equal(t, FocusMissionList, f.m.GamepadFocus())

	f.m.ResetState()
	f.frame()
	assert.Equal(t, 0, f.m.AgentID())
	assert.Equal(t, FocusAgentList, f.m.GamepadFocus())
	assert.Equal(t, image.Pt(ScreenWidth/2, ScreenHeight/2), f.cur.Pos())
}

func TestRosterOps(t *testing.T) {
	agents := make([]agent.Data, agent.MaxAgentCount)
	for i := range agents {
		agents[i] = agent.New(fmt.Sprintf("agent %d", i))
	}
	f := newFixture(t, agents...)

	f.m.CreateNewAgent()
	assert.Equal(t, agent.MaxAgentCount, f.m.AgentCount())
	assert.Zero(t, f.changes)

	f.m.SetAgentID(5)
	f.m.RemoveAgent(5)
	assert.Equal(t, agent.MaxAgentCount-1, f.m.AgentCount())
	assert.Equal(t, 0, f.m.AgentID())
	assert.Equal(t, "agent 6", f.m.Roster().Agent(5).Name)

	f.m.SetAgentName("Renamed")
	assert.Equal(t, "Renamed", f.m.Roster().Agent(0).Name)

	f.m.SetAgentID(-1)
	f.m.SetAgentName("ignored")
	assert.Equal(t, "Renamed", f.m.Roster().Agent(0).Name)

	f.m.SetAgentCount(3)
	assert.Equal(t, 3, f.m.AgentCount())
}

func TestDraw_MainScreen(t *testing.T) {
	kyle := agentAt("Kyle", 3, 1)
	kyle.Completed[0] = agent.DifficultyHard
	f := newFixture(t, kyle, agent.New("Jan"))

	ops := f.canvas.ops
	require.GreaterOrEqual(t, len(ops), 2)
	assert.Equal(t, "clear", ops[0])
	assert.Equal(t, "menu 0 0 0", ops[1])
	for _, frame := range []string{"menu 2 0 0", "menu 4 0 0", "menu 6 0 0", "menu 8 0 0"} {
		assert.Contains(t, ops, frame)
	}

	assert.Contains(t, ops, "quad (171,35)-(289,44) 13")
	assert.Contains(t, ops, "print Secret Base 174 36 32")
	assert.Contains(t, ops, "menu 13 0 -20")
	assert.Contains(t, ops, "print Talay: Tak Base 174 44 47")
	assert.Contains(t, ops, "menu 11 0 -12")
	assert.Contains(t, ops, "print Anoat City 174 52 47")
	assert.NotContains(t, ops, "print Research Facility 174 60 47")

	assert.Contains(t, ops, "quad (25,35)-(143,44) 12")
	assert.Contains(t, ops, "print Kyle 28 36 32")
	assert.Contains(t, ops, "print Jan 28 44 47")
	assert.Equal(t, "cursor (160,100)", ops[len(ops)-1])
}

func TestDraw_AllMissionsComplete(t *testing.T) {
	done := agentAt("done", agent.MaxLevelCount+1, 1)
	done.Completed[agent.MaxLevelCount-1] = agent.DifficultyMedium
	f := newFixture(t, done)

	assert.Contains(t, f.canvas.ops, "menu 12 0 84")
	assert.Contains(t, f.canvas.ops, "print The Arc Hammer 174 140 47")
}

func TestDraw_Dialogs(t *testing.T) {
	f := newFixture(t, agent.New("a"))
	f.host.inMenu = true

	f.tap(input.KeyN)
	ops := f.canvas.ops
	assert.Contains(t, ops, "menu 1 0 0", "the owning button stays lit")
	assert.Contains(t, ops, "menu 4 0 0")
	assert.Contains(t, ops, "dialog 2")
	assert.Contains(t, ops, "edit Player 1 8 true (106,87)-(216,100)")
	assert.Contains(t, ops, "dialog 8")
	f.tap(input.KeyEscape)

	f.tap(input.KeyR)
	assert.Contains(t, f.canvas.ops, "menu 3 0 0")
	assert.Contains(t, f.canvas.ops, "dialog 0")
	assert.Contains(t, f.canvas.ops, "dialog 4")

	f.pad(input.ButtonDPadRight)
	assert.Contains(t, f.canvas.ops, "dialog 6")
	f.tap(input.KeyEscape)

	f.tap(input.KeyD)
	assert.Contains(t, f.canvas.ops, "dialog 1")
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Menu.YesKey = "j"
	cfg.Menu.QuitExitsToMenu = true
	cfg.Input.NavRepeat = 42 * time.Millisecond

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, input.KeyJ, opts.Hotkeys.Yes)
	assert.Equal(t, input.KeyB, opts.Hotkeys.Begin)
	assert.True(t, opts.QuitExitsToMenu)
	assert.Equal(t, 42*time.Millisecond, opts.NavRepeat)
	assert.Equal(t, agent.MaxLevelCount, opts.MaxLevel)
}

func TestSetOptionsKeepsCallbacks(t *testing.T) {
	f := newFixture(t)
	f.m.SetOptions(DefaultOptions())

	f.tap(input.KeyN)
	f.tap(input.KeyReturn)
	assert.Equal(t, 1, f.changes)
}

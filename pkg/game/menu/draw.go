package menu

import (
	"image"

	"darkforces/pkg/game/i18n"
)

// Canvas draws the menu's art. Frame indices refer to the agent menu
// animation (MenuFrame) and the dialog animation (DialogFrame); the canvas
// decides what each frame looks like.
type Canvas interface {
	Clear()
	// MenuFrame draws frame index offset by (dx, dy).
	MenuFrame(index, dx, dy int)
	DialogFrame(index int)
	Quad(r image.Rectangle, color uint8)
	Print(text string, x, y int, color uint8)
	EditBox(text string, cursor int, showCursor bool, area image.Rectangle)
	Cursor(p image.Point)
}

type nopCanvas struct{}

func (nopCanvas) Clear() {}
func (nopCanvas) MenuFrame(int, int, int) {}
func (nopCanvas) DialogFrame(int) {}
func (nopCanvas) Quad(image.Rectangle, uint8) {}
func (nopCanvas) Print(string, int, int, uint8) {}
func (nopCanvas) EditBox(string, int, bool, image.Rectangle) {}
func (nopCanvas) Cursor(image.Point) {}

// FrameBackground is the menu frame behind everything else.
const FrameBackground = 0

// ButtonFrame returns the menu frame for button b, lit or not.
func ButtonFrame(b ButtonID, lit bool) int {
	if lit {
		return int(b)*2 + 1
	}
	return int(b)*2 + 2
}

// DifficultyFrame returns the menu frame marking a completed mission.
func DifficultyFrame(completed int) int {
	return difficultyBase + completed
}

func (m *Menu) draw() {
	c := m.canvas
	c.Clear()
	c.MenuFrame(FrameBackground, 0, 0)

	for b := ButtonNew; b < buttonCount; b++ {
		c.MenuFrame(ButtonFrame(b, m.buttonLit(b)), 0, 0)
	}

	m.drawMissions(c)
	m.drawAgents(c)

	if m.dialog != nil {
		m.dialog.draw(m, c)
	}
	c.Cursor(m.cursor)
}

func (m *Menu) buttonLit(b ButtonID) bool {
	if m.dialog != nil {
		return b == m.dialog.owner()
	}
	gamepadFocused := m.focusArea == FocusButtons && m.buttonFocus == b
	return (m.buttonPressed == int(b) && m.buttonHover) || gamepadFocused
}

func highlightRect(textX, textY int) image.Rectangle {
	return rect(textX-3, textY-1, highlightW, highlightH)
}

func (m *Menu) drawMissions(c Canvas) {
	a := m.currentAgent()
	if a == nil {
		return
	}
	maxLevel := m.opts.MaxLevel
	next := clamp(a.NextMission, 1, maxLevel)

	// The mission list highlight is lit when the mission list has focus.
	quadColor := uint8(colorFocused)
	if m.lastSelectedAgent {
		quadColor = colorIdle
	}

	yOffset := difficultyY0
	textY := listTextY
	for i := 0; i < next-1; i++ {
		color := uint8(colorText)
		if m.selectedMission == i {
			color = colorSelected
			c.Quad(highlightRect(missionTextX, textY), quadColor)
		}
		c.Print(i18n.MissionName(i+1), missionTextX, textY, color)
		c.MenuFrame(DifficultyFrame(int(a.Completed[i])), 0, yOffset)
		yOffset += rowHeight
		textY += rowHeight
	}

	color := uint8(colorText)
	if m.selectedMission == next-1 {
		color = colorSelected
		c.Quad(highlightRect(missionTextX, textY), quadColor)
	}
	c.Print(i18n.MissionName(next), missionTextX, textY, color)

	// Every mission done: mark the last one too.
	if a.NextMission > maxLevel {
		c.MenuFrame(DifficultyFrame(int(a.Completed[maxLevel-1])), 0, difficultyY0+rowHeight*(maxLevel-1))
	}
}

func (m *Menu) drawAgents(c Canvas) {
	quadColor := uint8(colorIdle)
	if m.lastSelectedAgent {
		quadColor = colorFocused
	}
	textY := listTextY
	for i, a := range m.roster.Agents() {
		color := uint8(colorText)
		if m.agentID == i {
			color = colorSelected
			c.Quad(highlightRect(agentTextX, textY), quadColor)
		}
		c.Print(a.Name, agentTextX, textY, color)
		textY += rowHeight
	}
}

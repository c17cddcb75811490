package menu

import "image"

// Virtual screen the menu is laid out on.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
)

// ButtonID names the four buttons along the bottom of the agent menu.
type ButtonID int

const (
	ButtonNew ButtonID = iota
	ButtonRemove
	ButtonExit
	ButtonBegin
	buttonCount

	NoButton ButtonID = -1
)

func (b ButtonID) String() string {
	switch b {
	case ButtonNew:
		return "new"
	case ButtonRemove:
		return "remove"
	case ButtonExit:
		return "exit"
	case ButtonBegin:
		return "begin"
	default:
		return "none"
	}
}

// DialogButton is No or Yes in a modal dialog.
type DialogButton int

const (
	DialogNo DialogButton = iota
	DialogYes
	dialogButtonCount
)

// FocusArea is the part of the screen gamepad navigation acts on.
type FocusArea int

const (
	FocusAgentList FocusArea = iota
	FocusMissionList
	FocusButtons
)

func (f FocusArea) String() string {
	switch f {
	case FocusAgentList:
		return "agent_list"
	case FocusMissionList:
		return "mission_list"
	case FocusButtons:
		return "buttons"
	default:
		return "unknown"
	}
}

var (
	agentButtons = [buttonCount]image.Rectangle{
		ButtonNew:    rect(21, 165, 60, 25),
		ButtonRemove: rect(90, 165, 60, 25),
		ButtonExit:   rect(164, 165, 60, 25),
		ButtonBegin:  rect(239, 165, 60, 25),
	}
	dialogButtons = [dialogButtonCount]image.Rectangle{
		DialogNo:  rect(167, 107, 28, 15),
		DialogYes: rect(206, 107, 28, 15),
	}

	agentListArea   = image.Rect(25, 35, 122, 147)
	missionListArea = image.Rect(171, 35, 290, 147)
	editBoxArea     = image.Rect(106, 87, 216, 100)
)

const (
	rowHeight      = 8
	listTop        = 35
	agentTextX     = 28
	missionTextX   = 174
	listTextY      = 36
	highlightW     = 118
	highlightH     = 9
	difficultyY0   = -20
	difficultyBase = 11

	colorText     = 47
	colorSelected = 32
	colorFocused  = 12
	colorIdle     = 13
)

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// AgentButtonRect returns the screen rectangle of a menu button.
func AgentButtonRect(b ButtonID) image.Rectangle {
	if b < 0 || b >= buttonCount {
		return image.Rectangle{}
	}
	return agentButtons[b]
}

// ListAreas returns the agent and mission list panels.
func ListAreas() (agents, missions image.Rectangle) {
	return agentListArea, missionListArea
}

// DialogButtonRect returns the screen rectangle of a dialog button.
func DialogButtonRect(b DialogButton) image.Rectangle {
	if b < 0 || b >= dialogButtonCount {
		return image.Rectangle{}
	}
	return dialogButtons[b]
}

func hitAgentButton(p image.Point) ButtonID {
	for i, r := range agentButtons {
		if p.In(r) {
			return ButtonID(i)
		}
	}
	return NoButton
}

func hitDialogButton(p image.Point) int {
	for i, r := range dialogButtons {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// listRow converts a cursor y inside a list into a row index.
func listRow(y int) int {
	return (y - listTop) / rowHeight
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

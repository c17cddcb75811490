package menu

import (
	"darkforces/pkg/engine/input"
)

// dialog is a modal box over the agent menu. While one is open it gets all
// input instead of the main screen.
type dialog interface {
	update(m *Menu, st *input.State)
	draw(m *Menu, c Canvas)
	// owner is the menu button that opened the dialog.
	owner() ButtonID
}

// Dialog frame indices.
const (
	FrameRemoveDialog = 0
	FrameQuitDialog   = 1
	FrameNewDialog    = 2

	FrameYesNoNo  = 4
	FrameYesNoYes = 6
	FrameNewNo    = 8
	FrameNewYes   = 10
)

// dialogMouse runs the shared No/Yes mouse handling. It returns true on
// frames where the left button is neither freshly pressed nor held over a
// pressed button, which is when dialogs act on keys and releases.
func (m *Menu) dialogMouse(st *input.State) bool {
	switch {
	case st.MousePressed(input.MouseLeft):
		m.buttonPressed = hitDialogButton(m.cursor)
		m.buttonHover = m.buttonPressed >= 0
		return false
	case st.MouseDown(input.MouseLeft) && m.buttonPressed >= 0:
		m.buttonHover = m.cursor.In(dialogButtons[m.buttonPressed])
		return false
	}
	return true
}

// releasedButton returns the dialog button to activate this frame, if any.
func (m *Menu) releasedButton() (DialogButton, bool) {
	if m.buttonPressed < int(DialogNo) || !m.buttonHover {
		return 0, false
	}
	return DialogButton(m.buttonPressed), true
}

func (m *Menu) resetPressed() {
	m.buttonPressed = -1
	m.buttonHover = false
}

func enterPressed(st *input.State) bool {
	return st.KeyPressed(input.KeyReturn) || st.KeyPressed(input.KeyKPEnter)
}

type newAgentDialog struct{}

func (newAgentDialog) owner() ButtonID { return ButtonNew }

func (newAgentDialog) update(m *Menu, st *input.State) {
	m.editBox.Update(st)

	if enterPressed(st) {
		m.CreateNewAgent()
		m.closeDialog()
		return
	}
	if st.KeyPressed(input.KeyEscape) {
		m.closeDialog()
		return
	}

	m.gamepadDialogNavigation(st)

	if !m.dialogMouse(st) {
		return
	}
	if b, ok := m.releasedButton(); ok {
		if b == DialogYes {
			m.CreateNewAgent()
		}
		m.closeDialog()
	}
	m.resetPressed()
}

func (newAgentDialog) draw(m *Menu, c Canvas) {
	c.DialogFrame(FrameNewDialog)
	m.cursorFlicker++
	showCursor := (m.cursorFlicker/16)%2 == 0
	c.EditBox(m.editBox.Text(), m.editBox.Cursor(), showCursor, editBoxArea)
	m.drawYesNoButtons(c, FrameNewNo, FrameNewYes)
}

type removeAgentDialog struct{}

func (removeAgentDialog) owner() ButtonID { return ButtonRemove }

func (removeAgentDialog) update(m *Menu, st *input.State) {
	if enterPressed(st) || st.KeyPressed(input.KeyEscape) {
		m.closeDialog()
		return
	}

	m.gamepadDialogNavigation(st)

	if !m.dialogMouse(st) {
		return
	}
	switch b, ok := m.releasedButton(); {
	case st.KeyPressed(m.opts.Hotkeys.Yes):
		m.RemoveAgent(m.agentID)
		m.closeDialog()
	case st.KeyPressed(input.KeyN):
		m.closeDialog()
	case ok:
		if b == DialogYes {
			m.RemoveAgent(m.agentID)
		}
		m.closeDialog()
	}
	m.resetPressed()
}

func (removeAgentDialog) draw(m *Menu, c Canvas) {
	c.DialogFrame(FrameRemoveDialog)
	m.drawYesNoButtons(c, FrameYesNoNo, FrameYesNoYes)
}

type quitDialog struct{}

func (quitDialog) owner() ButtonID { return ButtonExit }

func (quitDialog) update(m *Menu, st *input.State) {
	if m.updateQuitConfirm(st) {
		m.log.Info("quit confirmed", "exit_to_menu", m.opts.QuitExitsToMenu)
		if m.host == nil {
			return
		}
		if m.opts.QuitExitsToMenu {
			m.host.ExitToMenu()
		} else {
			m.host.PostQuit()
		}
	}
}

func (m *Menu) updateQuitConfirm(st *input.State) bool {
	if st.KeyPressed(input.KeyEscape) {
		m.closeDialog()
		return false
	}
	if enterPressed(st) {
		m.closeDialog()
		return true
	}

	m.gamepadDialogNavigation(st)

	if !m.dialogMouse(st) {
		return false
	}
	quit := false
	switch b, ok := m.releasedButton(); {
	case st.KeyPressed(m.opts.Hotkeys.Yes):
		quit = true
		m.closeDialog()
	case st.KeyPressed(input.KeyN):
		m.closeDialog()
	case ok:
		quit = b == DialogYes
		m.closeDialog()
	}
	m.resetPressed()
	return quit
}

func (quitDialog) draw(m *Menu, c Canvas) {
	c.DialogFrame(FrameQuitDialog)
	m.drawYesNoButtons(c, FrameYesNoNo, FrameYesNoYes)
}

func (m *Menu) drawYesNoButtons(c Canvas, frameNo, frameYes int) {
	switch {
	case (m.buttonPressed == int(DialogNo) && m.buttonHover) || m.dialogFocus == DialogNo:
		c.DialogFrame(frameNo)
	case (m.buttonPressed == int(DialogYes) && m.buttonHover) || m.dialogFocus == DialogYes:
		c.DialogFrame(frameYes)
	}
}

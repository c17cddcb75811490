package menu

import (
	"darkforces/pkg/engine/input"
	"darkforces/pkg/game/agent"
)

func (m *Menu) update(st *input.State) {
	if m.dialog != nil {
		m.dialog.update(m, st)
		return
	}
	m.updateMain(st)
}

func (m *Menu) updateMain(st *input.State) {
	if m.selectedMission < 0 {
		m.selectedMission = 0
	} else if m.selectedMission >= m.opts.MaxLevel {
		m.selectedMission = max(0, m.opts.MaxLevel-1)
	}

	switch {
	case st.MousePressed(input.MouseLeft):
		m.clickMain()
	case st.MouseDown(input.MouseLeft) && m.buttonPressed >= 0:
		m.buttonHover = m.cursor.In(agentButtons[m.buttonPressed])
	default:
		m.gamepadNavigation(st)
		m.mainHotkeys(st)
		m.mainArrows(st)
		if m.buttonPressed >= 0 && m.buttonHover {
			m.activate(ButtonID(m.buttonPressed))
		}
		m.buttonPressed = -1
		m.buttonHover = false
	}
}

func (m *Menu) clickMain() {
	m.buttonPressed = -1
	if b := hitAgentButton(m.cursor); b != NoButton {
		m.buttonPressed = int(b)
		m.buttonHover = true
		return
	}

	count := m.roster.Count()
	if count == 0 {
		return
	}
	switch {
	case m.cursor.In(agentListArea):
		m.agentID = clamp(listRow(m.cursor.Y), 0, count-1)
		m.selectedMission = max(0, m.roster.Agent(m.agentID).SelectedMission-1)
		m.lastSelectedAgent = true
	case m.cursor.In(missionListArea):
		a := m.currentAgent()
		if a == nil {
			return
		}
		m.selectedMission = clamp(listRow(m.cursor.Y), 0, a.NextMission-1)
		a.SelectedMission = m.selectedMission + 1
		m.lastSelectedAgent = false
		m.rosterChanged()
	}
}

func (m *Menu) mainHotkeys(st *input.State) {
	hk := m.opts.Hotkeys
	var b ButtonID
	switch {
	case st.KeyPressed(input.KeyN):
		b = ButtonNew
	case st.KeyPressed(hk.Remove):
		b = ButtonRemove
	case st.KeyPressed(input.KeyD):
		b = ButtonExit
	case st.KeyPressed(hk.Begin), st.KeyPressed(input.KeyReturn), st.KeyPressed(input.KeyKPEnter):
		b = ButtonBegin
	default:
		return
	}
	m.buttonPressed = int(b)
	m.buttonHover = true
}

func (m *Menu) mainArrows(st *input.State) {
	switch {
	case st.BufferedKeyDown(input.KeyDown):
		if m.lastSelectedAgent {
			m.stepAgent(1)
		} else {
			m.stepMission(1)
		}
	case st.BufferedKeyDown(input.KeyUp):
		if m.lastSelectedAgent {
			m.stepAgent(-1)
		} else {
			m.stepMission(-1)
		}
	case st.BufferedKeyDown(input.KeyLeft), st.BufferedKeyDown(input.KeyRight):
		m.lastSelectedAgent = !m.lastSelectedAgent
	}
}

// stepAgent moves the agent selection by dir, wrapping, and picks up the
// agent's stored mission.
func (m *Menu) stepAgent(dir int) bool {
	count := m.roster.Count()
	if count == 0 {
		return false
	}
	m.agentID += dir
	if m.agentID >= count {
		m.agentID = 0
	} else if m.agentID < 0 {
		m.agentID = count - 1
	}
	m.selectedMission = max(0, m.roster.Agent(m.agentID).SelectedMission-1)
	return true
}

// stepMission moves the mission selection by dir within the unlocked missions.
func (m *Menu) stepMission(dir int) bool {
	a := m.currentAgent()
	if a == nil || a.NextMission <= 1 {
		return false
	}
	m.selectedMission += dir
	switch {
	case m.selectedMission > a.NextMission-1, m.selectedMission == agent.MaxLevelCount:
		m.selectedMission = 0
	case m.selectedMission < 0:
		m.selectedMission = a.NextMission - 1
	}
	return true
}

func (m *Menu) activate(b ButtonID) {
	switch b {
	case ButtonNew:
		m.openDialog(newAgentDialog{})
		m.editBox.Reset(m.defaultAgentName(), NameMaxLen)
	case ButtonRemove:
		m.openDialog(removeAgentDialog{})
	case ButtonExit:
		m.openDialog(quitDialog{})
	case ButtonBegin:
		if m.roster.Count() > 0 && m.selectedMission >= 0 {
			m.missionBegin = true
		}
	}
}

func (m *Menu) openDialog(d dialog) {
	m.dialog = d
	m.dialogFocus = DialogNo
	m.log.Debug("dialog opened", "dialog", d.owner().String())
}

func (m *Menu) closeDialog() {
	m.dialog = nil
}

func (m *Menu) currentAgent() *agent.Data {
	if m.agentID < 0 || m.agentID >= m.roster.Count() {
		return nil
	}
	return m.roster.Agent(m.agentID)
}

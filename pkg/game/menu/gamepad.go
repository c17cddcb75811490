package menu

import (
	"math"

	"darkforces/pkg/engine/input"
)

type navInput struct {
	up, down, left, right bool
}

func (n navInput) any() bool {
	return n.up || n.down || n.left || n.right
}

// readNav combines the d-pad with the left stick. The stick direction is
// normalised before comparing against the threshold.
func (m *Menu) readNav(st *input.State) navInput {
	n := navInput{
		up:    st.ButtonDown(input.ButtonDPadUp),
		down:  st.ButtonDown(input.ButtonDPadDown),
		left:  st.ButtonDown(input.ButtonDPadLeft),
		right: st.ButtonDown(input.ButtonDPadRight),
	}
	x := float64(st.Axis(input.AxisLeftX))
	y := float64(st.Axis(input.AxisLeftY))
	if mag := math.Hypot(x, y); mag > m.opts.Deadzone {
		x /= mag
		y /= mag
		t := m.opts.StickThreshold
		n.up = n.up || y < -t
		n.down = n.down || y > t
		n.left = n.left || x < -t
		n.right = n.right || x > t
	}
	return n
}

// gamepadNavigation moves focus around the main screen. It does nothing
// outside the menu context or while a dialog is open.
func (m *Menu) gamepadNavigation(st *input.State) {
	if !m.inMenuContext() || m.dialog != nil {
		return
	}

	if st.ButtonPressed(input.ButtonA) {
		switch {
		case m.focusArea == FocusButtons:
			m.buttonPressed = int(m.buttonFocus)
			m.buttonHover = true
		case m.focusArea == FocusAgentList && m.roster.Count() > 0:
			m.lastSelectedAgent = false
			m.setFocus(FocusMissionList)
		case m.focusArea == FocusMissionList && m.agentID >= 0:
			m.buttonPressed = int(ButtonBegin)
			m.buttonHover = true
		}
	}
	if st.ButtonPressed(input.ButtonB) && m.focusArea != FocusAgentList {
		m.lastSelectedAgent = true
		m.setFocus(FocusAgentList)
	}

	n := m.readNav(st)
	if !m.nav.Step(n.any(), m.opts.Now()) {
		return
	}

	switch {
	case n.down:
		m.navVertical(1)
	case n.up:
		m.navVertical(-1)
	}

	switch {
	case n.right:
		switch m.focusArea {
		case FocusAgentList:
			if a := m.currentAgent(); a != nil && a.NextMission > 1 {
				m.lastSelectedAgent = false
				m.setFocus(FocusMissionList)
			} else {
				m.setFocus(FocusButtons)
			}
		case FocusMissionList:
			m.setFocus(FocusButtons)
		}
	case n.left:
		if m.focusArea != FocusAgentList {
			m.lastSelectedAgent = true
			m.setFocus(FocusAgentList)
		}
	}
}

func (m *Menu) navVertical(dir int) {
	switch m.focusArea {
	case FocusAgentList:
		if m.stepAgent(dir) {
			m.lastSelectedAgent = true
		}
	case FocusMissionList:
		if m.stepMission(dir) {
			m.lastSelectedAgent = false
		}
	case FocusButtons:
		m.buttonFocus = ButtonID((int(m.buttonFocus) + dir + int(buttonCount)) % int(buttonCount))
	}
}

func (m *Menu) setFocus(area FocusArea) {
	if area != m.focusArea {
		m.log.Debug("gamepad focus", "area", area.String())
	}
	m.focusArea = area
}

// gamepadDialogNavigation handles A/B and left/right inside a dialog.
func (m *Menu) gamepadDialogNavigation(st *input.State) {
	if !m.inMenuContext() {
		return
	}

	if st.ButtonPressed(input.ButtonA) {
		m.buttonPressed = int(m.dialogFocus)
		m.buttonHover = true
	}
	if st.ButtonPressed(input.ButtonB) {
		m.buttonPressed = int(DialogNo)
		m.buttonHover = true
	}

	switch {
	case st.BufferedKeyDown(input.KeyLeft), st.ButtonPressed(input.ButtonDPadLeft):
		m.dialogFocus = DialogNo
	case st.BufferedKeyDown(input.KeyRight), st.ButtonPressed(input.ButtonDPadRight):
		m.dialogFocus = DialogYes
	}

	x := float64(st.Axis(input.AxisLeftX))
	if math.Abs(x) <= m.opts.Deadzone {
		return
	}
	t := m.opts.StickThreshold
	switch {
	case x > t && m.dialogNav.Allow(m.opts.Now()):
		m.dialogFocus = DialogYes
	case x < -t && m.dialogNav.Allow(m.opts.Now()):
		m.dialogFocus = DialogNo
	}
}

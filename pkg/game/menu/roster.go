package menu

import (
	"errors"
	"strings"

	"darkforces/pkg/game/agent"
)

// CreateNewAgent adds an agent named from the edit box and selects it. It
// does nothing when the roster is full.
func (m *Menu) CreateNewAgent() {
	name := strings.TrimSpace(m.editBox.Text())
	if name == "" {
		name = m.defaultAgentName()
	}
	idx, err := m.roster.Add(name)
	if err != nil {
		if errors.Is(err, agent.ErrRosterFull) {
			m.log.Warn("cannot create agent", "error", err)
		}
		return
	}
	m.agentID = idx
	m.selectedMission = 0
	m.log.Info("agent created", "agent", idx, "name", name)
	m.rosterChanged()
}

// RemoveAgent deletes agent index and selects the first remaining agent.
func (m *Menu) RemoveAgent(index int) {
	if m.roster.Count() < 1 {
		return
	}
	if err := m.roster.Remove(index); err != nil {
		m.log.Warn("cannot remove agent", "agent", index, "error", err)
		return
	}
	m.log.Info("agent removed", "agent", index)

	if m.roster.Count() > 0 {
		m.agentID = 0
		m.selectedMission = max(0, m.roster.Agent(0).SelectedMission-1)
	} else {
		m.agentID = -1
		m.selectedMission = 0
	}
	m.rosterChanged()
}

// SetAgentName renames the selected agent.
func (m *Menu) SetAgentName(name string) {
	if m.agentID < 0 || m.agentID >= agent.MaxAgentCount {
		return
	}
	if err := m.roster.SetName(m.agentID, name); err == nil {
		m.rosterChanged()
	}
}

func (m *Menu) AgentID() int { return m.agentID }

func (m *Menu) SetAgentID(id int) { m.agentID = id }

func (m *Menu) AgentCount() int { return m.roster.Count() }

func (m *Menu) SetAgentCount(n int) { m.roster.SetCount(n) }

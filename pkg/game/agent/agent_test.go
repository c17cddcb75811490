package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d := New("Kyle")
	assert.Equal(t, "Kyle", d.Name)
	assert.Equal(t, 1, d.SelectedMission)
	assert.Equal(t, 1, d.NextMission)

	long := New(strings.Repeat("x", 40))
	assert.Len(t, long.Name, MaxNameLen)
}

func TestTruncateName_RuneBoundary(t *testing.T) {
	name := strings.Repeat("a", MaxNameLen-1) + "é"
	got := truncateName(name)
	assert.Equal(t, strings.Repeat("a", MaxNameLen-1), got)
}

func TestCompleteMission(t *testing.T) {
	d := New("Kyle")
	d.CompleteMission(1, DifficultyHard)
	assert.Equal(t, 2, d.NextMission)
	assert.Equal(t, DifficultyHard, d.Completed[0])

	d.CompleteMission(1, DifficultyEasy)
	assert.Equal(t, 2, d.NextMission, "replaying does not move progress back")

	d.CompleteMission(0, DifficultyEasy)
	d.CompleteMission(MaxLevelCount+1, DifficultyEasy)
	assert.Equal(t, 2, d.NextMission)
}

func TestRoster_AddUntilFull(t *testing.T) {
	r := NewRoster()
	for i := 0; i < MaxAgentCount; i++ {
		idx, err := r.Add("agent")
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
	_, err := r.Add("one too many")
	assert.ErrorIs(t, err, ErrRosterFull)
	assert.Equal(t, MaxAgentCount, r.Count())
}

func TestRoster_Remove(t *testing.T) {
	r := NewRoster(New("a"), New("b"), New("c"))

	require.NoError(t, r.Remove(0))
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, "b", r.Agent(0).Name)
	assert.Equal(t, "c", r.Agent(1).Name)
	assert.Equal(t, Data{}, *r.Agent(2), "tail slot cleared")

	assert.ErrorIs(t, r.Remove(2), ErrNoAgent)
	assert.ErrorIs(t, r.Remove(-1), ErrNoAgent)

	require.NoError(t, r.Remove(1))
	require.NoError(t, r.Remove(0))
	assert.Zero(t, r.Count())
	assert.ErrorIs(t, r.Remove(0), ErrNoAgent)
}

func TestRoster_RemoveLastSlot(t *testing.T) {
	agents := make([]Data, MaxAgentCount)
	for i := range agents {
		agents[i] = New(string(rune('a' + i)))
	}
	r := NewRoster(agents...)
	require.NoError(t, r.Remove(MaxAgentCount-1))
	assert.Equal(t, MaxAgentCount-1, r.Count())
	assert.Empty(t, r.Agent(MaxAgentCount-1).Name)
}

func TestRoster_Normalize(t *testing.T) {
	r := NewRoster()
	r.Agent(0).Name = "a"
	r.Agent(1).Name = "b"
	r.Agent(3).Name = "stale"
	r.Agent(3).NextMission = 5

	assert.Equal(t, 2, r.Normalize())
	assert.Equal(t, 2, r.Count())
	assert.Equal(t, Data{}, *r.Agent(3))
}

func TestRoster_SetNameAndCount(t *testing.T) {
	r := NewRoster(New("a"))
	require.NoError(t, r.SetName(0, "renamed"))
	assert.Equal(t, "renamed", r.Agent(0).Name)
	assert.ErrorIs(t, r.SetName(MaxAgentCount, "x"), ErrNoAgent)

	r.SetCount(99)
	assert.Equal(t, MaxAgentCount, r.Count())
	r.SetCount(-3)
	assert.Zero(t, r.Count())

	assert.Nil(t, r.Agent(-1))
}

func TestNewRoster_DropsExtra(t *testing.T) {
	agents := make([]Data, MaxAgentCount+3)
	r := NewRoster(agents...)
	assert.Equal(t, MaxAgentCount, r.Count())
	assert.Len(t, r.Agents(), MaxAgentCount)
}

func TestNewRoster_RaisesMissionsToFirst(t *testing.T) {
	bad := New("Kyle")
	bad.NextMission = 0
	bad.SelectedMission = -2

	r := NewRoster(bad)
	assert.Equal(t, 1, r.Agent(0).NextMission)
	assert.Equal(t, 1, r.Agent(0).SelectedMission)
}

// Package agent holds player profiles ("agents") and their mission progress.
package agent

import (
	"errors"
	"unicode/utf8"
)

const (
	MaxAgentCount = 14
	MaxLevelCount = 14
	// MaxNameLen is the stored name limit in bytes.
	MaxNameLen = 32
)

var (
	ErrRosterFull = errors.New("agent roster is full")
	ErrNoAgent    = errors.New("no such agent")
)

// Difficulty a mission was completed at.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Data is one agent's save record. Missions are 1-based.
type Data struct {
	Name            string
	SelectedMission int
	// NextMission is the first mission not yet completed.
	NextMission int
	Completed   [MaxLevelCount]Difficulty
}

// New returns a fresh agent at the first mission.
func New(name string) Data {
	return Data{
		Name:            truncateName(name),
		SelectedMission: 1,
		NextMission:     1,
	}
}

// CompleteMission records a finished mission and unlocks the next one.
func (d *Data) CompleteMission(mission int, diff Difficulty) {
	if mission < 1 || mission > MaxLevelCount {
		return
	}
	d.Completed[mission-1] = diff
	if mission >= d.NextMission {
		d.NextMission = mission + 1
	}
}

func truncateName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	name = name[:MaxNameLen]
	for len(name) > 0 && !utf8.ValidString(name) {
		name = name[:len(name)-1]
	}
	return name
}

// Roster is the fixed set of agent slots. Slots past Count are kept zeroed.
type Roster struct {
	slots [MaxAgentCount]Data
	count int
}

// NewRoster builds a roster from saved agents, dropping any past MaxAgentCount.
// Missions below the first are raised to it.
func NewRoster(agents ...Data) *Roster {
	r := &Roster{}
	for i, a := range agents {
		if i >= MaxAgentCount {
			break
		}
		a.Name = truncateName(a.Name)
		a.NextMission = max(a.NextMission, 1)
		a.SelectedMission = max(a.SelectedMission, 1)
		r.slots[i] = a
	}
	r.count = min(len(agents), MaxAgentCount)
	return r
}

func (r *Roster) Count() int { return r.count }

// SetCount overrides the agent count, clamped to the slot range.
func (r *Roster) SetCount(n int) {
	r.count = max(0, min(n, MaxAgentCount))
}

// Agent returns the slot at i, or nil when i is outside the slots.
func (r *Roster) Agent(i int) *Data {
	if i < 0 || i >= MaxAgentCount {
		return nil
	}
	return &r.slots[i]
}

// Agents returns a copy of the occupied slots.
func (r *Roster) Agents() []Data {
	out := make([]Data, r.count)
	copy(out, r.slots[:r.count])
	return out
}

// Normalize recounts agents as the run of named slots from the start and
// clears every slot after it.
func (r *Roster) Normalize() int {
	n := 0
	for n < MaxAgentCount && r.slots[n].Name != "" {
		n++
	}
	for i := n; i < MaxAgentCount; i++ {
		r.slots[i] = Data{}
	}
	r.count = n
	return n
}

// Add appends a new agent and returns its index.
func (r *Roster) Add(name string) (int, error) {
	if r.count >= MaxAgentCount {
		return -1, ErrRosterFull
	}
	i := r.count
	r.slots[i] = New(name)
	r.count++
	return i, nil
}

// Remove deletes agent i and shifts later agents down.
func (r *Roster) Remove(i int) error {
	if i < 0 || i >= r.count {
		return ErrNoAgent
	}
	copy(r.slots[i:], r.slots[i+1:])
	r.count--
	r.slots[MaxAgentCount-1] = Data{}
	r.slots[r.count] = Data{}
	return nil
}

// SetName renames agent i, truncating to MaxNameLen bytes.
func (r *Roster) SetName(i int, name string) error {
	d := r.Agent(i)
	if d == nil {
		return ErrNoAgent
	}
	d.Name = truncateName(name)
	return nil
}

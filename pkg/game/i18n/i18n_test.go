package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	assert.Equal(t, "Player 1", Get("DEFAULT_AGENT_NAME"))
	assert.Equal(t, "BEGIN", Get("BUTTON_BEGIN"))
	assert.Equal(t, "NOT_TRANSLATED", Get("NOT_TRANSLATED"), "unknown ids fall back to the id")
	assert.Equal(t, "Mission %d: %s", Get("MISSION_BRIEFING"), "verbs are left for the caller")
}

func TestMissionName(t *testing.T) {
	assert.Equal(t, "Secret Base", MissionName(1))
	assert.Equal(t, "The Arc Hammer", MissionName(14))
}

func TestLoadFile(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "de.po")
	require.NoError(t, os.WriteFile(path, []byte(`
msgid "DEFAULT_AGENT_NAME"
msgstr "Spieler 1"
`), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, "Spieler 1", Get("DEFAULT_AGENT_NAME"))

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.po")))
	assert.Equal(t, "Spieler 1", Get("DEFAULT_AGENT_NAME"), "failed load keeps strings")
}

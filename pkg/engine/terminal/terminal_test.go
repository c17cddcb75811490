package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegularFileIsNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	w, h := GetSize(f)
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestNilFile(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	w, h := GetSize(nil)
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

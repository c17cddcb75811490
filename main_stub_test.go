//go:build !ebiten

package main

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"darkforces/pkg/game/renderer/ebiten"
)

func TestRunWithoutWindow(t *testing.T) {
	dir := t.TempDir()
	err := run(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-config", filepath.Join(dir, "none.yaml"),
		"-db", filepath.Join(dir, "agents.db"),
	})
	assert.ErrorIs(t, err, ebiten.ErrNoWindow)
}

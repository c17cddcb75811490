// Package i18n holds the game's translated strings.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var enPo []byte

var (
	mu sync.RWMutex
	po = parse(enPo)
)

func parse(data []byte) *gotext.Po {
	p := gotext.NewPo()
	p.Parse(data)
	return p
}

// LoadFile replaces the built-in English strings with a .po file from disk.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read translations: %w", err)
	}
	p := parse(data)
	mu.Lock()
	po = p
	mu.Unlock()
	return nil
}

// Reset restores the built-in English strings.
func Reset() {
	mu.Lock()
	po = parse(enPo)
	mu.Unlock()
}

// Get returns the translation for id, or id itself when it has none.
func Get(id string) string {
	mu.RLock()
	p := po
	mu.RUnlock()
	return p.Get(id)
}

// MissionName returns the display name of a 1-based mission.
func MissionName(mission int) string {
	return Get(fmt.Sprintf("MISSION_%d", mission))
}

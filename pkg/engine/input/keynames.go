package input

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
)

// KeyNames holds the display names of every bindable input, indexed by code.
type KeyNames struct {
	ControllerAxis    nameList `toml:"controller_axis"`
	ControllerButtons nameList `toml:"controller_buttons"`
	MouseAxis         nameList `toml:"mouse_axis"`
	MouseButtons      nameList `toml:"mouse_buttons"`
	MouseWheel        nameList `toml:"mouse_wheel"`
	Keyboard          nameList `toml:"keyboard"`
}

type nameList struct {
	Names []string `toml:"names"`
}

func (l nameList) get(i int) string {
	if i < 0 || i >= len(l.Names) {
		return ""
	}
	return l.Names[i]
}

var (
	keyNamesMu sync.RWMutex
	keyNames   *KeyNames
)

// LoadKeyNames reads the name tables from a TOML file and makes them current.
// The file is rejected if it carries no known section.
func LoadKeyNames(path string) error {
	var names KeyNames
	md, err := toml.DecodeFile(path, &names)
	if err != nil {
		return fmt.Errorf("load key names %s: %w", path, err)
	}
	if len(md.Keys()) == 0 {
		return fmt.Errorf("load key names %s: no sections", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load key names %s: unknown section %q", path, undecoded[0].String())
	}
	SetKeyNames(&names)
	return nil
}

// SetKeyNames installs name tables directly. nil clears them.
func SetKeyNames(names *KeyNames) {
	keyNamesMu.Lock()
	keyNames = names
	keyNamesMu.Unlock()
}

func currentKeyNames() *KeyNames {
	keyNamesMu.RLock()
	defer keyNamesMu.RUnlock()
	return keyNames
}

// ControllerAxisName returns the display name of an axis, or "" without tables.
func ControllerAxisName(axis Axis) string {
	if n := currentKeyNames(); n != nil {
		return n.ControllerAxis.get(int(axis))
	}
	return ""
}

// ControllerButtonName returns the display name of a button, or "" without tables.
func ControllerButtonName(button Button) string {
	if n := currentKeyNames(); n != nil {
		return n.ControllerButtons.get(int(button))
	}
	return ""
}

// MouseAxisName returns the display name of a mouse axis, or "" without tables.
func MouseAxisName(axis MouseAxis) string {
	if n := currentKeyNames(); n != nil {
		return n.MouseAxis.get(int(axis))
	}
	return ""
}

// MouseButtonName returns the display name of a mouse button, or "" without tables.
func MouseButtonName(button MouseButton) string {
	if n := currentKeyNames(); n != nil {
		return n.MouseButtons.get(int(button))
	}
	return ""
}

// MouseWheelName returns the display name of a wheel direction, or "" without tables.
func MouseWheelName(wheel MouseWheel) string {
	if n := currentKeyNames(); n != nil {
		return n.MouseWheel.get(int(wheel))
	}
	return ""
}

// KeyboardName returns the display name of a key. Codes past KeyLast share the
// name stored at KeyLast.
func KeyboardName(key KeyboardCode) string {
	n := currentKeyNames()
	if n == nil {
		return ""
	}
	if key > KeyLast {
		key = KeyLast
	}
	return n.Keyboard.get(int(key))
}

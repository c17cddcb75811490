package input

// Current holds the process-wide input snapshot shared by the platform layer
// and the game screens.
var Current = NewState()

// EndFrame clears the edge state of the process-wide snapshot.
func EndFrame() {
	Current.EndFrame()
}

// KeyPressed queries the process-wide snapshot.
func KeyPressed(key KeyboardCode) bool {
	return Current.KeyPressed(key)
}

// IsKeyDown queries the process-wide snapshot. KeyDown names the arrow key.
func IsKeyDown(key KeyboardCode) bool {
	return Current.KeyDown(key)
}

// ButtonPressed queries the process-wide snapshot.
func ButtonPressed(button Button) bool {
	return Current.ButtonPressed(button)
}

// MousePressed queries the process-wide snapshot.
func MousePressed(button MouseButton) bool {
	return Current.MousePressed(button)
}

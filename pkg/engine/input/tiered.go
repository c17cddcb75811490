package input

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
)

// EventKind is the kind of a platform event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventText
	EventButtonDown
	EventButtonUp
	EventAxis
	EventMouseDown
	EventMouseUp
	EventMouseMotion
	EventMouseWheel
)

// Event is the raw layer emitted by a platform backend. Only the fields that
// belong to Kind are meaningful.
type Event struct {
	Device Device
	Kind   EventKind

	Key    KeyboardCode
	Repeat bool

	Button      Button
	MouseButton MouseButton
	Axis        Axis
	Value       float32

	// X, Y carry the absolute cursor position for motion events and the wheel
	// delta for wheel events. DX, DY carry relative motion.
	X, Y   int
	DX, DY int

	Text string
}

// Apply feeds one platform event into the snapshot, the way the OS callbacks do.
// Key down events also count as buffered keys so text editing sees repeats.
func (s *State) Apply(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		s.SetKeyDown(ev.Key, ev.Repeat)
		s.SetBufferedKey(ev.Key)
		if ev.Repeat {
			s.SetRepeating(true)
		}
	case EventKeyUp:
		s.SetKeyUp(ev.Key)
		s.SetRepeating(false)
	case EventText:
		s.SetBufferedInput(ev.Text)
	case EventButtonDown:
		s.SetButtonDown(ev.Button)
	case EventButtonUp:
		s.SetButtonUp(ev.Button)
	case EventAxis:
		s.SetAxis(ev.Axis, ev.Value)
	case EventMouseDown:
		s.SetMouseButtonDown(ev.MouseButton)
	case EventMouseUp:
		s.SetMouseButtonUp(ev.MouseButton)
	case EventMouseMotion:
		s.SetMousePos(ev.X, ev.Y)
		if ev.DX != 0 || ev.DY != 0 {
			s.SetRelativeMousePos(ev.DX, ev.DY)
		}
	case EventMouseWheel:
		s.SetMouseWheel(ev.X, ev.Y)
	}
}

// ApplyAll feeds a batch of events in order.
func (s *State) ApplyAll(events []Event) {
	for _, ev := range events {
		s.Apply(ev)
	}
}

// Package input keeps a polled snapshot of keyboard, mouse and controller state.
//
// The platform layer pushes transitions into a State as they arrive; game code
// queries it during the frame; EndFrame clears every edge-triggered value once
// the frame is done.
package input

import (
	"math"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// BufferedTextLen is the size of the per-frame text buffer, terminator included.
const BufferedTextLen = 64

// State is one polled input snapshot.
type State struct {
	axis          [AxisCount]float32
	buttonDown    [ButtonCount]bool
	buttonPressed [ButtonCount]bool

	keyDown          [KeyCount]bool
	keyPressed       [KeyCount]bool
	keyPressedRepeat [KeyCount]bool

	bufferedText string
	bufferedKey  [KeyCount]bool

	mouseDown    [MouseButtonCount]bool
	mousePressed [MouseButtonCount]bool

	mouseWheel     [2]int
	mouseMove      [2]int
	mouseMoveAccum [2]int
	mousePos       [2]int

	relativeMode bool
	repeating    bool
}

// NewState returns an empty snapshot.
func NewState() *State {
	return &State{}
}

// modifierKeys are skipped by KeyPressedAny when asked to ignore modifiers.
var modifierKeys = mapset.New[KeyboardCode]()

func init() {
	for _, k := range []KeyboardCode{KeyLShift, KeyRShift, KeyLAlt, KeyRAlt, KeyLCtrl, KeyRCtrl} {
		modifierKeys.Put(k)
	}
}

func validKey(k KeyboardCode) bool { return k >= 0 && k < KeyCount }
func validButton(b Button) bool { return b >= 0 && b < ButtonCount }
func validAxis(a Axis) bool { return a >= 0 && a < AxisCount }
func validMouseButton(b MouseButton) bool { return b >= 0 && b < MouseButtonCount }

// EndFrame clears every pressed flag, the buffered text and keys, and the wheel.
// Held state, axes, mouse position and accumulated motion are kept.
// Call it exactly once per frame, after all consumers have polled.
func (s *State) EndFrame() {
	s.mouseWheel = [2]int{}
	s.buttonPressed = [ButtonCount]bool{}
	s.mousePressed = [MouseButtonCount]bool{}
	s.keyPressed = [KeyCount]bool{}
	s.keyPressedRepeat = [KeyCount]bool{}
	s.bufferedKey = [KeyCount]bool{}
	s.bufferedText = ""
}

// SetAxis stores the latest value of a controller axis.
func (s *State) SetAxis(axis Axis, value float32) {
	if !validAxis(axis) {
		return
	}
	s.axis[axis] = value
}

// SetButtonDown marks a controller button held. Pressed is set only on the
// up to down transition.
func (s *State) SetButtonDown(button Button) {
	if !validButton(button) {
		return
	}
	if !s.buttonDown[button] {
		s.buttonPressed[button] = true
	}
	s.buttonDown[button] = true
}

// SetButtonUp releases a controller button.
func (s *State) SetButtonUp(button Button) {
	if !validButton(button) {
		return
	}
	s.buttonDown[button] = false
}

// SetKeyPress forces the pressed flag of a key for this frame.
func (s *State) SetKeyPress(key KeyboardCode) {
	if !validKey(key) {
		return
	}
	s.keyPressed[key] = true
}

// SetKeyPressRepeat forces the pressed-with-repeat flag of a key for this frame.
func (s *State) SetKeyPressRepeat(key KeyboardCode) {
	if !validKey(key) {
		return
	}
	s.keyPressedRepeat[key] = true
}

// SetRepeating records whether the platform is currently generating key repeats.
func (s *State) SetRepeating(repeat bool) {
	s.repeating = repeat
}

// IsRepeating reports the value last given to SetRepeating.
func (s *State) IsRepeating() bool {
	return s.repeating
}

// SetKeyDown records a key down event. repeat is true for platform generated
// repeats while the key is held; those only refresh the pressed-with-repeat flag.
func (s *State) SetKeyDown(key KeyboardCode, repeat bool) {
	if !validKey(key) {
		return
	}
	if !s.keyDown[key] && !repeat {
		s.keyPressed[key] = true
	}
	if !s.keyDown[key] || repeat {
		s.keyPressedRepeat[key] = true
	}
	s.keyDown[key] = true
}

// SetKeyUp releases a key.
func (s *State) SetKeyUp(key KeyboardCode) {
	if !validKey(key) {
		return
	}
	s.keyDown[key] = false
}

// SetMouseButtonDown marks a mouse button held. Pressed is set only on the
// up to down transition.
func (s *State) SetMouseButtonDown(button MouseButton) {
	if !validMouseButton(button) {
		return
	}
	if !s.mouseDown[button] {
		s.mousePressed[button] = true
	}
	s.mouseDown[button] = true
}

// SetMouseButtonUp releases a mouse button.
func (s *State) SetMouseButtonUp(button MouseButton) {
	if !validMouseButton(button) {
		return
	}
	s.mouseDown[button] = false
}

// SetMouseWheel stores this frame's wheel motion.
func (s *State) SetMouseWheel(dx, dy int) {
	s.mouseWheel = [2]int{dx, dy}
}

// SetRelativeMousePos stores the latest relative motion and adds it to the accumulator.
func (s *State) SetRelativeMousePos(x, y int) {
	s.mouseMove = [2]int{x, y}
	s.mouseMoveAccum[0] += x
	s.mouseMoveAccum[1] += y
}

// SetMousePos stores the absolute cursor position.
func (s *State) SetMousePos(x, y int) {
	s.mousePos = [2]int{x, y}
}

// EnableRelativeMode toggles relative (captured) mouse mode.
func (s *State) EnableRelativeMode(enable bool) {
	s.relativeMode = enable
}

// SetBufferedInput replaces this frame's text input. Text longer than the
// buffer is cut at the last whole rune that fits.
func (s *State) SetBufferedInput(text string) {
	const maxLen = BufferedTextLen - 1
	if len(text) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	s.bufferedText = text
}

// SetBufferedKey records a key event for text editing this frame.
func (s *State) SetBufferedKey(key KeyboardCode) {
	if !validKey(key) {
		return
	}
	s.bufferedKey[key] = true
}

// Axis returns the value of a controller axis.
func (s *State) Axis(axis Axis) float32 {
	if !validAxis(axis) {
		return 0
	}
	return s.axis[axis]
}

// MouseWheel returns this frame's wheel motion.
func (s *State) MouseWheel() (dx, dy int) {
	return s.mouseWheel[0], s.mouseWheel[1]
}

// MouseMove returns the latest relative motion.
func (s *State) MouseMove() (x, y int) {
	return s.mouseMove[0], s.mouseMove[1]
}

// MouseMoveAccum returns the accumulated relative motion without clearing it.
func (s *State) MouseMoveAccum() (x, y int) {
	return s.mouseMoveAccum[0], s.mouseMoveAccum[1]
}

// AccumulatedMouseMove returns the accumulated relative motion and clears it.
func (s *State) AccumulatedMouseMove() (x, y int) {
	x, y = s.mouseMoveAccum[0], s.mouseMoveAccum[1]
	s.mouseMoveAccum = [2]int{}
	return x, y
}

// ClearAccumulatedMouseMove drops any accumulated relative motion.
func (s *State) ClearAccumulatedMouseMove() {
	s.mouseMoveAccum = [2]int{}
}

// MousePos returns the absolute cursor position.
func (s *State) MousePos() (x, y int) {
	return s.mousePos[0], s.mousePos[1]
}

func (s *State) ButtonDown(button Button) bool {
	return validButton(button) && s.buttonDown[button]
}

func (s *State) ButtonPressed(button Button) bool {
	return validButton(button) && s.buttonPressed[button]
}

func (s *State) KeyDown(key KeyboardCode) bool {
	return validKey(key) && s.keyDown[key]
}

func (s *State) KeyPressed(key KeyboardCode) bool {
	return validKey(key) && s.keyPressed[key]
}

func (s *State) KeyPressedWithRepeat(key KeyboardCode) bool {
	return validKey(key) && s.keyPressedRepeat[key]
}

// ClearKeyPressed consumes a key press so later consumers in the same frame miss it.
func (s *State) ClearKeyPressed(key KeyboardCode) {
	if !validKey(key) {
		return
	}
	s.keyPressed[key] = false
	s.keyPressedRepeat[key] = false
}

// ClearMouseButtonPressed consumes a click, including the held state.
func (s *State) ClearMouseButtonPressed(button MouseButton) {
	if !validMouseButton(button) {
		return
	}
	s.mouseDown[button] = false
	s.mousePressed[button] = false
}

// KeyPressedAny returns the lowest key pressed this frame, or KeyUnknown.
func (s *State) KeyPressedAny(ignoreModKeys bool) KeyboardCode {
	for k := KeyboardCode(0); k < KeyCount; k++ {
		if ignoreModKeys && modifierKeys.Has(k) {
			continue
		}
		if s.keyPressed[k] {
			return k
		}
	}
	return KeyUnknown
}

// ControllerButtonPressed returns the lowest button pressed this frame, or ButtonUnknown.
func (s *State) ControllerButtonPressed() Button {
	for b := Button(0); b < ButtonCount; b++ {
		if s.buttonPressed[b] {
			return b
		}
	}
	return ButtonUnknown
}

// ControllerAnalogDown returns the trigger pulled past half travel, right first.
func (s *State) ControllerAnalogDown() Axis {
	if math.Abs(float64(s.axis[AxisRightTrigger])) > 0.5 {
		return AxisRightTrigger
	}
	if math.Abs(float64(s.axis[AxisLeftTrigger])) > 0.5 {
		return AxisLeftTrigger
	}
	return AxisUnknown
}

// MouseButtonPressed returns the lowest mouse button pressed this frame, or MouseButtonUnknown.
func (s *State) MouseButtonPressed() MouseButton {
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		if s.mousePressed[b] {
			return b
		}
	}
	return MouseButtonUnknown
}

// KeyModifierDown returns the held modifier, alt before ctrl before shift.
func (s *State) KeyModifierDown() KeyModifier {
	switch {
	case s.KeyDown(KeyLAlt) || s.KeyDown(KeyRAlt):
		return KeyModAlt
	case s.KeyDown(KeyLCtrl) || s.KeyDown(KeyRCtrl):
		return KeyModCtrl
	case s.KeyDown(KeyLShift) || s.KeyDown(KeyRShift):
		return KeyModShift
	}
	return KeyModNone
}

// KeyModDown reports whether mod is satisfied by the held keys. KeyModNone is
// satisfied when no alt key is held, or always when allowAltOnNone is set.
func (s *State) KeyModDown(mod KeyModifier, allowAltOnNone bool) bool {
	switch mod {
	case KeyModNone:
		return allowAltOnNone || (!s.KeyDown(KeyLAlt) && !s.KeyDown(KeyRAlt))
	case KeyModAlt:
		return s.KeyDown(KeyLAlt) || s.KeyDown(KeyRAlt)
	case KeyModCtrl:
		return s.KeyDown(KeyLCtrl) || s.KeyDown(KeyRCtrl)
	case KeyModShift:
		return s.KeyDown(KeyLShift) || s.KeyDown(KeyRShift)
	}
	return false
}

func (s *State) MouseDown(button MouseButton) bool {
	return validMouseButton(button) && s.mouseDown[button]
}

func (s *State) MousePressed(button MouseButton) bool {
	return validMouseButton(button) && s.mousePressed[button]
}

func (s *State) RelativeModeEnabled() bool {
	return s.relativeMode
}

// BufferedText returns this frame's text input.
func (s *State) BufferedText() string {
	return s.bufferedText
}

// BufferedKeyDown reports whether a key event for text editing arrived this frame.
func (s *State) BufferedKeyDown(key KeyboardCode) bool {
	return validKey(key) && s.bufferedKey[key]
}

package input

import "strconv"

// KeyboardCode identifies a physical key. Values index the key state arrays.
type KeyboardCode int

const (
	KeyUnknown KeyboardCode = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	KeyKPDivide
	KeyKPMultiply
	KeyKPMinus
	KeyKPPlus
	KeyKPEnter
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPPeriod

	KeyLCtrl
	KeyLShift
	KeyLAlt
	KeyRCtrl
	KeyRShift
	KeyRAlt

	KeyCount
)

// KeyLast is the highest named key code.
const KeyLast = KeyCount - 1

// Button is a controller button.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	ButtonCount
	ButtonUnknown Button = -1
)

// Axis is a controller analog axis. Stick values are in [-1, 1], up and left negative.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger

	AxisCount
	AxisUnknown Axis = -1
)

// MouseButton is a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2

	MouseButtonCount
	MouseButtonUnknown MouseButton = -1
)

// MouseAxis is a relative mouse motion axis, used for binding names.
type MouseAxis int

const (
	MouseAxisX MouseAxis = iota
	MouseAxisY

	MouseAxisCount
)

// MouseWheel is a wheel direction, used for binding names.
type MouseWheel int

const (
	MouseWheelLeft MouseWheel = iota
	MouseWheelRight
	MouseWheelUp
	MouseWheelDown

	MouseWheelCount
)

// KeyModifier is the modifier held alongside a binding.
type KeyModifier int

const (
	KeyModNone KeyModifier = iota
	KeyModAlt
	KeyModCtrl
	KeyModShift

	KeyModCount
)

var keyModNames = [KeyModCount]string{
	"",
	"ALT",
	"CTRL",
	"SHIFT",
}

// KeyModifierName returns the display name of a modifier.
func KeyModifierName(mod KeyModifier) string {
	if mod < 0 || mod >= KeyModCount {
		return ""
	}
	return keyModNames[mod]
}

// codes maps lowercase configuration codes to keys.
// Multiple codes may point to the same key.
var codes = map[string]KeyboardCode{
	"return":    KeyReturn,
	"enter":     KeyReturn,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"space":     KeySpace,
	"-":         KeyMinus,
	"=":         KeyEquals,
	"[":         KeyLeftBracket,
	"]":         KeyRightBracket,
	"\\":        KeyBackslash,
	";":         KeySemicolon,
	"'":         KeyApostrophe,
	"`":         KeyGrave,
	",":         KeyComma,
	".":         KeyPeriod,
	"/":         KeySlash,

	"insert":    KeyInsert,
	"home":      KeyHome,
	"page_up":   KeyPageUp,
	"delete":    KeyDelete,
	"end":       KeyEnd,
	"page_down": KeyPageDown,

	"arrow_right": KeyRight,
	"arrow_left":  KeyLeft,
	"arrow_down":  KeyDown,
	"arrow_up":    KeyUp,

	"kp_divide":   KeyKPDivide,
	"kp_multiply": KeyKPMultiply,
	"kp_minus":    KeyKPMinus,
	"kp_plus":     KeyKPPlus,
	"kp_enter":    KeyKPEnter,
	"kp_period":   KeyKPPeriod,

	"lctrl":  KeyLCtrl,
	"lshift": KeyLShift,
	"lalt":   KeyLAlt,
	"rctrl":  KeyRCtrl,
	"rshift": KeyRShift,
	"ralt":   KeyRAlt,
}

func init() {
	for i := 0; i < 26; i++ {
		codes[string(rune('a'+i))] = KeyA + KeyboardCode(i)
	}
	for i := 0; i < 10; i++ {
		codes[string(rune('0'+i))] = Key0 + KeyboardCode(i)
		codes["kp_"+string(rune('0'+i))] = KeyKP0 + KeyboardCode(i)
	}
	for i := 0; i < 12; i++ {
		codes["f"+strconv.Itoa(i+1)] = KeyF1 + KeyboardCode(i)
	}
}

// ParseKeyCode returns the key for a configuration code such as "y", "return" or
// "arrow_up". Unknown codes return KeyUnknown and false.
func ParseKeyCode(code string) (KeyboardCode, bool) {
	k, ok := codes[code]
	if !ok {
		return KeyUnknown, false
	}
	return k, true
}

//go:build ebiten

package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"darkforces/pkg/engine/input"
)

var keyMap = map[ebiten.Key]input.KeyboardCode{
	ebiten.KeyA: input.KeyA,
	ebiten.KeyB: input.KeyB,
	ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD,
	ebiten.KeyE: input.KeyE,
	ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG,
	ebiten.KeyH: input.KeyH,
	ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ,
	ebiten.KeyK: input.KeyK,
	ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM,
	ebiten.KeyN: input.KeyN,
	ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP,
	ebiten.KeyQ: input.KeyQ,
	ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS,
	ebiten.KeyT: input.KeyT,
	ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV,
	ebiten.KeyW: input.KeyW,
	ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY,
	ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit0: input.Key0,
	ebiten.KeyDigit1: input.Key1,
	ebiten.KeyDigit2: input.Key2,
	ebiten.KeyDigit3: input.Key3,
	ebiten.KeyDigit4: input.Key4,
	ebiten.KeyDigit5: input.Key5,
	ebiten.KeyDigit6: input.Key6,
	ebiten.KeyDigit7: input.Key7,
	ebiten.KeyDigit8: input.Key8,
	ebiten.KeyDigit9: input.Key9,

	ebiten.KeyEnter:        input.KeyReturn,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyBackspace:    input.KeyBackspace,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyEqual:        input.KeyEquals,
	ebiten.KeyBracketLeft:  input.KeyLeftBracket,
	ebiten.KeyBracketRight: input.KeyRightBracket,
	ebiten.KeyBackslash:    input.KeyBackslash,
	ebiten.KeySemicolon:    input.KeySemicolon,
	ebiten.KeyQuote:        input.KeyApostrophe,
	ebiten.KeyBackquote:    input.KeyGrave,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySlash:        input.KeySlash,

	ebiten.KeyF1:  input.KeyF1,
	ebiten.KeyF2:  input.KeyF2,
	ebiten.KeyF3:  input.KeyF3,
	ebiten.KeyF4:  input.KeyF4,
	ebiten.KeyF5:  input.KeyF5,
	ebiten.KeyF6:  input.KeyF6,
	ebiten.KeyF7:  input.KeyF7,
	ebiten.KeyF8:  input.KeyF8,
	ebiten.KeyF9:  input.KeyF9,
	ebiten.KeyF10: input.KeyF10,
	ebiten.KeyF11: input.KeyF11,
	ebiten.KeyF12: input.KeyF12,

	ebiten.KeyInsert:     input.KeyInsert,
	ebiten.KeyHome:       input.KeyHome,
	ebiten.KeyPageUp:     input.KeyPageUp,
	ebiten.KeyDelete:     input.KeyDelete,
	ebiten.KeyEnd:        input.KeyEnd,
	ebiten.KeyPageDown:   input.KeyPageDown,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowUp:    input.KeyUp,

	ebiten.KeyNumpadDivide:   input.KeyKPDivide,
	ebiten.KeyNumpadMultiply: input.KeyKPMultiply,
	ebiten.KeyNumpadSubtract: input.KeyKPMinus,
	ebiten.KeyNumpadAdd:      input.KeyKPPlus,
	ebiten.KeyNumpadEnter:    input.KeyKPEnter,
	ebiten.KeyNumpad0:        input.KeyKP0,
	ebiten.KeyNumpad1:        input.KeyKP1,
	ebiten.KeyNumpad2:        input.KeyKP2,
	ebiten.KeyNumpad3:        input.KeyKP3,
	ebiten.KeyNumpad4:        input.KeyKP4,
	ebiten.KeyNumpad5:        input.KeyKP5,
	ebiten.KeyNumpad6:        input.KeyKP6,
	ebiten.KeyNumpad7:        input.KeyKP7,
	ebiten.KeyNumpad8:        input.KeyKP8,
	ebiten.KeyNumpad9:        input.KeyKP9,
	ebiten.KeyNumpadDecimal:  input.KeyKPPeriod,

	ebiten.KeyControlLeft:  input.KeyLCtrl,
	ebiten.KeyShiftLeft:    input.KeyLShift,
	ebiten.KeyAltLeft:      input.KeyLAlt,
	ebiten.KeyControlRight: input.KeyRCtrl,
	ebiten.KeyShiftRight:   input.KeyRShift,
	ebiten.KeyAltRight:     input.KeyRAlt,
}

var mouseMap = [...]struct {
	eb ebiten.MouseButton
	in input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButton3, input.MouseX1},
	{ebiten.MouseButton4, input.MouseX2},
}

var standardButtons = [...]struct {
	eb ebiten.StandardGamepadButton
	in input.Button
}{
	{ebiten.StandardGamepadButtonRightBottom, input.ButtonA},
	{ebiten.StandardGamepadButtonRightRight, input.ButtonB},
	{ebiten.StandardGamepadButtonRightLeft, input.ButtonX},
	{ebiten.StandardGamepadButtonRightTop, input.ButtonY},
	{ebiten.StandardGamepadButtonCenterLeft, input.ButtonBack},
	{ebiten.StandardGamepadButtonCenterCenter, input.ButtonGuide},
	{ebiten.StandardGamepadButtonCenterRight, input.ButtonStart},
	{ebiten.StandardGamepadButtonLeftStick, input.ButtonLeftStick},
	{ebiten.StandardGamepadButtonRightStick, input.ButtonRightStick},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.ButtonLeftShoulder},
	{ebiten.StandardGamepadButtonFrontTopRight, input.ButtonRightShoulder},
	{ebiten.StandardGamepadButtonLeftTop, input.ButtonDPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.ButtonDPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.ButtonDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.ButtonDPadRight},
}

// Raw button indices for pads without a standard layout. These match common
// XInput-style controllers on Linux; other devices may differ.
var rawButtons = [...]struct {
	eb ebiten.GamepadButton
	in input.Button
}{
	{ebiten.GamepadButton0, input.ButtonA},
	{ebiten.GamepadButton1, input.ButtonB},
	{ebiten.GamepadButton2, input.ButtonX},
	{ebiten.GamepadButton3, input.ButtonY},
	{ebiten.GamepadButton6, input.ButtonBack},
	{ebiten.GamepadButton7, input.ButtonStart},
	{ebiten.GamepadButton11, input.ButtonDPadUp},
	{ebiten.GamepadButton12, input.ButtonDPadRight},
	{ebiten.GamepadButton13, input.ButtonDPadDown},
	{ebiten.GamepadButton14, input.ButtonDPadLeft},
}

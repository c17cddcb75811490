//go:build ebiten

package ebiten

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"darkforces/pkg/engine/input"
)

// Key repeat timing in ticks. Ebiten reports no OS repeats, so held keys
// are turned into repeat events here.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

// poller turns Ebiten's polled state into platform events for input.State.
type poller struct {
	log *slog.Logger

	keys  []ebiten.Key
	chars []rune
	pads  []ebiten.GamepadID

	pad       ebiten.GamepadID
	hasPad    bool
	axes      [input.AxisCount]float32
	padButton [input.ButtonCount]bool

	cursorX, cursorY int
	seenCursor       bool

	events []input.Event
}

func newPoller(log *slog.Logger) *poller {
	return &poller{log: log}
}

// poll returns this tick's events. The slice is reused on the next call.
func (p *poller) poll() []input.Event {
	p.events = p.events[:0]
	p.pollKeyboard()
	p.pollMouse()
	p.pollGamepad()
	return p.events
}

func (p *poller) emit(ev input.Event) {
	p.events = append(p.events, ev)
}

func (p *poller) pollKeyboard() {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := keyMap[k]; ok {
			p.emit(input.Event{Device: input.DeviceKeyboard, Kind: input.EventKeyDown, Key: code})
		}
	}

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		d := inpututil.KeyPressDuration(k)
		if d <= keyRepeatDelay || (d-keyRepeatDelay)%keyRepeatInterval != 0 {
			continue
		}
		if code, ok := keyMap[k]; ok {
			p.emit(input.Event{Device: input.DeviceKeyboard, Kind: input.EventKeyDown, Key: code, Repeat: true})
		}
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code, ok := keyMap[k]; ok {
			p.emit(input.Event{Device: input.DeviceKeyboard, Kind: input.EventKeyUp, Key: code})
		}
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if len(p.chars) > 0 {
		p.emit(input.Event{Device: input.DeviceKeyboard, Kind: input.EventText, Text: string(p.chars)})
	}
}

func (p *poller) pollMouse() {
	x, y := ebiten.CursorPosition()
	if !p.seenCursor || x != p.cursorX || y != p.cursorY {
		p.cursorX, p.cursorY, p.seenCursor = x, y, true
		p.emit(input.Event{Device: input.DeviceMouse, Kind: input.EventMouseMotion, X: x, Y: y})
	}

	for _, m := range mouseMap {
		switch {
		case inpututil.IsMouseButtonJustPressed(m.eb):
			p.emit(input.Event{Device: input.DeviceMouse, Kind: input.EventMouseDown, MouseButton: m.in})
		case inpututil.IsMouseButtonJustReleased(m.eb):
			p.emit(input.Event{Device: input.DeviceMouse, Kind: input.EventMouseUp, MouseButton: m.in})
		}
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		p.emit(input.Event{Device: input.DeviceMouse, Kind: input.EventMouseWheel, X: int(wx), Y: int(wy)})
	}
}

func (p *poller) pollGamepad() {
	if p.hasPad && inpututil.IsGamepadJustDisconnected(p.pad) {
		p.log.Info("gamepad disconnected", "id", p.pad)
		p.releasePad()
	}
	if !p.hasPad {
		p.pads = ebiten.AppendGamepadIDs(p.pads[:0])
		if len(p.pads) == 0 {
			return
		}
		p.pad, p.hasPad = p.pads[0], true
		p.log.Info("gamepad connected", "id", p.pad, "name", ebiten.GamepadName(p.pad),
			"standard", ebiten.IsStandardGamepadLayoutAvailable(p.pad))
	}

	var down [input.ButtonCount]bool
	var axes [input.AxisCount]float32
	if ebiten.IsStandardGamepadLayoutAvailable(p.pad) {
		for _, b := range standardButtons {
			down[b.in] = ebiten.IsStandardGamepadButtonPressed(p.pad, b.eb)
		}
		axes[input.AxisLeftX] = float32(ebiten.StandardGamepadAxisValue(p.pad, ebiten.StandardGamepadAxisLeftStickHorizontal))
		axes[input.AxisLeftY] = float32(ebiten.StandardGamepadAxisValue(p.pad, ebiten.StandardGamepadAxisLeftStickVertical))
		axes[input.AxisRightX] = float32(ebiten.StandardGamepadAxisValue(p.pad, ebiten.StandardGamepadAxisRightStickHorizontal))
		axes[input.AxisRightY] = float32(ebiten.StandardGamepadAxisValue(p.pad, ebiten.StandardGamepadAxisRightStickVertical))
		axes[input.AxisLeftTrigger] = float32(ebiten.StandardGamepadButtonValue(p.pad, ebiten.StandardGamepadButtonFrontBottomLeft))
		axes[input.AxisRightTrigger] = float32(ebiten.StandardGamepadButtonValue(p.pad, ebiten.StandardGamepadButtonFrontBottomRight))
	} else {
		for _, b := range rawButtons {
			down[b.in] = ebiten.IsGamepadButtonPressed(p.pad, b.eb)
		}
		axes[input.AxisLeftX] = float32(ebiten.GamepadAxisValue(p.pad, 0))
		axes[input.AxisLeftY] = float32(ebiten.GamepadAxisValue(p.pad, 1))
	}
	p.applyPad(down, axes)
}

func (p *poller) applyPad(down [input.ButtonCount]bool, axes [input.AxisCount]float32) {
	for b := input.Button(0); b < input.ButtonCount; b++ {
		if down[b] == p.padButton[b] {
			continue
		}
		kind := input.EventButtonUp
		if down[b] {
			kind = input.EventButtonDown
		}
		p.emit(input.Event{Device: input.DeviceGamepad, Kind: kind, Button: b})
	}
	p.padButton = down

	for a := input.Axis(0); a < input.AxisCount; a++ {
		if axes[a] != p.axes[a] {
			p.emit(input.Event{Device: input.DeviceGamepad, Kind: input.EventAxis, Axis: a, Value: axes[a]})
		}
	}
	p.axes = axes
}

func (p *poller) releasePad() {
	p.applyPad([input.ButtonCount]bool{}, [input.AxisCount]float32{})
	p.hasPad = false
}

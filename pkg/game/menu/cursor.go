package menu

import (
	"image"

	"darkforces/pkg/engine/input"
)

// Cursor is the menu pointer in virtual screen coordinates. Absolute mouse
// motion snaps it to the mouse; relative motion (e.g. from the gamepad
// stick) nudges it.
type Cursor struct {
	pos       image.Point
	lastMouse image.Point
	seenMouse bool
}

func NewCursor() *Cursor {
	c := &Cursor{}
	c.Reset()
	return c
}

// Reset centres the cursor.
func (c *Cursor) Reset() {
	c.pos = image.Pt(ScreenWidth/2, ScreenHeight/2)
}

func (c *Cursor) Pos() image.Point { return c.pos }

// Track updates the cursor from the frame's mouse state.
func (c *Cursor) Track(st *input.State) {
	mx, my := st.MousePos()
	mouse := image.Pt(mx, my)
	if c.seenMouse && mouse != c.lastMouse {
		c.pos = mouse
	}
	c.lastMouse = mouse
	c.seenMouse = true

	dx, dy := st.AccumulatedMouseMove()
	c.pos = c.pos.Add(image.Pt(dx, dy))
	c.pos.X = clamp(c.pos.X, 0, ScreenWidth-1)
	c.pos.Y = clamp(c.pos.Y, 0, ScreenHeight-1)
}

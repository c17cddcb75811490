//go:build ebiten

package ebiten

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"darkforces/pkg/game/i18n"
	"darkforces/pkg/game/menu"
	"darkforces/pkg/game/renderer"
)

// basicfont is 7x13; the menu rows are 8 pixels apart.
const textScale = 0.6

// Canvas implements menu.Canvas. The menu draws during Update, so calls are
// recorded and replayed onto the screen in Draw.
type Canvas struct {
	face text.Face
	ops  []func(dst *ebiten.Image)
}

func NewCanvas() *Canvas {
	return &Canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

// reset drops the previous frame's display list.
func (c *Canvas) reset() {
	c.ops = c.ops[:0]
}

func (c *Canvas) replay(dst *ebiten.Image) {
	for _, op := range c.ops {
		op(dst)
	}
}

func (c *Canvas) add(op func(dst *ebiten.Image)) {
	c.ops = append(c.ops, op)
}

func (c *Canvas) Clear() {
	c.add(func(dst *ebiten.Image) { dst.Fill(colorBackground) })
}

func (c *Canvas) MenuFrame(index, dx, dy int) {
	art := renderer.DecodeMenuFrame(index)
	switch art.Kind {
	case renderer.ArtBackground:
		c.add(c.drawBackground)
	case renderer.ArtButton:
		r := menu.AgentButtonRect(art.Button).Add(image.Pt(dx, dy))
		label := renderer.ButtonLabel(art.Button)
		lit := art.Lit
		c.add(func(dst *ebiten.Image) { c.drawButton(dst, r, label, lit) })
	case renderer.ArtDifficulty:
		at := renderer.DifficultyMarker(dx, dy)
		d := art.Difficulty
		c.add(func(dst *ebiten.Image) {
			vector.DrawFilledRect(dst, float32(at.X), float32(at.Y), 8, 7, renderer.DifficultyColor(d), false)
			c.text(dst, renderer.DifficultyLabel(d), at.X+2, at.Y, colorBackground)
		})
	}
}

func (c *Canvas) drawBackground(dst *ebiten.Image) {
	title := i18n.Get("MENU_TITLE")
	w := text.Advance(title, c.face) * textScale
	c.text(dst, title, int((menu.ScreenWidth-w)/2), 12, colorLabel)

	agents, missions := menu.ListAreas()
	for _, r := range []image.Rectangle{agents, missions} {
		drawPanel(dst, r.Inset(-2), 3, colorPanel, colorBorder)
	}
}

func (c *Canvas) drawButton(dst *ebiten.Image, r image.Rectangle, label string, lit bool) {
	bg := colorButton
	if lit {
		bg = colorButtonLit
	}
	drawPanel(dst, r, 4, bg, colorBorder)
	w := text.Advance(label, c.face) * textScale
	x := float64(r.Min.X) + (float64(r.Dx())-w)/2
	y := r.Min.Y + (r.Dy()-8)/2
	c.text(dst, label, int(x), y, colorLabel)
}

func (c *Canvas) DialogFrame(index int) {
	art := renderer.DecodeDialogFrame(index)
	switch {
	case art.Box:
		prompt := art.Prompt
		c.add(func(dst *ebiten.Image) {
			drawPanel(dst, renderer.DialogBox, 5, colorPanel, colorBorder)
			c.text(dst, prompt, renderer.DialogBox.Min.X+8, renderer.DialogBox.Min.Y+6, colorLabel)
			for b := menu.DialogNo; b <= menu.DialogYes; b++ {
				c.drawButton(dst, menu.DialogButtonRect(b), renderer.DialogButtonLabel(b), false)
			}
		})
	case art.HasLit:
		b := art.Lit
		c.add(func(dst *ebiten.Image) {
			c.drawButton(dst, menu.DialogButtonRect(b), renderer.DialogButtonLabel(b), true)
		})
	}
}

func (c *Canvas) Quad(r image.Rectangle, idx uint8) {
	clr := renderer.PaletteColor(idx)
	c.add(func(dst *ebiten.Image) {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
	})
}

func (c *Canvas) Print(s string, x, y int, idx uint8) {
	clr := renderer.PaletteColor(idx)
	c.add(func(dst *ebiten.Image) { c.text(dst, s, x, y, clr) })
}

func (c *Canvas) EditBox(s string, cursor int, showCursor bool, area image.Rectangle) {
	c.add(func(dst *ebiten.Image) {
		vector.DrawFilledRect(dst, float32(area.Min.X), float32(area.Min.Y), float32(area.Dx()), float32(area.Dy()), colorBackground, false)
		vector.StrokeRect(dst, float32(area.Min.X), float32(area.Min.Y), float32(area.Dx()), float32(area.Dy()), 1, colorBorder, false)
		c.text(dst, s, area.Min.X+3, area.Min.Y+3, colorLabel)
		if !showCursor {
			return
		}
		runes := []rune(s)
		cursor = min(max(cursor, 0), len(runes))
		x := float32(area.Min.X+3) + float32(text.Advance(string(runes[:cursor]), c.face)*textScale)
		vector.DrawFilledRect(dst, x, float32(area.Min.Y+2), 1, float32(area.Dy()-4), colorCursor, false)
	})
}

func (c *Canvas) Cursor(p image.Point) {
	c.add(func(dst *ebiten.Image) {
		var path vector.Path
		x, y := float32(p.X), float32(p.Y)
		path.MoveTo(x, y)
		path.LineTo(x, y+8)
		path.LineTo(x+2.5, y+6)
		path.LineTo(x+5.5, y+5.5)
		path.Close()
		opts := &vector.DrawPathOptions{AntiAlias: true}
		opts.ColorScale.ScaleWithColor(colorCursor)
		vector.FillPath(dst, &path, nil, opts)
	})
}

func (c *Canvas) text(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, c.face, op)
}

// appendRoundedRect adds a clockwise rounded rectangle to the path.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, vector.Clockwise)
	p.Close()
}

// drawPanel fills a rounded rectangle and strokes a one pixel border.
func drawPanel(dst *ebiten.Image, r image.Rectangle, radius float32, bg, border color.Color) {
	var path vector.Path
	appendRoundedRect(&path, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), radius)

	fill := &vector.DrawPathOptions{AntiAlias: true}
	fill.ColorScale.ScaleWithColor(bg)
	vector.FillPath(dst, &path, nil, fill)

	stroke := &vector.DrawPathOptions{AntiAlias: true}
	stroke.ColorScale.ScaleWithColor(border)
	vector.StrokePath(dst, &path, &vector.StrokeOptions{Width: 1, MiterLimit: 10}, stroke)
}

// Package tui draws the agent menu as text, one character per 4x8 pixel
// block of the menu screen. It backs the -dump developer output and works
// without a window.
package tui

import (
	"image"
	"io"
	"slices"
	"strings"

	"github.com/gookit/color"

	"darkforces/pkg/game/i18n"
	"darkforces/pkg/game/menu"
	"darkforces/pkg/game/renderer"
)

// Text grid size.
const (
	Cols = 80
	Rows = 25

	cellW = menu.ScreenWidth / Cols
	cellH = menu.ScreenHeight / Rows
)

// Box drawing runes.
const (
	IconTopLeft     = '┌'
	IconTopRight    = '┐'
	IconBottomLeft  = '└'
	IconBottomRight = '┘'
	IconHorizontal  = '─'
	IconVertical    = '│'
	IconCursor      = '▲'
	IconCaret       = '_'
)

var (
	styleLabel    = color.Style{color.FgWhite}
	styleBorder   = color.Style{color.FgGreen}
	styleLit      = color.Style{color.FgBlack, color.BgGreen, color.OpBold}
	styleCursor   = color.Style{color.FgWhite, color.OpBold}
	styleText     = color.Style{color.FgGreen}
	styleSelected = color.Style{color.FgYellow, color.OpBold}
)

type cell struct {
	r  rune
	fg color.Style
	bg color.Color // 0 for none
}

func (c cell) style() color.Style {
	if c.bg == 0 {
		return c.fg
	}
	return append(slices.Clone(c.fg), c.bg)
}

// Canvas implements menu.Canvas on a text grid.
type Canvas struct {
	grid [Rows][Cols]cell
}

func NewCanvas() *Canvas {
	c := &Canvas{}
	c.Clear()
	return c
}

func toCell(x, y int) (col, row int) {
	return x / cellW, y / cellH
}

func (c *Canvas) set(col, row int, r rune, fg color.Style) {
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return
	}
	c.grid[row][col].r = r
	c.grid[row][col].fg = fg
}

func (c *Canvas) write(col, row int, s string, fg color.Style) {
	for _, r := range s {
		c.set(col, row, r, fg)
		col++
	}
}

// box draws a border on the cells covering r and blanks its inside.
func (c *Canvas) box(r image.Rectangle, fg color.Style) {
	c0, r0 := toCell(r.Min.X, r.Min.Y)
	c1, r1 := toCell(r.Max.X-1, r.Max.Y-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			ch := ' '
			switch {
			case row == r0 && col == c0:
				ch = IconTopLeft
			case row == r0 && col == c1:
				ch = IconTopRight
			case row == r1 && col == c0:
				ch = IconBottomLeft
			case row == r1 && col == c1:
				ch = IconBottomRight
			case row == r0 || row == r1:
				ch = IconHorizontal
			case col == c0 || col == c1:
				ch = IconVertical
			}
			c.set(col, row, ch, fg)
			if col >= 0 && col < Cols && row >= 0 && row < Rows {
				c.grid[row][col].bg = 0
			}
		}
	}
}

// label centres s inside r.
func (c *Canvas) label(r image.Rectangle, s string, fg color.Style) {
	c0, _ := toCell(r.Min.X, r.Min.Y)
	c1, _ := toCell(r.Max.X-1, r.Max.Y-1)
	_, row := toCell(0, (r.Min.Y+r.Max.Y)/2)
	col := c0 + (c1-c0+1-len([]rune(s)))/2
	c.write(col, row, s, fg)
}

func (c *Canvas) button(r image.Rectangle, s string, lit bool) {
	if lit {
		c.label(r, "["+s+"]", styleLit)
		return
	}
	c.label(r, "["+s+"]", styleLabel)
}

func (c *Canvas) Clear() {
	for row := range c.grid {
		for col := range c.grid[row] {
			c.grid[row][col] = cell{r: ' '}
		}
	}
}

func (c *Canvas) MenuFrame(index, dx, dy int) {
	art := renderer.DecodeMenuFrame(index)
	switch art.Kind {
	case renderer.ArtBackground:
		title := i18n.Get("MENU_TITLE")
		c.write((Cols-len([]rune(title)))/2, 1, title, styleLabel)
		agents, missions := menu.ListAreas()
		c.box(agents.Inset(-cellW), styleBorder)
		c.box(missions.Inset(-cellW), styleBorder)
	case renderer.ArtButton:
		r := menu.AgentButtonRect(art.Button).Add(image.Pt(dx, dy))
		c.button(r, renderer.ButtonLabel(art.Button), art.Lit)
	case renderer.ArtDifficulty:
		p := renderer.DifficultyMarker(dx, dy)
		col, row := toCell(p.X, p.Y)
		c.write(col, row, renderer.DifficultyLabel(art.Difficulty), styleSelected)
	}
}

func (c *Canvas) DialogFrame(index int) {
	art := renderer.DecodeDialogFrame(index)
	switch {
	case art.Box:
		c.box(renderer.DialogBox, styleBorder)
		col, row := toCell(renderer.DialogBox.Min.X+8, renderer.DialogBox.Min.Y+6)
		c.write(col, row, art.Prompt, styleLabel)
		for b := menu.DialogNo; b <= menu.DialogYes; b++ {
			c.button(menu.DialogButtonRect(b), renderer.DialogButtonLabel(b), false)
		}
	case art.HasLit:
		c.button(menu.DialogButtonRect(art.Lit), renderer.DialogButtonLabel(art.Lit), true)
	}
}

func (c *Canvas) Quad(r image.Rectangle, idx uint8) {
	bg := color.BgBlue
	if idx == renderer.PaletteFocused {
		bg = color.BgGreen
	}
	c0, r0 := toCell(r.Min.X, r.Min.Y)
	c1, _ := toCell(r.Max.X-1, r.Min.Y)
	for col := max(c0, 0); col <= min(c1, Cols-1); col++ {
		if r0 >= 0 && r0 < Rows {
			c.grid[r0][col].bg = bg
		}
	}
}

func (c *Canvas) Print(s string, x, y int, idx uint8) {
	fg := styleText
	if idx == renderer.PaletteSelected {
		fg = styleSelected
	}
	col, row := toCell(x, y)
	c.write(col, row, s, fg)
}

func (c *Canvas) EditBox(s string, cursor int, showCursor bool, area image.Rectangle) {
	c0, row := toCell(area.Min.X, area.Min.Y)
	c1, _ := toCell(area.Max.X-1, area.Min.Y)
	for col := c0; col <= c1; col++ {
		c.set(col, row, ' ', styleLabel)
	}
	c.write(c0, row, s, styleLabel)
	if showCursor {
		cursor = min(max(cursor, 0), len([]rune(s)))
		c.set(c0+cursor, row, IconCaret, styleCursor)
	}
}

func (c *Canvas) Cursor(p image.Point) {
	col, row := toCell(p.X, p.Y)
	c.set(col, row, IconCursor, styleCursor)
}

// String returns the grid as plain text with trailing spaces trimmed.
func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.grid {
		var line strings.Builder
		for _, cl := range c.grid[row] {
			line.WriteRune(cl.r)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes the grid to w, styled with ANSI colours when useColor is set.
func (c *Canvas) Render(w io.Writer, useColor bool) error {
	if !useColor {
		_, err := io.WriteString(w, c.String())
		return err
	}
	var b strings.Builder
	for row := range c.grid {
		var run strings.Builder
		var runStyle color.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if len(runStyle) == 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Sprint(run.String()))
			}
			run.Reset()
		}
		for _, cl := range c.grid[row] {
			st := cl.style()
			if !slices.Equal(st, runStyle) {
				flush()
				runStyle = st
			}
			run.WriteRune(cl.r)
		}
		flush()
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

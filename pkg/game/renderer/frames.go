// Package renderer decodes the agent menu's frame indices into what the
// window and text backends draw for them.
package renderer

import (
	"image"
	"image/color"

	"darkforces/pkg/game/agent"
	"darkforces/pkg/game/i18n"
	"darkforces/pkg/game/menu"
)

type ArtKind int

const (
	ArtNone ArtKind = iota
	ArtBackground
	ArtButton
	ArtDifficulty
)

// MenuArt is what a menu frame index stands for.
type MenuArt struct {
	Kind       ArtKind
	Button     menu.ButtonID
	Lit        bool
	Difficulty agent.Difficulty
}

func DecodeMenuFrame(index int) MenuArt {
	switch {
	case index == menu.FrameBackground:
		return MenuArt{Kind: ArtBackground}
	case index >= menu.ButtonFrame(menu.ButtonNew, true) && index <= menu.ButtonFrame(menu.ButtonBegin, false):
		return MenuArt{
			Kind:   ArtButton,
			Button: menu.ButtonID((index - 1) / 2),
			Lit:    index%2 == 1,
		}
	case index >= menu.DifficultyFrame(int(agent.DifficultyEasy)) && index <= menu.DifficultyFrame(int(agent.DifficultyHard)):
		return MenuArt{
			Kind:       ArtDifficulty,
			Difficulty: agent.Difficulty(index - menu.DifficultyFrame(0)),
		}
	}
	return MenuArt{Kind: ArtNone}
}

// DifficultyMarker returns where a difficulty frame drawn at (dx, dy) lands:
// just left of the mission list's right edge, on the row of its mission.
func DifficultyMarker(dx, dy int) image.Point {
	_, missions := menu.ListAreas()
	// The frame's origin is 21 pixels below the top of the list.
	return image.Pt(missions.Max.X-12+dx, missions.Min.Y+21+dy)
}

// DialogBox is the rectangle every dialog is drawn in.
var DialogBox = image.Rect(98, 68, 242, 128)

// DialogArt is what a dialog frame index stands for: either a dialog box
// with its prompt, or a lit Yes/No button on top of one.
type DialogArt struct {
	Box     bool
	Prompt  string
	EditBox bool
	Lit     menu.DialogButton
	HasLit  bool
}

func DecodeDialogFrame(index int) DialogArt {
	switch index {
	case menu.FrameRemoveDialog:
		return DialogArt{Box: true, Prompt: i18n.Get("DIALOG_REMOVE_AGENT")}
	case menu.FrameQuitDialog:
		return DialogArt{Box: true, Prompt: i18n.Get("DIALOG_QUIT")}
	case menu.FrameNewDialog:
		return DialogArt{Box: true, Prompt: i18n.Get("DIALOG_NEW_AGENT"), EditBox: true}
	case menu.FrameYesNoNo, menu.FrameNewNo:
		return DialogArt{Lit: menu.DialogNo, HasLit: true}
	case menu.FrameYesNoYes, menu.FrameNewYes:
		return DialogArt{Lit: menu.DialogYes, HasLit: true}
	}
	return DialogArt{}
}

func ButtonLabel(b menu.ButtonID) string {
	switch b {
	case menu.ButtonNew:
		return i18n.Get("BUTTON_NEW")
	case menu.ButtonRemove:
		return i18n.Get("BUTTON_REMOVE")
	case menu.ButtonExit:
		return i18n.Get("BUTTON_EXIT")
	case menu.ButtonBegin:
		return i18n.Get("BUTTON_BEGIN")
	}
	return ""
}

func DialogButtonLabel(b menu.DialogButton) string {
	if b == menu.DialogYes {
		return i18n.Get("BUTTON_YES")
	}
	return i18n.Get("BUTTON_NO")
}

func DifficultyLabel(d agent.Difficulty) string {
	switch d {
	case agent.DifficultyEasy:
		return i18n.Get("DIFFICULTY_EASY")
	case agent.DifficultyMedium:
		return i18n.Get("DIFFICULTY_MEDIUM")
	case agent.DifficultyHard:
		return i18n.Get("DIFFICULTY_HARD")
	}
	return i18n.Get("DIFFICULTY_NONE")
}

// Palette indices the menu draws with.
const (
	PaletteFocused  uint8 = 12
	PaletteIdle     uint8 = 13
	PaletteSelected uint8 = 32
	PaletteText     uint8 = 47
)

var palette = map[uint8]color.RGBA{
	PaletteFocused:  {R: 40, G: 90, B: 40, A: 255},
	PaletteIdle:     {R: 40, G: 44, B: 52, A: 255},
	PaletteSelected: {R: 255, G: 224, B: 96, A: 255},
	PaletteText:     {R: 96, G: 200, B: 96, A: 255},
}

// PaletteColor maps a palette index to a colour. Indices the menu does not
// use fall back to a grey ramp.
func PaletteColor(idx uint8) color.RGBA {
	if c, ok := palette[idx]; ok {
		return c
	}
	return color.RGBA{R: idx, G: idx, B: idx, A: 255}
}

// DifficultyColor tints the completion marker drawn next to a mission.
func DifficultyColor(d agent.Difficulty) color.RGBA {
	switch d {
	case agent.DifficultyEasy:
		return color.RGBA{R: 80, G: 160, B: 220, A: 255}
	case agent.DifficultyMedium:
		return color.RGBA{R: 230, G: 180, B: 60, A: 255}
	default:
		return color.RGBA{R: 220, G: 70, B: 60, A: 255}
	}
}

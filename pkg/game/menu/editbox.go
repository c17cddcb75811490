package menu

import (
	"unicode"

	"darkforces/pkg/engine/input"
)

// EditBox is a single-line text field fed from buffered text input.
type EditBox struct {
	text   []rune
	cursor int
	maxLen int
}

// Reset fills the box with text and puts the cursor at the end.
func (e *EditBox) Reset(text string, maxLen int) {
	e.maxLen = maxLen
	e.text = []rune(text)
	if len(e.text) > maxLen {
		e.text = e.text[:maxLen]
	}
	e.cursor = len(e.text)
}

func (e *EditBox) Text() string { return string(e.text) }
func (e *EditBox) Cursor() int { return e.cursor }

// Update applies this frame's typed text and editing keys.
func (e *EditBox) Update(st *input.State) {
	for _, r := range st.BufferedText() {
		if !unicode.IsPrint(r) || len(e.text) >= e.maxLen {
			continue
		}
		e.text = append(e.text, 0)
		copy(e.text[e.cursor+1:], e.text[e.cursor:])
		e.text[e.cursor] = r
		e.cursor++
	}

	switch {
	case st.BufferedKeyDown(input.KeyBackspace):
		if e.cursor > 0 {
			e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
			e.cursor--
		}
	case st.BufferedKeyDown(input.KeyDelete):
		if e.cursor < len(e.text) {
			e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
		}
	case st.BufferedKeyDown(input.KeyLeft):
		e.cursor = max(0, e.cursor-1)
	case st.BufferedKeyDown(input.KeyRight):
		e.cursor = min(len(e.text), e.cursor+1)
	case st.BufferedKeyDown(input.KeyHome):
		e.cursor = 0
	case st.BufferedKeyDown(input.KeyEnd):
		e.cursor = len(e.text)
	}
}

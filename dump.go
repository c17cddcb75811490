package main

import (
	"context"
	"io"
	"os"

	"darkforces/pkg/engine/input"
	"darkforces/pkg/engine/terminal"
	"darkforces/pkg/game/menu"
	"darkforces/pkg/game/renderer/tui"
	"darkforces/pkg/game/setup"
)

// dumpMenu renders one frame of the agent menu over the saved agents as text.
func dumpMenu(ctx context.Context, flags setup.Flags, w io.Writer) error {
	flags.Watch = false
	sess, err := setup.Start(ctx, flags)
	if err != nil {
		return err
	}
	defer sess.Close()

	c := tui.NewCanvas()
	m := sess.NewMenu(c)
	m.Update(input.NewState(), menu.NewCursor())

	useColor := false
	if f, ok := w.(*os.File); ok && terminal.IsTerminal(f) {
		useColor = true
		if width, _ := terminal.GetSize(f); width < tui.Cols {
			sess.Log.Warn("terminal is narrower than the menu", "width", width, "need", tui.Cols)
		}
	}
	return c.Render(w, useColor)
}

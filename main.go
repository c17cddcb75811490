//go:build ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"darkforces/pkg/game/i18n"
	"darkforces/pkg/game/renderer/ebiten"
	"darkforces/pkg/game/setup"
)

func main() {
	if err := run(flag.CommandLine, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "darkforces:", err)
		os.Exit(1)
	}
}

func run(fs *flag.FlagSet, args []string) error {
	opts, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.dump {
		return dumpMenu(ctx, opts.Flags, os.Stdout)
	}

	sess, err := setup.Start(ctx, opts.Flags)
	if err != nil {
		return err
	}
	defer sess.Close()

	canvas := ebiten.NewCanvas()
	m := sess.NewMenu(canvas)
	game, err := ebiten.New(ebiten.Options{
		Menu:       m,
		Canvas:     canvas,
		Frontend:   sess.Frontend,
		Gamepad:    sess.Gamepad,
		Log:        sess.Log,
		OnProgress: sess.SaveRoster,
		OnFrame: func() {
			if ctx.Err() != nil {
				sess.Frontend.PostQuit()
			}
			sess.ApplyPending()
		},
	})
	if err != nil {
		return err
	}

	sess.Log.Info("starting agent menu", "agents", sess.Roster.Count())
	if err := game.Run(i18n.Get("MENU_TITLE")); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	sess.SaveRoster(m.Roster())
	sess.Log.Info("shutdown")
	return nil
}

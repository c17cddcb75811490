//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"darkforces/pkg/game/renderer/ebiten"
)

func main() {
	err := run(flag.CommandLine, os.Args[1:])
	switch {
	case errors.Is(err, ebiten.ErrNoWindow):
		fmt.Fprintln(os.Stderr, "darkforces:", err)
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten .`, or use -dump for a text snapshot.")
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "darkforces:", err)
		os.Exit(1)
	}
}

// run only supports -dump; anything else needs a window.
func run(fs *flag.FlagSet, args []string) error {
	opts, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if opts.dump {
		return dumpMenu(context.Background(), opts.Flags, os.Stdout)
	}
	return ebiten.ErrNoWindow
}

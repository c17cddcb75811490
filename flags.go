package main

import (
	"flag"

	"darkforces/pkg/game/setup"
)

type options struct {
	setup.Flags
	dump bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.ConfigPath, "config", "config.yaml", "path to the YAML config file")
	fs.StringVar(&o.KeyNames, "keynames", "", "path to the TOML key names file (overrides config)")
	fs.StringVar(&o.Database, "db", "", "path to the agent database (overrides config)")
	fs.StringVar(&o.Strings, "strings", "", "path to a .po file replacing the built-in strings")
	fs.StringVar(&o.LogLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	fs.BoolVar(&o.Watch, "watch", true, "reload the config file when it changes")
	fs.BoolVar(&o.dump, "dump", false, "print the agent menu as text and exit")
	err := fs.Parse(args)
	return o, err
}

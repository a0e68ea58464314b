package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stock/cmd"
	"github.com/google/subcommands"
)

func main() {
	completion().Complete("tsk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// unknown subcommands are looked up as tsk-<subcommand> extensions.
	if name := flag.Arg(0); name != "" && !registered(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, cmds := range cmd.Groups() {
		for _, c := range cmds {
			if c.Name() == name {
				return true
			}
		}
	}
	return false
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/money/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Shell completion over the subcommand names. Complete exits the
	// process when invoked by a shell completion request and returns
	// immediately otherwise.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Args: predict.Something}
	}
	complete.Complete(name, &complete.Command{Sub: sub})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

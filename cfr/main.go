// Command cfr reports how congressional stock purchases performed since they
// were disclosed.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path"
	_ "time/tzdata"

	"github.com/etnz/congress/cmd"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Handles COMP_LINE and COMP_INSTALL, exits if it did.
	cmd.Completion().Complete("cfr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *cmd.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

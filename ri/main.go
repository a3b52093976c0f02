// Command ri adjusts a nominal amount for inflation using IMF price data.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"

	"realincome/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if !cmd.Verbose() {
		log.SetOutput(io.Discard)
	}

	os.Exit(int(commander.Execute(context.Background())))
}

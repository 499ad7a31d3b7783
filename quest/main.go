// Command quest tracks personal goals and the points they earn.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/quest/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests and exits, otherwise does nothing.
	cmd.Completion().Complete("quest")

	cmd.LoadConfig().SetFlags(flag.CommandLine)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()

	closeLog, err := cmd.SetupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	if name := flag.Arg(0); name != "" && !isRegistered(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			closeLog()
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	closeLog()
	os.Exit(int(status))
}

func isRegistered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

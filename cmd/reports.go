package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quest"
	"github.com/etnz/quest/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	plain bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all goals and their progress" }
func (*listCmd) Usage() string {
	return `quest list [-plain]

  Lists all goals, numbered in the order they were created.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print one line per goal instead of a table")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, false, func(t *quest.Tracker) error {
		if c.plain {
			for i, line := range t.ListGoals() {
				fmt.Fprintf(stdout, "%d. %s\n", i+1, line)
			}
			return nil
		}
		printMarkdown(renderer.Goals(t.Registry().Goals()))
		return nil
	})
}

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the total points and goal completion" }
func (*statusCmd) Usage() string {
	return `quest status

  Shows the total points earned and how many goals are completed.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, false, func(t *quest.Tracker) error {
		printMarkdown(renderer.Summary(t.TotalPoints(), t.Registry().Goals()))
		return nil
	})
}

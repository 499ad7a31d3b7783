package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/quest"
	"github.com/google/subcommands"
)

// --- Create Command ---

type createCmd struct {
	kind        string
	name        string
	description string
	points      int
	required    int
	bonus       int
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new goal" }
func (*createCmd) Usage() string {
	return `quest create -n <name> [-k simple|eternal|checklist] [-d <description>] -p <points> [-r <count> -b <bonus>]

  Creates a new goal. A simple goal is done once, an eternal goal is never
  done and pays every time, a checklist goal must be done <count> times and
  pays <bonus> on top the last time.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "simple", "Goal kind: simple, eternal or checklist")
	f.StringVar(&c.name, "n", "", "Goal name")
	f.StringVar(&c.description, "d", "", "An optional description")
	f.IntVar(&c.points, "p", 0, "Points earned by each event")
	f.IntVar(&c.required, "r", 0, "Number of events to complete a checklist goal")
	f.IntVar(&c.bonus, "b", 0, "Bonus points when a checklist goal is completed")
}

func (c *createCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := quest.ParseGoalType(c.kind)
	if err != nil || c.name == "" {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		f.Usage()
		return subcommands.ExitUsageError
	}
	if kind == quest.TypeChecklist && c.required <= 0 {
		fmt.Fprintf(os.Stderr, "Error: a checklist goal needs a positive -r, got %d\n", c.required)
		return subcommands.ExitUsageError
	}

	return run(ctx, true, func(t *quest.Tracker) error {
		if err := t.CreateGoal(kind, c.name, c.description, c.points, c.required, c.bonus); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Goal %q created.\n", c.name)
		return nil
	})
}

// --- Record Command ---

type recordCmd struct {
	index int
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record an event on a goal" }
func (*recordCmd) Usage() string {
	return `quest record -i <number>
quest record <number>

  Records an event on the goal with this number, as shown by 'quest list',
  and prints the points earned.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", 0, "Goal number, starting at 1")
}

func (c *recordCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	index := c.index
	if f.NArg() > 0 {
		n, err := strconv.Atoi(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: goal number %q is not a number\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
		index = n
	}
	if index <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	return run(ctx, true, func(t *quest.Tracker) error {
		earned, err := t.RecordEvent(index - 1)
		if errors.Is(err, quest.ErrIndexOutOfRange) {
			return fmt.Errorf("there is no goal #%d, there are %d goals", index, t.Registry().Len())
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, t.AwardMessage(index-1, earned))
		return nil
	})
}

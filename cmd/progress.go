package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/etnz/quest"
	"github.com/google/subcommands"
)

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "save the progress to another destination" }
func (*exportCmd) Usage() string {
	return `quest export -o <destination>

  Saves a copy of the current progress to <destination>, in the same store.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination of the copy")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return run(ctx, false, func(t *quest.Tracker) error {
		if err := t.Save(ctx, c.output); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Progress saved to %s\n", c.output)
		return nil
	})
}

// --- Import Command ---

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the progress with a saved one" }
func (*importCmd) Usage() string {
	return `quest import -i <source>

  Loads the progress saved in <source> and makes it the current progress.
  The current goals and points are replaced, not merged.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Saved progress to load")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	// The current progress is replaced, so it is not loaded: a corrupted save
	// can be fixed by importing a good one.
	st, closeStore, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	t := quest.NewTracker(st, quest.WithLogger(slog.Default()))
	if err := t.Load(ctx, c.input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := t.Save(ctx, app.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Progress loaded from %s: %d goals, %d points\n", c.input, t.Registry().Len(), t.TotalPoints())
	return subcommands.ExitSuccess
}

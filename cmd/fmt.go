package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/quest"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the progress save in canonical form"
}
func (*fmtCmd) Usage() string {
	return `quest fmt

  Validates the progress save and writes it back in canonical form. Use it
  after editing the save by hand: Windows line endings, blank lines and
  padded numbers are removed, and old simple goal records get their
  completion flag.

Usage Examples:
# Rewrites the default progress save.
$ quest fmt

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return run(ctx, true, func(t *quest.Tracker) error {
		fmt.Fprintf(stdout, "Formatted %s: %d goals, %d points\n", app.File, t.Registry().Len(), t.TotalPoints())
		return nil
	})
}

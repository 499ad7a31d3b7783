// Package cmd implements the CLI application to track goals.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/quest"
	"github.com/etnz/quest/store"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, group(cmd.Name()))
	}
}

// Commands returns all the subcommands of the application.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&createCmd{},
		&recordCmd{},
		&listCmd{},
		&statusCmd{},
		&exportCmd{},
		&importCmd{},
		&fmtCmd{},
		&topicCmd{},
	}
}

func group(name string) string {
	switch name {
	case "create", "record":
		return "goals"
	case "list", "status":
		return "reports"
	case "export", "import", "fmt":
		return "progress"
	default:
		return "help"
	}
}

// stdout is where commands print their output.
var stdout io.Writer = os.Stdout

// openStore opens the store selected by the configuration.
func openStore() (quest.Store, func() error, error) {
	switch app.Store {
	case StoreFile, "":
		return store.NewFile(""), func() error { return nil }, nil
	case StoreSQLite:
		db, err := store.OpenSQLite(app.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open sqlite store: %w", err)
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q, want %q or %q", app.Store, StoreFile, StoreSQLite)
	}
}

// openTracker opens the store and loads the current progress. A missing save
// is not an error: the tracker starts empty.
//
// The returned function closes the store.
func openTracker(ctx context.Context) (*quest.Tracker, func() error, error) {
	st, closeStore, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	t := quest.NewTracker(st, quest.WithLogger(slog.Default()))
	err = t.Load(ctx, app.File)
	if errors.Is(err, quest.ErrNotFound) {
		slog.Warn("no saved progress, starting with no goals", "file", app.File)
		err = nil
	}
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return t, closeStore, nil
}

// run opens the tracker, calls f, and closes the store. When save is true
// the progress is saved back after f succeeded.
func run(ctx context.Context, save bool, f func(*quest.Tracker) error) subcommands.ExitStatus {
	t, closeStore, err := openTracker(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := f(t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !save {
		return subcommands.ExitSuccess
	}
	if err := t.Save(ctx, app.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal. If rendering fails, md is
// printed as is.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	slog.Debug("cannot render markdown", "error", err)
	fmt.Fprint(stdout, md)
}

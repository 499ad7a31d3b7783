package cmd

import (
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogging installs the default logger: warnings (everything with -v)
// on stderr, and everything as JSON in the log file when configured.
//
// The returned function closes the log file.
func SetupLogging() (func() error, error) {
	level := slog.LevelWarn
	if app.Verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	closer := func() error { return nil }
	if app.LogFile != "" {
		f, err := os.OpenFile(app.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return closer, fmt.Errorf("cannot open log file %q: %w", app.LogFile, err)
		}
		closer = f.Close
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return closer, nil
}

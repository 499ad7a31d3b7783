package cmd

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvFile, "saves/me.txt")
	t.Setenv(EnvStore, StoreSQLite)
	t.Setenv(EnvDB, "")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvLogFile, "quest.log")

	got := LoadConfig()
	want := Config{
		File:    "saves/me.txt",
		Store:   StoreSQLite,
		DB:      app.DB, // empty values keep the default
		Verbose: true,
		LogFile: "quest.log",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_InvalidBool(t *testing.T) {
	t.Setenv(EnvVerbose, "sometimes")
	if LoadConfig().Verbose {
		t.Error("LoadConfig().Verbose = true, want the default false")
	}
}

func TestConfig_SetFlags(t *testing.T) {
	old := app
	t.Cleanup(func() { app = old })

	f := flag.NewFlagSet("quest", flag.ContinueOnError)
	Config{File: "env.txt", Store: StoreFile, DB: "env.db"}.SetFlags(f)
	if err := f.Parse([]string{"-file", "flag.txt", "-store", "sqlite", "-v"}); err != nil {
		t.Fatal(err)
	}

	want := Config{File: "flag.txt", Store: StoreSQLite, DB: "env.db", Verbose: true}
	if diff := cmp.Diff(want, app); diff != "" {
		t.Errorf("app mismatch (-want +got):\n%s", diff)
	}
}

package cmd

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read at startup. They are also passed to extensions.
const (
	EnvFile    = "QUEST_FILE"
	EnvStore   = "QUEST_STORE"
	EnvDB      = "QUEST_DB"
	EnvVerbose = "QUEST_VERBOSE"
	EnvLogFile = "QUEST_LOG_FILE"
)

// Store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds the application settings.
type Config struct {
	File    string // path of the progress save, in the selected store
	Store   string // "file" or "sqlite"
	DB      string // sqlite database file, used with the sqlite store
	Verbose bool
	LogFile string // optional JSON log file
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use a global variable.
var app = Config{
	File:  "progress.txt",
	Store: StoreFile,
	DB:    ".quest.db",
}

// LoadConfig reads the configuration from the environment, after loading
// a .env file if there is one.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return Config{
		File:    envString(EnvFile, app.File),
		Store:   envString(EnvStore, app.Store),
		DB:      envString(EnvDB, app.DB),
		Verbose: envBool(EnvVerbose, app.Verbose),
		LogFile: envString(EnvLogFile, ""),
	}
}

// SetFlags installs the global flags, with c as default values, and makes
// them the application settings.
func (c Config) SetFlags(f *flag.FlagSet) {
	app = c
	f.StringVar(&app.File, "file", c.File, "Path to the progress save")
	f.StringVar(&app.Store, "store", c.Store, "Where progress is saved: 'file' or 'sqlite'")
	f.StringVar(&app.DB, "db", c.DB, "Path to the sqlite database, with -store=sqlite")
	f.BoolVar(&app.Verbose, "v", c.Verbose, "Verbose logging")
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", v)
		return fallback
	}
	return b
}

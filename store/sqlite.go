package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite saves progress in a table of a local sqlite database, one row per
// path.
type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite opens (or creates) the database in filename and applies the
// schema migrations.
func OpenSQLite(filename string) (*SQLite, error) {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", filename+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %q: %w", filename, err)
	}
	// sqlite serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := migrate(db.DB); err != nil {
		db.Close()
		return nil, err
	}
	slog.Debug("sqlite store opened", "file", filename)
	return &SQLite{db: db}, nil
}

// migrate brings the schema up to date.
func migrate(db *sql.DB) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get migrations directory: %w", err)
	}
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Read returns the text saved at path.
func (s *SQLite) Read(ctx context.Context, path string) (string, error) {
	var body string
	err := s.db.GetContext(ctx, &body, `SELECT body FROM saves WHERE path = ?`, path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("no save at %q: %w", path, fs.ErrNotExist)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return body, nil
}

// Write saves text at path, replacing any previous save.
func (s *SQLite) Write(ctx context.Context, path, text string) error {
	query := `INSERT INTO saves (path, body, updated_at) VALUES (?, ?, ?)
	          ON CONFLICT(path) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, path, text, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFile(dir)

	if _, err := s.Read(ctx, "progress.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Read() on missing file error = %v, want %v", err, fs.ErrNotExist)
	}

	if err := s.Write(ctx, "progress.txt", "10\n"); err != nil {
		t.Fatalf("Write() returned an unexpected error: %v", err)
	}
	if err := s.Write(ctx, "progress.txt", "20\n"); err != nil {
		t.Fatalf("Write() returned an unexpected error: %v", err)
	}
	got, err := s.Read(ctx, "progress.txt")
	if err != nil {
		t.Fatalf("Read() returned an unexpected error: %v", err)
	}
	if got != "20\n" {
		t.Errorf("Read() = %q, want %q", got, "20\n")
	}

	// The file is in Root, and no temporary file is left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "progress.txt" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Root content = %v, want [progress.txt]", names)
	}
}

func TestFile_Paths(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := NewFile(filepath.Join(dir, "root"))

	if err := s.Write(ctx, "backups/2026/progress.txt", "1\n"); err != nil {
		t.Fatalf("Write() in a new folder returned an unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "root", "backups", "2026", "progress.txt")); err != nil {
		t.Errorf("relative path not resolved against Root: %v", err)
	}

	abs := filepath.Join(dir, "elsewhere.txt")
	if err := s.Write(ctx, abs, "2\n"); err != nil {
		t.Fatalf("Write() returned an unexpected error: %v", err)
	}
	if got, err := s.Read(ctx, abs); err != nil || got != "2\n" {
		t.Errorf("Read(%q) = %q, %v, want %q, nil", abs, got, err, "2\n")
	}
}

// Package store implements the places where quest progress can be saved.
//
// Every store reports a missing save with an error wrapping fs.ErrNotExist.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File saves progress as plain text files.
//
// Relative paths are resolved against Root, absolute paths are used as is.
type File struct {
	Root string
}

// NewFile creates a File store rooted in dir. An empty dir means the current
// working directory.
func NewFile(dir string) *File { return &File{Root: dir} }

func (s *File) resolve(path string) string {
	if filepath.IsAbs(path) || s.Root == "" {
		return path
	}
	return filepath.Join(s.Root, path)
}

// Read returns the content of the file at path.
func (s *File) Read(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(s.resolve(path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write replaces the content of the file at path.
//
// The text is first written to a temporary file in the same folder, then
// renamed, so that a failed write never leaves a truncated save behind.
func (s *File) Write(_ context.Context, path, text string) error {
	filename := s.resolve(path)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create folder %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", filename, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}

package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles the output file of a run
type Storage struct {
	path string
}

// New resolves path to an absolute location. The file is not created.
func New(path string) (*Storage, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}
	return &Storage{path: resolved}, nil
}

// ResolvePath expands a leading ~/ to the home directory and returns the
// absolute, cleaned path. An existing path has its symlinks resolved so that
// writes go through a link to its target.
func ResolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty output path")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving output path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Not created yet, or a dangling link.
		return abs, nil
	}
	return resolved, nil
}

// Path returns the resolved output path.
func (s *Storage) Path() string {
	return s.path
}

// Ext returns the output file's extension, including the dot.
func (s *Storage) Ext() string {
	return filepath.Ext(s.path)
}

// Write creates the output file and fills it with write. The destination is
// only replaced when write and the close both succeed. An existing file keeps
// its permissions; a new one is created 0644.
func (s *Storage) Write(write func(w io.Writer) error) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()        // nolint:errcheck
			os.Remove(tmpPath) // nolint:errcheck
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting output permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // nolint:errcheck
		committed = true
		return fmt.Errorf("writing output file: %w", err)
	}

	committed = true
	return nil
}

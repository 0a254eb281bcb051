package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	dayLayout = "2006-01-02"
)

// Manager centralizes where daily files live on disk and how they are named.
type Manager struct {
	root string
}

// NewManager constructs a Manager rooted at the provided directory. The
// directory is not created until EnsureRoot or OpenDay runs.
func NewManager(root string) (*Manager, error) {
	if root == "" {
		return nil, errors.New("files: empty root")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &Manager{root: abs}, nil
}

// NewManagerFromEnv resolves the root from env and builds a Manager for it.
func NewManagerFromEnv(env Env) (*Manager, error) {
	root, err := ResolveRoot(env)
	if err != nil {
		return nil, err
	}
	return NewManager(root)
}

// Root returns the directory storing all daily files.
func (m *Manager) Root() string {
	return m.root
}

// DayPath resolves the file for the calendar day of t, in t's location.
func (m *Manager) DayPath(t time.Time) string {
	return filepath.Join(m.root, t.Format(dayLayout)+".txt")
}

// EnsureRoot creates the root directory tree. It is a no-op when the tree
// already exists.
func (m *Manager) EnsureRoot() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.root, dirPermissions); err != nil {
		return fmt.Errorf("%w: create directories: %w", ErrFilesystem, err)
	}
	return nil
}

// OpenDay returns a handle on the day file for t, creating the root and the
// file as needed. Writes go to the end of the file; reads may seek anywhere.
func (m *Manager) OpenDay(t time.Time) (*os.File, string, error) {
	if err := m.EnsureRoot(); err != nil {
		return nil, "", err
	}

	path := m.DayPath(t)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, filePermissions)
	if err != nil {
		return nil, "", fmt.Errorf("%w: open day file: %w", ErrFilesystem, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, "", fmt.Errorf("%w: stat day file: %w", ErrFilesystem, err)
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, "", fmt.Errorf("%w: %s is not a regular file", ErrFilesystem, path)
	}

	return file, path, nil
}

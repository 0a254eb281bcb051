// Package journal appends entries to and lists entries from the per-day
// text files managed by files.Manager.
package journal

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/faizmokh/daylog/internal/files"
)

// Store opens daily files on behalf of the CLI and TUI.
type Store struct {
	manager *files.Manager
	now     func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now, mostly for tests that need a fixed "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore wires a Store on top of manager.
func NewStore(manager *files.Manager, opts ...Option) *Store {
	s := &Store{manager: manager, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now reports the store's notion of the current local time.
func (s *Store) Now() time.Time {
	return s.now().In(time.Local)
}

// Today opens the file for the current local date.
func (s *Store) Today(ctx context.Context) (*Day, error) {
	if s == nil {
		return nil, errors.New("store not initialized with file manager")
	}
	return s.Open(ctx, s.Now())
}

// Open returns a handle on the file for the calendar day of date. The caller
// must Close it.
func (s *Store) Open(ctx context.Context, date time.Time) (*Day, error) {
	if s == nil || s.manager == nil {
		return nil, errors.New("store not initialized with file manager")
	}

	file, path, err := s.manager.OpenDay(date)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("opened day file")

	return &Day{
		file: file,
		path: path,
		date: time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
	}, nil
}

// Day is an open daily file. It is not safe for concurrent use.
type Day struct {
	file *os.File
	path string
	date time.Time
}

// Path returns the absolute path of the underlying file.
func (d *Day) Path() string {
	return d.path
}

// Date returns midnight of the day the file belongs to.
func (d *Day) Date() time.Time {
	return d.date
}

// Close releases the file handle. Closing twice is harmless.
func (d *Day) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

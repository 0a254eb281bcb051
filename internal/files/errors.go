package files

import "errors"

// ErrNoHome is returned when neither XDG_DATA_HOME nor HOME can anchor the
// data directory. Guessing a location instead would scatter entries.
var ErrNoHome = errors.New("$HOME must be set")

// ErrFilesystem marks failures creating, opening, or writing the daily files.
var ErrFilesystem = errors.New("filesystem error")

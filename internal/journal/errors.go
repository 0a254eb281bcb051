package journal

import "errors"

// ErrMultiline is returned when an entry would span more than one line.
var ErrMultiline = errors.New("entry must be a single line")

// ErrClosed indicates the Day handle has already been released.
var ErrClosed = errors.New("day file is closed")

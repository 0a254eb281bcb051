package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/faizmokh/daylog/internal/files"
)

// Append writes text as a new line at the end of the file. Blank or
// whitespace-only text is skipped and reported with ok == false; nothing is
// written in that case.
func (d *Day) Append(ctx context.Context, text string) (ok bool, err error) {
	if d == nil || d.file == nil {
		return false, ErrClosed
	}

	if strings.TrimSpace(text) == "" {
		zerolog.Ctx(ctx).Debug().Str("path", d.path).Msg("skipped blank entry")
		return false, nil
	}
	if strings.ContainsAny(text, "\r\n") {
		return false, ErrMultiline
	}

	// One write per line so concurrent appenders interleave whole lines.
	if _, err := d.file.WriteString(text + "\n"); err != nil {
		return false, fmt.Errorf("%w: append entry: %w", files.ErrFilesystem, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", d.path).Int("bytes", len(text)+1).Msg("appended entry")
	return true, nil
}

// JoinArgs turns a list of words into a single entry separated by single
// spaces.
func JoinArgs(args []string) string {
	return strings.Join(args, " ")
}

// Package editor hands a file to the user's text editor.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Fallbacks are tried, in order, after the preferred editor. Some
// distributions only ship vi.
var Fallbacks = []string{"vim", "vi"}

// ErrNoEditor is returned when none of the candidates could be started.
var ErrNoEditor = errors.New("failed to start editor; set $EDITOR or install vim")

// Process is a started editor that can be waited on.
type Process interface {
	Wait() error
}

// StartFunc starts name with args attached to the given streams.
type StartFunc func(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (Process, error)

// Candidates returns the editors to try: preferred first, then Fallbacks.
func Candidates(preferred string) []string {
	candidates := make([]string, 0, len(Fallbacks)+1)
	if strings.TrimSpace(preferred) != "" {
		candidates = append(candidates, preferred)
	}
	return append(candidates, Fallbacks...)
}

// Launcher runs the first editor that starts.
type Launcher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Start defaults to exec.CommandContext when nil.
	Start StartFunc
}

// NewLauncher returns a Launcher bound to the process's terminal.
func NewLauncher() *Launcher {
	return &Launcher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run opens path with the first candidate that starts and waits for it to
// exit. A candidate may carry arguments, e.g. "code --wait".
func (l *Launcher) Run(ctx context.Context, candidates []string, path string) error {
	logger := zerolog.Ctx(ctx)

	start := l.Start
	if start == nil {
		start = execStart
	}

	for _, candidate := range candidates {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}

		args := append(fields[1:], path)
		proc, err := start(ctx, fields[0], args, l.Stdin, l.Stdout, l.Stderr)
		if err != nil {
			logger.Debug().Err(err).Str("editor", candidate).Msg("editor did not start")
			continue
		}

		logger.Debug().Str("editor", candidate).Str("path", path).Msg("waiting for editor")
		if err := proc.Wait(); err != nil {
			return fmt.Errorf("editor %s: %w", fields[0], err)
		}
		return nil
	}

	return ErrNoEditor
}

func execStart(ctx context.Context, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) (Process, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

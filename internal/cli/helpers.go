package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daylog/internal/journal"
)

const entryMarker = "-"

func resolveDate(store *journal.Store, dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return store.Now(), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

// printLines writes one "- line" row per entry. The marker is dimmed when
// out is a color-capable terminal.
func printLines(out io.Writer, day *journal.Day) (int, error) {
	marker := lipgloss.NewRenderer(out).NewStyle().Faint(true).Render(entryMarker)

	count := 0
	for line := range day.Lines() {
		if _, err := fmt.Fprintf(out, "%s %s\n", marker, line); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func closeDay(cmd *cobra.Command, day *journal.Day) {
	if err := day.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: close %s: %v\n", day.Path(), err)
	}
}

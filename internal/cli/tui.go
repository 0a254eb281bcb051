package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daylog/internal/ui"
)

func runTUI(cmd *cobra.Command, a *app) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("--tui requires an interactive terminal")
	}

	store, err := a.journal()
	if err != nil {
		return err
	}
	day, err := store.Today(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDay(cmd, day)

	m := ui.NewModel(cmd.Context(), day)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

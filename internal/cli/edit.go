package cli

import (
	"github.com/spf13/cobra"

	"github.com/faizmokh/daylog/internal/editor"
)

func newEditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open today's file in $EDITOR (falling back to vim, then vi).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.journal()
			if err != nil {
				return err
			}

			// Opening creates the directory and the file so the editor never
			// starts on a missing path.
			day, err := store.Today(cmd.Context())
			if err != nil {
				return err
			}
			path := day.Path()
			closeDay(cmd, day)

			launcher := a.launcher
			if launcher == nil {
				launcher = editor.NewLauncher()
			}
			return launcher.Run(cmd.Context(), editor.Candidates(a.env.Editor), path)
		},
	}
}

package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daylog/internal/journal"
)

func recordEntry(cmd *cobra.Command, a *app, text string) error {
	ctx := cmd.Context()

	store, err := a.journal()
	if err != nil {
		return err
	}
	day, err := store.Today(ctx)
	if err != nil {
		return err
	}
	defer closeDay(cmd, day)

	if _, err := day.Append(ctx, text); err != nil {
		return err
	}
	return nil
}

func listEntries(cmd *cobra.Command, store *journal.Store, date time.Time) error {
	ctx := cmd.Context()

	day, err := store.Open(ctx, date)
	if err != nil {
		return err
	}
	defer closeDay(cmd, day)

	count, err := printLines(cmd.OutOrStdout(), day)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Int("entries", count).Str("path", day.Path()).Msg("listed day")
	return nil
}

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <words ...>",
		Short: "Record all arguments, joined by spaces, as one entry for today.",
		Long:  "add is useful when quoting the message is inconvenient, or when the message is itself a command name. Blank messages are ignored.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordEntry(cmd, a, journal.JoinArgs(args))
		},
	}
}

func printTodayPath(cmd *cobra.Command, a *app) error {
	store, err := a.journal()
	if err != nil {
		return err
	}
	day, err := store.Today(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDay(cmd, day)

	fmt.Fprintln(cmd.OutOrStdout(), day.Path())
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/daylog/internal/editor"
	"github.com/faizmokh/daylog/internal/files"
	"github.com/faizmokh/daylog/internal/journal"
	"github.com/faizmokh/daylog/internal/version"
)

// app holds what every subcommand needs. The store is resolved lazily so
// --help and --version work without a usable HOME.
type app struct {
	env      files.Env
	launcher *editor.Launcher
	opts     []journal.Option
	store    *journal.Store
	debug    bool
}

func (a *app) journal() (*journal.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	manager, err := files.NewManagerFromEnv(a.env)
	if err != nil {
		return nil, err
	}
	a.store = journal.NewStore(manager, a.opts...)
	return a.store, nil
}

// NewRootCommand creates the top-level Cobra command. Without arguments it
// lists today's entries; with one argument it records it.
func NewRootCommand(ctx context.Context, env files.Env, launcher *editor.Launcher) *cobra.Command {
	return newRootCommand(ctx, &app{env: env, launcher: launcher})
}

func newRootCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag string
		pathFlag bool
		tuiFlag  bool
	)

	cmd := &cobra.Command{
		Use:   version.Name + " [message]",
		Short: "Record and review one-line notes in a plain-text file per day.",
		Long: `Without arguments daylog lists today's entries. With one argument it records
that argument as a new entry for today.

The words "edit", "add" and "help" name commands. To record one of them as a
message, use "add", for example: daylog add help`,
		Version: version.Info(),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), a.debug)
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if pathFlag || tuiFlag {
				if len(args) > 0 || dateFlag != "" {
					return fmt.Errorf("--path and --tui take no message and no --date")
				}
				if pathFlag {
					return printTodayPath(cmd, a)
				}
				return runTUI(cmd, a)
			}

			if len(args) == 1 {
				if dateFlag != "" {
					return fmt.Errorf("--date only applies when listing; entries are always recorded for today")
				}
				return recordEntry(cmd, a, args[0])
			}

			store, err := a.journal()
			if err != nil {
				return err
			}
			date, err := resolveDate(store, dateFlag)
			if err != nil {
				return err
			}
			return listEntries(cmd, store, date)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	if ctx != nil {
		cmd.SetContext(ctx)
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "List another day in YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&pathFlag, "path", false, "Print the path of today's file")
	cmd.Flags().BoolVar(&tuiFlag, "tui", false, "Browse today's entries and add new ones interactively")
	cmd.MarkFlagsMutuallyExclusive("path", "tui")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Write debug logs to stderr")

	cmd.AddCommand(
		newAddCommand(a),
		newEditCommand(a),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	cmd := NewRootCommand(ctx, files.EnvFromOS(), editor.NewLauncher())
	return cmd.ExecuteContext(ctx)
}

// Main is a helper used by cmd/daylog/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

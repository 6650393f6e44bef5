package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/kringle/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [draw-id]",
		Short: "List recorded draws, or show one",
		Long: `List the draws recorded in the history database, newest first.

With a draw ID, shows that draw including its giver/recipient pairs.
That output reveals the assignments, so keep it away from participants.

Examples:
  kringle history --db ./history.db
  kringle history --db ./history.db 0193a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b
  kringle history --db ./history.db --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, args []string, cmd *cobra.Command) error {
	ctx := context.Background()

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	if len(args) == 1 {
		return showDraw(ctx, formatter, st, args[0])
	}
	return listDraws(ctx, formatter, st)
}

// listDraws prints every recorded draw, without pairs.
func listDraws(ctx context.Context, formatter *OutputFormatter, st *store.Store) error {
	draws, err := st.ListDraws(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list draws", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(draws)
	}

	if len(draws) == 0 {
		fmt.Fprintln(formatter.Writer, "No draws recorded.")
		return nil
	}

	tbl := newTable("ID", "DATE", "ROSTER", "STRATEGY", "PARTICIPANTS")
	for _, d := range draws {
		tbl.addRow(
			d.ID,
			d.DrawnAt.UTC().Format("2006-01-02 15:04"),
			d.RosterName,
			d.Strategy,
			strconv.Itoa(d.ParticipantCount),
		)
	}
	tbl.render(formatter.Writer)
	return nil
}

// showDraw prints one draw including its pairs.
func showDraw(ctx context.Context, formatter *OutputFormatter, st *store.Store, id string) error {
	d, err := st.GetDraw(ctx, id)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to get draw", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(d)
	}

	w := formatter.Writer
	fmt.Fprintf(w, "Draw %s\n", d.ID)
	fmt.Fprintf(w, "Drawn:    %s UTC\n", d.DrawnAt.UTC().Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Roster:   %s\n", d.RosterName)
	fmt.Fprintf(w, "Strategy: %s\n", d.Strategy)
	fmt.Fprintln(w)

	for _, p := range d.Pairs {
		fmt.Fprintf(w, "  %s -> %s\n", p.Giver, p.Recipient)
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/kringle/internal/engine"
	"github.com/roach88/kringle/internal/letters"
	"github.com/roach88/kringle/internal/roster"
	"github.com/roach88/kringle/internal/store"
)

// Command-level error codes (E000-E099). Roster validation codes (E100+)
// come from the roster package; solver codes are the engine's own.
const (
	ErrCodeGeneric  = "E001" // Generic/unknown error
	ErrCodeNotFound = "E005" // Path not found
)

// DrawOptions holds flags for the draw command.
type DrawOptions struct {
	*RootOptions
	Out       string
	Strategy  string
	Attempts  int
	Seed      int64
	Database  string
	AvoidLast int

	// Clock and IDGen allow overriding timestamps and draw IDs (for
	// testing). If nil, they default to time.Now and UUIDv7 IDs.
	Clock func() time.Time
	IDGen store.IDGenerator
}

// DrawSummary is the success payload of the draw command. It reports what
// happened, never who drew whom; the pairs live only in the letters.
type DrawSummary struct {
	Roster       string `json:"roster"`
	Participants int    `json:"participants"`
	Strategy     string `json:"strategy"`
	Letters      int    `json:"letters"`
	Directory    string `json:"directory"`
	DrawID       string `json:"draw_id,omitempty"`
	Elapsed      string `json:"elapsed"`
}

// NewDrawCommand creates the draw command.
func NewDrawCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DrawOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "draw <roster-file>",
		Short: "Draw assignments and write letters",
		Long: `Draw a Secret Santa assignment from a roster file and write one letter
per giver into a timestamped directory.

The roster may be YAML (with exchange metadata and exclusions) or a CSV
sign-up export. The assignment is verified against every exclusion before
any letter is written, and it is never printed.

Example:
  kringle draw guild.yaml
  kringle draw signups.csv --out ./letters --strategy permutation --seed 42
  kringle draw guild.yaml --db history.db --avoid-last 2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Out, "out", "o", "./matchings", "directory for letter output")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", string(engine.StrategyFlowNetwork), "draw strategy (permutation|flow-network)")
	cmd.Flags().IntVar(&opts.Attempts, "attempts", engine.DefaultMaxAttempts, "permutation attempts before giving up (0 = unlimited)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite history database")
	cmd.Flags().IntVar(&opts.AvoidLast, "avoid-last", 0, "also exclude pairings from the last N recorded draws (requires --db)")

	return cmd
}

func runDraw(opts *DrawOptions, rosterPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	strategy, err := engine.ParseStrategy(opts.Strategy)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --strategy", err)
	}
	if opts.AvoidLast < 0 {
		return NewExitError(ExitCommandError, "--avoid-last must not be negative")
	}
	if opts.AvoidLast > 0 && opts.Database == "" {
		return NewExitError(ExitCommandError, "--avoid-last requires --db")
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	r, loadErrs := roster.Load(rosterPath, roster.LoadModeFailFast)
	if len(loadErrs) > 0 {
		_ = formatter.Error(loadErrorCode(loadErrs[0]), loadErrs[0].Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load roster", loadErrs[0])
	}
	slog.Info("roster loaded", "file", rosterPath, "participants", len(r.Participants))

	pool, err := r.Pool()
	if err != nil {
		return drawError(formatter, err)
	}
	exclusions := r.ExclusionSet()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var st *store.Store
	if opts.Database != "" {
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
	}

	if opts.AvoidLast > 0 {
		added, err := avoidRecentPairs(ctx, st, pool, exclusions, opts.AvoidLast)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read draw history", err)
		}
		slog.Info("recent pairings excluded", "draws", opts.AvoidLast, "pairs", added)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = clock().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))
	slog.Debug("rng seeded", "seed", seed)

	var solver engine.Solver
	switch strategy {
	case engine.StrategyPermutation:
		solver = engine.NewSampler(src, engine.WithMaxAttempts(opts.Attempts))
	case engine.StrategyFlowNetwork:
		solver = engine.NewMatcher(engine.WithCandidateShuffle(src))
	}

	start := time.Now()
	a, err := engine.Draw(pool, exclusions, solver)
	if err != nil {
		return drawError(formatter, err)
	}
	elapsed := time.Since(start)
	slog.Info("assignment found", "strategy", strategy, "elapsed", elapsed)

	writer := letters.NewWriter(opts.Out, letters.WithClock(clock))
	outDir, err := writer.WriteAll(r, a)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write letters", err)
	}

	summary := DrawSummary{
		Roster:       r.Exchange.Name,
		Participants: pool.Len(),
		Strategy:     string(strategy),
		Letters:      a.Len(),
		Directory:    outDir,
		Elapsed:      elapsed.Round(time.Millisecond).String(),
	}

	if st != nil {
		idGen := opts.IDGen
		if idGen == nil {
			idGen = store.UUIDv7Generator{}
		}
		rec := store.Draw{
			ID:         idGen.NewID(),
			DrawnAt:    clock(),
			RosterName: r.Exchange.Name,
			Strategy:   string(strategy),
			Pairs:      a.Pairs(),
		}
		if err := st.RecordDraw(ctx, rec); err != nil {
			return WrapExitError(ExitCommandError, "failed to record draw (letters were written)", err)
		}
		summary.DrawID = rec.ID
		slog.Info("draw recorded", "id", rec.ID)
	}

	return outputDrawSuccess(formatter, summary)
}

// avoidRecentPairs forbids every pairing from the last n recorded draws.
// Pairs naming people outside the pool are skipped; old draws may include
// participants who have since left.
func avoidRecentPairs(ctx context.Context, st *store.Store, pool *engine.Pool, ex *engine.ExclusionSet, n int) (int, error) {
	pairs, err := st.RecentPairs(ctx, n)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, p := range pairs {
		if !pool.Contains(p.Giver) || !pool.Contains(p.Recipient) {
			continue
		}
		ex.Forbid(p.Giver, p.Recipient)
		added++
	}
	return added, nil
}

// drawError reports a failed draw. Invalid input is a command error; an
// exhausted or infeasible search is a draw failure.
func drawError(formatter *OutputFormatter, err error) error {
	var solveErr *engine.SolveError
	if !errors.As(err, &solveErr) {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "draw failed", err)
	}

	var details interface{}
	switch {
	case len(solveErr.Unmatchable) > 0:
		details = map[string]interface{}{"unmatchable": solveErr.Unmatchable}
	case solveErr.Attempts > 0:
		details = map[string]interface{}{"attempts": solveErr.Attempts}
	}
	_ = formatter.Error(string(solveErr.Code), solveErr.Error(), details)

	if engine.IsInvalidInput(err) {
		return WrapExitError(ExitCommandError, "invalid roster", err)
	}
	return WrapExitError(ExitFailure, "no valid assignment", err)
}

// loadErrorCode picks the error envelope code for a roster load failure.
func loadErrorCode(err error) string {
	var v roster.ValidationError
	if errors.As(err, &v) {
		return v.Code
	}
	if errors.Is(err, fs.ErrNotExist) {
		return ErrCodeNotFound
	}
	return ErrCodeGeneric
}

func outputDrawSuccess(formatter *OutputFormatter, summary DrawSummary) error {
	if formatter.Format == "json" {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer, "Done! Wrote %d letters to %s.\n", summary.Letters, summary.Directory)
	fmt.Fprintf(formatter.Writer, "roster: %s, participants: %d, strategy: %s, elapsed: %s\n",
		summary.Roster, summary.Participants, summary.Strategy, summary.Elapsed)
	if summary.DrawID != "" {
		fmt.Fprintf(formatter.Writer, "recorded as draw %s\n", summary.DrawID)
	}
	return nil
}

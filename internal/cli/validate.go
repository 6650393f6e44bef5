package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/kringle/internal/engine"
	"github.com/roach88/kringle/internal/roster"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid        bool                     `json:"valid"`
	Participants int                      `json:"participants,omitempty"`
	Exclusions   int                      `json:"exclusions,omitempty"`
	Feasible     bool                     `json:"feasible"`
	Unmatchable  []string                 `json:"unmatchable,omitempty"`
	Errors       []roster.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <roster-file>",
		Short: "Validate a roster without drawing",
		Long: `Validate a roster file without drawing or writing anything.

Checks the document against the roster schema, collects every semantic
problem (duplicate names, unknown names in exclusions, bad budget ranges),
and then probes whether the exclusions leave any valid assignment at all.
Faster feedback than running draw, and it never touches the filesystem.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, rosterPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	// Collect-all mode so a validation report shows everything at once.
	r, loadErrs := roster.Load(rosterPath, roster.LoadModeCollectAll)

	var findings []roster.ValidationError
	for _, err := range loadErrs {
		var v roster.ValidationError
		if errors.As(err, &v) {
			findings = append(findings, v)
			continue
		}
		if r == nil && len(findings) == 0 {
			// Nothing to report against: the file itself is unreadable
			// or unparsable.
			return outputValidateError(formatter, loadErrorCode(err), err.Error(), nil)
		}
		findings = append(findings, roster.ValidationError{
			Field:   "roster",
			Code:    roster.ErrRosterSchema,
			Message: err.Error(),
		})
	}

	if r != nil {
		formatter.VerboseLog("Loaded roster %q with %d participant(s)", r.Exchange.Name, len(r.Participants))
	}

	if len(findings) > 0 {
		return outputValidationErrors(formatter, findings)
	}

	// The roster is well formed; now check that the exclusions leave any
	// valid assignment. The matcher settles that exactly, without
	// randomness and without writing letters.
	unmatchable, probeErr := probeFeasibility(r)
	if probeErr != nil {
		return outputInfeasible(formatter, r, unmatchable, probeErr)
	}

	return outputValidateSuccess(formatter, r)
}

// probeFeasibility runs the deterministic matcher over the roster. A nil
// error means at least one valid assignment exists.
func probeFeasibility(r *roster.Roster) ([]string, error) {
	pool, err := r.Pool()
	if err != nil {
		return nil, err
	}
	if _, err := engine.Draw(pool, r.ExclusionSet(), engine.NewMatcher()); err != nil {
		var solveErr *engine.SolveError
		if errors.As(err, &solveErr) {
			return solveErr.Unmatchable, err
		}
		return nil, err
	}
	return nil, nil
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, r *roster.Roster) error {
	participants := len(r.Participants)
	exclusions := r.ExclusionSet().Len()

	if formatter.Format == "json" {
		result := ValidationResult{
			Valid:        true,
			Participants: participants,
			Exclusions:   exclusions,
			Feasible:     true,
		}
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Roster valid: %d participant(s), %d exclusion(s), assignment feasible\n",
		participants, exclusions)
	return nil
}

// outputValidateError outputs a single validation error.
func outputValidateError(formatter *OutputFormatter, code, message string, details interface{}) error {
	_ = formatter.Error(code, message, details)
	// Load errors are command-level errors (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []roster.ValidationError) error {
	if formatter.Format == "json" {
		result := ValidationResult{
			Valid:  false,
			Errors: errs,
		}

		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1 (draw/validation failure)
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, err := range errs {
		if err.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d\n", err.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", err.Code, err.Message)
	}

	// Validation failures = exit code 1 (draw/validation failure)
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

// outputInfeasible reports a well-formed roster whose exclusions rule out
// every assignment.
func outputInfeasible(formatter *OutputFormatter, r *roster.Roster, unmatchable []string, probeErr error) error {
	code := ErrCodeGeneric
	var solveErr *engine.SolveError
	if errors.As(probeErr, &solveErr) {
		code = string(solveErr.Code)
	}

	if formatter.Format == "json" {
		result := ValidationResult{
			Valid:        true,
			Participants: len(r.Participants),
			Exclusions:   r.ExclusionSet().Len(),
			Feasible:     false,
			Unmatchable:  unmatchable,
		}

		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    code,
				Message: probeErr.Error(),
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		return NewExitError(ExitFailure, probeErr.Error())
	}

	fmt.Fprintln(formatter.Writer, "✗ Roster valid, but no assignment satisfies the exclusions")
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintf(formatter.Writer, "  %s: %s\n", code, probeErr.Error())
	if len(unmatchable) > 0 {
		fmt.Fprintf(formatter.Writer, "  unmatchable: %s\n", strings.Join(unmatchable, ", "))
	}

	return NewExitError(ExitFailure, probeErr.Error())
}

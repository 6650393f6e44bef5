package engine

import (
	"errors"
	"fmt"
	"strings"
)

// SolveError represents a failure to produce an assignment.
//
// The four categories:
//   - Invalid input: duplicate participants, or an exclusion naming an
//     unknown participant. Detected before any solving.
//   - Exhausted: the sampler spent its attempt budget without finding a
//     valid permutation. Recoverable by raising the budget or switching
//     to the matching strategy.
//   - Infeasible: the matcher proved no valid assignment exists under the
//     exclusions. Deterministic; retrying cannot help.
//   - Invariant violation: a solver returned an assignment the validator
//     rejected. An engine defect, always fatal.
type SolveError struct {
	// Code identifies the error category.
	Code SolveErrorCode

	// Message is a human-readable description.
	Message string

	// Attempts is the number of permutations tried (for EXHAUSTED).
	Attempts int

	// Unmatchable lists participants that cannot be placed (for INFEASIBLE):
	// givers with no permitted recipient left and recipients no permitted
	// giver can reach.
	Unmatchable []string
}

// SolveErrorCode categorizes solve errors.
type SolveErrorCode string

const (
	// ErrCodeInvalidInput indicates malformed input: duplicate participants
	// or an exclusion referencing an unknown participant.
	ErrCodeInvalidInput SolveErrorCode = "INVALID_INPUT"

	// ErrCodeExhausted indicates the sampler used its whole attempt budget.
	ErrCodeExhausted SolveErrorCode = "EXHAUSTED"

	// ErrCodeInfeasible indicates no valid assignment exists.
	ErrCodeInfeasible SolveErrorCode = "INFEASIBLE"

	// ErrCodeInvariantViolation indicates a solver produced an assignment
	// that failed independent verification.
	ErrCodeInvariantViolation SolveErrorCode = "INVARIANT_VIOLATION"
)

// Error implements the error interface.
func (e *SolveError) Error() string {
	if len(e.Unmatchable) > 0 {
		return fmt.Sprintf("%s: %s (unmatchable: %s)", e.Code, e.Message, strings.Join(e.Unmatchable, ", "))
	}
	if e.Attempts > 0 {
		return fmt.Sprintf("%s: %s (attempts=%d)", e.Code, e.Message, e.Attempts)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidInput returns true if the error is an invalid-input error.
// Uses errors.As to handle wrapped errors.
func IsInvalidInput(err error) bool {
	var se *SolveError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidInput
	}
	return false
}

// IsExhausted returns true if the error is a sampler exhaustion error.
// Uses errors.As to handle wrapped errors.
func IsExhausted(err error) bool {
	var se *SolveError
	if errors.As(err, &se) {
		return se.Code == ErrCodeExhausted
	}
	return false
}

// IsInfeasible returns true if the error is an infeasibility proof.
// Uses errors.As to handle wrapped errors.
func IsInfeasible(err error) bool {
	var se *SolveError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInfeasible
	}
	return false
}

// IsInvariantViolation returns true if the error is a failed verification.
// Uses errors.As to handle wrapped errors.
func IsInvariantViolation(err error) bool {
	var se *SolveError
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvariantViolation
	}
	return false
}

// NewInvalidInputError creates a SolveError for malformed input.
func NewInvalidInputError(msg string) *SolveError {
	return &SolveError{Code: ErrCodeInvalidInput, Message: msg}
}

// NewInvalidInputErrorf creates a SolveError for malformed input with a
// formatted message.
func NewInvalidInputErrorf(format string, args ...any) *SolveError {
	return &SolveError{Code: ErrCodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewExhaustedError creates a SolveError for a spent attempt budget.
func NewExhaustedError(attempts int) *SolveError {
	return &SolveError{
		Code:     ErrCodeExhausted,
		Message:  "no valid permutation found within attempt budget",
		Attempts: attempts,
	}
}

// NewInfeasibleError creates a SolveError for a proven-impossible draw.
func NewInfeasibleError(unmatchable []string) *SolveError {
	return &SolveError{
		Code:        ErrCodeInfeasible,
		Message:     "no valid assignment exists under the exclusions",
		Unmatchable: unmatchable,
	}
}

// NewInvariantViolationError creates a SolveError for a failed verification.
func NewInvariantViolationError(msg string) *SolveError {
	return &SolveError{Code: ErrCodeInvariantViolation, Message: msg}
}

// NewInvariantViolationErrorf creates a SolveError for a failed verification
// with a formatted message.
func NewInvariantViolationErrorf(format string, args ...any) *SolveError {
	return &SolveError{Code: ErrCodeInvariantViolation, Message: fmt.Sprintf(format, args...)}
}

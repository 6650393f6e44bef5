package roster

import "fmt"

// Validation error codes (E100-E199)
const (
	// ErrRosterSchema indicates the document does not match the roster schema.
	ErrRosterSchema = "E100"

	// ErrTooFewParticipants indicates fewer than two participants.
	ErrTooFewParticipants = "E101"

	// ErrEmptyName indicates a participant with an empty name.
	ErrEmptyName = "E102"

	// ErrDuplicateName indicates two participants sharing a canonical name.
	ErrDuplicateName = "E103"

	// ErrUnknownName indicates an exclusion referencing someone not in the
	// roster.
	ErrUnknownName = "E104"

	// ErrBudgetRange indicates a negative or inverted budget range.
	ErrBudgetRange = "E105"
)

// ValidationError represents one semantic problem in a roster.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a parsed roster semantically and returns all findings
// (does not fail-fast). The engine re-enforces the constraints it owns,
// duplicate names and unknown exclusion references, so skipping Validate
// can never produce a bad draw, only worse reporting.
func Validate(r *Roster) []ValidationError {
	var errs []ValidationError

	if len(r.Participants) < 2 {
		errs = append(errs, ValidationError{
			Field:   "participants",
			Message: fmt.Sprintf("a draw needs at least two participants, roster has %d", len(r.Participants)),
			Code:    ErrTooFewParticipants,
		})
	}

	known := make(map[string]bool, len(r.Participants))
	for i, p := range r.Participants {
		if p.Name == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("participants[%d].name", i),
				Message: "participant name is empty",
				Code:    ErrEmptyName,
			})
			continue
		}
		if known[p.Name] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("participants[%d].name", i),
				Message: fmt.Sprintf("duplicate participant %q", p.Name),
				Code:    ErrDuplicateName,
			})
		}
		known[p.Name] = true
	}

	for i, p := range r.Participants {
		for j, name := range p.CannotGiveTo {
			if !known[name] {
				errs = append(errs, unknownName(fmt.Sprintf("participants[%d].cannot_give_to[%d]", i, j), name))
			}
		}
		for j, name := range p.CannotReceiveFrom {
			if !known[name] {
				errs = append(errs, unknownName(fmt.Sprintf("participants[%d].cannot_receive_from[%d]", i, j), name))
			}
		}
	}

	for i, rule := range r.Rules {
		if !known[rule.Giver] {
			errs = append(errs, unknownName(fmt.Sprintf("exclusions[%d]", i), rule.Giver))
		}
		if !known[rule.Recipient] {
			errs = append(errs, unknownName(fmt.Sprintf("exclusions[%d]", i), rule.Recipient))
		}
	}

	if b := r.Exchange.Budget; b != nil {
		if b.Min.IsNegative() || b.Max.IsNegative() {
			errs = append(errs, ValidationError{
				Field:   "exchange.budget",
				Message: "budget amounts must not be negative",
				Code:    ErrBudgetRange,
			})
		} else if b.Min.GreaterThan(b.Max) {
			errs = append(errs, ValidationError{
				Field:   "exchange.budget",
				Message: fmt.Sprintf("budget min %s exceeds max %s", b.Min, b.Max),
				Code:    ErrBudgetRange,
			})
		}
	}

	return errs
}

func unknownName(field, name string) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("unknown participant %q", name),
		Code:    ErrUnknownName,
	}
}

package roster

import (
	"github.com/shopspring/decimal"

	"github.com/roach88/kringle/internal/engine"
)

// Participant is one person in the exchange. Name is the canonical identity;
// the remaining fields are letter content the engine never looks at.
type Participant struct {
	Name      string
	Contact   string
	Address   string
	Interests string

	// CannotGiveTo lists people this participant must not draw.
	CannotGiveTo []string

	// CannotReceiveFrom lists people who must not draw this participant.
	CannotReceiveFrom []string
}

// Rule is an event-level exclusion declaration. Mutual rules forbid both
// directions between Giver and Recipient.
type Rule struct {
	Giver     string
	Recipient string
	Mutual    bool
}

// Budget is the suggested gift price range.
type Budget struct {
	Min      decimal.Decimal
	Max      decimal.Decimal
	Currency string
}

// Exchange holds event metadata rendered into the letters. All fields are
// optional; CSV rosters carry none of them.
type Exchange struct {
	Name    string
	Budget  *Budget
	DueDate string
	Message string
}

// Roster is a fully parsed input file: canonical names throughout, budget
// amounts parsed, exclusion declarations preserved with their direction.
type Roster struct {
	Exchange     Exchange
	Participants []Participant
	Rules        []Rule
}

// Names returns the canonical participant names in roster order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.Participants))
	for i, p := range r.Participants {
		names[i] = p.Name
	}
	return names
}

// ByName returns the participant with the given canonical name.
func (r *Roster) ByName(name string) (*Participant, bool) {
	for i := range r.Participants {
		if r.Participants[i].Name == name {
			return &r.Participants[i], true
		}
	}
	return nil, false
}

// Pool builds the engine participant pool. Duplicate names surface here as
// an invalid-input error.
func (r *Roster) Pool() (*engine.Pool, error) {
	return engine.NewPool(r.Names())
}

// ExclusionSet collects every declared rule, per-participant and
// event-level, into an engine exclusion set.
//
// Directions: a participant's cannot_give_to entries forbid them as giver,
// their cannot_receive_from entries forbid the named person as their giver,
// and event-level rules are taken as written.
func (r *Roster) ExclusionSet() *engine.ExclusionSet {
	ex := engine.NewExclusionSet()
	for _, p := range r.Participants {
		for _, name := range p.CannotGiveTo {
			ex.Forbid(p.Name, name)
		}
		for _, name := range p.CannotReceiveFrom {
			ex.Forbid(name, p.Name)
		}
	}
	for _, rule := range r.Rules {
		if rule.Mutual {
			ex.ForbidMutual(rule.Giver, rule.Recipient)
		} else {
			ex.Forbid(rule.Giver, rule.Recipient)
		}
	}
	return ex
}

package roster

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// rosterYAML is the wire form of a YAML roster file.
type rosterYAML struct {
	Exchange     exchangeYAML      `yaml:"exchange,omitempty"`
	Participants []participantYAML `yaml:"participants"`
	Exclusions   []exclusionYAML   `yaml:"exclusions,omitempty"`
}

type exchangeYAML struct {
	Name    string      `yaml:"name,omitempty"`
	Budget  *budgetYAML `yaml:"budget,omitempty"`
	DueDate string      `yaml:"due_date,omitempty"`
	Message string      `yaml:"message,omitempty"`
}

// budgetYAML parses amounts through decimal so "20", 20 and "19.99" all
// land in the same exact representation.
type budgetYAML struct {
	Min      amountYAML `yaml:"min"`
	Max      amountYAML `yaml:"max"`
	Currency string     `yaml:"currency,omitempty"`
}

// amountYAML accepts a bare number or a numeric string.
type amountYAML struct {
	value decimal.Decimal
}

func (a *amountYAML) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: budget amount must be a number or numeric string", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: budget amount %q: %w", node.Line, node.Value, err)
	}
	a.value = d
	return nil
}

type participantYAML struct {
	Name              string   `yaml:"name"`
	Contact           string   `yaml:"contact,omitempty"`
	Address           string   `yaml:"address,omitempty"`
	Interests         string   `yaml:"interests,omitempty"`
	CannotGiveTo      []string `yaml:"cannot_give_to,omitempty"`
	CannotReceiveFrom []string `yaml:"cannot_receive_from,omitempty"`
}

// exclusionYAML is either a mutual pair (between) or a directional pair
// (giver/recipient), never both.
type exclusionYAML struct {
	Between   []string `yaml:"between,omitempty"`
	Giver     string   `yaml:"giver,omitempty"`
	Recipient string   `yaml:"recipient,omitempty"`
}

// ParseYAML parses a YAML roster. Unknown fields are rejected, so a typo
// like "exlusions:" fails loudly instead of silently dropping rules.
func ParseYAML(data []byte) (*Roster, error) {
	var wire rosterYAML
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&wire); err != nil {
		return nil, fmt.Errorf("parsing roster YAML: %w", err)
	}

	r := &Roster{
		Exchange: Exchange{
			Name:    CanonicalName(wire.Exchange.Name),
			DueDate: wire.Exchange.DueDate,
			Message: wire.Exchange.Message,
		},
	}

	if wire.Exchange.Budget != nil {
		r.Exchange.Budget = &Budget{
			Min:      wire.Exchange.Budget.Min.value,
			Max:      wire.Exchange.Budget.Max.value,
			Currency: wire.Exchange.Budget.Currency,
		}
	}

	for _, p := range wire.Participants {
		r.Participants = append(r.Participants, Participant{
			Name:              CanonicalName(p.Name),
			Contact:           p.Contact,
			Address:           p.Address,
			Interests:         p.Interests,
			CannotGiveTo:      canonicalNames(p.CannotGiveTo),
			CannotReceiveFrom: canonicalNames(p.CannotReceiveFrom),
		})
	}

	for i, e := range wire.Exclusions {
		rule, err := parseExclusion(i, e)
		if err != nil {
			return nil, err
		}
		r.Rules = append(r.Rules, rule)
	}

	return r, nil
}

func parseExclusion(i int, e exclusionYAML) (Rule, error) {
	hasBetween := len(e.Between) > 0
	hasPair := e.Giver != "" || e.Recipient != ""

	switch {
	case hasBetween && hasPair:
		return Rule{}, fmt.Errorf("exclusions[%d]: use either between or giver/recipient, not both", i)
	case hasBetween:
		if len(e.Between) != 2 {
			return Rule{}, fmt.Errorf("exclusions[%d]: between needs exactly two names, got %d", i, len(e.Between))
		}
		return Rule{
			Giver:     CanonicalName(e.Between[0]),
			Recipient: CanonicalName(e.Between[1]),
			Mutual:    true,
		}, nil
	case e.Giver != "" && e.Recipient != "":
		return Rule{
			Giver:     CanonicalName(e.Giver),
			Recipient: CanonicalName(e.Recipient),
		}, nil
	default:
		return Rule{}, fmt.Errorf("exclusions[%d]: needs either between or both giver and recipient", i)
	}
}

func canonicalNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = CanonicalName(n)
	}
	return out
}

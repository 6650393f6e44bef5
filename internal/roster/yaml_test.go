package roster

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullRosterYAML = `
exchange:
  name: Guild Exchange 2026
  budget:
    min: "20"
    max: "35.50"
    currency: USD
  due_date: December 20th
  message: Ship early, customs is slow this year.
participants:
  - name: Alice
    contact: "alice#1234"
    address: |-
      1234 Candy Cane Lane
      North Pole
    interests: programming, cats
    cannot_give_to: [Bob]
  - name: Bob
    contact: "bob#5678"
    cannot_receive_from: [Carol]
  - name: Carol
exclusions:
  - between: [Alice, Carol]
  - giver: Bob
    recipient: Alice
`

func TestParseYAML(t *testing.T) {
	r, err := ParseYAML([]byte(fullRosterYAML))
	require.NoError(t, err)

	assert.Equal(t, "Guild Exchange 2026", r.Exchange.Name)
	assert.Equal(t, "December 20th", r.Exchange.DueDate)
	require.NotNil(t, r.Exchange.Budget)
	assert.True(t, r.Exchange.Budget.Min.Equal(decimal.NewFromInt(20)), "min is 20")
	assert.True(t, r.Exchange.Budget.Max.Equal(decimal.RequireFromString("35.50")), "max is 35.50")
	assert.Equal(t, "USD", r.Exchange.Budget.Currency)

	require.Len(t, r.Participants, 3)
	alice := r.Participants[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "alice#1234", alice.Contact)
	assert.Equal(t, "1234 Candy Cane Lane\nNorth Pole", alice.Address)
	assert.Equal(t, "programming, cats", alice.Interests)
	assert.Equal(t, []string{"Bob"}, alice.CannotGiveTo)
	assert.Equal(t, []string{"Carol"}, r.Participants[1].CannotReceiveFrom)

	require.Len(t, r.Rules, 2)
	assert.Equal(t, Rule{Giver: "Alice", Recipient: "Carol", Mutual: true}, r.Rules[0])
	assert.Equal(t, Rule{Giver: "Bob", Recipient: "Alice", Mutual: false}, r.Rules[1])
}

func TestParseYAML_CanonicalizesNames(t *testing.T) {
	// Scenario: names arrive with stray whitespace. Parsing folds them
	// so every later lookup sees one spelling.
	data := `
participants:
  - name: "  Alice   Smith "
    cannot_give_to: ["Bob  Jones"]
  - name: "Bob Jones"
exclusions:
  - giver: " Bob Jones"
    recipient: "Alice  Smith"
`
	r, err := ParseYAML([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", r.Participants[0].Name)
	assert.Equal(t, []string{"Bob Jones"}, r.Participants[0].CannotGiveTo)
	assert.Equal(t, Rule{Giver: "Bob Jones", Recipient: "Alice Smith"}, r.Rules[0])
}

func TestParseYAML_RejectsUnknownFields(t *testing.T) {
	data := `
participants:
  - name: Alice
    exlusions: [Bob]
`
	_, err := ParseYAML([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exlusions")
}

func TestParseYAML_BudgetNumbersAndStrings(t *testing.T) {
	// Scenario: YAML authors write amounts as bare numbers or quoted
	// strings. Both land in the same decimal values.
	data := `
exchange:
  budget:
    min: 15
    max: "19.99"
participants:
  - name: Alice
  - name: Bob
`
	r, err := ParseYAML([]byte(data))
	require.NoError(t, err)
	require.NotNil(t, r.Exchange.Budget)
	assert.True(t, r.Exchange.Budget.Min.Equal(decimal.NewFromInt(15)))
	assert.True(t, r.Exchange.Budget.Max.Equal(decimal.RequireFromString("19.99")))
}

func TestParseYAML_BadBudgetAmount(t *testing.T) {
	data := `
exchange:
  budget:
    min: "twenty"
    max: "30"
participants:
  - name: Alice
  - name: Bob
`
	_, err := ParseYAML([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget")
}

func TestParseYAML_ExclusionShapes(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "both forms at once",
			yaml: `
participants:
  - name: Alice
  - name: Bob
exclusions:
  - between: [Alice, Bob]
    giver: Alice
    recipient: Bob
`,
			wantErr: "either",
		},
		{
			name: "neither form",
			yaml: `
participants:
  - name: Alice
  - name: Bob
exclusions:
  - {}
`,
			wantErr: "either",
		},
		{
			name: "between with three names",
			yaml: `
participants:
  - name: Alice
  - name: Bob
exclusions:
  - between: [Alice, Bob, Carol]
`,
			wantErr: "exactly two",
		},
		{
			name: "giver without recipient",
			yaml: `
participants:
  - name: Alice
  - name: Bob
exclusions:
  - giver: Alice
`,
			wantErr: "either",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseYAML_NotYAML(t *testing.T) {
	_, err := ParseYAML([]byte("participants: [\n"))
	require.Error(t, err)
}

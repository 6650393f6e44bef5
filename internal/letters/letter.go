// Package letters renders and writes the per-giver letter files.
//
// A letter names the giver's recipient, so it is the only output that may
// reveal an assignment. The layout buries the reveal below a disclaimer and
// a run of padding lines; anything that previews the first lines of a file
// (chat embeds, directory listings) shows only the padding.
package letters

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/roach88/kringle/internal/roster"
)

//go:embed letter.tmpl
var letterTmpl string

var tmpl = template.Must(template.New("letter").Parse(letterTmpl))

// defaultClosing signs off letters for rosters without a custom message.
const defaultClosing = "Remember to check the Google Form for information about suggested price range and gift 'due date'! Happy gifting!"

type letterData struct {
	RecipientName    string
	RecipientContact string
	Address          string
	Interests        string
	BudgetLine       string
	DueDateLine      string
	Closing          string
}

// Render produces the letter telling one giver who they drew. The letter
// carries the recipient's details and the exchange metadata; the giver
// appears only in the file name, never in the text.
func Render(r *roster.Roster, recipientName string) (string, error) {
	p, ok := r.ByName(recipientName)
	if !ok {
		return "", fmt.Errorf("recipient %q is not in the roster", recipientName)
	}

	data := letterData{
		RecipientName:    p.Name,
		RecipientContact: p.Contact,
		Address:          p.Address,
		Interests:        p.Interests,
		Closing:          defaultClosing,
	}
	if b := r.Exchange.Budget; b != nil {
		data.BudgetLine = budgetLine(b)
	}
	if r.Exchange.DueDate != "" {
		data.DueDateLine = fmt.Sprintf("Gifts are due by %s.", r.Exchange.DueDate)
	}
	if r.Exchange.Message != "" {
		data.Closing = r.Exchange.Message
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering letter for %q: %w", recipientName, err)
	}
	return sb.String(), nil
}

func budgetLine(b *roster.Budget) string {
	amount := fmt.Sprintf("%s-%s", b.Min.StringFixed(2), b.Max.StringFixed(2))
	if b.Min.Equal(b.Max) {
		amount = b.Min.StringFixed(2)
	}
	if b.Currency != "" {
		amount += " " + b.Currency
	}
	return "Suggested budget: " + amount
}

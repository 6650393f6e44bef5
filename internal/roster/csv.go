package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// csvColumns maps recognized header names to roster fields. Plain headers
// and the sign-up form's question-style headers are both accepted; anything
// else (timestamps, free-text questions) is ignored.
var csvColumns = map[string]string{
	"name":                 "name",
	"who are you?":         "name",
	"contact":              "contact",
	"your discord handle":  "contact",
	"address":              "address",
	"your mailing info":    "address",
	"interests":            "interests",
	"cannot_give_to":       "cannot_give_to",
	"recipient exclusions": "cannot_give_to",
	"cannot_receive_from":  "cannot_receive_from",
	"sender exclusions":    "cannot_receive_from",
}

// ParseCSV parses a CSV roster export: one header row, one participant per
// row. Exclusion cells hold comma-separated names. CSV rosters carry no
// exchange metadata; the letters fall back to their generic closing.
//
// The form's "Sender Exclusions" column lists people who must not give to
// the submitter, and "Recipient Exclusions" lists people the submitter must
// not give to.
func ParseCSV(data []byte) (*Roster, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing roster CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsing roster CSV: no header row")
	}

	fields := make(map[string]int)
	for i, header := range records[0] {
		if field, ok := csvColumns[strings.ToLower(strings.TrimSpace(header))]; ok {
			fields[field] = i
		}
	}
	if _, ok := fields["name"]; !ok {
		return nil, fmt.Errorf("parsing roster CSV: no name column in header")
	}

	cell := func(row []string, field string) string {
		i, ok := fields[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	r := &Roster{}
	for n, row := range records[1:] {
		name := CanonicalName(cell(row, "name"))
		if name == "" {
			return nil, fmt.Errorf("parsing roster CSV: row %d has no name", n+2)
		}
		r.Participants = append(r.Participants, Participant{
			Name:              name,
			Contact:           cell(row, "contact"),
			Address:           cell(row, "address"),
			Interests:         cell(row, "interests"),
			CannotGiveTo:      splitNames(cell(row, "cannot_give_to")),
			CannotReceiveFrom: splitNames(cell(row, "cannot_receive_from")),
		})
	}
	return r, nil
}

// splitNames splits a comma-separated cell into canonical names, dropping
// empties.
func splitNames(cell string) []string {
	if cell == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(cell, ",") {
		if name := CanonicalName(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

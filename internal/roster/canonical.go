package roster

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CanonicalName returns the identity form of a participant name: Unicode NFC
// normalized with runs of whitespace collapsed to single spaces and the ends
// trimmed. Case is preserved, so "Alice" and "alice" stay distinct people.
//
// Every name entering the system passes through here, whichever file format
// or exclusion rule it came from; two spellings that canonicalize equal are
// the same participant.
func CanonicalName(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

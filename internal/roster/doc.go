// Package roster reads and validates the participant rosters a draw runs on.
//
// A roster names the participants (with the contact, address, and interest
// details that end up in the letters), optional exchange metadata (budget,
// due date, closing message), and the exclusion rules. Two input formats are
// supported: a YAML roster file, validated against an embedded CUE schema,
// and a CSV export in the shape produced by sign-up form spreadsheets.
//
// Participant names are the identity keys for the whole system. They are
// canonicalized on the way in (Unicode NFC, collapsed whitespace) so that a
// name written in a decomposed form or with stray spaces still refers to the
// same person everywhere: exclusion rules, letters, and stored history.
//
// Loading is structural and fails fast; Validate collects every semantic
// finding for reporting. Constraints the engine owns (duplicate names,
// exclusions naming strangers) are re-checked there too, so a draw stays
// safe even when callers skip Validate.
package roster

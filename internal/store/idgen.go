package store

import "github.com/google/uuid"

// IDGenerator mints draw IDs.
//
// Implemented by UUIDv7Generator for production and by test generators
// that return predetermined IDs.
type IDGenerator interface {
	NewID() string
}

// UUIDv7Generator generates time-sortable UUIDv7 draw IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, so sorting IDs
// lexically follows creation order. This keeps history listings stable
// even for draws recorded within the same second.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// NewID creates a new UUIDv7 and returns it as a hyphenated string.
//
// Format: "0191e6c0-5b3d-7cfa-92ee-7d4f1a2b3c4d" (36 characters)
//
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

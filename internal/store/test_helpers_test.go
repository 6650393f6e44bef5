package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/kringle/internal/engine"
)

// createTestStore creates a store backed by a fresh on-disk database.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDraw creates a draw record with three pairs.
func createTestDraw(id string, drawnAt time.Time) Draw {
	return Draw{
		ID:         id,
		DrawnAt:    drawnAt,
		RosterName: "guild-exchange",
		Strategy:   "flow-network",
		Pairs: []engine.Pair{
			{Giver: "Alice", Recipient: "Bob"},
			{Giver: "Bob", Recipient: "Carol"},
			{Giver: "Carol", Recipient: "Alice"},
		},
	}
}

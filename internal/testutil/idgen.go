package testutil

import (
	"fmt"
	"sync"
)

// SequenceIDs hands out draw IDs in a fixed sequence.
//
// Unlike the store's UUID generator, the IDs are stable across runs, so
// history output and stored rows can be asserted exactly.
//
// Thread-safety: NewID is safe for concurrent use via internal mutex.
type SequenceIDs struct {
	mu   sync.Mutex
	next int
}

// NewSequenceIDs creates a generator starting at draw-00000001.
func NewSequenceIDs() *SequenceIDs {
	return &SequenceIDs{}
}

// NewID returns the next ID in the sequence.
//
// Implements store.IDGenerator.
func (g *SequenceIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("draw-%08d", g.next)
}

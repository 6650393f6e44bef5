package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignment_Recipient(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	a := newAssignment(p, []int{1, 2, 0})

	r, ok := a.Recipient("Alice")
	require.True(t, ok)
	assert.Equal(t, "Bob", r)

	_, ok = a.Recipient("Mallory")
	assert.False(t, ok)
}

func TestAssignment_Pairs_PoolOrder(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	a := newAssignment(p, []int{2, 0, 1})

	assert.Equal(t, []Pair{
		{Giver: "Alice", Recipient: "Carol"},
		{Giver: "Bob", Recipient: "Alice"},
		{Giver: "Carol", Recipient: "Bob"},
	}, a.Pairs())
	assert.Equal(t, 3, a.Len())
}

func TestAssignment_Immutable(t *testing.T) {
	p := mustPool(t, "Alice", "Bob")
	to := []int{1, 0}
	a := newAssignment(p, to)

	to[0] = 0
	r, _ := a.Recipient("Alice")
	assert.Equal(t, "Bob", r, "mutating the source slice must not affect the assignment")

	pairs := a.Pairs()
	pairs[0].Recipient = "Mallory"
	r, _ = a.Recipient("Alice")
	assert.Equal(t, "Bob", r, "mutating returned pairs must not affect the assignment")
}

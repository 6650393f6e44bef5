package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExclusionSet_Forbid_Directional(t *testing.T) {
	s := NewExclusionSet()
	s.Forbid("Alice", "Bob")

	assert.True(t, s.Forbidden("Alice", "Bob"))
	assert.False(t, s.Forbidden("Bob", "Alice"), "Forbid is directional")
}

func TestExclusionSet_ForbidMutual(t *testing.T) {
	s := NewExclusionSet()
	s.ForbidMutual("Alice", "Bob")

	assert.True(t, s.Forbidden("Alice", "Bob"))
	assert.True(t, s.Forbidden("Bob", "Alice"))
	assert.Equal(t, 2, s.Len())
}

func TestExclusionSet_Forbidden_SelfImplicit(t *testing.T) {
	s := NewExclusionSet()

	assert.True(t, s.Forbidden("Alice", "Alice"), "self-pairs are forbidden without declaration")
	assert.Equal(t, 0, s.Len(), "implicit self-exclusion is not a declared pair")
}

func TestExclusionSet_Forbid_IdempotentPairs(t *testing.T) {
	s := NewExclusionSet()
	s.Forbid("Alice", "Bob")
	s.Forbid("Alice", "Bob")
	s.Forbid("Carol", "Dan")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Exclusion{
		{Giver: "Alice", Recipient: "Bob"},
		{Giver: "Carol", Recipient: "Dan"},
	}, s.Pairs(), "pairs keep declaration order without duplicates")
}

func TestExclusionSet_Pairs_ReturnsCopy(t *testing.T) {
	s := NewExclusionSet()
	s.Forbid("Alice", "Bob")

	pairs := s.Pairs()
	pairs[0] = Exclusion{Giver: "X", Recipient: "Y"}

	assert.Equal(t, []Exclusion{{Giver: "Alice", Recipient: "Bob"}}, s.Pairs())
}

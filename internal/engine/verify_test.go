package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_ValidAssignment(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	ex := NewExclusionSet()

	// Alice->Bob, Bob->Carol, Carol->Alice.
	a := newAssignment(p, []int{1, 2, 0})

	require.NoError(t, Verify(p, ex, a))
}

func TestVerify_Idempotent(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	ex := NewExclusionSet()
	a := newAssignment(p, []int{1, 2, 0})

	require.NoError(t, Verify(p, ex, a))
	require.NoError(t, Verify(p, ex, a), "re-verifying the same assignment gives the same result")

	bad := newAssignment(p, []int{0, 2, 1})
	err1 := Verify(p, ex, bad)
	err2 := Verify(p, ex, bad)
	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestVerify_SelfPair(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	a := newAssignment(p, []int{0, 2, 1})

	err := Verify(p, NewExclusionSet(), a)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "themselves")
}

func TestVerify_DuplicateRecipient(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	a := newAssignment(p, []int{1, 2, 1})

	err := Verify(p, NewExclusionSet(), a)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), `"Bob"`)
}

func TestVerify_ExcludedPair(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	ex := NewExclusionSet()
	ex.Forbid("Alice", "Bob")

	a := newAssignment(p, []int{1, 2, 0})

	err := Verify(p, ex, a)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "excluded pair")
}

func TestVerify_WrongPool(t *testing.T) {
	p1 := mustPool(t, "Alice", "Bob")
	p2 := mustPool(t, "Carol", "Dan")
	a := newAssignment(p2, []int{1, 0})

	err := Verify(p1, NewExclusionSet(), a)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
}

func TestVerify_LengthMismatch(t *testing.T) {
	p := mustPool(t, "Alice", "Bob", "Carol")
	short := mustPool(t, "Alice", "Bob")
	a := newAssignment(short, []int{1, 0})

	err := Verify(p, NewExclusionSet(), a)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "covers 2 participants, pool has 3")
}

func TestVerify_NilAssignment(t *testing.T) {
	p := mustPool(t, "Alice", "Bob")

	err := Verify(p, NewExclusionSet(), nil)
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	p, err := NewPool([]string{"Alice", "Bob", "Carol"})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "Alice", p.ID(0))
	assert.Equal(t, "Carol", p.ID(2))

	i, ok := p.Index("Bob")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = p.Index("Mallory")
	assert.False(t, ok)
	assert.True(t, p.Contains("Alice"))
	assert.False(t, p.Contains("Mallory"))
}

func TestNewPool_Empty(t *testing.T) {
	_, err := NewPool(nil)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err), "empty pool should be invalid input")
}

func TestNewPool_Duplicate(t *testing.T) {
	_, err := NewPool([]string{"Alice", "Bob", "Alice"})
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err), "duplicate participant should be invalid input")
	assert.Contains(t, err.Error(), "Alice")
}

func TestPool_IDs_ReturnsCopy(t *testing.T) {
	p, err := NewPool([]string{"Alice", "Bob"})
	require.NoError(t, err)

	ids := p.IDs()
	ids[0] = "Mallory"

	assert.Equal(t, "Alice", p.ID(0), "mutating the returned slice must not affect the pool")
}

func TestNewPool_CopiesInput(t *testing.T) {
	in := []string{"Alice", "Bob"}
	p, err := NewPool(in)
	require.NoError(t, err)

	in[0] = "Mallory"
	assert.Equal(t, "Alice", p.ID(0), "mutating the input slice must not affect the pool")
}

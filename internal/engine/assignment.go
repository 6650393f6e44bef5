package engine

// Pair is one (giver, recipient) edge of an assignment.
type Pair struct {
	Giver     string `json:"giver"`
	Recipient string `json:"recipient"`
}

// Assignment is a total one-to-one mapping from giver to recipient over a
// pool. Only solvers construct assignments, and Draw verifies every one
// before it reaches a caller; an Assignment in hand is a validated result.
type Assignment struct {
	pool *Pool
	to   []int
}

// newAssignment wraps a solver result. to[giver] is the recipient index;
// the slice is copied.
func newAssignment(pool *Pool, to []int) *Assignment {
	c := make([]int, len(to))
	copy(c, to)
	return &Assignment{pool: pool, to: c}
}

// Recipient returns the recipient assigned to giver, and whether giver is
// part of the assignment.
func (a *Assignment) Recipient(giver string) (string, bool) {
	i, ok := a.pool.Index(giver)
	if !ok || i >= len(a.to) {
		return "", false
	}
	return a.pool.ID(a.to[i]), true
}

// Pairs returns all (giver, recipient) pairs in pool order. The slice is a
// copy.
func (a *Assignment) Pairs() []Pair {
	out := make([]Pair, len(a.to))
	for i, r := range a.to {
		out[i] = Pair{Giver: a.pool.ID(i), Recipient: a.pool.ID(r)}
	}
	return out
}

// Len returns the number of pairs.
func (a *Assignment) Len() int {
	return len(a.to)
}

package engine

// Pool is the immutable set of participants in a draw.
//
// Each participant is identified by a canonical string (callers normalize
// before constructing the pool). Identifiers map to dense indexes in
// insertion order; the solvers and the candidate graph work in index space
// and translate back to identifiers only at the boundary.
type Pool struct {
	ids   []string
	index map[string]int
}

// NewPool builds a pool from the given identifiers.
//
// The identifier list must be non-empty and free of duplicates; violations
// return an INVALID_INPUT error. The slice is copied.
func NewPool(ids []string) (*Pool, error) {
	if len(ids) == 0 {
		return nil, NewInvalidInputError("participant pool is empty")
	}
	p := &Pool{
		ids:   make([]string, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if _, dup := p.index[id]; dup {
			return nil, NewInvalidInputErrorf("duplicate participant %q", id)
		}
		p.ids[i] = id
		p.index[id] = i
	}
	return p, nil
}

// Len returns the number of participants.
func (p *Pool) Len() int {
	return len(p.ids)
}

// ID returns the identifier at dense index i.
func (p *Pool) ID(i int) string {
	return p.ids[i]
}

// Index returns the dense index of id, and whether id is in the pool.
func (p *Pool) Index(id string) (int, bool) {
	i, ok := p.index[id]
	return i, ok
}

// Contains reports whether id is in the pool.
func (p *Pool) Contains(id string) bool {
	_, ok := p.index[id]
	return ok
}

// IDs returns the identifiers in insertion order. The slice is a copy.
func (p *Pool) IDs() []string {
	out := make([]string, len(p.ids))
	copy(out, p.ids)
	return out
}

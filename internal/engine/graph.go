package engine

// Graph is the bipartite candidate graph for a draw: givers on one side,
// recipients (the same participants) on the other. An edge giver->recipient
// exists iff the two differ and the pair is not excluded.
//
// The graph is derived once per draw and never mutated afterward. Solvers
// read it concurrently with nothing, so no locking exists or is needed.
type Graph struct {
	pool       *Pool
	candidates [][]int
	allowed    [][]bool
	indegree   []int
	edges      int
}

// BuildGraph derives the candidate graph for pool under excl.
//
// Every declared exclusion must reference participants in the pool; an
// unknown name is an INVALID_INPUT error. Unknown names are never dropped
// silently: a misspelled exclusion would otherwise weaken the constraints
// without anyone noticing.
//
// A giver with zero candidates does not fail the build. The solvers report
// such cases with full diagnostics; IsolatedGivers and IsolatedRecipients
// expose them for callers that want to warn early.
func BuildGraph(pool *Pool, excl *ExclusionSet) (*Graph, error) {
	for _, e := range excl.Pairs() {
		if !pool.Contains(e.Giver) {
			return nil, NewInvalidInputErrorf("exclusion references unknown participant %q", e.Giver)
		}
		if !pool.Contains(e.Recipient) {
			return nil, NewInvalidInputErrorf("exclusion references unknown participant %q", e.Recipient)
		}
	}

	n := pool.Len()
	g := &Graph{
		pool:       pool,
		candidates: make([][]int, n),
		allowed:    make([][]bool, n),
		indegree:   make([]int, n),
	}
	for giver := 0; giver < n; giver++ {
		g.allowed[giver] = make([]bool, n)
		for recipient := 0; recipient < n; recipient++ {
			if excl.Forbidden(pool.ID(giver), pool.ID(recipient)) {
				continue
			}
			g.allowed[giver][recipient] = true
			g.candidates[giver] = append(g.candidates[giver], recipient)
			g.indegree[recipient]++
			g.edges++
		}
	}
	return g, nil
}

// Pool returns the pool the graph was built from.
func (g *Graph) Pool() *Pool {
	return g.pool
}

// Candidates returns the permitted recipient indexes for giver, in ascending
// order. The slice is shared; callers must not mutate it.
func (g *Graph) Candidates(giver int) []int {
	return g.candidates[giver]
}

// Allowed reports whether the edge giver->recipient exists.
func (g *Graph) Allowed(giver, recipient int) bool {
	return g.allowed[giver][recipient]
}

// Edges returns the total number of edges.
func (g *Graph) Edges() int {
	return g.edges
}

// IsolatedGivers returns participants with no permitted recipient, in pool
// order. Any non-empty result makes the draw infeasible.
func (g *Graph) IsolatedGivers() []string {
	var out []string
	for i, c := range g.candidates {
		if len(c) == 0 {
			out = append(out, g.pool.ID(i))
		}
	}
	return out
}

// IsolatedRecipients returns participants no permitted giver can reach, in
// pool order. Any non-empty result makes the draw infeasible.
func (g *Graph) IsolatedRecipients() []string {
	var out []string
	for i, d := range g.indegree {
		if d == 0 {
			out = append(out, g.pool.ID(i))
		}
	}
	return out
}

package engine

// Matcher implements the flow-network strategy as direct augmenting-path
// bipartite matching (Kuhn's algorithm). A perfect matching on the candidate
// graph is exactly a valid assignment, so the matcher either returns one or
// proves none exists.
//
// Unlike Sampler, the matcher always terminates: O(n*(n+E)) worst case for
// n participants and E candidate edges. An explicit source/sink max-flow
// formulation computes the same matching with more bookkeeping; on a
// unit-capacity bipartite graph the augmenting paths are identical.
type Matcher struct {
	src RandSource
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithCandidateShuffle makes the matcher explore candidates in random order,
// so repeated draws over the same roster can differ. Termination and
// completeness are unaffected; only which valid assignment is found varies.
func WithCandidateShuffle(src RandSource) MatcherOption {
	return func(m *Matcher) {
		m.src = src
	}
}

// NewMatcher creates a Matcher. Without options it is fully deterministic.
func NewMatcher(opts ...MatcherOption) *Matcher {
	m := &Matcher{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Solve finds a perfect matching on g, or reports INFEASIBLE naming the
// participants that cannot be placed.
func (m *Matcher) Solve(g *Graph) (*Assignment, error) {
	n := g.pool.Len()

	cand := g.candidates
	if m.src != nil {
		cand = shuffledCandidates(m.src, g.candidates)
	}

	// matchTo[giver] and matchFrom[recipient] hold the current partial
	// matching; -1 marks unmatched.
	matchTo := make([]int, n)
	matchFrom := make([]int, n)
	for i := 0; i < n; i++ {
		matchTo[i] = -1
		matchFrom[i] = -1
	}

	visited := make([]bool, n)
	var augment func(giver int) bool
	augment = func(giver int) bool {
		for _, r := range cand[giver] {
			if visited[r] {
				continue
			}
			visited[r] = true
			if matchFrom[r] == -1 || augment(matchFrom[r]) {
				matchTo[giver] = r
				matchFrom[r] = giver
				return true
			}
		}
		return false
	}

	matched := 0
	for giver := 0; giver < n; giver++ {
		for i := range visited {
			visited[i] = false
		}
		if augment(giver) {
			matched++
		}
	}

	if matched < n {
		return nil, NewInfeasibleError(unmatchable(g.pool, matchTo, matchFrom))
	}
	return newAssignment(g.pool, matchTo), nil
}

// shuffledCandidates copies the candidate lists with each row in random
// order.
func shuffledCandidates(src RandSource, candidates [][]int) [][]int {
	out := make([][]int, len(candidates))
	for i, row := range candidates {
		c := make([]int, len(row))
		copy(c, row)
		shuffle(src, len(c), func(a, b int) { c[a], c[b] = c[b], c[a] })
		out[i] = c
	}
	return out
}

// unmatchable lists the participants a maximum matching left out: givers
// without a recipient and recipients without a giver. Each participant
// appears once, in pool order.
func unmatchable(pool *Pool, matchTo, matchFrom []int) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for i, r := range matchTo {
		if r == -1 {
			add(pool.ID(i))
		}
	}
	for i, giver := range matchFrom {
		if giver == -1 {
			add(pool.ID(i))
		}
	}
	return out
}

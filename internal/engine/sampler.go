package engine

import "log/slog"

// DefaultMaxAttempts is the default permutation budget for the Sampler.
// It keeps the strategy from spinning forever on hostile input; callers
// that hit it should switch to the matching strategy rather than raise it.
const DefaultMaxAttempts = 10000

// Sampler implements the permutation strategy: draw uniformly random
// permutations and accept the first in which every giver is permitted their
// assigned recipient.
//
// The strategy is probabilistic. With sparse exclusions it typically
// succeeds within a handful of attempts; with dense exclusions it may spend
// the whole budget without success, and with an unbounded budget it never
// terminates on infeasible input. It cannot tell unlucky from impossible.
// That distinction belongs to Matcher.
type Sampler struct {
	src         RandSource
	maxAttempts int
}

// SamplerOption configures a Sampler.
type SamplerOption func(*Sampler)

// WithMaxAttempts sets the permutation budget. Zero means unbounded, which
// drops the termination guarantee and is only for callers that already know
// the input is feasible.
func WithMaxAttempts(n int) SamplerOption {
	return func(s *Sampler) {
		s.maxAttempts = n
	}
}

// NewSampler creates a Sampler drawing randomness from src.
func NewSampler(src RandSource, opts ...SamplerOption) *Sampler {
	s := &Sampler{src: src, maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve draws permutations until one satisfies the graph or the budget runs
// out. Each rejected attempt is logged at debug level with the first
// violating pair; the log is observational only.
func (s *Sampler) Solve(g *Graph) (*Assignment, error) {
	n := g.pool.Len()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for attempt := 1; s.maxAttempts == 0 || attempt <= s.maxAttempts; attempt++ {
		shuffle(s.src, n, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		giver, recipient, found := invalidPair(g, perm)
		if !found {
			return newAssignment(g.pool, perm), nil
		}
		slog.Debug("permutation rejected",
			"attempt", attempt,
			"giver", g.pool.ID(giver),
			"recipient", g.pool.ID(recipient))
	}
	return nil, NewExhaustedError(s.maxAttempts)
}

// invalidPair scans perm for the first forbidden (giver, recipient) edge.
// found is false when the permutation is fully valid.
func invalidPair(g *Graph, perm []int) (giver, recipient int, found bool) {
	for i, r := range perm {
		if !g.allowed[i][r] {
			return i, r, true
		}
	}
	return 0, 0, false
}

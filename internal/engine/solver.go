package engine

import "fmt"

// Solver searches a candidate graph for a valid assignment. Implemented by
// Sampler (permutation strategy) and Matcher (flow-network strategy).
type Solver interface {
	Solve(g *Graph) (*Assignment, error)
}

// Strategy names a solver construction. It is the value of the CLI
// --strategy flag and is recorded with each draw.
type Strategy string

const (
	// StrategyPermutation draws random permutations until one fits.
	StrategyPermutation Strategy = "permutation"

	// StrategyFlowNetwork runs bipartite matching. The default: it always
	// terminates and distinguishes infeasible from unlucky.
	StrategyFlowNetwork Strategy = "flow-network"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyPermutation:
		return StrategyPermutation, nil
	case StrategyFlowNetwork:
		return StrategyFlowNetwork, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (valid: %s, %s)", s, StrategyPermutation, StrategyFlowNetwork)
	}
}

// Draw computes a verified assignment for pool under excl using solver.
//
// It derives the candidate graph, runs the solver, and verifies the result
// against the original inputs. Verification is unconditional: no assignment
// reaches a caller unchecked, whatever the solver did.
func Draw(pool *Pool, excl *ExclusionSet, solver Solver) (*Assignment, error) {
	g, err := BuildGraph(pool, excl)
	if err != nil {
		return nil, err
	}
	a, err := solver.Solve(g)
	if err != nil {
		return nil, err
	}
	if err := Verify(pool, excl, a); err != nil {
		return nil, err
	}
	return a, nil
}

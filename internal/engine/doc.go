// Package engine computes Secret Santa assignments.
//
// Given a pool of participants and a set of forbidden (giver, recipient)
// pairs, the engine produces an assignment in which every participant gives
// to exactly one other participant and receives from exactly one, or reports
// that no such assignment exists.
//
// The pipeline is Draw = BuildGraph -> Solver.Solve -> Verify:
//
//  1. BuildGraph derives the bipartite candidate graph. An edge giver->recipient
//     exists iff the two differ and the pair is not excluded. Exclusions naming
//     unknown participants are rejected here, before any solving.
//  2. A Solver searches the graph. Two strategies exist: Sampler draws random
//     permutations until one fits (cheap for sparse exclusions, bounded by an
//     attempt budget), and Matcher runs augmenting-path bipartite matching
//     (always terminates, and proves infeasibility conclusively).
//  3. Verify independently re-checks the result against the original pool and
//     exclusions. Draw runs it unconditionally; a verification failure is an
//     engine defect, never user error.
//
// The engine is synchronous and single-threaded. Its only non-determinism is
// the injected RandSource; it performs no I/O beyond debug logging.
package engine

package engine

// Verify re-checks an assignment against the original pool and exclusions,
// independently of whichever solver produced it.
//
// The checks, in order: every giver and recipient belongs to the pool, the
// assignment is total over the pool, no participant receives twice, no one
// gives to themselves, and no declared exclusion is violated. Any failure is
// an INVARIANT_VIOLATION: the solvers are supposed to make these states
// unreachable, so a rejection here is an engine defect, not user error.
//
// Verify is a pure function. Re-verifying the same assignment returns the
// same result.
func Verify(pool *Pool, excl *ExclusionSet, a *Assignment) error {
	if a == nil {
		return NewInvariantViolationError("assignment is nil")
	}
	if a.Len() != pool.Len() {
		return NewInvariantViolationErrorf("assignment covers %d participants, pool has %d", a.Len(), pool.Len())
	}

	received := make(map[string]string, a.Len())
	for _, p := range a.Pairs() {
		if !pool.Contains(p.Giver) {
			return NewInvariantViolationErrorf("giver %q is not in the pool", p.Giver)
		}
		if !pool.Contains(p.Recipient) {
			return NewInvariantViolationErrorf("recipient %q is not in the pool", p.Recipient)
		}
		if prev, ok := received[p.Recipient]; ok {
			return NewInvariantViolationErrorf("recipient %q assigned to both %q and %q", p.Recipient, prev, p.Giver)
		}
		received[p.Recipient] = p.Giver
		if p.Giver == p.Recipient {
			return NewInvariantViolationErrorf("participant %q assigned to themselves", p.Giver)
		}
		if excl.Forbidden(p.Giver, p.Recipient) {
			return NewInvariantViolationErrorf("excluded pair %q -> %q was assigned", p.Giver, p.Recipient)
		}
	}

	// Pairs()' givers are unique by construction, so pool membership plus
	// the length check above already force totality. Bijectivity follows
	// from the receive-once check.
	return nil
}

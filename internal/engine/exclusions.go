package engine

// Exclusion is one forbidden ordered (giver, recipient) pair.
type Exclusion struct {
	Giver     string
	Recipient string
}

// ExclusionSet is the set of declared forbidden pairs for a draw.
//
// Pairs are directional: Forbid("a", "b") prevents a from giving to b but
// says nothing about b giving to a. ForbidMutual declares both directions.
// Self-pairs are forbidden implicitly and need never be declared.
//
// The zero value is not usable; construct with NewExclusionSet.
type ExclusionSet struct {
	pairs map[Exclusion]struct{}
	order []Exclusion
}

// NewExclusionSet returns an empty exclusion set.
func NewExclusionSet() *ExclusionSet {
	return &ExclusionSet{pairs: make(map[Exclusion]struct{})}
}

// Forbid declares that giver may not give to recipient. Declaring the same
// pair twice is a no-op.
func (s *ExclusionSet) Forbid(giver, recipient string) {
	e := Exclusion{Giver: giver, Recipient: recipient}
	if _, ok := s.pairs[e]; ok {
		return
	}
	s.pairs[e] = struct{}{}
	s.order = append(s.order, e)
}

// ForbidMutual declares both directions between a and b.
func (s *ExclusionSet) ForbidMutual(a, b string) {
	s.Forbid(a, b)
	s.Forbid(b, a)
}

// Forbidden reports whether giver may not give to recipient. Self-pairs are
// always forbidden, declared or not.
func (s *ExclusionSet) Forbidden(giver, recipient string) bool {
	if giver == recipient {
		return true
	}
	_, ok := s.pairs[Exclusion{Giver: giver, Recipient: recipient}]
	return ok
}

// Pairs returns the declared pairs in declaration order. The slice is a copy;
// implicit self-exclusions are not included.
func (s *ExclusionSet) Pairs() []Exclusion {
	out := make([]Exclusion, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of declared pairs.
func (s *ExclusionSet) Len() int {
	return len(s.order)
}

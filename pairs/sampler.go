package pairs

import "math/rand"

// pairSampler carries the bookkeeping every generator shares: the RNG
// stream, the accumulated constraint lists, and the ordered-duplicate
// set for the must-link category.
//
// The duplicate set replaces the naive linear rescan of the accumulated
// must-link lists with an O(1) amortized membership check while keeping
// identical accept/reject semantics: a candidate (i,j) is rejected iff
// the exact ordered pair was previously admitted as a must-link. The
// cannot-link lists are intentionally never consulted.
type pairSampler struct {
	rng      *rand.Rand
	mustSeen map[[2]int]struct{}
	c        Constraints
}

// newPairSampler builds a sampler over a fresh deterministic stream.
func newPairSampler(seed int64) *pairSampler {
	return &pairSampler{
		rng:      rngFromSeed(seed),
		mustSeen: make(map[[2]int]struct{}),
		c: Constraints{
			MustLink1:   make([]int, 0),
			MustLink2:   make([]int, 0),
			CannotLink1: make([]int, 0),
			CannotLink2: make([]int, 0),
		},
	}
}

// draw samples two uniform indices in [0,n) and applies the shared
// rejection rules: self-pairs and ordered must-link duplicates are
// rejected before any predicate sees them.
func (s *pairSampler) draw(n int) (int, int, bool) {
	i := s.rng.Intn(n)
	j := s.rng.Intn(n)
	if i == j {
		return 0, 0, false
	}
	if _, dup := s.mustSeen[[2]int{i, j}]; dup {
		return 0, 0, false
	}
	return i, j, true
}

// drawPool is draw restricted to a caller-supplied candidate index pool.
func (s *pairSampler) drawPool(pool []int) (int, int, bool) {
	i := pool[s.rng.Intn(len(pool))]
	j := pool[s.rng.Intn(len(pool))]
	if i == j {
		return 0, 0, false
	}
	if _, dup := s.mustSeen[[2]int{i, j}]; dup {
		return 0, 0, false
	}
	return i, j, true
}

// mustLink admits (i,j) as a must-link pair and records it in the
// duplicate set.
func (s *pairSampler) mustLink(i, j int) {
	s.c.MustLink1 = append(s.c.MustLink1, i)
	s.c.MustLink2 = append(s.c.MustLink2, j)
	s.mustSeen[[2]int{i, j}] = struct{}{}
}

// cannotLink admits (i,j) as a cannot-link pair. It does NOT touch the
// duplicate set; see the package contract.
func (s *pairSampler) cannotLink(i, j int) {
	s.c.CannotLink1 = append(s.c.CannotLink1, i)
	s.c.CannotLink2 = append(s.c.CannotLink2, j)
}

// finish applies the two independent output shuffles and hands the
// constraint lists to the caller. The sampler must not be reused after.
func (s *pairSampler) finish() Constraints {
	shufflePairsInPlace(s.c.MustLink1, s.c.MustLink2, s.rng)
	shufflePairsInPlace(s.c.CannotLink1, s.c.CannotLink2, s.rng)
	return s.c
}

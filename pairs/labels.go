package pairs

// FromLabels samples num pairwise constraints from a ground-truth label
// vector, restricted to the candidate index pool.
//
// Rule:
//   - same label      ⇒ must-link
//   - different label ⇒ cannot-link
//
// Noisy supervision: while fewer than ErrorRate*num pairs have been
// injected, an accepted pair is placed in the WRONG category instead,
// simulating imperfect expert annotation. The number of injected errors
// is returned alongside the constraints.
//
// Inputs:
//   - y:    per-sample integer labels.
//   - pool: candidate sample indices the pairs are drawn from (e.g. the
//     subset of cells an annotator actually inspected).
//   - num:  requested total pair count across both categories.
//
// Returns:
//   - Constraints with MustLinks()+CannotLinks() == num, unless the
//     attempt cap truncates the search (pool too uniform or exhausted).
//   - The number of deliberately mislabeled pairs.
//
// Errors: ErrNegativePairCount, ErrPoolTooSmall, ErrIndexOutOfRange.
//
// Determinism: governed entirely by opts.Seed.
//
// Complexity: O(attempts) expected; O(num) space.
func FromLabels(y []int, pool []int, num int, opts Options) (Constraints, int, error) {
	// Stage 1 (Validate): pair count, pool size, pool indices.
	if num < 0 {
		return Constraints{}, 0, ErrNegativePairCount
	}
	if len(pool) < 2 {
		return Constraints{}, 0, ErrPoolTooSmall
	}
	var p int
	for _, p = range pool {
		if p < 0 || p >= len(y) {
			return Constraints{}, 0, ErrIndexOutOfRange
		}
	}

	// Stage 2 (Sample): rejection loop with the shared bookkeeping.
	s := newPairSampler(opts.Seed)
	budget := opts.ErrorRate * float64(num)

	var (
		remaining = num
		injected  int
		attempts  int
		maxTries  = opts.maxAttempts(defaultMaxAttempts)
	)
	for remaining > 0 && attempts < maxTries {
		attempts++
		i, j, ok := s.drawPool(pool)
		if !ok {
			continue
		}
		if y[i] == y[j] {
			if float64(injected) >= budget {
				s.mustLink(i, j)
			} else {
				s.cannotLink(i, j) // injected error: flip to cannot-link
				injected++
			}
		} else {
			if float64(injected) >= budget {
				s.cannotLink(i, j)
			} else {
				s.mustLink(i, j) // injected error: flip to must-link
				injected++
			}
		}
		remaining--
	}

	// Stage 3 (Finish): independent output shuffles.
	return s.finish(), injected, nil
}

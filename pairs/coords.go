package pairs

import "gonum.org/v1/gonum/mat"

// FromTwoCoordinates samples num pairwise constraints from the first two
// rows of a dimensions×cells matrix (e.g. a 2-D latent embedding stored
// feature-major), thresholded at the LC (low) and HC (high) percentiles
// of each row.
//
// With lo0/hi0 and lo1/hi1 the per-row cutoffs, a cell is in the
// "high-0/low-1" corner when x0 > hi0 && x1 <= lo1, and in the opposite
// "low-0/high-1" corner when x0 <= lo0 && x1 > hi1. Rules:
//   - both cells in the high-0/low-1 corner ⇒ must-link
//   - both cells in the low-0/high-1 corner ⇒ must-link
//   - one cell in each opposite corner      ⇒ cannot-link (either order)
//   - anything else                         ⇒ reject
//
// The four-corner predicate is extremely selective, so this variant
// carries the largest default attempt cap (20000²) and routinely returns
// fewer pairs than requested on real data.
//
// Errors: ErrNilMatrix, ErrTooFewSamples, ErrNegativePairCount,
// ErrBadQuantile, ErrBadRow (fewer than two rows).
//
// Complexity: O(n log n) cutoffs + O(attempts) sampling.
func FromTwoCoordinates(X *mat.Dense, num int, opts Options) (Constraints, error) {
	// Stage 1 (Validate).
	if X == nil {
		return Constraints{}, ErrNilMatrix
	}
	r, n := X.Dims()
	if r < 2 {
		return Constraints{}, ErrBadRow
	}
	if n < 2 {
		return Constraints{}, ErrTooFewSamples
	}
	if num < 0 {
		return Constraints{}, ErrNegativePairCount
	}
	if !validQuantile(opts.LC) || !validQuantile(opts.HC) {
		return Constraints{}, ErrBadQuantile
	}

	// Stage 2 (Cutoffs): per-dimension LC/HC percentiles.
	x0 := X.RawRowView(0)
	x1 := X.RawRowView(1)
	lo0 := quantile(opts.LC, x0)
	lo1 := quantile(opts.LC, x1)
	hi0 := quantile(opts.HC, x0)
	hi1 := quantile(opts.HC, x1)

	// Corner membership, precomputed once per cell.
	highLow := func(c int) bool { return x0[c] > hi0 && x1[c] <= lo1 }
	lowHigh := func(c int) bool { return x0[c] <= lo0 && x1[c] > hi1 }

	// Stage 3 (Sample).
	s := newPairSampler(opts.Seed)
	var (
		remaining = num
		attempts  int
		maxTries  = opts.maxAttempts(quadrantMaxAttempts)
	)
	for remaining > 0 && attempts < maxTries {
		attempts++
		i, j, ok := s.draw(n)
		if !ok {
			continue
		}
		switch {
		case x0[i] > hi0 && x0[j] > hi0 && x1[i] <= lo1 && x1[j] <= lo1:
			s.mustLink(i, j) // both in the high-0/low-1 corner
		case x0[i] <= lo0 && x0[j] <= lo0 && x1[i] > hi1 && x1[j] > hi1:
			s.mustLink(i, j) // both in the low-0/high-1 corner
		case highLow(i) && lowHigh(j):
			s.cannotLink(i, j) // opposite corners
		case lowHigh(i) && highLow(j):
			s.cannotLink(i, j) // opposite corners, reversed
		default:
			continue
		}
		remaining--
	}

	// Stage 4 (Finish).
	return s.finish(), nil
}

// FromOneCoordinate samples pairwise constraints from a single row of a
// dimensions×cells matrix, thresholded at the LC/HC percentiles, with
// SEPARATE budgets for the two categories: each category receives at
// most ⌈num/2⌉ pairs (odd counts round up for both, matching a
// fractional half-budget that only stops once overdrawn).
//
// With lo/hi the row cutoffs:
//   - both cells above hi                  ⇒ must-link   (ML budget)
//   - one above hi, the other at/below lo  ⇒ cannot-link (CL budget)
//   - anything else                        ⇒ reject
//
// A category whose budget is exhausted keeps rejecting its pairs while
// the other budget drains, so the loop runs until both budgets are spent
// or the attempt cap (default 1,000,000) is reached.
//
// Errors: ErrNilMatrix, ErrTooFewSamples, ErrNegativePairCount,
// ErrBadQuantile, ErrBadRow.
//
// Complexity: O(n log n) cutoffs + O(attempts) sampling.
func FromOneCoordinate(X *mat.Dense, row, num int, opts Options) (Constraints, error) {
	// Stage 1 (Validate).
	if X == nil {
		return Constraints{}, ErrNilMatrix
	}
	r, n := X.Dims()
	if row < 0 || row >= r {
		return Constraints{}, ErrBadRow
	}
	if n < 2 {
		return Constraints{}, ErrTooFewSamples
	}
	if num < 0 {
		return Constraints{}, ErrNegativePairCount
	}
	if !validQuantile(opts.LC) || !validQuantile(opts.HC) {
		return Constraints{}, ErrBadQuantile
	}

	// Stage 2 (Cutoffs).
	x := X.RawRowView(row)
	lo := quantile(opts.LC, x)
	hi := quantile(opts.HC, x)

	// Stage 3 (Sample): independent half-budgets per category.
	s := newPairSampler(opts.Seed)
	var (
		mlBudget = (num + 1) / 2
		clBudget = (num + 1) / 2
		attempts int
		maxTries = opts.maxAttempts(defaultMaxAttempts)
	)
	for (mlBudget > 0 || clBudget > 0) && attempts < maxTries {
		attempts++
		i, j, ok := s.draw(n)
		if !ok {
			continue
		}
		switch {
		case x[i] > hi && x[j] > hi && mlBudget > 0:
			s.mustLink(i, j)
			mlBudget--
		case x[i] > hi && x[j] <= lo && clBudget > 0:
			s.cannotLink(i, j)
			clBudget--
		case x[i] <= lo && x[j] > hi && clBudget > 0:
			s.cannotLink(i, j)
			clBudget--
		default:
			continue
		}
	}

	// Stage 4 (Finish).
	return s.finish(), nil
}

package pairs

import "gonum.org/v1/gonum/mat"

// FromMarkers samples num pairwise constraints from a 4-row marker-gene
// expression matrix (rows = marker genes g0..g3, columns = cells) using
// a fixed decision table over quantile thresholds.
//
// Two threshold pairs apply per gene: a TIGHT pair (Low1/High1, default
// 0.4/0.6) drives the cannot-link rules on g0/g1, and a LOOSE pair
// (Low2/High2, default 0.2/0.8) drives the must-link rules. Below,
// "hi"/"lo" denote the loose cutoffs and "HI"/"LO" the tight ones.
//
// Decision table, evaluated top-down, first match wins:
//
//	 # | rule                                                        | verdict
//	---+-------------------------------------------------------------+--------
//	 1 | i: g0<LO0 & g1>HI1         j: g0>HI0 & g1<LO1               | cannot
//	 2 | mirror of 1 (i and j swapped)                               | cannot
//	 3 | i: g1>hi1 & g2>hi2         j: g1>hi1 & g2>hi2               | must
//	 4 | i: g1>hi1 & g2<lo2         j: g1>hi1 & g2<lo2               | must
//	 5 | i: g0>hi0 & g2>hi2         j: g1>hi0 & g2>hi2               | must
//	 6 | i: g0>hi0 & g2<lo2 & g3>hi3  j: g1>hi0 & g2<lo2 & g3>hi3    | must
//	 7 | i: g0>hi0 & g2<lo2 & g3<lo3  j: g1>hi0 & g2<lo2 & g3<lo3    | must
//	 — | no rule matched                                             | reject
//
// Rows 1–2 separate the two cell types defined by opposing g0/g1
// expression; rows 3–7 pull together cells of the same type defined by
// the g1/g2/g3 combinations. Note the asymmetry in rules 5–7: they read
// gene g0 on the first cell but gene g1 on the second, both against the
// g0 cutoffs.
//
// Errors: ErrNilMatrix, ErrMarkerRows, ErrTooFewSamples,
// ErrNegativePairCount, ErrBadQuantile.
//
// Complexity: O(n log n) cutoffs + O(attempts) sampling.
func FromMarkers(M *mat.Dense, num int, opts Options) (Constraints, error) {
	// Stage 1 (Validate).
	if M == nil {
		return Constraints{}, ErrNilMatrix
	}
	r, n := M.Dims()
	if r != 4 {
		return Constraints{}, ErrMarkerRows
	}
	if n < 2 {
		return Constraints{}, ErrTooFewSamples
	}
	if num < 0 {
		return Constraints{}, ErrNegativePairCount
	}
	if !validQuantile(opts.Low1) || !validQuantile(opts.High1) ||
		!validQuantile(opts.Low2) || !validQuantile(opts.High2) {
		return Constraints{}, ErrBadQuantile
	}

	// Stage 2 (Cutoffs).
	g0 := M.RawRowView(0)
	g1 := M.RawRowView(1)
	g2 := M.RawRowView(2)
	g3 := M.RawRowView(3)

	// Tight pair (cannot-link rules) on g0/g1.
	tLo0 := quantile(opts.Low1, g0)
	tHi0 := quantile(opts.High1, g0)
	tLo1 := quantile(opts.Low1, g1)
	tHi1 := quantile(opts.High1, g1)

	// Loose pair (must-link rules) on all four genes.
	hi0 := quantile(opts.High2, g0)
	hi1 := quantile(opts.High2, g1)
	lo2 := quantile(opts.Low2, g2)
	hi2 := quantile(opts.High2, g2)
	lo3 := quantile(opts.Low2, g3)
	hi3 := quantile(opts.High2, g3)

	// Stage 3 (Sample).
	s := newPairSampler(opts.Seed)
	var (
		remaining = num
		attempts  int
		maxTries  = opts.maxAttempts(defaultMaxAttempts)
	)
	for remaining > 0 && attempts < maxTries {
		attempts++
		i, j, ok := s.draw(n)
		if !ok {
			continue
		}
		switch {
		case g0[i] < tLo0 && g1[i] > tHi1 && g0[j] > tHi0 && g1[j] < tLo1:
			s.cannotLink(i, j) // rule 1: opposing g0/g1 types
		case g0[j] < tLo0 && g1[j] > tHi1 && g0[i] > tHi0 && g1[i] < tLo1:
			s.cannotLink(i, j) // rule 2: mirror of rule 1
		case g1[i] > hi1 && g2[i] > hi2 && g1[j] > hi1 && g2[j] > hi2:
			s.mustLink(i, j) // rule 3
		case g1[i] > hi1 && g2[i] < lo2 && g1[j] > hi1 && g2[j] < lo2:
			s.mustLink(i, j) // rule 4
		case g0[i] > hi0 && g2[i] > hi2 && g1[j] > hi0 && g2[j] > hi2:
			s.mustLink(i, j) // rule 5
		case g0[i] > hi0 && g2[i] < lo2 && g3[i] > hi3 &&
			g1[j] > hi0 && g2[j] < lo2 && g3[j] > hi3:
			s.mustLink(i, j) // rule 6
		case g0[i] > hi0 && g2[i] < lo2 && g3[i] < lo3 &&
			g1[j] > hi0 && g2[j] < lo2 && g3[j] < lo3:
			s.mustLink(i, j) // rule 7
		default:
			continue
		}
		remaining--
	}

	// Stage 4 (Finish).
	return s.finish(), nil
}

// FromMarkerGene samples pairwise constraints from the normalized
// expression vector of a single marker gene (one value per cell).
//
// With hi the HC-quantile and lo the LC-quantile of g:
//   - both cells above hi                 ⇒ must-link (both strongly
//     express the marker, so they plausibly share a cell type)
//   - one above hi, the other at/below lo ⇒ cannot-link (either order)
//   - anything else                       ⇒ reject
//
// Errors: ErrTooFewSamples, ErrNegativePairCount, ErrBadQuantile.
//
// Complexity: O(n log n) cutoffs + O(attempts) sampling.
func FromMarkerGene(g []float64, num int, opts Options) (Constraints, error) {
	// Stage 1 (Validate).
	n := len(g)
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
	lo := quantile(opts.LC, g)
	hi := quantile(opts.HC, g)

	// Stage 3 (Sample).
	s := newPairSampler(opts.Seed)
	var (
		remaining = num
		attempts  int
		maxTries  = opts.maxAttempts(defaultMaxAttempts)
	)
	for remaining > 0 && attempts < maxTries {
		attempts++
		i, j, ok := s.draw(n)
		if !ok {
			continue
		}
		switch {
		case g[i] > hi && g[j] > hi:
			s.mustLink(i, j)
		case g[i] > hi && g[j] <= lo:
			s.cannotLink(i, j)
		case g[i] <= lo && g[j] > hi:
			s.cannotLink(i, j)
		default:
			continue
		}
		remaining--
	}

	// Stage 4 (Finish).
	return s.finish(), nil
}

package pairs

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FromEmbedding samples num pairwise constraints from a latent embedding
// (rows = cells, columns = latent dimensions) using distance quantiles.
//
// Rule, over the Euclidean distance d(i,j) between embedding rows:
//   - d(i,j) < ML-quantile cutoff ⇒ must-link
//   - d(i,j) > CL-quantile cutoff ⇒ cannot-link
//   - otherwise                   ⇒ reject and redraw
//
// Both cutoffs are quantiles of the strictly lower-triangular, non-zero
// pairwise distances, so duplicated cells (zero distance) do not drag
// the ML cutoff to zero.
//
// Errors: ErrNilMatrix, ErrTooFewSamples, ErrNegativePairCount,
// ErrBadQuantile.
//
// Complexity: O(n²·d) cutoff precomputation + O(attempts) sampling.
func FromEmbedding(X *mat.Dense, num int, opts Options) (Constraints, error) {
	// Stage 1 (Validate).
	if X == nil {
		return Constraints{}, ErrNilMatrix
	}
	n, _ := X.Dims()
	if n < 2 {
		return Constraints{}, ErrTooFewSamples
	}
	if num < 0 {
		return Constraints{}, ErrNegativePairCount
	}
	if !validQuantile(opts.ML) || !validQuantile(opts.CL) {
		return Constraints{}, ErrBadQuantile
	}

	// Stage 2 (Cutoffs): pairwise distances + ML/CL quantile thresholds.
	dist := pairwiseDistances(X)
	vec := lowerTriPositive(dist)
	if len(vec) == 0 {
		// All cells coincide; no distance signal to threshold on.
		return newPairSampler(opts.Seed).finish(), nil
	}
	cutoffML := quantile(opts.ML, vec)
	cutoffCL := quantile(opts.CL, vec)

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
		d := dist.At(i, j)
		switch {
		case d < cutoffML:
			s.mustLink(i, j)
		case d > cutoffCL:
			s.cannotLink(i, j)
		default:
			continue // mid-range distance: uninformative pair
		}
		remaining--
	}

	// Stage 4 (Finish).
	return s.finish(), nil
}

// pairwiseDistances computes the symmetric n×n Euclidean distance matrix
// over the rows of X.
//
// Complexity: O(n²·d) time, O(n²) space.
func pairwiseDistances(X *mat.Dense) *mat.SymDense {
	n, _ := X.Dims()
	dist := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		ri := X.RawRowView(i)
		for j = i + 1; j < n; j++ {
			dist.SetSym(i, j, floats.Distance(ri, X.RawRowView(j), 2))
		}
	}
	return dist
}

// lowerTriPositive flattens the strictly lower-triangular part of dist,
// dropping zero entries (coincident cells).
func lowerTriPositive(dist *mat.SymDense) []float64 {
	n := dist.SymmetricDim()
	vec := make([]float64, 0, n*(n-1)/2)

	var i, j int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			if d := dist.At(i, j); d > 0 {
				vec = append(vec, d)
			}
		}
	}
	return vec
}

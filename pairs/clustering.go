package pairs

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cellink/cellink/kmeans"
)

// FromEmbeddingClustering samples num pairwise constraints by combining
// a k-means partition of the embedding with a distance cutoff.
//
// Rule, for a partition into k clusters (20 independent restarts):
//   - same predicted cluster                                ⇒ must-link
//   - different cluster AND distance > CL-quantile cutoff   ⇒ cannot-link
//   - otherwise                                             ⇒ reject
//
// Unlike FromEmbedding, the ML quantile plays no role here: cluster
// agreement alone promotes a pair to must-link.
//
// Errors: ErrNilMatrix, ErrTooFewSamples, ErrNegativePairCount,
// ErrBadQuantile, plus kmeans sentinel errors for an invalid k.
//
// Determinism: the k-means substream is derived from opts.Seed, so one
// seed fixes both the partition and the pair draws.
//
// Complexity: O(restarts·iters·n·k·d) partitioning + O(n²·d) cutoffs +
// O(attempts) sampling.
func FromEmbeddingClustering(X *mat.Dense, num, k int, opts Options) (Constraints, error) {
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
	if !validQuantile(opts.CL) {
		return Constraints{}, ErrBadQuantile
	}

	// Stage 2 (Partition): k-means on an independent derived substream.
	kopts := kmeans.DefaultOptions()
	kopts.Seed = deriveSeed(opts.Seed, 1)
	yPred, err := kmeans.Partition(X, k, kopts)
	if err != nil {
		return Constraints{}, err
	}

	// Stage 3 (Cutoffs): same distance-vector quantiles as FromEmbedding.
	dist := pairwiseDistances(X)
	vec := lowerTriPositive(dist)
	if len(vec) == 0 {
		return newPairSampler(opts.Seed).finish(), nil
	}
	cutoffCL := quantile(opts.CL, vec)

	// Stage 4 (Sample).
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
		case yPred[i] == yPred[j]:
			s.mustLink(i, j)
		case dist.At(i, j) > cutoffCL:
			s.cannotLink(i, j)
		default:
			continue // cross-cluster but not far enough apart to trust
		}
		remaining--
	}

	// Stage 5 (Finish).
	return s.finish(), nil
}

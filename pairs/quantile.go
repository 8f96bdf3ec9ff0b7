package pairs

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// quantile returns the q-th quantile (q in [0,1]) of xs using linear
// interpolation of the empirical CDF (gonum stat.LinInterp). xs is left
// unmodified; the caller guarantees len(xs) > 0 and q in [0,1].
//
// Complexity: O(n log n) time, O(n) space for the sorted copy.
func quantile(q float64, xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return stat.Quantile(q, stat.LinInterp, sorted, nil)
}

// validQuantile reports whether q is a usable cutoff fraction.
func validQuantile(q float64) bool {
	return q >= 0 && q <= 1
}

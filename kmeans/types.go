// Package kmeans: options and sentinel error set.
package kmeans

import "errors"

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("kmeans: nil input matrix")

	// ErrBadClusterCount indicates k < 1 or k greater than the number of rows.
	ErrBadClusterCount = errors.New("kmeans: cluster count out of range")

	// ErrNoData indicates an input matrix with no rows or no columns.
	ErrNoData = errors.New("kmeans: empty input matrix")
)

// Options configures Partition.
//
// Fields:
//   - Restarts — independent initializations; the partition with the
//     lowest within-cluster sum of squares wins.
//   - MaxIter  — Lloyd iteration cap per restart.
//   - Tol      — convergence threshold on the total squared center
//     movement between iterations.
//   - Seed     — RNG seed; 0 selects the fixed default stream.
type Options struct {
	Restarts int
	MaxIter  int
	Tol      float64
	Seed     int64
}

// DefaultOptions returns the canonical defaults: 20 restarts, 300
// iterations, tolerance 1e-4, deterministic default stream.
func DefaultOptions() Options {
	return Options{
		Restarts: 20,
		MaxIter:  300,
		Tol:      1e-4,
	}
}

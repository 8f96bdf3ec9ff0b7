package kmeans

import (
	"math"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Partition clusters the rows of X into k groups and returns one label
// per row, in [0,k).
//
// Algorithm Outline:
//  1. For each restart, seed k centers with k-means++ on an independent
//     derived RNG stream.
//  2. Run Lloyd iterations: assign every row to its nearest center,
//     recompute centers as cluster means, stop when the total squared
//     center movement falls to Tol or MaxIter is reached.
//  3. Keep the restart with the lowest within-cluster sum of squares.
//
// Empty clusters are reseeded at the row farthest from its assigned
// center, so every returned label set uses all k clusters when the data
// admits it.
//
// Errors:
//   - ErrNilMatrix        — X is nil.
//   - ErrNoData           — X has no rows or no columns.
//   - ErrBadClusterCount  — k < 1 or k > number of rows.
//
// Complexity: O(Restarts · MaxIter · n·k·d) time, O(k·d + n) space.
func Partition(X *mat.Dense, k int, opts Options) ([]int, error) {
	// Stage 1 (Validate).
	if X == nil {
		return nil, ErrNilMatrix
	}
	n, d := X.Dims()
	if n == 0 || d == 0 {
		return nil, ErrNoData
	}
	if k < 1 || k > n {
		return nil, ErrBadClusterCount
	}

	// Stage 1 (Resolve options): zero values fall back to defaults.
	def := DefaultOptions()
	restarts := opts.Restarts
	if restarts < 1 {
		restarts = def.Restarts
	}
	maxIter := opts.MaxIter
	if maxIter < 1 {
		maxIter = def.MaxIter
	}
	tol := opts.Tol
	if tol <= 0 {
		tol = def.Tol
	}

	// Stage 2 (Restarts): keep the lowest-inertia partition.
	var (
		best        []int
		bestInertia = math.Inf(1)
		r           int
	)
	for r = 0; r < restarts; r++ {
		rng := rngFromSeed(opts.Seed, uint64(r))
		centers := seedCenters(X, k, rng)
		labels, inertia := lloyd(X, centers, maxIter, tol)
		if inertia < bestInertia {
			bestInertia = inertia
			best = labels
		}
	}
	return best, nil
}

// seedCenters performs k-means++ seeding: the first center is a uniform
// row, each subsequent center is drawn with probability proportional to
// its squared distance from the nearest already-chosen center.
//
// Complexity: O(n·k·d) time, O(k·d + n) space.
func seedCenters(X *mat.Dense, k int, rng *exprand.Rand) [][]float64 {
	n, _ := X.Dims()
	centers := make([][]float64, 0, k)

	first := rng.Intn(n)
	centers = append(centers, append([]float64(nil), X.RawRowView(first)...))

	// minD2[i] tracks the squared distance from row i to its nearest
	// chosen center; only the newest center can lower it.
	minD2 := make([]float64, n)
	for i := 0; i < n; i++ {
		minD2[i] = math.Inf(1)
	}

	var i int
	for len(centers) < k {
		last := centers[len(centers)-1]
		for i = 0; i < n; i++ {
			dd := floats.Distance(X.RawRowView(i), last, 2)
			if d2 := dd * dd; d2 < minD2[i] {
				minD2[i] = d2
			}
		}

		idx, ok := sampleuv.NewWeighted(minD2, rng).Take()
		if !ok {
			// All weights zero: fewer distinct rows than k. Fall back
			// to a uniform draw so seeding still yields k centers.
			idx = rng.Intn(n)
		}
		centers = append(centers, append([]float64(nil), X.RawRowView(idx)...))
	}
	return centers
}

// lloyd runs the assignment/update iterations on the given initial
// centers (mutated in place) and returns the final labels and the
// within-cluster sum of squares of the last assignment.
func lloyd(X *mat.Dense, centers [][]float64, maxIter int, tol float64) ([]int, float64) {
	n, d := X.Dims()
	k := len(centers)

	labels := make([]int, n)
	counts := make([]int, k)
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, d)
	}

	var (
		inertia float64
		iter    int
		i, c, j int
	)
	for iter = 0; iter < maxIter; iter++ {
		// Assignment step; also track the worst-fit row for empty-cluster repair.
		inertia = 0
		farIdx, farD2 := 0, -1.0
		for c = 0; c < k; c++ {
			counts[c] = 0
			for j = 0; j < d; j++ {
				sums[c][j] = 0
			}
		}
		for i = 0; i < n; i++ {
			row := X.RawRowView(i)
			bestC, bestD2 := 0, math.Inf(1)
			for c = 0; c < k; c++ {
				dd := floats.Distance(row, centers[c], 2)
				if d2 := dd * dd; d2 < bestD2 {
					bestC, bestD2 = c, d2
				}
			}
			labels[i] = bestC
			counts[bestC]++
			floats.Add(sums[bestC], row)
			inertia += bestD2
			if bestD2 > farD2 {
				farIdx, farD2 = i, bestD2
			}
		}

		// Update step: new centers are cluster means; empty clusters are
		// reseeded at the worst-fit row.
		var shift float64
		for c = 0; c < k; c++ {
			if counts[c] == 0 {
				copy(centers[c], X.RawRowView(farIdx))
				shift = math.Inf(1) // force another assignment pass
				continue
			}
			inv := 1.0 / float64(counts[c])
			for j = 0; j < d; j++ {
				mean := sums[c][j] * inv
				delta := mean - centers[c][j]
				shift += delta * delta
				centers[c][j] = mean
			}
		}
		if shift <= tol {
			break
		}
	}
	return labels, inertia
}

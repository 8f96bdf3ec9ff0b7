package eval

import "math"

// hungarian solves the square minimum-cost assignment problem and
// returns match, where match[row] = assigned column.
//
// This is the O(n³) potentials formulation of the Kuhn–Munkres
// algorithm: rows are inserted one at a time, each insertion growing an
// alternating tree of tight edges under dual potentials (u, v) until an
// unmatched column is reached, then augmenting along the recorded path.
//
// Internally rows and columns are 1-based; index 0 is the virtual root
// of the alternating tree.
//
// Complexity: O(n³) time, O(n) space beyond the cost matrix.
func hungarian(cost [][]float64) []int {
	n := len(cost)
	u := make([]float64, n+1)   // row potentials
	v := make([]float64, n+1)   // column potentials
	p := make([]int, n+1)       // p[col] = row currently matched to col
	way := make([]int, n+1)     // way[col] = previous col on the alternating path
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	var i, j, j0, j1 int
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		// Grow the alternating tree until an unmatched column is found.
		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 = 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// Dual update keeps visited edges tight and shrinks the rest.
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Augment: flip matched edges along the recorded path.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	match := make([]int, n)
	for j = 1; j <= n; j++ {
		if p[j] > 0 {
			match[p[j]-1] = j - 1
		}
	}
	return match
}

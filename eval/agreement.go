package eval

import "math"

// contingency builds the co-occurrence table and marginals for two
// equal-length non-negative label vectors.
func contingency(a, b []int) (nab [][]int, na, nb []int, err error) {
	n := len(a)
	if n != len(b) {
		return nil, nil, nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, nil, nil, ErrEmptyInput
	}

	da, db := 0, 0
	var i int
	for i = 0; i < n; i++ {
		if a[i] < 0 || b[i] < 0 {
			return nil, nil, nil, ErrNegativeLabel
		}
		if a[i] >= da {
			da = a[i] + 1
		}
		if b[i] >= db {
			db = b[i] + 1
		}
	}

	nab = make([][]int, da)
	for i = range nab {
		nab[i] = make([]int, db)
	}
	na = make([]int, da)
	nb = make([]int, db)
	for i = 0; i < n; i++ {
		nab[a[i]][b[i]]++
		na[a[i]]++
		nb[b[i]]++
	}
	return nab, na, nb, nil
}

// NMI computes the normalized mutual information between two label
// vectors, using the arithmetic mean of the two entropies as the
// normalizer. Returns a value in [0,1]; 1.0 means the partitions are
// identical up to relabeling.
//
// Degenerate inputs: if both vectors are single-cluster the partitions
// coincide and NMI is 1.0; if only one of them is single-cluster the
// mutual information is zero and NMI is 0.0.
//
// Errors: ErrLengthMismatch, ErrEmptyInput, ErrNegativeLabel.
//
// Complexity: O(n + da·db) time.
func NMI(a, b []int) (float64, error) {
	nab, na, nb, err := contingency(a, b)
	if err != nil {
		return 0, err
	}
	n := float64(len(a))

	ka, kb := nonzero(na), nonzero(nb)
	if ka == 1 && kb == 1 {
		return 1.0, nil
	}

	var ha, hb, mi float64
	var i, j int
	for i = range na {
		if na[i] > 0 {
			pa := float64(na[i]) / n
			ha -= pa * math.Log(pa)
		}
	}
	for j = range nb {
		if nb[j] > 0 {
			pb := float64(nb[j]) / n
			hb -= pb * math.Log(pb)
		}
	}
	for i = range nab {
		for j = range nab[i] {
			if nab[i][j] == 0 {
				continue
			}
			pij := float64(nab[i][j]) / n
			mi += pij * math.Log(n*float64(nab[i][j])/(float64(na[i])*float64(nb[j])))
		}
	}

	norm := (ha + hb) / 2
	if norm == 0 {
		return 0, nil
	}
	nmi := mi / norm
	// Guard numeric noise at the boundaries.
	if nmi < 0 {
		nmi = 0
	} else if nmi > 1 {
		nmi = 1
	}
	return nmi, nil
}

// ARI computes the adjusted Rand index between two label vectors:
// the Rand index corrected for chance agreement. Returns a value in
// [-1,1]; 1.0 for identical partitions (up to relabeling), ≈0 for
// independent ones.
//
// Degenerate inputs where the index is undefined (expected agreement
// equals maximal agreement, e.g. both partitions trivial) score 1.0.
//
// Errors: ErrLengthMismatch, ErrEmptyInput, ErrNegativeLabel.
//
// Complexity: O(n + da·db) time.
func ARI(a, b []int) (float64, error) {
	nab, na, nb, err := contingency(a, b)
	if err != nil {
		return 0, err
	}
	n := float64(len(a))

	var sumAB, sumA, sumB float64
	var i, j int
	for i = range nab {
		for j = range nab[i] {
			sumAB += comb2(float64(nab[i][j]))
		}
	}
	for i = range na {
		sumA += comb2(float64(na[i]))
	}
	for j = range nb {
		sumB += comb2(float64(nb[j]))
	}

	total := comb2(n)
	if total == 0 {
		return 1.0, nil // single sample: partitions trivially agree
	}
	expected := sumA * sumB / total
	maxIdx := (sumA + sumB) / 2
	if maxIdx == expected {
		return 1.0, nil
	}
	return (sumAB - expected) / (maxIdx - expected), nil
}

// comb2 returns "x choose 2" for a non-negative count.
func comb2(x float64) float64 { return x * (x - 1) / 2 }

// nonzero counts the non-empty classes in a marginal.
func nonzero(counts []int) int {
	k := 0
	for _, c := range counts {
		if c > 0 {
			k++
		}
	}
	return k
}

package eval

// Accuracy computes clustering accuracy: the fraction of samples whose
// predicted label maps to the true label under the best one-to-one
// correspondence between the two label sets.
//
// Algorithm Outline:
//  1. Let D = max label value + 1 across both vectors. Build the D×D
//     contingency table w, where w[p][t] counts samples predicted p
//     with true label t.
//  2. Solve the linear assignment problem on cost max(w)−w (minimizing
//     the cost maximizes total agreement).
//  3. Accuracy = Σ w[p][assign(p)] / n.
//
// Returns a value in [0,1]; 1.0 means the prediction is a relabeling of
// the truth.
//
// Errors:
//   - ErrLengthMismatch — len(yTrue) != len(yPred).
//   - ErrEmptyInput     — empty vectors.
//   - ErrNegativeLabel  — any negative label.
//
// Complexity: O(n + D³) time, O(D²) space.
func Accuracy(yTrue, yPred []int) (float64, error) {
	// Stage 1 (Validate).
	n := len(yTrue)
	if n != len(yPred) {
		return 0, ErrLengthMismatch
	}
	if n == 0 {
		return 0, ErrEmptyInput
	}

	// Stage 2 (Contingency table).
	dim := 0
	var i int
	for i = 0; i < n; i++ {
		if yTrue[i] < 0 || yPred[i] < 0 {
			return 0, ErrNegativeLabel
		}
		if yTrue[i] >= dim {
			dim = yTrue[i] + 1
		}
		if yPred[i] >= dim {
			dim = yPred[i] + 1
		}
	}
	w := make([][]int, dim)
	for i = range w {
		w[i] = make([]int, dim)
	}
	maxW := 0
	for i = 0; i < n; i++ {
		w[yPred[i]][yTrue[i]]++
		if w[yPred[i]][yTrue[i]] > maxW {
			maxW = w[yPred[i]][yTrue[i]]
		}
	}

	// Stage 3 (Assignment): minimize max(w)−w == maximize w.
	cost := make([][]float64, dim)
	var j int
	for i = 0; i < dim; i++ {
		cost[i] = make([]float64, dim)
		for j = 0; j < dim; j++ {
			cost[i][j] = float64(maxW - w[i][j])
		}
	}
	assign := hungarian(cost)

	// Stage 4 (Score).
	matched := 0
	for i = 0; i < dim; i++ {
		matched += w[i][assign[i]]
	}
	return float64(matched) / float64(n), nil
}

package pairs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cellink/cellink/pairs"
)

// cornerLayout builds a 2×40 dimensions×cells matrix with two opposite
// corners and a neutral middle:
//
//	cells  0– 9: high dim0, low dim1  (corner A)
//	cells 10–19: low dim0, high dim1  (corner B)
//	cells 20–39: near the origin      (no corner)
//
// Values are spread (100+i / -100-i) rather than repeated so strict
// cutoff comparisons never land on an exact tie.
func cornerLayout() *mat.Dense {
	X := mat.NewDense(2, 40, nil)
	for i := 0; i < 10; i++ {
		X.Set(0, i, 100+float64(i))
		X.Set(1, i, -100-float64(i))
		X.Set(0, 10+i, -100-float64(i))
		X.Set(1, 10+i, 100+float64(i))
	}
	for i := 20; i < 40; i++ {
		X.Set(0, i, 0.1*float64(i-20))
		X.Set(1, i, 0.1*float64(i-20))
	}
	return X
}

// corner classifies a cell of cornerLayout: 0 for corner A, 1 for
// corner B, 2 for the neutral middle.
func corner(c int) int {
	switch {
	case c < 10:
		return 0
	case c < 20:
		return 1
	default:
		return 2
	}
}

// TestFromTwoCoordinates_CornerLayout verifies the quadrant rules:
// must-links stay inside one corner, cannot-links join the two opposite
// corners, neutral cells never appear.
func TestFromTwoCoordinates_CornerLayout(t *testing.T) {
	X := cornerLayout()

	opts := pairs.DefaultOptions()
	opts.Seed = 21
	opts.LC, opts.HC = 0.2, 0.8
	cs, err := pairs.FromTwoCoordinates(X, 20, opts)
	require.NoError(t, err)
	checkInvariants(t, cs)

	require.Equal(t, 20, cs.Total())
	require.Positive(t, cs.MustLinks())
	require.Positive(t, cs.CannotLinks())

	for i := range cs.MustLink1 {
		a, b := corner(cs.MustLink1[i]), corner(cs.MustLink2[i])
		assert.Equal(t, a, b, "must-link (%d,%d) spans corners", cs.MustLink1[i], cs.MustLink2[i])
		assert.NotEqual(t, 2, a, "must-link touches a neutral cell")
	}
	for i := range cs.CannotLink1 {
		a, b := corner(cs.CannotLink1[i]), corner(cs.CannotLink2[i])
		assert.NotEqual(t, 2, a, "cannot-link touches a neutral cell")
		assert.NotEqual(t, 2, b, "cannot-link touches a neutral cell")
		assert.NotEqual(t, a, b, "cannot-link (%d,%d) inside one corner", cs.CannotLink1[i], cs.CannotLink2[i])
	}
}

// TestFromTwoCoordinates_InfeasibleBounded verifies bounded termination
// when no cell can clear the cutoffs: HC=1.0 puts the high cutoff at
// the maximum, the strict comparison never passes, and the call returns
// an empty result instead of spinning forever.
func TestFromTwoCoordinates_InfeasibleBounded(t *testing.T) {
	X := cornerLayout()

	opts := pairs.DefaultOptions()
	opts.Seed = 1
	opts.HC = 1.0
	opts.MaxAttempts = 100_000
	cs, err := pairs.FromTwoCoordinates(X, 10, opts)
	require.NoError(t, err)
	assert.Zero(t, cs.Total(), "nothing sits strictly above the maximum")
}

// oneRowLayout builds a 1×40 matrix: 30 near-zero cells then 10 cells
// with large spread values.
func oneRowLayout() *mat.Dense {
	X := mat.NewDense(1, 40, nil)
	for i := 0; i < 30; i++ {
		X.Set(0, i, 0.1*float64(i))
	}
	for i := 30; i < 40; i++ {
		X.Set(0, i, 100+float64(i-30))
	}
	return X
}

// TestFromOneCoordinate_HalfBudgets verifies the per-category budgets
// and the threshold rules on a single row: must-links join two
// high-expression cells, cannot-links join a high and a low cell, and
// each category receives exactly ⌈num/2⌉ pairs when feasible.
func TestFromOneCoordinate_HalfBudgets(t *testing.T) {
	X := oneRowLayout()

	opts := pairs.DefaultOptions()
	opts.Seed = 6
	opts.LC, opts.HC = 0.5, 0.8
	cs, err := pairs.FromOneCoordinate(X, 0, 10, opts)
	require.NoError(t, err)
	checkInvariants(t, cs)

	assert.Equal(t, 5, cs.MustLinks(), "must-link half-budget")
	assert.Equal(t, 5, cs.CannotLinks(), "cannot-link half-budget")

	x := X.RawRowView(0)
	for i := range cs.MustLink1 {
		assert.Greater(t, x[cs.MustLink1[i]], 100.0)
		assert.Greater(t, x[cs.MustLink2[i]], 100.0)
	}
	for i := range cs.CannotLink1 {
		hi := x[cs.CannotLink1[i]] > 100
		lo := x[cs.CannotLink2[i]] > 100
		assert.NotEqual(t, hi, lo, "cannot-link must mix a high and a low cell")
	}
}

// TestFromOneCoordinate_OddCountRoundsUp verifies that an odd request
// rounds both half-budgets up, yielding num+1 pairs.
func TestFromOneCoordinate_OddCountRoundsUp(t *testing.T) {
	X := oneRowLayout()

	opts := pairs.DefaultOptions()
	opts.Seed = 9
	opts.LC, opts.HC = 0.5, 0.8
	cs, err := pairs.FromOneCoordinate(X, 0, 5, opts)
	require.NoError(t, err)
	checkInvariants(t, cs)

	assert.Equal(t, 3, cs.MustLinks())
	assert.Equal(t, 3, cs.CannotLinks())
}

// TestCoordinates_InputValidation covers the sentinel error conditions
// of both coordinate-based generators.
func TestCoordinates_InputValidation(t *testing.T) {
	one := mat.NewDense(1, 5, []float64{1, 2, 3, 4, 5})
	_, err := pairs.FromTwoCoordinates(one, 5, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrBadRow, "two rows required")

	_, err = pairs.FromTwoCoordinates(nil, 5, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrNilMatrix)

	_, err = pairs.FromOneCoordinate(one, 3, 5, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrBadRow, "row index out of range")

	_, err = pairs.FromOneCoordinate(one, 0, -1, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrNegativePairCount)

	bad := pairs.DefaultOptions()
	bad.HC = 2
	_, err = pairs.FromOneCoordinate(one, 0, 3, bad)
	assert.ErrorIs(t, err, pairs.ErrBadQuantile)
}

package pairs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cellink/cellink/pairs"
)

// twoTypeMarkers builds a 4×20 marker matrix with two opposing cell
// types: type X (cells 0–9) expresses g1/g2 and lacks g0, type Y
// (cells 10–19) expresses g0 and lacks g1/g2. g3 stays flat. Values
// are spread so strict cutoff comparisons never tie.
func twoTypeMarkers() *mat.Dense {
	M := mat.NewDense(4, 20, nil)
	for i := 0; i < 10; i++ {
		M.Set(0, i, -10-float64(i)) // g0 low on X
		M.Set(1, i, 10+float64(i))  // g1 high on X
		M.Set(2, i, 50+float64(i))  // g2 high on X
		M.Set(0, 10+i, 10+float64(i))
		M.Set(1, 10+i, -10-float64(i))
		M.Set(2, 10+i, -50-float64(i))
	}
	return M
}

// TestFromMarkers_TwoTypes verifies the decision table on opposing cell
// types: cannot-links connect the two types, must-links never cross.
func TestFromMarkers_TwoTypes(t *testing.T) {
	M := twoTypeMarkers()

	opts := pairs.DefaultOptions()
	opts.Seed = 17
	cs, err := pairs.FromMarkers(M, 8, opts)
	require.NoError(t, err)
	checkInvariants(t, cs)

	require.Equal(t, 8, cs.Total())
	require.Positive(t, cs.CannotLinks(), "opposing types must yield cannot-links")

	for i := range cs.MustLink1 {
		assert.True(t, sameBlob(cs.MustLink1[i], cs.MustLink2[i], 10),
			"must-link (%d,%d) crosses the cell types", cs.MustLink1[i], cs.MustLink2[i])
	}
	for i := range cs.CannotLink1 {
		assert.False(t, sameBlob(cs.CannotLink1[i], cs.CannotLink2[i], 10),
			"cannot-link (%d,%d) inside one cell type", cs.CannotLink1[i], cs.CannotLink2[i])
	}
}

// TestFromMarkers_MustLinkOnly verifies the must-link rules in
// isolation: with g0=g1=g2 a single increasing ramp, no cell can sit
// below the tight low cutoff of g0 while above the tight high cutoff of
// g1, so the cannot-link rules never fire and every returned pair joins
// two top-expression cells.
func TestFromMarkers_MustLinkOnly(t *testing.T) {
	M := mat.NewDense(4, 20, nil)
	for i := 0; i < 20; i++ {
		M.Set(0, i, float64(i))
		M.Set(1, i, float64(i))
		M.Set(2, i, float64(i))
	}

	opts := pairs.DefaultOptions()
	opts.Seed = 4
	cs, err := pairs.FromMarkers(M, 6, opts)
	require.NoError(t, err)
	checkInvariants(t, cs)

	assert.Equal(t, 6, cs.MustLinks())
	assert.Zero(t, cs.CannotLinks())
	for i := range cs.MustLink1 {
		assert.GreaterOrEqual(t, cs.MustLink1[i], 16, "must-link cell below the loose high cutoff")
		assert.GreaterOrEqual(t, cs.MustLink2[i], 16, "must-link cell below the loose high cutoff")
	}
}

// TestFromMarkers_InputValidation covers the sentinel error conditions.
func TestFromMarkers_InputValidation(t *testing.T) {
	_, err := pairs.FromMarkers(nil, 5, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrNilMatrix)

	three := mat.NewDense(3, 10, nil)
	_, err = pairs.FromMarkers(three, 5, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrMarkerRows, "exactly four marker rows required")

	M := twoTypeMarkers()
	_, err = pairs.FromMarkers(M, -3, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrNegativePairCount)

	bad := pairs.DefaultOptions()
	bad.Low2 = -0.5
	_, err = pairs.FromMarkers(M, 5, bad)
	assert.ErrorIs(t, err, pairs.ErrBadQuantile)
}

// TestFromMarkerGene_HighLowSplit verifies the single-gene rules:
// must-links join two strongly expressing cells, cannot-links join a
// strong and a weak cell.
func TestFromMarkerGene_HighLowSplit(t *testing.T) {
	g := make([]float64, 40)
	for i := 0; i < 30; i++ {
		g[i] = 0.1 * float64(i)
	}
	for i := 30; i < 40; i++ {
		g[i] = 100 + float64(i-30)
	}

	opts := pairs.DefaultOptions()
	opts.Seed = 12
	cs, err := pairs.FromMarkerGene(g, 10, opts)
	require.NoError(t, err)
	checkInvariants(t, cs)

	require.Equal(t, 10, cs.Total())
	for i := range cs.MustLink1 {
		assert.Greater(t, g[cs.MustLink1[i]], 100.0)
		assert.Greater(t, g[cs.MustLink2[i]], 100.0)
	}
	for i := range cs.CannotLink1 {
		hi := g[cs.CannotLink1[i]] > 100
		lo := g[cs.CannotLink2[i]] > 100
		assert.NotEqual(t, hi, lo, "cannot-link must mix a strong and a weak cell")
	}
}

// TestFromMarkerGene_InputValidation covers the sentinel error conditions.
func TestFromMarkerGene_InputValidation(t *testing.T) {
	_, err := pairs.FromMarkerGene([]float64{1}, 5, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrTooFewSamples)

	_, err = pairs.FromMarkerGene([]float64{1, 2, 3}, -1, pairs.DefaultOptions())
	assert.ErrorIs(t, err, pairs.ErrNegativePairCount)
}

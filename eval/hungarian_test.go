package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assignmentCost sums the cost of a row→column assignment.
func assignmentCost(cost [][]float64, match []int) float64 {
	total := 0.0
	for i, j := range match {
		total += cost[i][j]
	}
	return total
}

// TestHungarian_SmallOptimal checks a 3×3 instance whose optimum is
// known by enumeration.
func TestHungarian_SmallOptimal(t *testing.T) {
	cost := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}

	match := hungarian(cost)
	assert.Equal(t, 5.0, assignmentCost(cost, match), "optimal assignment cost is 1+2+2=5")
}

// TestHungarian_Permutation verifies that each column is used exactly once.
func TestHungarian_Permutation(t *testing.T) {
	cost := [][]float64{
		{9, 11, 14, 11, 7},
		{6, 15, 13, 13, 10},
		{12, 13, 6, 8, 8},
		{11, 9, 10, 12, 9},
		{7, 12, 14, 10, 14},
	}

	match := hungarian(cost)
	seen := make(map[int]bool, len(match))
	for _, j := range match {
		assert.False(t, seen[j], "column assigned twice")
		seen[j] = true
	}
	assert.Len(t, seen, len(cost))
}

// TestHungarian_Identity checks that a diagonal-dominant instance picks
// the diagonal.
func TestHungarian_Identity(t *testing.T) {
	cost := [][]float64{
		{0, 5, 5},
		{5, 0, 5},
		{5, 5, 0},
	}

	match := hungarian(cost)
	assert.Equal(t, []int{0, 1, 2}, match)
}

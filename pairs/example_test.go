package pairs_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cellink/cellink/pairs"
)

// ExampleFromLabels turns a small annotated subset of cells into
// pairwise supervision. With no error injection the requested count is
// met exactly and every pair agrees with the labels.
func ExampleFromLabels() {
	y := []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
	pool := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}

	opts := pairs.DefaultOptions()
	opts.Seed = 42
	cs, injected, err := pairs.FromLabels(y, pool, 12, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("pairs=%d injected=%d\n", cs.Total(), injected)
	// Output:
	// pairs=12 injected=0
}

// ExampleFromEmbedding extracts constraints from a latent embedding
// with two well-separated groups of cells: near pairs become
// must-links, far pairs become cannot-links.
func ExampleFromEmbedding() {
	X := mat.NewDense(8, 2, []float64{
		0.0, 0.1,
		0.1, 0.0,
		0.2, 0.1,
		0.1, 0.2,
		9.0, 9.1,
		9.1, 9.0,
		9.2, 9.1,
		9.1, 9.2,
	})

	opts := pairs.DefaultOptions()
	opts.Seed = 7
	opts.ML, opts.CL = 0.1, 0.9
	cs, err := pairs.FromEmbedding(X, 6, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("pairs=%d\n", cs.Total())
	// Output:
	// pairs=6
}

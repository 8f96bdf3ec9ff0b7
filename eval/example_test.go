package eval_test

import (
	"fmt"

	"github.com/cellink/cellink/eval"
)

// ExampleAccuracy scores a clustering whose labels are a renaming of
// the ground truth: the optimal matching recovers the correspondence.
func ExampleAccuracy() {
	yTrue := []int{0, 0, 1, 1, 2, 2}
	yPred := []int{2, 2, 0, 0, 1, 1}

	acc, err := eval.Accuracy(yTrue, yPred)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("ACC=%.2f\n", acc)
	// Output:
	// ACC=1.00
}

// ExampleARI contrasts a perfect and an orthogonal clustering.
func ExampleARI() {
	yTrue := []int{0, 0, 1, 1}

	perfect, _ := eval.ARI(yTrue, []int{1, 1, 0, 0})
	orthogonal, _ := eval.ARI(yTrue, []int{0, 1, 0, 1})
	fmt.Printf("perfect=%.1f orthogonal=%.1f\n", perfect, orthogonal)
	// Output:
	// perfect=1.0 orthogonal=-0.5
}

// Package eval scores a predicted clustering against reference labels.
//
// Metrics:
//   - Accuracy — fraction of samples whose predicted cluster maps to
//     the true one under the optimal one-to-one relabeling (a linear
//     assignment over the label contingency table)
//   - NMI      — normalized mutual information, arithmetic-mean
//     normalization
//   - ARI      — adjusted Rand index
//
// All three are invariant under any relabeling of the predicted
// clusters; Accuracy and NMI live in [0,1], ARI in [-1,1] (≈0 for
// random assignments).
//
// Basic usage:
//
//	acc, err := eval.Accuracy(yTrue, yPred)
//	nmi, _ := eval.NMI(yTrue, yPred)
//	ari, _ := eval.ARI(yTrue, yPred)
package eval

// Package cellink is a toolkit for weak supervision in single-cell
// clustering: it mines pairwise must-link / cannot-link constraints from
// per-cell signals and scores the clusterings they help produce.
//
// 🚀 What is cellink?
//
//	A small, deterministic library that brings together:
//		• Constraint generation: sampling strategies that mine
//		  must-link / cannot-link cell pairs from true labels, latent
//		  embeddings, coordinate thresholds or marker-gene expression
//		• K-means: Lloyd's algorithm with k-means++ seeding and
//		  independent restarts, for clustering-derived constraints
//		• Evaluation: clustering accuracy via optimal assignment,
//		  normalized mutual information, adjusted Rand index
//
// ✨ Why choose cellink?
//
//   - Deterministic – every sampler takes an explicit seed; same seed,
//     same constraints, on every platform
//   - Bounded – rejection sampling always terminates; infeasible
//     requests degrade to partial results instead of hanging
//   - Minimal API – plain gonum matrices in, plain index slices out
//
// Everything is organized under three subpackages:
//
//	pairs/  — pairwise-constraint generators + shared sampling contract
//	kmeans/ — k-means partitioning used by the clustering-based generator
//	eval/   — accuracy (optimal matching), NMI, ARI
//
// The generated constraints feed a semi-supervised training loop (not
// part of this library) as extra loss-term inputs; see the pairs package
// documentation for the exact sampling contract.
package cellink

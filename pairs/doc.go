// Package pairs generates pairwise must-link / cannot-link constraints
// for semi-supervised clustering of single-cell data.
//
// 🚀 What is pairs?
//
//	Each generator draws random cell pairs and keeps the informative
//	ones according to a variant-specific rule:
//	  • FromLabels              — ground-truth labels over a candidate
//	    pool, with optional noisy-supervision error injection
//	  • FromEmbedding           — Euclidean distance quantiles over a
//	    latent embedding (close ⇒ must-link, far ⇒ cannot-link)
//	  • FromEmbeddingClustering — k-means agreement plus a distance
//	    cutoff for cross-cluster cannot-links
//	  • FromTwoCoordinates      — percentile quadrants over two
//	    embedding dimensions
//	  • FromOneCoordinate       — high/low percentile split of a single
//	    dimension, with separate must-link and cannot-link budgets
//	  • FromMarkers             — a fixed decision table over four
//	    quantile-thresholded marker genes
//	  • FromMarkerGene          — high/low expression split of one
//	    marker gene
//
// 📐 Sampling contract (all generators):
//
//   - No self-pairs: both endpoints of a pair are distinct cells.
//   - No ordered duplicate is admitted into a must-link list. The check
//     deliberately inspects only the must-link list, so the same pair
//     may legitimately appear once as a must-link and once as a
//     cannot-link; see Constraints for details.
//   - Bounded search: every rejection-sampling loop caps its total
//     attempts (MaxAttempts) and returns whatever pairs were collected
//     so far. Callers must tolerate shorter-than-requested results.
//   - Both lists are independently shuffled before return, so output
//     order carries no trace of generation order.
//   - Determinism: all randomness flows from Options.Seed; seed==0
//     selects a fixed default stream. Same seed ⇒ same constraints.
//
// ⚙️ Usage:
//
//	import "github.com/cellink/cellink/pairs"
//
//	opts := pairs.DefaultOptions()
//	opts.Seed = 42
//	opts.ML, opts.CL = 0.05, 0.95
//	cs, err := pairs.FromEmbedding(latent, 1000, opts)
//	// cs.MustLink1[i] / cs.MustLink2[i] index a must-link cell pair
//
// Complexity: each generator is O(attempts · predicate) plus the cost
// of its cutoff precomputation (O(n²·d) for distance-based variants).
package pairs

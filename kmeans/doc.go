// Package kmeans partitions the rows of a dense matrix into k clusters
// with Lloyd's algorithm.
//
// Features:
//   - k-means++ seeding: the first center is uniform, each further
//     center is drawn with probability proportional to its squared
//     distance from the nearest chosen center
//   - independent restarts (default 20) keeping the partition with the
//     lowest within-cluster sum of squares
//   - deterministic: all randomness flows from Options.Seed
//
// Basic usage:
//
//	labels, err := kmeans.Partition(X, 8, kmeans.DefaultOptions())
//	// labels[i] is the cluster index of row i, in [0,k)
//
// The package exists to serve clustering-derived constraint generation
// (see the pairs package) but is usable on its own.
package kmeans

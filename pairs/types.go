// Package pairs: shared types, options and sentinel error set.
// This file defines ONLY package-level types and sentinel errors used
// across the generators. All generators MUST return these sentinels and
// tests MUST check them via errors.Is. No generator panics on
// user-triggered error conditions.
package pairs

import "errors"

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("pairs: nil input matrix")

	// ErrTooFewSamples indicates fewer than two samples are available,
	// so no pair can be formed.
	ErrTooFewSamples = errors.New("pairs: need at least two samples")

	// ErrNegativePairCount indicates a negative requested pair count.
	ErrNegativePairCount = errors.New("pairs: negative pair count")

	// ErrPoolTooSmall indicates the candidate index pool holds fewer
	// than two entries.
	ErrPoolTooSmall = errors.New("pairs: candidate pool needs at least two entries")

	// ErrIndexOutOfRange indicates a pool index outside the label vector.
	ErrIndexOutOfRange = errors.New("pairs: pool index out of range")

	// ErrBadQuantile indicates a quantile/percentile cutoff outside [0,1].
	ErrBadQuantile = errors.New("pairs: quantile cutoff outside [0,1]")

	// ErrBadRow indicates a row index outside the input matrix.
	ErrBadRow = errors.New("pairs: row index out of range")

	// ErrMarkerRows indicates the marker matrix does not carry exactly
	// the four marker-gene rows the decision table is defined over.
	ErrMarkerRows = errors.New("pairs: marker matrix must have exactly 4 rows")
)

// Attempt caps for the rejection-sampling loops. A loop that exhausts
// its cap returns the pairs collected so far instead of hanging on a
// predicate that is too selective for the data.
const (
	// defaultMaxAttempts bounds generators whose predicates are usually
	// satisfiable (labels, distance, clustering, markers, one-coordinate).
	defaultMaxAttempts = 1_000_000

	// quadrantMaxAttempts bounds the two-coordinate quadrant generator,
	// whose four-corner predicate is by far the most selective.
	quadrantMaxAttempts = 20000 * 20000
)

// Options configures the constraint generators. A single options struct
// serves all variants; each generator reads only the fields that concern
// it and ignores the rest.
//
// Fields:
//   - Seed        — RNG seed; 0 selects the fixed default stream.
//   - MaxAttempts — total sampling attempts before giving up; 0 selects
//     the variant default (quadrantMaxAttempts for FromTwoCoordinates,
//     defaultMaxAttempts elsewhere).
//   - ErrorRate   — FromLabels only: fraction of the requested pairs to
//     deliberately mislabel, simulating noisy supervision.
//   - ML, CL      — distance-quantile cutoffs: pairs closer than the
//     ML-quantile become must-links, farther than the CL-quantile become
//     cannot-links (FromEmbedding, FromEmbeddingClustering).
//   - LC, HC      — low/high percentile cutoffs for the coordinate and
//     single-marker variants, as fractions in [0,1].
//   - Low1, High1 — tight expression-quantile pair for the marker
//     decision table (cannot-link rules).
//   - Low2, High2 — loose expression-quantile pair for the marker
//     decision table (must-link rules).
type Options struct {
	Seed        int64
	MaxAttempts int
	ErrorRate   float64
	ML          float64
	CL          float64
	LC          float64
	HC          float64
	Low1        float64
	High1       float64
	Low2        float64
	High2       float64
}

// DefaultOptions returns the canonical defaults: deterministic default
// stream, variant-default attempt caps, no error injection, ML/CL
// distance quantiles 0.1/0.9, LC/HC percentiles 0.2/0.9, marker
// quantile pairs 0.4/0.6 (tight) and 0.2/0.8 (loose).
func DefaultOptions() Options {
	return Options{
		ML:    0.1,
		CL:    0.9,
		LC:    0.2,
		HC:    0.9,
		Low1:  0.4,
		High1: 0.6,
		Low2:  0.2,
		High2: 0.8,
	}
}

// maxAttempts resolves the effective attempt cap for a variant whose
// default is def.
func (o Options) maxAttempts(def int) int {
	if o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return def
}

// Constraints holds the four parallel index lists a generator returns.
// MustLink1[i] and MustLink2[i] form the i-th must-link pair (asserted
// same latent cluster); CannotLink1[i] and CannotLink2[i] form the i-th
// cannot-link pair (asserted different clusters).
//
// Guarantees:
//   - no pair links a cell to itself;
//   - no ordered pair occurs twice within the must-link lists;
//   - both lists are shuffled independently of generation order.
//
// Deliberately NOT guaranteed: a pair admitted as a must-link may also
// occur in the cannot-link lists — duplicate rejection inspects the
// must-link lists only. Downstream consumers that require disjoint
// categories must filter for themselves.
type Constraints struct {
	MustLink1   []int
	MustLink2   []int
	CannotLink1 []int
	CannotLink2 []int
}

// MustLinks returns the number of must-link pairs.
func (c Constraints) MustLinks() int { return len(c.MustLink1) }

// CannotLinks returns the number of cannot-link pairs.
func (c Constraints) CannotLinks() int { return len(c.CannotLink1) }

// Total returns the total number of pairs across both categories.
// Comparing Total against the requested count is how callers detect
// attempt-cap truncation.
func (c Constraints) Total() int { return len(c.MustLink1) + len(c.CannotLink1) }

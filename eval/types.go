// Package eval: sentinel error set.
package eval

import "errors"

var (
	// ErrLengthMismatch indicates the two label vectors differ in length.
	// This is a programmer error at the call site, surfaced fail-fast.
	ErrLengthMismatch = errors.New("eval: label vectors differ in length")

	// ErrEmptyInput indicates empty label vectors.
	ErrEmptyInput = errors.New("eval: empty label vectors")

	// ErrNegativeLabel indicates a negative label value; labels must be
	// small non-negative integers.
	ErrNegativeLabel = errors.New("eval: labels must be non-negative")
)

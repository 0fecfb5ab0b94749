// SPDX-License-Identifier: MIT
// Package gp: sentinel error set (unified, consistent).
// All public operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package gp

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "gp: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil collaborators -> option validation -> shape/feature checks ->
// numeric (factorization) failures.

var (
	// ErrNilKernel indicates that a nil kernel was passed to a constructor.
	ErrNilKernel = errors.New("gp: kernel is nil")

	// ErrNilPoints indicates that a nil index-points matrix was supplied.
	ErrNilPoints = errors.New("gp: index points are nil")

	// ErrEmptyPoints indicates an index-points matrix with zero rows or cols.
	ErrEmptyPoints = errors.New("gp: index points are empty")

	// ErrNilMatrix indicates that a nil matrix was passed to AddDiagonalShift.
	ErrNilMatrix = errors.New("gp: matrix is nil")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't square in its last two dimensions.
	ErrNonSquare = errors.New("gp: matrix is not square")

	// ErrNilMeanFunc indicates WithMeanFunc(nil): the Go analogue of a
	// non-callable mean function. Detected before any kernel evaluation.
	ErrNilMeanFunc = errors.New("gp: mean function is nil")

	// ErrBadJitter indicates a negative or non-finite jitter under
	// WithValidateArgs. Without validation the value is passed through
	// unchecked (caller's responsibility).
	ErrBadJitter = errors.New("gp: jitter must be non-negative and finite")

	// ErrFeatureDims indicates that the index points' trailing dimension does
	// not equal the kernel's FeatureDims.
	ErrFeatureDims = errors.New("gp: feature dimensions mismatch")

	// ErrShapeMismatch indicates mutually incompatible shapes: a mean vector
	// whose length is neither 1 nor the event size, a query vector of the
	// wrong length, or batch lengths that do not broadcast.
	ErrShapeMismatch = errors.New("gp: incompatible shapes")

	// ErrNotPositiveDefinite indicates that Cholesky factorization of the
	// stabilized covariance failed. The dominant real-world cause is jitter
	// too small relative to a near-degenerate kernel matrix (for example,
	// near-duplicate index points). Retry with larger jitter is a caller
	// decision; it is never performed internally.
	ErrNotPositiveDefinite = errors.New("gp: covariance matrix is not positive definite")

	// ErrEmptyBatch indicates a batch constructor called with no kernels or
	// no point sets.
	ErrEmptyBatch = errors.New("gp: batch is empty")

	// ErrBadSampleCount indicates SampleN(n) with n < 1.
	ErrBadSampleCount = errors.New("gp: sample count must be >= 1")
)

// Package gp: explicit single-axis batching. Numeric libraries with implicit
// broadcasting carry batch dimensions [b1..bB] invisibly; here the batch is
// one explicit axis (a slice) with one documented rule: a length-1 slice
// broadcasts against any length, otherwise lengths must match exactly.
package gp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/huyuxiang/probability/kernel"
)

// Batch is a fixed-size collection of GaussianProcess marginals sharing one
// event size, constructed in lockstep from broadcast (kernel, points) pairs.
// Like its elements, a Batch never mutates after construction.
type Batch struct {
	gps       []*GaussianProcess
	eventSize int
}

// NewBatch constructs one marginal per broadcast (kernels, points) pair.
// len(kernels) and len(points) must be equal, or either may be 1 to reuse
// that element across the batch. Options apply to every element; all point
// sets must produce the same event size.
//
// Errors:
//   - ErrEmptyBatch    — kernels or points is empty.
//   - ErrShapeMismatch — lengths do not broadcast, or event sizes differ.
//   - any per-element error from New, wrapped with the batch index.
func NewBatch(kernels []kernel.Kernel, points []*mat.Dense, opts ...Option) (*Batch, error) {
	if len(kernels) == 0 || len(points) == 0 {
		return nil, ErrEmptyBatch
	}
	n, err := broadcastLen(len(kernels), len(points))
	if err != nil {
		return nil, err
	}

	gps := make([]*GaussianProcess, n)
	for i := 0; i < n; i++ {
		g, err := New(kernels[broadcastIdx(i, len(kernels))], points[broadcastIdx(i, len(points))], opts...)
		if err != nil {
			return nil, fmt.Errorf("gp.NewBatch: element %d: %w", i, err)
		}
		if i > 0 && g.EventSize() != gps[0].EventSize() {
			return nil, fmt.Errorf("gp.NewBatch: element %d has event size %d, element 0 has %d: %w",
				i, g.EventSize(), gps[0].EventSize(), ErrShapeMismatch)
		}
		gps[i] = g
	}

	return &Batch{gps: gps, eventSize: gps[0].EventSize()}, nil
}

// Len returns the batch size B.
func (b *Batch) Len() int { return len(b.gps) }

// EventSize returns the event size shared by all batch elements.
func (b *Batch) EventSize() int { return b.eventSize }

// At returns the i-th marginal. Panics on out-of-range i, as slice indexing
// would (programmer error, not a user-triggered condition).
func (b *Batch) At(i int) *GaussianProcess { return b.gps[i] }

// Means returns the batch of mean vectors as a B×e matrix, one row per
// batch element.
func (b *Batch) Means() *mat.Dense {
	out := mat.NewDense(len(b.gps), b.eventSize, nil)
	for i, g := range b.gps {
		out.SetRow(i, g.Mean())
	}

	return out
}

// LogProb evaluates the log-density of the same joint value v under every
// batch element, returning one value per element.
//
// Errors: ErrShapeMismatch if len(v) != EventSize.
func (b *Batch) LogProb(v []float64) ([]float64, error) {
	out := make([]float64, len(b.gps))
	for i, g := range b.gps {
		lp, err := g.LogProb(v)
		if err != nil {
			return nil, err
		}
		out[i] = lp
	}

	return out, nil
}

// broadcastLen merges two batch lengths under the length-1 broadcast rule.
func broadcastLen(a, b int) (int, error) {
	switch {
	case a == b:
		return a, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	default:
		return 0, fmt.Errorf("batch lengths %d and %d do not broadcast: %w", a, b, ErrShapeMismatch)
	}
}

// broadcastIdx maps a batch position onto a possibly length-1 operand.
func broadcastIdx(i, n int) int {
	if n == 1 {
		return 0
	}

	return i
}

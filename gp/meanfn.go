package gp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MeanFunc maps a set of index points (e×F matrix, one point per row) to the
// GP's prior mean at those points. The returned slice must have length e, or
// length 1 to be broadcast across all points. Implementations must be pure:
// no mutation of x, same output for same input.
type MeanFunc func(x mat.Matrix) ([]float64, error)

// ZeroMean is the default mean function: scalar zero, broadcast over the
// index points.
func ZeroMean(_ mat.Matrix) ([]float64, error) {
	return []float64{0}, nil
}

// ConstMean returns a mean function that is the constant c everywhere.
func ConstMean(c float64) MeanFunc {
	return func(_ mat.Matrix) ([]float64, error) {
		return []float64{c}, nil
	}
}

// broadcastMean resolves a raw mean vector against the event size: a length-e
// vector is copied through, a length-1 vector is broadcast, anything else is
// ErrShapeMismatch.
func broadcastMean(raw []float64, eventSize int) ([]float64, error) {
	loc := make([]float64, eventSize)
	switch len(raw) {
	case eventSize:
		copy(loc, raw)
	case 1:
		for i := range loc {
			loc[i] = raw[0]
		}
	default:
		return nil, fmt.Errorf("mean function returned %d values for %d index points: %w",
			len(raw), eventSize, ErrShapeMismatch)
	}

	return loc, nil
}

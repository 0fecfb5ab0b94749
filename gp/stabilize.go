// SPDX-License-Identifier: MIT

package gp

import "gonum.org/v1/gonum/mat"

// AddDiagonalShift returns a copy of m with shift added to every diagonal
// entry. Off-diagonal entries are untouched, m itself is never mutated, and
// the result has m's exact shape.
//
// Errors:
//   - ErrNilMatrix — m is nil.
//   - ErrNonSquare — m is not square.
//
// Complexity: O(n²) time and memory (one copy of m).
func AddDiagonalShift(m mat.Matrix, shift float64) (*mat.Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	out := mat.DenseCopyOf(m)
	for i := 0; i < r; i++ {
		out.Set(i, i, out.At(i, i)+shift)
	}

	return out, nil
}

// shiftedSym is AddDiagonalShift specialized to symmetric matrices, keeping
// the mat.Symmetric type needed by Cholesky factorization. Squareness is
// guaranteed by the type, so no error path exists.
func shiftedSym(k *mat.SymDense, shift float64) *mat.SymDense {
	n := k.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	out.CopySym(k)
	for i := 0; i < n; i++ {
		out.SetSym(i, i, out.At(i, i)+shift)
	}

	return out
}

// Package kernel: the Kernel capability interface, sentinel errors, and the
// pairwise matrix evaluators shared by all concrete kernels.
package kernel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by kernel constructors and matrix evaluators.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context is essential; callers
// match with errors.Is.
var (
	// ErrNilKernel indicates that a nil Kernel was passed to an evaluator.
	ErrNilKernel = errors.New("kernel: kernel is nil")

	// ErrNilPoints indicates that a nil point matrix was passed to an evaluator.
	ErrNilPoints = errors.New("kernel: points matrix is nil")

	// ErrEmptyPoints indicates a points matrix with zero rows or zero columns.
	ErrEmptyPoints = errors.New("kernel: points matrix is empty")

	// ErrFeatureDims indicates that the trailing (feature) dimension of a
	// points matrix does not equal the kernel's FeatureDims.
	ErrFeatureDims = errors.New("kernel: feature dimensions mismatch")

	// ErrBadAmplitude indicates a non-positive or non-finite amplitude.
	ErrBadAmplitude = errors.New("kernel: amplitude must be positive and finite")

	// ErrBadLengthScale indicates a non-positive or non-finite length scale.
	ErrBadLengthScale = errors.New("kernel: length scale must be positive and finite")

	// ErrBadVariance indicates a negative or non-finite variance.
	ErrBadVariance = errors.New("kernel: variance must be non-negative and finite")

	// ErrBadMixtureRate indicates a non-positive scale-mixture rate for the
	// rational-quadratic kernel.
	ErrBadMixtureRate = errors.New("kernel: scale-mixture rate must be positive and finite")

	// ErrBadFeatureDims indicates a feature dimension count < 1.
	ErrBadFeatureDims = errors.New("kernel: feature dims must be >= 1")

	// ErrMixedFeatureDims indicates composed kernels with different feature dims.
	ErrMixedFeatureDims = errors.New("kernel: composed kernels have different feature dims")
)

// Kernel is the covariance-function capability consumed by the gp package.
//
// Cov returns the covariance between two index points, each a feature vector
// of length FeatureDims. Implementations must be symmetric (Cov(x,y) ==
// Cov(y,x)) and positive semidefinite in the usual kernel sense; neither
// property is checked here — a violation surfaces later as a Cholesky
// failure in the consumer.
//
// Implementations must be side-effect-free: the same Kernel value may be
// shared by several distributions across goroutines without coordination.
type Kernel interface {
	// Cov returns k(x, y). Both slices have length FeatureDims.
	Cov(x, y []float64) float64

	// FeatureDims reports the number of trailing feature dimensions each
	// index point carries.
	FeatureDims() int
}

// Matrix evaluates k pairwise over two point sets a (ra×F) and b (rb×F) and
// returns the ra×rb cross-covariance matrix K[i,j] = k.Cov(a[i], b[j]).
//
// Errors:
//   - ErrNilKernel / ErrNilPoints — nil collaborator.
//   - ErrEmptyPoints              — a or b has zero rows/cols.
//   - ErrFeatureDims              — column count differs from k.FeatureDims().
//
// Complexity: O(ra·rb·F) time, O(ra·rb) memory.
func Matrix(k Kernel, a, b mat.Matrix) (*mat.Dense, error) {
	rowsA, err := pointRows(k, a)
	if err != nil {
		return nil, fmt.Errorf("kernel.Matrix: %w", err)
	}
	rowsB, err := pointRows(k, b)
	if err != nil {
		return nil, fmt.Errorf("kernel.Matrix: %w", err)
	}

	out := mat.NewDense(len(rowsA), len(rowsB), nil)
	for i, x := range rowsA {
		for j, y := range rowsB {
			out.Set(i, j, k.Cov(x, y))
		}
	}

	return out, nil
}

// SymMatrix evaluates k pairwise over a single point set x (e×F) and returns
// the e×e symmetric covariance matrix K[i,j] = k.Cov(x[i], x[j]). Only the
// upper triangle is evaluated; symmetry of Cov is assumed, not verified.
//
// Errors: same as Matrix.
//
// Complexity: O(e²·F/2) time, O(e²) memory.
func SymMatrix(k Kernel, x mat.Matrix) (*mat.SymDense, error) {
	rows, err := pointRows(k, x)
	if err != nil {
		return nil, fmt.Errorf("kernel.SymMatrix: %w", err)
	}

	out := mat.NewSymDense(len(rows), nil)
	for i, xi := range rows {
		for j := i; j < len(rows); j++ {
			out.SetSym(i, j, k.Cov(xi, rows[j]))
		}
	}

	return out, nil
}

// pointRows validates (k, m) and extracts each row of m into its own slice.
// Returned slices are copies; callers may retain them freely.
func pointRows(k Kernel, m mat.Matrix) ([][]float64, error) {
	if k == nil {
		return nil, ErrNilKernel
	}
	if m == nil {
		return nil, ErrNilPoints
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyPoints
	}
	if c != k.FeatureDims() {
		return nil, fmt.Errorf("points have %d feature dims, kernel expects %d: %w",
			c, k.FeatureDims(), ErrFeatureDims)
	}

	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, m)
	}

	return rows, nil
}

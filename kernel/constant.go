package kernel

import "math"

var (
	_ Kernel = (*Constant)(nil)
	_ Kernel = (*White)(nil)
)

// Constant returns the same covariance for every pair of points:
//
//	k(x, y) = variance
//
// On its own it yields a rank-one (degenerate) covariance matrix; it is
// mainly useful inside Sum/Product compositions, shifting or scaling another
// kernel.
type Constant struct {
	variance    float64
	featureDims int
}

// NewConstant builds a constant kernel.
//
// Errors:
//   - ErrBadVariance    — variance < 0 or non-finite.
//   - ErrBadFeatureDims — featureDims < 1.
func NewConstant(variance float64, featureDims int) (*Constant, error) {
	if err := checkVariance(variance, featureDims); err != nil {
		return nil, err
	}

	return &Constant{variance: variance, featureDims: featureDims}, nil
}

// Cov returns the configured variance regardless of x and y.
func (k *Constant) Cov(_, _ []float64) float64 { return k.variance }

// FeatureDims reports the per-point feature dimensionality.
func (k *Constant) FeatureDims() int { return k.featureDims }

// White is the white-noise kernel:
//
//	k(x, y) = variance  if x == y (elementwise), else 0
//
// Over a set of distinct points it produces variance·I, i.e. independent
// Gaussian noise per coordinate. Adding White to another kernel is the
// modelled counterpart of the constructor-level jitter in package gp.
type White struct {
	variance    float64
	featureDims int
}

// NewWhite builds a white-noise kernel. Errors as in NewConstant.
func NewWhite(variance float64, featureDims int) (*White, error) {
	if err := checkVariance(variance, featureDims); err != nil {
		return nil, err
	}

	return &White{variance: variance, featureDims: featureDims}, nil
}

// Cov returns variance when x and y are elementwise equal, 0 otherwise.
// Equality is exact: the kernel keys on identical coordinates, not proximity.
func (k *White) Cov(x, y []float64) float64 {
	for i := range x {
		if x[i] != y[i] {
			return 0
		}
	}

	return k.variance
}

// FeatureDims reports the per-point feature dimensionality.
func (k *White) FeatureDims() int { return k.featureDims }

// checkVariance validates the (variance, featureDims) pair shared by the
// degenerate kernels above. Zero variance is legal (the zero kernel).
func checkVariance(variance float64, featureDims int) error {
	if variance < 0 || math.IsInf(variance, 0) || math.IsNaN(variance) {
		return ErrBadVariance
	}
	if featureDims < 1 {
		return ErrBadFeatureDims
	}

	return nil
}

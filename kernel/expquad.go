package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

var _ Kernel = (*ExponentiatedQuadratic)(nil) // compile-time interface check

// ExponentiatedQuadratic is the classic squared-exponential (RBF) kernel:
//
//	k(x, y) = amplitude² · exp( −‖x−y‖² / (2·lengthScale²) )
//
// It is positive definite on any set of distinct points, infinitely smooth,
// and the default choice for GP priors. With amplitude = lengthScale = 1 the
// covariance between points at distance 2 is exp(−2) ≈ 0.1353.
type ExponentiatedQuadratic struct {
	amplitude   float64
	lengthScale float64
	featureDims int
}

// NewExponentiatedQuadratic builds an RBF kernel over featureDims-dimensional
// index points.
//
// Errors:
//   - ErrBadAmplitude   — amplitude ≤ 0 or non-finite.
//   - ErrBadLengthScale — lengthScale ≤ 0 or non-finite.
//   - ErrBadFeatureDims — featureDims < 1.
func NewExponentiatedQuadratic(amplitude, lengthScale float64, featureDims int) (*ExponentiatedQuadratic, error) {
	if err := checkAmpScale(amplitude, lengthScale, featureDims); err != nil {
		return nil, err
	}

	return &ExponentiatedQuadratic{
		amplitude:   amplitude,
		lengthScale: lengthScale,
		featureDims: featureDims,
	}, nil
}

// Cov returns amplitude²·exp(−d²/(2ℓ²)) with d = ‖x−y‖₂.
func (k *ExponentiatedQuadratic) Cov(x, y []float64) float64 {
	d := floats.Distance(x, y, 2)

	return k.amplitude * k.amplitude * math.Exp(-d*d/(2*k.lengthScale*k.lengthScale))
}

// FeatureDims reports the per-point feature dimensionality.
func (k *ExponentiatedQuadratic) FeatureDims() int { return k.featureDims }

// Amplitude returns the configured amplitude hyperparameter.
func (k *ExponentiatedQuadratic) Amplitude() float64 { return k.amplitude }

// LengthScale returns the configured length-scale hyperparameter.
func (k *ExponentiatedQuadratic) LengthScale() float64 { return k.lengthScale }

// checkAmpScale validates the (amplitude, lengthScale, featureDims) triple
// shared by all stationary kernels in this package.
func checkAmpScale(amplitude, lengthScale float64, featureDims int) error {
	if amplitude <= 0 || math.IsInf(amplitude, 0) || math.IsNaN(amplitude) {
		return ErrBadAmplitude
	}
	if lengthScale <= 0 || math.IsInf(lengthScale, 0) || math.IsNaN(lengthScale) {
		return ErrBadLengthScale
	}
	if featureDims < 1 {
		return ErrBadFeatureDims
	}

	return nil
}

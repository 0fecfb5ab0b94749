package kernel

import "math"

var _ Kernel = (*RationalQuadratic)(nil) // compile-time interface check

// RationalQuadratic is an infinite scale mixture of RBF kernels:
//
//	k(x, y) = amplitude² · (1 + d² / (2·α·ℓ²))^(−α)
//
// where α > 0 is the scale-mixture rate. As α → ∞ it converges to
// ExponentiatedQuadratic; small α yields heavier-tailed covariance decay.
type RationalQuadratic struct {
	amplitude   float64
	lengthScale float64
	mixtureRate float64
	featureDims int
}

// NewRationalQuadratic builds a rational-quadratic kernel.
//
// Errors:
//   - ErrBadAmplitude / ErrBadLengthScale / ErrBadFeatureDims — as elsewhere.
//   - ErrBadMixtureRate — mixtureRate ≤ 0 or non-finite.
func NewRationalQuadratic(amplitude, lengthScale, mixtureRate float64, featureDims int) (*RationalQuadratic, error) {
	if err := checkAmpScale(amplitude, lengthScale, featureDims); err != nil {
		return nil, err
	}
	if mixtureRate <= 0 || math.IsInf(mixtureRate, 0) || math.IsNaN(mixtureRate) {
		return nil, ErrBadMixtureRate
	}

	return &RationalQuadratic{
		amplitude:   amplitude,
		lengthScale: lengthScale,
		mixtureRate: mixtureRate,
		featureDims: featureDims,
	}, nil
}

// Cov returns amplitude²·(1 + d²/(2αℓ²))^(−α).
func (k *RationalQuadratic) Cov(x, y []float64) float64 {
	d := dist(x, y)
	base := 1 + d*d/(2*k.mixtureRate*k.lengthScale*k.lengthScale)

	return k.amplitude * k.amplitude * math.Pow(base, -k.mixtureRate)
}

// FeatureDims reports the per-point feature dimensionality.
func (k *RationalQuadratic) FeatureDims() int { return k.featureDims }

// Package kernel: the Matérn family. Each member fixes the smoothness
// parameter ν at a half-integer (1/2, 3/2, 5/2), which is where the Matérn
// covariance admits a closed form. Smaller ν means rougher sample paths;
// ν → ∞ recovers ExponentiatedQuadratic.
package kernel

import "math"

var (
	_ Kernel = (*Matern12)(nil)
	_ Kernel = (*Matern32)(nil)
	_ Kernel = (*Matern52)(nil)
)

// Matern12 is the ν = 1/2 Matérn kernel (Ornstein–Uhlenbeck):
//
//	k(x, y) = amplitude² · exp(−d/ℓ)
//
// Sample paths are continuous but nowhere differentiable.
type Matern12 struct {
	amplitude   float64
	lengthScale float64
	featureDims int
}

// NewMatern12 builds a ν = 1/2 Matérn kernel. Errors as in
// NewExponentiatedQuadratic.
func NewMatern12(amplitude, lengthScale float64, featureDims int) (*Matern12, error) {
	if err := checkAmpScale(amplitude, lengthScale, featureDims); err != nil {
		return nil, err
	}

	return &Matern12{amplitude: amplitude, lengthScale: lengthScale, featureDims: featureDims}, nil
}

// Cov returns amplitude²·exp(−d/ℓ).
func (k *Matern12) Cov(x, y []float64) float64 {
	return k.amplitude * k.amplitude * math.Exp(-dist(x, y)/k.lengthScale)
}

// FeatureDims reports the per-point feature dimensionality.
func (k *Matern12) FeatureDims() int { return k.featureDims }

// Matern32 is the ν = 3/2 Matérn kernel:
//
//	k(x, y) = amplitude² · (1 + λd) · exp(−λd),  λ = √3/ℓ
//
// Sample paths are once differentiable.
type Matern32 struct {
	amplitude   float64
	lambda      float64 // √3 / lengthScale, precomputed
	featureDims int
}

// NewMatern32 builds a ν = 3/2 Matérn kernel. Errors as in
// NewExponentiatedQuadratic.
func NewMatern32(amplitude, lengthScale float64, featureDims int) (*Matern32, error) {
	if err := checkAmpScale(amplitude, lengthScale, featureDims); err != nil {
		return nil, err
	}

	return &Matern32{amplitude: amplitude, lambda: math.Sqrt(3) / lengthScale, featureDims: featureDims}, nil
}

// Cov returns amplitude²·(1+λd)·exp(−λd).
func (k *Matern32) Cov(x, y []float64) float64 {
	ld := k.lambda * dist(x, y)

	return k.amplitude * k.amplitude * (1 + ld) * math.Exp(-ld)
}

// FeatureDims reports the per-point feature dimensionality.
func (k *Matern32) FeatureDims() int { return k.featureDims }

// Matern52 is the ν = 5/2 Matérn kernel:
//
//	k(x, y) = amplitude² · (1 + λd + λ²d²/3) · exp(−λd),  λ = √5/ℓ
//
// Sample paths are twice differentiable; a common compromise between the
// roughness of Matern32 and the extreme smoothness of the RBF kernel.
type Matern52 struct {
	amplitude   float64
	lambda      float64 // √5 / lengthScale, precomputed
	featureDims int
}

// NewMatern52 builds a ν = 5/2 Matérn kernel. Errors as in
// NewExponentiatedQuadratic.
func NewMatern52(amplitude, lengthScale float64, featureDims int) (*Matern52, error) {
	if err := checkAmpScale(amplitude, lengthScale, featureDims); err != nil {
		return nil, err
	}

	return &Matern52{amplitude: amplitude, lambda: math.Sqrt(5) / lengthScale, featureDims: featureDims}, nil
}

// Cov returns amplitude²·(1+λd+λ²d²/3)·exp(−λd).
func (k *Matern52) Cov(x, y []float64) float64 {
	ld := k.lambda * dist(x, y)

	return k.amplitude * k.amplitude * (1 + ld + ld*ld/3) * math.Exp(-ld)
}

// FeatureDims reports the per-point feature dimensionality.
func (k *Matern52) FeatureDims() int { return k.featureDims }

// dist is the Euclidean distance ‖x−y‖₂ without intermediate allocation.
func dist(x, y []float64) float64 {
	var s float64
	for i := range x {
		d := x[i] - y[i]
		s += d * d
	}

	return math.Sqrt(s)
}

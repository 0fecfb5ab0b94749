// Package kernel: Sum and Product combinators. Sums and products of
// positive-semidefinite kernels are positive semidefinite, so compositions
// remain valid GP covariance functions.
package kernel

var (
	_ Kernel = (*Sum)(nil)
	_ Kernel = (*Product)(nil)
)

// Sum is the pointwise sum of two or more kernels:
//
//	k(x, y) = k₁(x, y) + k₂(x, y) + ...
//
// Nested sums are flattened at construction, so NewSum(NewSum(a, b), c)
// holds the three parts [a, b, c] directly.
type Sum struct {
	parts       []Kernel
	featureDims int
}

// NewSum composes two kernels additively.
//
// Errors:
//   - ErrNilKernel        — either operand is nil.
//   - ErrMixedFeatureDims — operands disagree on FeatureDims.
func NewSum(first, second Kernel) (*Sum, error) {
	parts, dims, err := composeParts(first, second, flattenSum)
	if err != nil {
		return nil, err
	}

	return &Sum{parts: parts, featureDims: dims}, nil
}

// Cov returns the sum of the part covariances.
func (k *Sum) Cov(x, y []float64) float64 {
	var s float64
	for _, part := range k.parts {
		s += part.Cov(x, y)
	}

	return s
}

// FeatureDims reports the per-point feature dimensionality shared by all parts.
func (k *Sum) FeatureDims() int { return k.featureDims }

// Product is the pointwise product of two or more kernels:
//
//	k(x, y) = k₁(x, y) · k₂(x, y) · ...
//
// Nested products are flattened at construction like Sum.
type Product struct {
	parts       []Kernel
	featureDims int
}

// NewProduct composes two kernels multiplicatively. Errors as in NewSum.
func NewProduct(first, second Kernel) (*Product, error) {
	parts, dims, err := composeParts(first, second, flattenProduct)
	if err != nil {
		return nil, err
	}

	return &Product{parts: parts, featureDims: dims}, nil
}

// Cov returns the product of the part covariances.
func (k *Product) Cov(x, y []float64) float64 {
	s := 1.0
	for _, part := range k.parts {
		s *= part.Cov(x, y)
	}

	return s
}

// FeatureDims reports the per-point feature dimensionality shared by all parts.
func (k *Product) FeatureDims() int { return k.featureDims }

// flattenSum expands a nested *Sum into its parts; any other kernel is a
// single part.
func flattenSum(k Kernel) []Kernel {
	if s, ok := k.(*Sum); ok {
		return s.parts
	}

	return []Kernel{k}
}

// flattenProduct expands a nested *Product into its parts.
func flattenProduct(k Kernel) []Kernel {
	if p, ok := k.(*Product); ok {
		return p.parts
	}

	return []Kernel{k}
}

// composeParts validates both operands, flattens them with the supplied
// expander, and checks the parts agree on feature dimensionality.
func composeParts(first, second Kernel, flatten func(Kernel) []Kernel) ([]Kernel, int, error) {
	if first == nil || second == nil {
		return nil, 0, ErrNilKernel
	}
	if first.FeatureDims() != second.FeatureDims() {
		return nil, 0, ErrMixedFeatureDims
	}

	parts := make([]Kernel, 0, 2)
	parts = append(parts, flatten(first)...)
	parts = append(parts, flatten(second)...)

	return parts, first.FeatureDims(), nil
}

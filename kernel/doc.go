// Package kernel provides positive-semidefinite covariance functions for
// Gaussian processes, plus helpers that evaluate them pairwise over batches
// of index points.
//
// 🚀 What is a kernel?
//
//	A covariance function k(x, y) over an index set; any matrix built from
//	pairwise evaluations over a finite point set is positive semidefinite.
//	Kernels fully determine (up to the mean) the behaviour of functions
//	drawn from a GP prior. They are widely used in:
//	  • GP regression & classification priors
//	  • Bayesian optimization surrogates
//	  • Spatial statistics (kriging)
//
// ✨ Key features:
//   - ExponentiatedQuadratic (RBF), Matérn 1/2, 3/2, 5/2, RationalQuadratic
//   - Constant and White (noise) kernels for composition
//   - Sum and Product combinators with automatic flattening
//   - Matrix / SymMatrix helpers producing gonum matrices
//
// ⚙️ Usage:
//
//	import "github.com/huyuxiang/probability/kernel"
//
//	k, err := kernel.NewExponentiatedQuadratic(1.0, 1.0, 1)
//	if err != nil { ... }
//
//	x := mat.NewDense(3, 1, []float64{-1, 0, 1})
//	K, err := kernel.SymMatrix(k, x) // 3×3 covariance matrix
//
// All constructors validate hyperparameters eagerly and return sentinel
// errors (ErrBadAmplitude, ErrBadLengthScale, ...) matched via errors.Is.
// Kernel values themselves are immutable after construction and safe for
// concurrent use.
package kernel

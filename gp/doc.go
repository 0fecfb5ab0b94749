// Package gp implements the marginal distribution of a Gaussian process at a
// finite set of index points, exposed as a multivariate normal.
//
// 🚀 What is a GP marginal?
//
//	A Gaussian process is an indexed collection of random variables, any
//	finite subset of which is jointly Gaussian. Restricted to points
//	x₁..x‌ₑ, the GP is exactly a multivariate normal with
//	  mean[i]  = meanFunc(xᵢ)
//	  cov[i,j] = kernel(xᵢ, xⱼ)
//	This package turns (kernel, index points, mean function) into that
//	normal: it evaluates the covariance matrix, stabilizes its diagonal
//	with a jitter term, Cholesky-factors it, and hands (mean, factor) to
//	gonum's distmv machinery for sampling and densities.
//
// ✨ Key features:
//   - one documented numerical-stability policy: K' = K + jitter·I
//   - explicit Cholesky factorization; failure surfaces as
//     ErrNotPositiveDefinite instead of silent NaNs
//   - immutable distributions: construct once, query forever
//   - optional single-axis batch construction with length-1 broadcasting
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/huyuxiang/probability/gp"
//	  "github.com/huyuxiang/probability/kernel"
//	)
//
//	k, _ := kernel.NewExponentiatedQuadratic(1, 1, 1)
//	x := mat.NewDense(3, 1, []float64{-1, 0, 1})
//
//	g, err := gp.New(k, x,
//	  gp.WithJitter(1e-6),     // default; shown for clarity
//	  gp.WithValidateArgs(),   // strict argument checking
//	)
//	if err != nil { ... }
//
//	draws, _ := g.SampleN(10)      // 10 joint samples, one per row
//	lp, _ := g.LogProb(draws.RawRowView(0))
//
// Reported statistics reflect the STABILIZED covariance K + jitter·I, not
// the raw kernel output; jitter is equivalent to adding independent
// zero-mean Gaussian noise of variance jitter to each sample coordinate.
//
// This distribution is the unconditional GP prior. Posterior inference
// given observations is out of scope.
package gp

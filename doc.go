// Package probability is a small, deterministic toolkit for Gaussian-process
// priors: covariance kernels plus the exact multivariate-normal marginal of a
// GP at finitely many index points.
//
// 🚀 What is probability?
//
//	A pure-Go library (gonum under the hood) that brings together:
//		• Covariance kernels: exponentiated-quadratic, Matérn family,
//		  rational-quadratic, constant, white noise, sums & products
//		• GP marginals: mean vector + jittered, Cholesky-factored covariance
//		• Gaussian statistics: sampling, log-density, variance, entropy
//
// ✨ Why choose probability?
//
//   - Predictable numerics – one documented jitter policy, explicit Cholesky
//   - Rock-solid guarantees – immutable distributions, sentinel errors
//   - Extensible – kernels and mean functions are plain interfaces/functions
//
// Everything is organized under two subpackages:
//
//	kernel/ — positive-semidefinite covariance functions & pairwise matrices
//	gp/     — the GaussianProcess marginal distribution built on gonum/distmv
//
// Quick sketch:
//
//	k, _ := kernel.NewExponentiatedQuadratic(1, 1, 1)
//	g, _ := gp.New(k, mat.NewDense(3, 1, []float64{-1, 0, 1}))
//	draws, _ := g.SampleN(10) // 10 joint samples at the index points
//
// Dive into the package docs of kernel and gp for the full contract,
// error taxonomy, and worked examples.
//
//	go get github.com/huyuxiang/probability
package probability

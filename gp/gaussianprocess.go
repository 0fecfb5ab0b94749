// SPDX-License-Identifier: MIT

// Package gp: the GaussianProcess marginal constructor and its derived
// statistics surface. Construction is a single-shot pipeline; the resulting
// value is immutable and safe for concurrent use.
package gp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/huyuxiang/probability/kernel"
)

// GaussianProcess is the marginal distribution of a Gaussian process at a
// finite set of index points: a multivariate normal with
//
//	mean[i]  = meanFunc(x)[i]
//	cov[i,j] = kernel.Cov(x[i], x[j]) + jitter·δ[i,j]
//
// All parameters are fixed at construction; accessors return copies wherever
// a reference would let callers mutate internal state.
type GaussianProcess struct {
	kernel        kernel.Kernel
	indexPoints   *mat.Dense // private copy, one point per row
	meanFunc      MeanFunc
	jitter        float64
	validateArgs  bool
	allowNaNStats bool

	eventSize int
	loc       []float64
	cov       *mat.SymDense // stabilized covariance K' = K + jitter·I
	chol      *mat.Cholesky // lower-triangular factor of cov, non-singular
	normal    *distmv.Normal
}

// New constructs the GP marginal at indexPoints (e×F, one index point per
// row) under the covariance function k. Steps, in order:
//
//  1. Fail-fast validation: nil kernel/points, option violations
//     (nil mean function, bad jitter under WithValidateArgs) — all detected
//     before any kernel evaluation.
//  2. Canonicalize index points into a private float64 copy; F must equal
//     k.FeatureDims().
//  3. Evaluate the e×e kernel matrix K = k(x, x).
//  4. Stabilize: K' = K + jitter·I.
//  5. Factor: L = cholesky(K'); failure is ErrNotPositiveDefinite.
//  6. Evaluate loc = meanFunc(x), broadcasting a scalar mean across points.
//  7. Assemble the multivariate normal over (loc, L).
//
// Every statistic of the returned distribution reflects K', not the raw K:
// jitter is equivalent to independent zero-mean Gaussian noise of variance
// jitter on each sample coordinate.
//
// Errors (sentinel, matched via errors.Is):
//   - ErrNilKernel / ErrNilPoints / ErrEmptyPoints
//   - ErrNilMeanFunc, ErrBadJitter (option validation)
//   - ErrFeatureDims, ErrShapeMismatch
//   - ErrNotPositiveDefinite
//
// Complexity: O(e²·F) kernel evaluation + O(e³) factorization.
func New(k kernel.Kernel, indexPoints mat.Matrix, opts ...Option) (*GaussianProcess, error) {
	// 1) Cheap fail-fast checks, strictly before kernel work.
	if k == nil {
		return nil, ErrNilKernel
	}
	if indexPoints == nil {
		return nil, ErrNilPoints
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	e, f := indexPoints.Dims()
	if e == 0 || f == 0 {
		return nil, ErrEmptyPoints
	}
	if f != k.FeatureDims() {
		return nil, fmt.Errorf("index points have %d feature dims, kernel expects %d: %w",
			f, k.FeatureDims(), ErrFeatureDims)
	}

	// 2) Canonicalize: private copy, float64 throughout.
	x := mat.DenseCopyOf(indexPoints)

	// 3) Kernel matrix K = k(x, x).
	cov, err := kernel.SymMatrix(k, x)
	if err != nil {
		return nil, fmt.Errorf("gp.New: %w", err)
	}

	// 4) Diagonal stabilization.
	cov = shiftedSym(cov, cfg.jitter)

	// 5) Cholesky factor; the only positive-definiteness check performed.
	chol := &mat.Cholesky{}
	if ok := chol.Factorize(cov); !ok {
		return nil, fmt.Errorf("cholesky factorization failed (e=%d, jitter=%g): %w",
			e, cfg.jitter, ErrNotPositiveDefinite)
	}

	// 6) Mean vector at the index points.
	raw, err := cfg.meanFunc(x)
	if err != nil {
		return nil, fmt.Errorf("gp.New: mean function: %w", err)
	}
	loc, err := broadcastMean(raw, e)
	if err != nil {
		return nil, fmt.Errorf("gp.New: %w", err)
	}

	// 7) Hand (loc, L) to the multivariate-normal machinery.
	normal := distmv.NewNormalChol(loc, chol, cfg.src)

	return &GaussianProcess{
		kernel:        k,
		indexPoints:   x,
		meanFunc:      cfg.meanFunc,
		jitter:        cfg.jitter,
		validateArgs:  cfg.validateArgs,
		allowNaNStats: cfg.allowNaNStats,
		eventSize:     e,
		loc:           loc,
		cov:           cov,
		chol:          chol,
		normal:        normal,
	}, nil
}

// ---------- Accessors mirroring constructor inputs ----------

// Kernel returns the covariance function this distribution was built from.
func (g *GaussianProcess) Kernel() kernel.Kernel { return g.kernel }

// IndexPoints returns a copy of the index points (e×F).
func (g *GaussianProcess) IndexPoints() *mat.Dense {
	return mat.DenseCopyOf(g.indexPoints)
}

// MeanFunc returns the mean function in effect (ZeroMean when defaulted).
func (g *GaussianProcess) MeanFunc() MeanFunc { return g.meanFunc }

// Jitter returns the diagonal shift applied to the kernel matrix.
func (g *GaussianProcess) Jitter() float64 { return g.jitter }

// ValidateArgs reports whether strict argument checking was requested.
func (g *GaussianProcess) ValidateArgs() bool { return g.validateArgs }

// AllowNaNStats reports the NaN-vs-error policy for undefined statistics.
// For a successfully constructed (hence non-singular) marginal every exposed
// statistic is defined, so the flag is carried but never triggers here.
func (g *GaussianProcess) AllowNaNStats() bool { return g.allowNaNStats }

// ---------- Derived parameters ----------

// EventSize returns e, the dimensionality of one joint draw (the number of
// index points).
func (g *GaussianProcess) EventSize() int { return g.eventSize }

// Mean returns a copy of the mean vector loc = meanFunc(indexPoints).
func (g *GaussianProcess) Mean() []float64 {
	loc := make([]float64, g.eventSize)
	copy(loc, g.loc)

	return loc
}

// ScaleL returns the lower-triangular Cholesky factor L with L·Lᵀ = K'.
func (g *GaussianProcess) ScaleL() *mat.TriDense {
	var l mat.TriDense
	g.chol.LTo(&l)

	return &l
}

// CovarianceMatrix returns a copy of the STABILIZED covariance K' =
// K + jitter·I. The raw kernel matrix is not retained.
func (g *GaussianProcess) CovarianceMatrix() *mat.SymDense {
	out := mat.NewSymDense(g.eventSize, nil)
	out.CopySym(g.cov)

	return out
}

// Variance returns the per-coordinate variances, i.e. the diagonal of K'.
func (g *GaussianProcess) Variance() []float64 {
	v := make([]float64, g.eventSize)
	for i := range v {
		v[i] = g.cov.At(i, i)
	}

	return v
}

// StdDev returns the per-coordinate standard deviations √diag(K').
func (g *GaussianProcess) StdDev() []float64 {
	v := g.Variance()
	for i := range v {
		v[i] = math.Sqrt(v[i])
	}

	return v
}

// ---------- Statistics ----------

// Rand draws one joint sample. If dst is non-nil it must have length
// EventSize and is filled in place; otherwise a new slice is allocated.
// Safe for concurrent use only when a race-free rand source was injected.
func (g *GaussianProcess) Rand(dst []float64) []float64 {
	return g.normal.Rand(dst)
}

// SampleN draws n joint samples and returns them as an n×e matrix, one draw
// per row.
//
// Errors: ErrBadSampleCount if n < 1.
func (g *GaussianProcess) SampleN(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrBadSampleCount
	}

	out := mat.NewDense(n, g.eventSize, nil)
	row := make([]float64, g.eventSize)
	for i := 0; i < n; i++ {
		out.SetRow(i, g.normal.Rand(row))
	}

	return out, nil
}

// LogProb returns the log-density of the joint value v (length EventSize)
// under the stabilized covariance K'.
//
// Errors: ErrShapeMismatch if len(v) != EventSize.
func (g *GaussianProcess) LogProb(v []float64) (float64, error) {
	if len(v) != g.eventSize {
		return 0, fmt.Errorf("value has length %d, event size is %d: %w",
			len(v), g.eventSize, ErrShapeMismatch)
	}

	return g.normal.LogProb(v), nil
}

// Prob returns the density exp(LogProb(v)).
//
// Errors: ErrShapeMismatch if len(v) != EventSize.
func (g *GaussianProcess) Prob(v []float64) (float64, error) {
	lp, err := g.LogProb(v)
	if err != nil {
		return 0, err
	}

	return math.Exp(lp), nil
}

// Entropy returns the differential entropy
//
//	H = e/2 · (1 + ln 2π) + ½ · ln|K'|
//
// computed from the Cholesky log-determinant, so no extra factorization work.
func (g *GaussianProcess) Entropy() float64 {
	return 0.5 * (float64(g.eventSize)*(1+math.Log(2*math.Pi)) + g.chol.LogDet())
}

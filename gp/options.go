// SPDX-License-Identifier: MIT

// Package gp: functional configuration for the GaussianProcess constructor.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness unless
//     the caller omits WithRandSource.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Fail fast: option violations surface before any kernel evaluation.
package gp

import (
	"math"

	"golang.org/x/exp/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultJitter is added to every diagonal entry of the kernel matrix to
	// keep Cholesky factorization stable. 1e-6 matches common GP practice:
	// small enough to be statistically negligible, large enough to absorb
	// float64 round-off on well-conditioned kernels.
	DefaultJitter = 1e-6

	// DefaultValidateArgs leaves extra runtime checks off: invalid inputs may
	// silently render incorrect output, trading safety for speed.
	DefaultValidateArgs = false

	// DefaultAllowNaNStats makes undefined statistics an error rather than a
	// silent NaN.
	DefaultAllowNaNStats = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last write wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is unexported to prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	meanFunc      MeanFunc    // nil only if WithMeanFunc(nil) was applied
	meanFuncSet   bool        // distinguishes "unset" from "set to nil"
	jitter        float64     // DefaultJitter
	validateArgs  bool        // DefaultValidateArgs
	allowNaNStats bool        // DefaultAllowNaNStats
	src           rand.Source // nil ⇒ gonum's shared source
}

// WithMeanFunc sets the prior mean function evaluated at the index points.
// Passing nil is an error (ErrNilMeanFunc) reported by the constructor before
// any kernel evaluation. When the option is omitted entirely, ZeroMean is
// used.
func WithMeanFunc(fn MeanFunc) Option {
	return func(o *options) {
		o.meanFunc = fn
		o.meanFuncSet = true
	}
}

// WithJitter sets the diagonal stabilizer added to the kernel matrix.
// The value is NOT validated here: a negative jitter is only rejected under
// WithValidateArgs, mirroring the lazy-validation policy of the whole
// constructor (Cholesky failure is the detection mechanism otherwise).
func WithJitter(jitter float64) Option {
	return func(o *options) { o.jitter = jitter }
}

// WithValidateArgs enables strict argument checking (for example, jitter ≥ 0)
// at some runtime cost.
func WithValidateArgs() Option {
	return func(o *options) { o.validateArgs = true }
}

// WithAllowNaNStats makes undefined downstream statistics report NaN instead
// of failing. Construction-time failures are unaffected.
func WithAllowNaNStats() Option {
	return func(o *options) { o.allowNaNStats = true }
}

// WithRandSource fixes the random source used for sampling, making draws
// reproducible. When omitted, gonum's shared source is used.
func WithRandSource(src rand.Source) Option {
	return func(o *options) { o.src = src }
}

// defaultOptions returns the documented default configuration.
func defaultOptions() options {
	return options{
		meanFunc:      ZeroMean,
		jitter:        DefaultJitter,
		validateArgs:  DefaultValidateArgs,
		allowNaNStats: DefaultAllowNaNStats,
	}
}

// gatherOptions applies opts over the defaults and enforces invariants that
// are checkable without numeric work. Violations fail here, before any
// kernel evaluation.
func gatherOptions(opts ...Option) (options, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.meanFuncSet && cfg.meanFunc == nil {
		return options{}, ErrNilMeanFunc
	}
	if cfg.validateArgs && (cfg.jitter < 0 || math.IsInf(cfg.jitter, 0) || math.IsNaN(cfg.jitter)) {
		return options{}, ErrBadJitter
	}

	return cfg, nil
}

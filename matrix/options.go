// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Defaults reproduce the classic behavior exactly; options only relax or tighten it.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Equal: |a-b| <= eps.
	// No relative scaling is applied, so very large magnitudes may compare unequal.
	DefaultEpsilon = 1e-7

	// DefaultSingularThreshold is the |det| bound below which InverseMatrix
	// reports ErrSingularMatrix.
	DefaultSingularThreshold = 1e-6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "matrix: WithSingularThreshold: threshold must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps               float64 // equality tolerance, >= 0
	singularThreshold float64 // inverse guard, >= 0
}

// WithEpsilon sets the absolute tolerance used by Equal.
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularThreshold sets the |det| bound used by InverseMatrix.
// A threshold of 0 only rejects an exactly-zero determinant.
// Panics with a stable message when t is NaN, ±Inf or negative.
func WithSingularThreshold(t float64) Option {
	if isNonFinite(t) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.singularThreshold = t }
}

// NewMatrixOptions resolves option setters against the documented defaults.
// Last writer wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved equality tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularThreshold reports the resolved inverse guard.
func (o Options) SingularThreshold() float64 { return o.singularThreshold }

// gatherOptions applies user setters on top of defaults.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:               DefaultEpsilon,
		singularThreshold: DefaultSingularThreshold,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

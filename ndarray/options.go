// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for ingestion and comparison.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package ndarray

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf rejects NaN/±Inf on every ingestion path
	// (Full, Fill, FromFlat, FromNested, FromFunc, FromJSON, With, generators).
	DefaultValidateNaNInf = true

	// DefaultSeed is the seed used by RandomUniform when no source and no
	// WithSeed option are given. Seed 0 is mapped to it as well.
	DefaultSeed int64 = 1
)

const panicEpsilonInvalid = "ndarray: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	seed           int64   // DefaultSeed; 0 ⇒ DefaultSeed
}

// WithEpsilon sets the absolute tolerance used by AllClose.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf pass through ingestion.
// Reductions then propagate them per IEEE-754.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSeed selects the deterministic stream RandomUniform uses when it is
// given no explicit source. Seed 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// NewOptions resolves opts over the defaults. Exposed for callers that want to
// inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the effective AllClose tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Seed reports the effective RandomUniform seed (never 0).
func (o Options) Seed() int64 { return o.seed }

// gatherOptions applies user options in order over the defaults
// (last-writer-wins) and normalizes the seed.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		seed:           DefaultSeed,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.seed == 0 {
		o.seed = DefaultSeed
	}

	return o
}

// checkFinite returns ErrNaNInf when the policy is on and v is not finite.
func (o Options) checkFinite(v float64) error {
	if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

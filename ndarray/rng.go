// Package ndarray - uniform random fill behind a narrow source interface.
//
// Goals:
//   - The engine never owns randomness: callers hand in a UniformSource.
//   - Determinism: with no source, a fixed-seed stream is used (seed==0 ⇒ DefaultSeed),
//     so the same options always produce the same array.
//   - No time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one source across goroutines.
package ndarray

import "math/rand"

// UniformSource yields doubles uniformly distributed in [0, 1).
// *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// NewSource returns a deterministic UniformSource for seed.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewSource(seed int64) UniformSource {
	return rngFromSeed(seed)
}

// rngFromSeed returns a deterministic *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomUniform returns an array of the given shape whose elements are drawn
// from src in row-major order. A nil src uses the WithSeed stream.
//
// Errors:
//   - ErrInvalidShape for an invalid shape.
//   - ErrNaNInf when src yields a non-finite value under validation.
//
// Complexity: O(n).
func RandomUniform(shape []int, src UniformSource, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opRandomUniform, err)
	}
	if src == nil {
		src = rngFromSeed(o.seed)
	}
	a := newNDArray(shape, n)
	var v float64
	for i := range a.data {
		v = src.Float64()
		if err = o.checkFinite(v); err != nil {
			return nil, ndarrayErrorf(opRandomUniform, err)
		}
		a.data[i] = v
	}

	return a, nil
}

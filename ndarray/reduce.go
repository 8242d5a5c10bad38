// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Whole-array reductions over the flat buffer, independent of rank.
//   - Vector dot product for rank-1 operands.
//
// Exposed API:
//   - Sum(a)       -> Σ x                        (0 for an empty array)
//   - Mean(a)      -> Σ x / n                    (ErrEmptyInput when n == 0)
//   - Var(a, ddof) -> Σ (x - mean)² / (n - ddof) (ErrInvalidDegreesOfFreedom when n <= ddof)
//   - Std(a, ddof) -> sqrt(Var(a, ddof))
//   - Min/Max(a)   -> extreme element            (ErrEmptyInput when n == 0)
//   - Dot(a, b)    -> Σ a[i]*b[i]                (rank-1, equal length)
//
// Determinism:
//   - Fixed 0..n-1 accumulation order; results are bit-stable across runs.

package ndarray

import "math"

// Sum returns the sum of all elements; an empty array sums to 0.
//
// Errors:
//   - ErrNilArray when a is nil.
//
// Complexity: O(n).
func Sum(a *NDArray) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opSum, ErrNilArray)
	}

	return sumBuffer(a.data), nil
}

// Mean returns the arithmetic mean of all elements.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptyInput when a has no elements.
//
// Complexity: O(n).
func Mean(a *NDArray) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opMean, ErrNilArray)
	}
	if len(a.data) == 0 {
		return 0, ndarrayErrorf(opMean, ErrEmptyInput)
	}

	return sumBuffer(a.data) / float64(len(a.data)), nil
}

// Var returns Σ(x - mean)² / (n - ddof). ddof=0 gives the population
// variance, ddof=1 the sample variance.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrInvalidDegreesOfFreedom when ddof < 0 or n <= ddof.
//
// Complexity: O(n), two passes.
func Var(a *NDArray, ddof int) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opVar, ErrNilArray)
	}
	v, err := variance(a.data, ddof)
	if err != nil {
		return 0, ndarrayErrorf(opVar, err)
	}

	return v, nil
}

// Std returns sqrt(Σ(x - mean)² / (n - ddof)).
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrInvalidDegreesOfFreedom when ddof < 0 or n <= ddof.
//
// Complexity: O(n), two passes.
func Std(a *NDArray, ddof int) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opStd, ErrNilArray)
	}
	v, err := variance(a.data, ddof)
	if err != nil {
		return 0, ndarrayErrorf(opStd, err)
	}

	return math.Sqrt(v), nil
}

// Min returns the smallest element. NaN elements propagate.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptyInput when a has no elements.
func Min(a *NDArray) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opMin, ErrNilArray)
	}
	if len(a.data) == 0 {
		return 0, ndarrayErrorf(opMin, ErrEmptyInput)
	}
	m := a.data[0]
	for _, v := range a.data[1:] {
		m = math.Min(m, v)
	}

	return m, nil
}

// Max returns the largest element. NaN elements propagate.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrEmptyInput when a has no elements.
func Max(a *NDArray) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opMax, ErrNilArray)
	}
	if len(a.data) == 0 {
		return 0, ndarrayErrorf(opMax, ErrEmptyInput)
	}
	m := a.data[0]
	for _, v := range a.data[1:] {
		m = math.Max(m, v)
	}

	return m, nil
}

// Dot returns Σ a[i]*b[i] for two rank-1 arrays of equal length.
// Higher-rank contraction is not supported.
//
// Errors:
//   - ErrNilArray when a or b is nil.
//   - ErrShapeMismatch when either operand is not rank-1 or lengths differ.
//
// Complexity: O(n).
func Dot(a, b *NDArray) (float64, error) {
	if a == nil || b == nil {
		return 0, ndarrayErrorf(opDot, ErrNilArray)
	}
	if a.Rank() != 1 || b.Rank() != 1 || len(a.data) != len(b.data) {
		return 0, ndarrayErrorf(opDot, ErrShapeMismatch)
	}
	var s float64
	for i, x := range a.data {
		s += x * b.data[i]
	}

	return s, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal
// elements under ==. NaN never equals NaN.
func Equal(a, b *NDArray) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !sameShape(a.shape, b.shape) {
		return false
	}
	for i, x := range a.data {
		if x != b.data[i] {
			return false
		}
	}

	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most the configured epsilon (WithEpsilon).
//
// Errors:
//   - ErrNilArray when a or b is nil.
//   - ErrShapeMismatch when shapes differ.
func AllClose(a, b *NDArray, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, ndarrayErrorf(opAllClose, ErrNilArray)
	}
	if !sameShape(a.shape, b.shape) {
		return false, ndarrayErrorf(opAllClose, ErrShapeMismatch)
	}
	eps := gatherOptions(opts...).eps
	for i, x := range a.data {
		if !(math.Abs(x-b.data[i]) <= eps) {
			return false, nil
		}
	}

	return true, nil
}

// sumBuffer accumulates in index order.
func sumBuffer(buf []float64) float64 {
	var s float64
	for _, v := range buf {
		s += v
	}

	return s
}

// variance is the shared two-pass kernel behind Var and Std.
func variance(buf []float64, ddof int) (float64, error) {
	n := len(buf)
	if ddof < 0 || n <= ddof {
		return 0, ErrInvalidDegreesOfFreedom
	}
	mean := sumBuffer(buf) / float64(n)
	var ss, d float64
	for _, v := range buf {
		d = v - mean
		ss += d * d
	}

	return ss / float64(n-ddof), nil
}

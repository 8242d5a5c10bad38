// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across the ndarray tests.
//   - Keep all data finite so the default numeric policy never interferes.

package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndengine/ndarray"
	"github.com/stretchr/testify/require"
)

// tol is the comparison tolerance for floating-point results.
const tol = 1e-9

// MustFlat builds an array from a flat buffer or fails the test.
func MustFlat(t testing.TB, shape []int, data []float64) *ndarray.NDArray {
	t.Helper()
	a, err := ndarray.FromFlat(shape, data)
	require.NoError(t, err)

	return a
}

// MustNested builds an array from nested slices or fails the test.
func MustNested(t testing.TB, data any) *ndarray.NDArray {
	t.Helper()
	a, err := ndarray.FromNested(data)
	require.NoError(t, err)

	return a
}

// requireArray asserts shape and flat contents exactly.
func requireArray(t testing.TB, a *ndarray.NDArray, shape []int, data []float64) {
	t.Helper()
	require.NotNil(t, a)
	require.Equal(t, shape, a.Shape())
	require.Equal(t, data, a.Data())
}

// sliceClose asserts element-wise |got-want| <= eps.
func sliceClose(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("index %d: got %g, want %g (eps %g)", i, got[i], want[i], eps)
		}
	}
}

// shapeFixtures is a set of valid shapes of assorted rank, including
// degenerate unit axes.
var shapeFixtures = [][]int{
	{1},
	{7},
	{2, 3},
	{3, 2},
	{4, 1},
	{2, 3, 4},
	{2, 1, 3, 1},
	{3, 2, 2, 2},
}

// ramp returns [0, 1, ..., n-1] as float64.
func ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

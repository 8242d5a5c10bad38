// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndengine/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosOnes_FillAllElements(t *testing.T) {
	t.Parallel()

	for _, shape := range shapeFixtures {
		n := 1
		for _, d := range shape {
			n *= d
		}

		z, err := ndarray.Zeros(shape)
		require.NoError(t, err)
		require.Equal(t, n, z.Size())
		require.Equal(t, len(shape), z.Rank())
		for _, v := range z.Data() {
			require.Equal(t, 0.0, v)
		}

		o, err := ndarray.Ones(shape)
		require.NoError(t, err)
		require.Equal(t, n, o.Size())
		for _, v := range o.Data() {
			require.Equal(t, 1.0, v)
		}
	}
}

func TestZeros_ZeroExtentIsLegal(t *testing.T) {
	t.Parallel()

	a, err := ndarray.Zeros([]int{3, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Size())
	assert.Equal(t, []int{3, 0, 2}, a.Shape())
}

func TestConstructors_InvalidShape(t *testing.T) {
	t.Parallel()

	bad := [][]int{nil, {}, {-1}, {2, -3}}
	for _, shape := range bad {
		_, err := ndarray.Zeros(shape)
		assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "Zeros(%v)", shape)
		_, err = ndarray.Ones(shape)
		assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "Ones(%v)", shape)
		_, err = ndarray.Full(shape, 2)
		assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "Full(%v)", shape)
	}

	_, err := ndarray.Zeros([]int{math.MaxInt, 2})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "overflowing element count")

	// Counts that fit in int but not in an allocation must fail, not panic.
	_, err = ndarray.Zeros([]int{ndarray.MaxElements + 1})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "count above MaxElements")
	_, err = ndarray.Ones([]int{1 << 30, 1 << 30, 1 << 30})
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "product above MaxElements")
	_, err = ndarray.Full([]int{2, ndarray.MaxElements}, 1)
	assert.ErrorIs(t, err, ndarray.ErrInvalidShape, "product above MaxElements")
}

func TestFull_ValueAndNumericPolicy(t *testing.T) {
	t.Parallel()

	a, err := ndarray.Full([]int{2, 2}, 3.5)
	require.NoError(t, err)
	requireArray(t, a, []int{2, 2}, []float64{3.5, 3.5, 3.5, 3.5})

	_, err = ndarray.Full([]int{2}, math.NaN())
	require.ErrorIs(t, err, ndarray.ErrNaNInf)

	b, err := ndarray.Full([]int{2}, math.Inf(1), ndarray.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(b.Data()[1], 1))
}

func TestFromFlat_CopiesAndValidates(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6}
	a, err := ndarray.FromFlat([]int{2, 3}, src)
	require.NoError(t, err)
	src[0] = 100
	require.Equal(t, 1.0, a.Data()[0], "array must not alias the caller buffer")

	_, err = ndarray.FromFlat([]int{4}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = ndarray.FromFlat([]int{1}, []float64{math.NaN()})
	require.ErrorIs(t, err, ndarray.ErrNaNInf)
}

func TestAccessors_ReturnCopies(t *testing.T) {
	t.Parallel()

	a := MustFlat(t, []int{2, 2}, []float64{1, 2, 3, 4})
	s := a.Shape()
	s[0] = 9
	d := a.Data()
	d[0] = 9
	requireArray(t, a, []int{2, 2}, []float64{1, 2, 3, 4})
}

func TestAt_CoordinateRead(t *testing.T) {
	t.Parallel()

	a := MustFlat(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	v, err := a.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
	v, err = a.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	_, err = a.At(2, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.At(0, -1)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.At(1)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestFromFunc_RowMajorCoordinates(t *testing.T) {
	t.Parallel()

	a, err := ndarray.FromFunc([]int{2, 3}, func(c []int) float64 {
		return float64(10*c[0] + c[1])
	})
	require.NoError(t, err)
	requireArray(t, a, []int{2, 3}, []float64{0, 1, 2, 10, 11, 12})

	_, err = ndarray.FromFunc([]int{2}, func([]int) float64 { return math.Inf(-1) })
	require.ErrorIs(t, err, ndarray.ErrNaNInf)

	_, err = ndarray.FromFunc(nil, func([]int) float64 { return 0 })
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestFill_LeavesSourceUntouched(t *testing.T) {
	t.Parallel()

	a := MustFlat(t, []int{3}, []float64{1, 2, 3})
	b, err := ndarray.Fill(a, 7)
	require.NoError(t, err)
	requireArray(t, b, []int{3}, []float64{7, 7, 7})
	requireArray(t, a, []int{3}, []float64{1, 2, 3})

	_, err = ndarray.Fill(nil, 1)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
	_, err = ndarray.Fill(a, math.NaN())
	require.ErrorIs(t, err, ndarray.ErrNaNInf)
}

func TestWith_CoordinateWriteOnCopy(t *testing.T) {
	t.Parallel()

	a := MustFlat(t, []int{2, 2}, []float64{1, 2, 3, 4})
	b, err := ndarray.With(a, []int{1, 0}, 30)
	require.NoError(t, err)
	requireArray(t, b, []int{2, 2}, []float64{1, 2, 30, 4})
	requireArray(t, a, []int{2, 2}, []float64{1, 2, 3, 4})

	_, err = ndarray.With(a, []int{2, 0}, 1)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = ndarray.With(a, []int{0}, 1)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	_, err = ndarray.With(nil, []int{0}, 1)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
}

func TestString_NestedBrackets(t *testing.T) {
	t.Parallel()

	a := MustFlat(t, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})
	assert.Equal(t, "[[1, 2], [3, 4], [5, 6]]", a.String())

	z, err := ndarray.Zeros([]int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, "[[], []]", z.String())

	var nilArr *ndarray.NDArray
	assert.Equal(t, "<nil>", nilArr.String())
}

func TestAccessors_NilReceiver(t *testing.T) {
	t.Parallel()

	var a *ndarray.NDArray
	_, err := a.At(0)
	require.ErrorIs(t, err, ndarray.ErrNilArray)
	assert.Nil(t, a.Shape())
	assert.Nil(t, a.Data())
	assert.Equal(t, 0, a.Rank())
	assert.Equal(t, 0, a.Size())
}

// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Allocate fresh arrays from a shape (Zeros/Ones/Full), a flat buffer (FromFlat)
//     or a coordinate function (FromFunc).
//   - Shape-preserving derivations (Fill, With) that never touch their source.
//
// Determinism & Performance:
//   - Fixed linear traversal 0..n-1; one allocation per result.

package ndarray

// Zeros returns an array of the given shape filled with 0.0.
//
// Errors:
//   - ErrInvalidShape when shape is empty or has a negative extent.
//
// Complexity: O(n).
func Zeros(shape []int) (*NDArray, error) {
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opZeros, err)
	}

	// make() zero-fills deterministically.
	return newNDArray(shape, n), nil
}

// Ones returns an array of the given shape filled with 1.0.
//
// Errors:
//   - ErrInvalidShape when shape is empty or has a negative extent.
//
// Complexity: O(n).
func Ones(shape []int) (*NDArray, error) {
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opOnes, err)
	}
	a := newNDArray(shape, n)
	fillBuffer(a.data, 1.0)

	return a, nil
}

// Full returns an array of the given shape with every element set to value.
//
// Errors:
//   - ErrInvalidShape when shape is empty or has a negative extent.
//   - ErrNaNInf when value is not finite and validation is enabled.
//
// Complexity: O(n).
func Full(shape []int, value float64, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opFull, err)
	}
	if err = o.checkFinite(value); err != nil {
		return nil, ndarrayErrorf(opFull, err)
	}
	a := newNDArray(shape, n)
	fillBuffer(a.data, value)

	return a, nil
}

// FromFlat copies data into a new array of the given shape.
// data is interpreted in row-major order.
//
// Errors:
//   - ErrInvalidShape for an invalid shape.
//   - ErrShapeMismatch when len(data) != product(shape).
//   - ErrNaNInf for a non-finite element under validation.
//
// Complexity: O(n).
func FromFlat(shape []int, data []float64, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opFromFlat, err)
	}
	if len(data) != n {
		return nil, ndarrayErrorf(opFromFlat, ErrShapeMismatch)
	}
	for _, v := range data {
		if err = o.checkFinite(v); err != nil {
			return nil, ndarrayErrorf(opFromFlat, err)
		}
	}
	a := newNDArray(shape, n)
	copy(a.data, data)

	return a, nil
}

// FromFunc builds an array by evaluating fn at every coordinate.
// Elements are visited in row-major order: for each linear offset the
// coordinate is derived with the inverse mapping and fn's result is written
// back through the forward mapping. The coord slice passed to fn is scratch
// reused between calls; fn must not retain it.
//
// Errors:
//   - ErrInvalidShape for an invalid shape.
//   - ErrNaNInf when fn yields a non-finite value under validation.
//
// Complexity: O(n*rank) plus the cost of fn.
func FromFunc(shape []int, fn func(coord []int) float64, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opFromFunc, err)
	}
	a := newNDArray(shape, n)
	coord := make([]int, len(shape))
	view := make([]int, len(shape)) // scratch handed to fn
	var v float64
	for i := 0; i < n; i++ {
		coordinateOf(a.shape, i, coord)
		copy(view, coord)
		v = fn(view)
		if err = o.checkFinite(v); err != nil {
			return nil, ndarrayErrorf(opFromFunc, err)
		}
		a.data[linearIndexOf(a.shape, coord)] = v
	}

	return a, nil
}

// Fill returns a new array with a's shape and every element set to value.
// a itself is left untouched.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrNaNInf when value is not finite under validation.
//
// Complexity: O(n).
func Fill(a *NDArray, value float64, opts ...Option) (*NDArray, error) {
	if a == nil {
		return nil, ndarrayErrorf(opFill, ErrNilArray)
	}
	o := gatherOptions(opts...)
	if err := o.checkFinite(value); err != nil {
		return nil, ndarrayErrorf(opFill, err)
	}
	out := newNDArray(a.shape, len(a.data))
	fillBuffer(out.data, value)

	return out, nil
}

// With returns a copy of a whose element at coord is replaced by value.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrShapeMismatch / ErrOutOfRange for a bad coordinate.
//   - ErrNaNInf when value is not finite under validation.
//
// Complexity: O(n) for the copy.
func With(a *NDArray, coord []int, value float64, opts ...Option) (*NDArray, error) {
	if a == nil {
		return nil, ndarrayErrorf(opWith, ErrNilArray)
	}
	o := gatherOptions(opts...)
	off, err := LinearIndexOf(a.shape, coord)
	if err != nil {
		return nil, ndarrayErrorf(opWith, err)
	}
	if err = o.checkFinite(value); err != nil {
		return nil, ndarrayErrorf(opWith, err)
	}
	out := a.clone()
	out.data[off] = value

	return out, nil
}

// clone returns a deep copy with a fresh buffer.
func (a *NDArray) clone() *NDArray {
	out := newNDArray(a.shape, len(a.data))
	copy(out.data, a.data)

	return out
}

// fillBuffer sets every element of buf to v.
func fillBuffer(buf []float64, v float64) {
	for i := range buf {
		buf[i] = v
	}
}

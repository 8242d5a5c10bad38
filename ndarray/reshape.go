// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Re-label the same flat row-major sequence under a new shape.
//
// Reshape is defined per element: flat offset i of the source is decoded to a
// coordinate in the new shape and written there, which lands it at flat offset
// i again. The buffer copy below is that mapping collapsed.

package ndarray

// Reshape returns a new array with shape newShape holding a's elements in the
// same row-major order.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrInvalidShape for an invalid newShape.
//   - ErrShapeMismatch when product(newShape) != a.Size().
//
// Complexity: O(n).
func Reshape(a *NDArray, newShape []int) (*NDArray, error) {
	if a == nil {
		return nil, ndarrayErrorf(opReshape, ErrNilArray)
	}
	n, err := ValidateShape(newShape)
	if err != nil {
		return nil, ndarrayErrorf(opReshape, err)
	}
	if n != len(a.data) {
		return nil, ndarrayErrorf(opReshape, ErrShapeMismatch)
	}
	out := newNDArray(newShape, n)
	copy(out.data, a.data)

	return out, nil
}

// Flatten returns a rank-1 copy of a.
//
// Errors:
//   - ErrNilArray when a is nil.
//
// Complexity: O(n).
func Flatten(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, ndarrayErrorf(opFlatten, ErrNilArray)
	}

	out, err := Reshape(a, []int{len(a.data)})
	if err != nil {
		return nil, ndarrayErrorf(opFlatten, err)
	}

	return out, nil
}

// SPDX-License-Identifier: MIT

// Package ndarray - NDArray value type (dense, row-major, float64) & read accessors.
//
// Purpose:
//   - Own a flat buffer of len == product(shape) in row-major order (last axis fastest).
//   - Stay immutable after construction: accessors return copies, every transform allocates.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//
// Complexity quicksheet:
//   - Shape/Data: O(rank)/O(n) copies; Rank/Size: O(1); At: O(rank).

package ndarray

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// NDArray is a dense N-dimensional array of float64 values.
//   - shape holds the extent along each axis (rank = len(shape) >= 1).
//   - data is a flat buffer of length product(shape) in row-major order.
//
// An NDArray exclusively owns its buffer and is never mutated after it is
// returned, so values may be shared freely across goroutines.
type NDArray struct {
	shape []int     // per-axis extents, each >= 0
	data  []float64 // row-major storage, len == product(shape)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*NDArray)(nil)

// newNDArray allocates a zero-filled array for an already validated shape.
// The shape slice is copied so callers cannot alias it.
func newNDArray(shape []int, size int) *NDArray {
	s := make([]int, len(shape))
	copy(s, shape)

	return &NDArray{shape: s, data: make([]float64, size)}
}

// Shape returns a copy of the per-axis extents; nil for a nil receiver.
// Complexity: O(rank).
func (a *NDArray) Shape() []int {
	if a == nil {
		return nil
	}
	s := make([]int, len(a.shape))
	copy(s, a.shape)

	return s
}

// Rank returns the number of axes (0 for a nil receiver). Complexity: O(1).
func (a *NDArray) Rank() int {
	if a == nil {
		return 0
	}

	return len(a.shape)
}

// Size returns the number of elements (0 for a nil receiver). Complexity: O(1).
func (a *NDArray) Size() int {
	if a == nil {
		return 0
	}

	return len(a.data)
}

// Data returns a copy of the flat row-major buffer; nil for a nil receiver.
// Complexity: O(n).
func (a *NDArray) Data() []float64 {
	if a == nil {
		return nil
	}
	cp := make([]float64, len(a.data))
	copy(cp, a.data)

	return cp
}

// At returns the element at coord.
//
// Errors:
//   - ErrNilArray for a nil receiver.
//   - ErrShapeMismatch when len(coord) != Rank().
//   - ErrOutOfRange when any component is outside [0, shape[k]).
//
// Complexity: O(rank).
func (a *NDArray) At(coord ...int) (float64, error) {
	if a == nil {
		return 0, ndarrayErrorf(opAt, ErrNilArray)
	}
	off, err := LinearIndexOf(a.shape, coord)
	if err != nil {
		return 0, ndarrayErrorf(opAt, err)
	}

	return a.data[off], nil
}

// String renders the array as nested brackets, e.g. [[1, 2], [3, 4]].
// Complexity: O(n).
func (a *NDArray) String() string {
	if a == nil {
		return "<nil>"
	}
	var sb strings.Builder
	a.writeAxis(&sb, 0, 0)

	return sb.String()
}

// writeAxis prints the sub-array starting at flat offset base along axis.
func (a *NDArray) writeAxis(sb *strings.Builder, axis, base int) {
	sb.WriteString(_fmtOpen)
	n := a.shape[axis]
	if axis == len(a.shape)-1 {
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(sb, "%g", a.data[base+i])
		}
	} else {
		stride := product(a.shape[axis+1:])
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteString(_fmtSep)
			}
			a.writeAxis(sb, axis+1, base+i*stride)
		}
	}
	sb.WriteString(_fmtClose)
}

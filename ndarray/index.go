// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Convert between linear offsets and coordinate tuples under row-major order.
//   - Integer-only arithmetic; the two directions are exact inverses on valid input.
//
// Exposed API:
//   - CoordinateOf(shape, i)      -> coord  // last axis first: c = i mod s; i /= s
//   - LinearIndexOf(shape, coord) -> i      // first axis first: off = off*s + c

package ndarray

// CoordinateOf converts a linear offset into its coordinate tuple.
//
// Errors:
//   - ErrInvalidShape for an invalid shape.
//   - ErrOutOfRange unless 0 <= linearIndex < product(shape).
//
// Complexity: O(rank).
func CoordinateOf(shape []int, linearIndex int) ([]int, error) {
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opCoordinateOf, err)
	}
	if linearIndex < 0 || linearIndex >= n {
		return nil, ndarrayErrorf(opCoordinateOf, ErrOutOfRange)
	}
	coord := make([]int, len(shape))
	coordinateOf(shape, linearIndex, coord)

	return coord, nil
}

// LinearIndexOf converts a coordinate tuple into its row-major linear offset.
//
// Errors:
//   - ErrInvalidShape for an invalid shape.
//   - ErrShapeMismatch when len(coord) != len(shape).
//   - ErrOutOfRange when some coord[k] is outside [0, shape[k]).
//
// Complexity: O(rank).
func LinearIndexOf(shape, coord []int) (int, error) {
	if _, err := ValidateShape(shape); err != nil {
		return 0, ndarrayErrorf(opLinearIndexOf, err)
	}
	if len(coord) != len(shape) {
		return 0, ndarrayErrorf(opLinearIndexOf, ErrShapeMismatch)
	}
	for k, c := range coord {
		if c < 0 || c >= shape[k] {
			return 0, ndarrayErrorf(opLinearIndexOf, ErrOutOfRange)
		}
	}

	return linearIndexOf(shape, coord), nil
}

// coordinateOf writes the coordinate of linearIndex into dst without checks.
// Callers guarantee len(dst) == len(shape) and 0 <= linearIndex < product(shape).
func coordinateOf(shape []int, linearIndex int, dst []int) {
	for axis := len(shape) - 1; axis >= 0; axis-- {
		s := shape[axis]
		dst[axis] = linearIndex % s
		linearIndex /= s
	}
}

// linearIndexOf is the unchecked forward mapping.
func linearIndexOf(shape, coord []int) int {
	off := 0
	for axis := range shape {
		off = off*shape[axis] + coord[axis]
	}

	return off
}

// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Provide a single source of truth for shape validation and element counts.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.

package ndarray

import "math"

// MaxElements is the largest element count an array may hold. It keeps
// count*8 bytes within what the runtime can allocate, so oversized shapes
// fail with ErrInvalidShape instead of panicking in make.
const MaxElements = min(math.MaxInt/8, 1<<45)

// ValidateShape checks that shape has rank >= 1, no negative extent, and an
// element count of at most MaxElements. It returns that element count.
//
// Errors:
//   - ErrInvalidShape for an empty shape, a negative extent, or a count
//     above MaxElements.
//
// Complexity: O(rank).
func ValidateShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrInvalidShape
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrInvalidShape
		}
		if d != 0 && n > MaxElements/d {
			return 0, ErrInvalidShape
		}
		n *= d
	}

	return n, nil
}

// product multiplies the extents of an already validated shape.
// The empty product is 1.
func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// sameShape reports whether two shapes have identical rank and extents.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}

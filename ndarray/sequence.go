// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Eager regularly-spaced sequence generators returning rank-1 arrays.
//
// Determinism:
//   - Element i is computed as start + i*step, never by running accumulation,
//     so rounding error does not grow with i.

package ndarray

import "math"

// Arange returns start, start+step, start+2*step, ... while the value is
// strictly before stop in the direction of step. The element count is
// ceil((stop-start)/step), clamped to 0; an empty range is not an error.
// Ranges whose width exceeds the float64 range are counted and sampled in
// scaled form, so finite endpoints always yield finite elements.
//
// Errors:
//   - ErrInvalidStep when step is 0, NaN or ±Inf.
//   - ErrNaNInf when start or stop is not finite under validation.
//   - ErrInvalidShape when the element count exceeds MaxElements.
//
// Complexity: O(n).
func Arange(start, stop, step float64, opts ...Option) (*NDArray, error) {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, ndarrayErrorf(opArange, ErrInvalidStep)
	}
	o := gatherOptions(opts...)
	if err := o.checkFinite(start); err != nil {
		return nil, ndarrayErrorf(opArange, err)
	}
	if err := o.checkFinite(stop); err != nil {
		return nil, ndarrayErrorf(opArange, err)
	}

	span := (stop - start) / step
	if math.IsInf(stop-start, 0) && !math.IsInf(start, 0) && !math.IsInf(stop, 0) {
		// stop-start overflowed; the quotients alone stay in range.
		span = stop/step - start/step
	}
	count := math.Ceil(span)
	if math.IsNaN(count) || count < 0 {
		count = 0
	}
	if count > MaxElements {
		return nil, ndarrayErrorf(opArange, ErrInvalidShape)
	}
	n := int(count)
	a := newNDArray([]int{n}, n)
	var v float64
	for i := 0; i < n; i++ {
		v = arangeAt(start, step, i)
		if err := o.checkFinite(v); err != nil {
			return nil, ndarrayErrorf(opArange, err)
		}
		a.data[i] = v
	}

	return a, nil
}

// arangeAt returns start + i*step, halving both terms when i*step alone
// overflows but the element itself is representable.
func arangeAt(start, step float64, i int) float64 {
	off := float64(i) * step
	if !math.IsInf(off, 0) {
		return start + off
	}

	return 2 * (start/2 + float64(i)*(step/2))
}

// Linspace returns exactly num evenly spaced values from start.
// With endpoint the spacing is (stop-start)/(num-1) and the last element is
// stop itself; without it the spacing is (stop-start)/num and stop is
// excluded. Linspace(start, stop, 1, true) yields [start]. The first element
// is always start. When stop-start overflows, elements are interpolated as
// start*(1-t) + stop*t instead.
//
// Errors:
//   - ErrInvalidCount when num <= 0.
//   - ErrInvalidShape when num exceeds MaxElements.
//   - ErrNaNInf when start, stop or a generated element is not finite
//     under validation.
//
// Complexity: O(num).
func Linspace(start, stop float64, num int, endpoint bool, opts ...Option) (*NDArray, error) {
	if num <= 0 {
		return nil, ndarrayErrorf(opLinspace, ErrInvalidCount)
	}
	if num > MaxElements {
		return nil, ndarrayErrorf(opLinspace, ErrInvalidShape)
	}
	o := gatherOptions(opts...)
	if err := o.checkFinite(start); err != nil {
		return nil, ndarrayErrorf(opLinspace, err)
	}
	if err := o.checkFinite(stop); err != nil {
		return nil, ndarrayErrorf(opLinspace, err)
	}

	a := newNDArray([]int{num}, num)
	a.data[0] = start
	div := num
	if endpoint {
		div = num - 1
	}
	if div == 0 {
		return a, nil
	}
	fdiv := float64(div)
	step := (stop - start) / fdiv
	lerp := math.IsInf(stop-start, 0) && !math.IsInf(start, 0) && !math.IsInf(stop, 0)
	var t float64
	for i := 1; i < num; i++ {
		if lerp {
			t = float64(i) / fdiv
			a.data[i] = start*(1-t) + stop*t
		} else {
			a.data[i] = start + float64(i)*step
		}
	}
	if endpoint {
		a.data[num-1] = stop
	}
	for _, v := range a.data {
		if err := o.checkFinite(v); err != nil {
			return nil, ndarrayErrorf(opLinspace, err)
		}
	}

	return a, nil
}

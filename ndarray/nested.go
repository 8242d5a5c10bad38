// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Ingest caller-provided nested slices/arrays ([]float64, [][]float64, []any, ...)
//     as a dense NDArray after validating rectangularity at every nesting level.
//
// Implementation:
//   - Stage 1: infer the shape of each sibling recursively; every sibling must
//     report the identical sub-shape, otherwise ErrRaggedShape.
//   - Stage 2: validate the inferred shape (rank >= 1, overflow).
//   - Stage 3: append leaves depth-first, which is row-major order.

package ndarray

import "reflect"

// FromNested interprets a rectangular nested structure as an NDArray.
// Accepted leaves are Go integer and floating-point kinds; containers are
// slices and arrays at any depth, including []any mixes. An empty container
// contributes extent 0, so [][]float64{{}, {}} has shape [2 0].
//
// Errors:
//   - ErrRaggedShape when siblings at any level differ in length or depth.
//   - ErrInvalidShape when data is a bare scalar (rank 0).
//   - ErrUnsupportedType for nil, non-numeric leaves or non-container values.
//   - ErrNaNInf for a non-finite leaf under validation.
//
// Complexity: O(n * depth) time, O(n) space.
func FromNested(data any, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	root := reflect.ValueOf(data)
	shape, err := nestedShape(root)
	if err != nil {
		return nil, ndarrayErrorf(opFromNested, err)
	}
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opFromNested, err)
	}
	a := newNDArray(shape, n)
	leaves := a.data[:0]
	if leaves, err = appendLeaves(leaves, root, o); err != nil {
		return nil, ndarrayErrorf(opFromNested, err)
	}
	a.data = leaves

	return a, nil
}

// nestedShape returns the shape of v; scalars report an empty shape.
func nestedShape(v reflect.Value) ([]int, error) {
	v, ok := unwrapInterface(v)
	if !ok {
		return nil, ErrUnsupportedType
	}
	if isNumericKind(v.Kind()) {
		return []int{}, nil
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, ErrUnsupportedType
	}
	n := v.Len()
	if n == 0 {
		return []int{0}, nil
	}
	first, err := nestedShape(v.Index(0))
	if err != nil {
		return nil, err
	}
	var sub []int
	for i := 1; i < n; i++ {
		if sub, err = nestedShape(v.Index(i)); err != nil {
			return nil, err
		}
		if !sameShape(first, sub) {
			return nil, ErrRaggedShape
		}
	}

	return append([]int{n}, first...), nil
}

// appendLeaves walks an already shape-checked value depth-first.
func appendLeaves(dst []float64, v reflect.Value, o Options) ([]float64, error) {
	v, _ = unwrapInterface(v)
	if isNumericKind(v.Kind()) {
		x := toFloat(v)
		if err := o.checkFinite(x); err != nil {
			return nil, err
		}

		return append(dst, x), nil
	}
	var err error
	for i := 0; i < v.Len(); i++ {
		if dst, err = appendLeaves(dst, v.Index(i), o); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// unwrapInterface strips interface boxing; ok is false for nil or invalid values.
func unwrapInterface(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}

	return v, v.IsValid()
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return float64(v.Int())
	}
}

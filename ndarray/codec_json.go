// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Exchange arrays as JSON in two forms:
//     envelope: {"shape":[2,3],"data":[1,2,3,4,5,6]}  (written by ToJSON)
//     nested:   [[1,2,3],[4,5,6]]                     (accepted by FromJSON)
//   - Decoding goes through gjson so nested documents are walked in place and
//     validated for rectangularity exactly like FromNested.

package ndarray

import (
	"encoding/json"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// JSON envelope keys.
const (
	jsonKeyShape = "shape"
	jsonKeyData  = "data"
)

// Compile-time assertions for encoding/json conformance.
var (
	_ json.Marshaler   = (*NDArray)(nil)
	_ json.Unmarshaler = (*NDArray)(nil)
)

// ToJSON encodes a as a compact {"shape":[...],"data":[...]} envelope.
//
// Errors:
//   - ErrNilArray when a is nil.
//   - ErrNaNInf when a holds NaN or ±Inf (JSON cannot represent them).
//
// Complexity: O(n).
func ToJSON(a *NDArray) ([]byte, error) {
	if a == nil {
		return nil, ndarrayErrorf(opToJSON, ErrNilArray)
	}
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ndarrayErrorf(opToJSON, ErrNaNInf)
		}
	}
	out, err := sjson.SetBytes([]byte(`{}`), jsonKeyShape, a.shape)
	if err != nil {
		return nil, ndarrayErrorf(opToJSON, err)
	}
	if out, err = sjson.SetBytes(out, jsonKeyData, a.data); err != nil {
		return nil, ndarrayErrorf(opToJSON, err)
	}

	return out, nil
}

// ToJSONIndent is ToJSON followed by human-friendly formatting.
func ToJSONIndent(a *NDArray) ([]byte, error) {
	out, err := ToJSON(a)
	if err != nil {
		return nil, err
	}

	return pretty.Pretty(out), nil
}

// MarshalJSON implements json.Marshaler using the envelope form.
func (a *NDArray) MarshalJSON() ([]byte, error) {
	return ToJSON(a)
}

// UnmarshalJSON implements json.Unmarshaler by delegating to FromJSON with
// the default options. It only populates a freshly declared receiver during
// decoding; arrays handed out by the engine are never changed afterwards.
//
// Errors:
//   - ErrNilArray for a nil receiver.
//   - any FromJSON error.
func (a *NDArray) UnmarshalJSON(b []byte) error {
	if a == nil {
		return ndarrayErrorf(opFromJSON, ErrNilArray)
	}
	out, err := FromJSON(b)
	if err != nil {
		return err
	}
	*a = *out

	return nil
}

// FromJSON decodes either the envelope form or a nested array of numbers.
//
// Errors:
//   - ErrInvalidJSON for malformed input, a missing/mistyped envelope field,
//     or a non-integral shape extent.
//   - ErrInvalidShape for a bare number or an invalid envelope shape.
//   - ErrRaggedShape for non-rectangular nested arrays.
//   - ErrUnsupportedType for non-numeric leaves.
//   - ErrShapeMismatch when the envelope data length disagrees with its shape.
//   - ErrNaNInf per the numeric policy.
//
// Complexity: O(len(b)).
func FromJSON(b []byte, opts ...Option) (*NDArray, error) {
	if !gjson.ValidBytes(b) {
		return nil, ndarrayErrorf(opFromJSON, ErrInvalidJSON)
	}
	root := gjson.ParseBytes(b)
	switch {
	case root.IsArray():
		return fromJSONNested(root, opts...)
	case root.IsObject():
		return fromJSONEnvelope(root, opts...)
	case root.Type == gjson.Number:
		return nil, ndarrayErrorf(opFromJSON, ErrInvalidShape)
	default:
		return nil, ndarrayErrorf(opFromJSON, ErrInvalidJSON)
	}
}

// fromJSONEnvelope decodes {"shape":[...],"data":[...]}.
func fromJSONEnvelope(root gjson.Result, opts ...Option) (*NDArray, error) {
	rs, rd := root.Get(jsonKeyShape), root.Get(jsonKeyData)
	if !rs.IsArray() || !rd.IsArray() {
		return nil, ndarrayErrorf(opFromJSON, ErrInvalidJSON)
	}
	items := rs.Array()
	shape := make([]int, len(items))
	for k, it := range items {
		if it.Type != gjson.Number || it.Num != math.Trunc(it.Num) {
			return nil, ndarrayErrorf(opFromJSON, ErrInvalidJSON)
		}
		shape[k] = int(it.Int())
	}
	items = rd.Array()
	data := make([]float64, len(items))
	for i, it := range items {
		if it.Type != gjson.Number {
			return nil, ndarrayErrorf(opFromJSON, ErrUnsupportedType)
		}
		data[i] = it.Num
	}
	a, err := FromFlat(shape, data, opts...)
	if err != nil {
		return nil, ndarrayErrorf(opFromJSON, err)
	}

	return a, nil
}

// fromJSONNested decodes a nested numeric array.
func fromJSONNested(root gjson.Result, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	shape, err := jsonShape(root)
	if err != nil {
		return nil, ndarrayErrorf(opFromJSON, err)
	}
	n, err := ValidateShape(shape)
	if err != nil {
		return nil, ndarrayErrorf(opFromJSON, err)
	}
	a := newNDArray(shape, n)
	leaves := a.data[:0]
	if leaves, err = appendJSONLeaves(leaves, root, o); err != nil {
		return nil, ndarrayErrorf(opFromJSON, err)
	}
	a.data = leaves

	return a, nil
}

// jsonShape mirrors nestedShape for gjson values.
func jsonShape(r gjson.Result) ([]int, error) {
	if r.Type == gjson.Number {
		return []int{}, nil
	}
	if !r.IsArray() {
		return nil, ErrUnsupportedType
	}
	items := r.Array()
	if len(items) == 0 {
		return []int{0}, nil
	}
	first, err := jsonShape(items[0])
	if err != nil {
		return nil, err
	}
	var sub []int
	for _, it := range items[1:] {
		if sub, err = jsonShape(it); err != nil {
			return nil, err
		}
		if !sameShape(first, sub) {
			return nil, ErrRaggedShape
		}
	}

	return append([]int{len(items)}, first...), nil
}

// appendJSONLeaves appends numbers depth-first (row-major).
func appendJSONLeaves(dst []float64, r gjson.Result, o Options) ([]float64, error) {
	if r.Type == gjson.Number {
		if err := o.checkFinite(r.Num); err != nil {
			return nil, err
		}

		return append(dst, r.Num), nil
	}
	var err error
	for _, it := range r.Array() {
		if dst, err = appendJSONLeaves(dst, it, o); err != nil {
			return nil, err
		}
	}

	return dst, nil
}

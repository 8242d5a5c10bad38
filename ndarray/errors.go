// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the ndarray
// package. Operations return these sentinels wrapped with an operation tag and
// tests MUST check them via errors.Is. No operation panics on user input.

package ndarray

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for easy grepping. Public
// operations wrap the sentinel once with their own tag ("Reshape: ndarray: ...");
// callers still match with errors.Is.

var (
	// ErrInvalidShape is returned when a shape is empty, contains a negative
	// extent, or its element count overflows int.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrRaggedShape signals nested input whose rows disagree in length or depth
	// at some nesting level.
	ErrRaggedShape = errors.New("ndarray: ragged nested data")

	// ErrShapeMismatch indicates that element counts, ranks or vector lengths
	// disagree between the operands of a single operation.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrInvalidStep is returned by Arange for a zero or non-finite step.
	ErrInvalidStep = errors.New("ndarray: invalid step")

	// ErrInvalidCount is returned by Linspace when num <= 0.
	ErrInvalidCount = errors.New("ndarray: invalid count")

	// ErrInvalidDegreesOfFreedom is returned by Var/Std when n <= ddof or ddof < 0.
	ErrInvalidDegreesOfFreedom = errors.New("ndarray: invalid degrees of freedom")

	// ErrEmptyInput marks a reduction that needs at least one element.
	ErrEmptyInput = errors.New("ndarray: empty input")

	// ErrOutOfRange indicates a linear index or coordinate outside the shape.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("ndarray: NaN or Inf encountered")

	// ErrUnsupportedType marks a nested-input leaf that is not a real number.
	ErrUnsupportedType = errors.New("ndarray: unsupported element type")

	// ErrNilArray indicates that a nil *NDArray was passed as an operand.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrInvalidJSON is returned by FromJSON for malformed or mistyped documents.
	ErrInvalidJSON = errors.New("ndarray: invalid JSON")
)

// Operation tags used in error wrappers.
const (
	opZeros         = "Zeros"
	opOnes          = "Ones"
	opFull          = "Full"
	opFromFlat      = "FromFlat"
	opFromFunc      = "FromFunc"
	opFromNested    = "FromNested"
	opFill          = "Fill"
	opWith          = "With"
	opAt            = "At"
	opCoordinateOf  = "CoordinateOf"
	opLinearIndexOf = "LinearIndexOf"
	opReshape       = "Reshape"
	opFlatten       = "Flatten"
	opArange        = "Arange"
	opLinspace      = "Linspace"
	opSum           = "Sum"
	opMean          = "Mean"
	opVar           = "Var"
	opStd           = "Std"
	opMin           = "Min"
	opMax           = "Max"
	opDot           = "Dot"
	opAllClose      = "AllClose"
	opToJSON        = "ToJSON"
	opFromJSON      = "FromJSON"
	opRandomUniform = "RandomUniform"
)

// ndarrayErrorf tags err with the operation name, preserving the sentinel via %w.
func ndarrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

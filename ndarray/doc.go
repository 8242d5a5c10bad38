// Package ndarray is a minimal N-dimensional numeric array engine.
//
// 🚀 What is an NDArray?
//
//	A dense, row-major buffer of float64 values with a fixed shape of any
//	rank >= 1. The last axis varies fastest in storage:
//
//	  shape [2 3]   data [1 2 3 4 5 6]   ⇔   [[1, 2, 3], [4, 5, 6]]
//
// ✨ Key features:
//   - construction: Zeros, Ones, Full, FromFlat, FromNested, FromFunc, RandomUniform
//   - index arithmetic: CoordinateOf / LinearIndexOf (exact, integer-only)
//   - shape ops: Fill, With, Reshape, Flatten
//   - generators: Arange, Linspace
//   - reductions: Sum, Mean, Var, Std, Min, Max, Dot
//   - JSON: ToJSON, ToJSONIndent, FromJSON
//
// Every operation returns a freshly allocated value; an NDArray is never
// mutated after construction, so arrays can be shared between goroutines.
// Failures are reported as wrapped sentinel errors (see errors.go); match
// them with errors.Is.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ndengine/ndarray"
//
//	a, _ := ndarray.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := ndarray.Reshape(a, []int{3, 2}) // [[1, 2], [3, 4], [5, 6]]
//	m, _ := ndarray.Mean(b)                 // 3.5
//
// Reductions work on the flat buffer of any rank; Dot is defined for rank-1
// operands only.
package ndarray

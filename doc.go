// Package ndengine is a small, dependency-light numeric array toolkit.
//
// 🚀 What is in here?
//
//	ndarray/ — dense N-dimensional float64 arrays: construction, row-major
//	           index arithmetic, reshape, sequence generators, reductions
//	           and a JSON codec.
//
// ✨ Why?
//
//   - Value semantics – every transform returns a new array, nothing aliases
//   - Explicit errors – sentinel errors, no panics on user input
//   - Pure Go – no cgo
//
//	go get github.com/katalvlaran/ndengine/ndarray
package ndengine

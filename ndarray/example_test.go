package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndengine/ndarray"
)

// ExampleReshape re-labels a 2×3 array as 3×2; the flat order is unchanged.
func ExampleReshape() {
	a, err := ndarray.FromNested([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	b, err := ndarray.Reshape(a, []int{3, 2})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(a)
	fmt.Println(b, b.Shape())

	_, err = ndarray.Reshape(a, []int{4, 2})
	fmt.Println(errors.Is(err, ndarray.ErrShapeMismatch))
	// Output:
	// [[1, 2, 3], [4, 5, 6]]
	// [[1, 2], [3, 4], [5, 6]] [3 2]
	// true
}

// ExampleStd shows population (ddof=0) and sample (ddof=1) deviation.
func ExampleStd() {
	a, _ := ndarray.Arange(1, 6, 1)
	mean, _ := ndarray.Mean(a)
	pop, _ := ndarray.Std(a, 0)
	sample, _ := ndarray.Std(a, 1)
	fmt.Println(a)
	fmt.Printf("mean=%.1f pop=%.4f sample=%.4f\n", mean, pop, sample)
	// Output:
	// [1, 2, 3, 4, 5]
	// mean=3.0 pop=1.4142 sample=1.5811
}

// ExampleLinspace contrasts endpoint inclusion.
func ExampleLinspace() {
	with, _ := ndarray.Linspace(0, 1, 5, true)
	without, _ := ndarray.Linspace(0, 1, 5, false)
	fmt.Println(with)
	fmt.Println(without)
	// Output:
	// [0, 0.25, 0.5, 0.75, 1]
	// [0, 0.2, 0.4, 0.6000000000000001, 0.8]
}

// ExampleDot computes a vector inner product.
func ExampleDot() {
	a, _ := ndarray.FromNested([]float64{1, 2, 3})
	b, _ := ndarray.FromNested([]float64{4, 5, 6})
	d, _ := ndarray.Dot(a, b)
	fmt.Println(d)
	// Output:
	// 32
}

// ExampleCoordinateOf maps a linear offset to a coordinate and back.
func ExampleCoordinateOf() {
	shape := []int{2, 3, 4}
	c, _ := ndarray.CoordinateOf(shape, 17)
	i, _ := ndarray.LinearIndexOf(shape, c)
	fmt.Println(c, i)
	// Output:
	// [1 1 1] 17
}

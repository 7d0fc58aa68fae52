// File: dim/example_test.go
package dim_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ndshape/dim"
)

////////////////////////////////////////////////////////////////////////////////
// Example: CanIndexSlice
////////////////////////////////////////////////////////////////////////////////

// ExampleCanIndexSlice demonstrates the safety gate run when a raw buffer
// is wrapped into a view.
// Scenario:
//
//   - Buffer of 12 elements, shape (2,3,2).
//   - Strides (1,2,6) interleave but stay in bounds and alias nothing.
//   - Strides (2,4,12) would reach offset 22 — rejected.
//
// Complexity: O(rank·log rank) per call.
func ExampleCanIndexSlice() {
	shape := []int{2, 3, 2}

	fmt.Println("interleaved ok:", dim.CanIndexSlice(12, shape, []int{1, 2, 6}) == nil)

	err := dim.CanIndexSlice(12, shape, []int{2, 4, 12})
	fmt.Println("doubled out of bounds:", errors.Is(err, dim.ErrOutOfBounds))

	// Output:
	// interleaved ok: true
	// doubled out of bounds: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Overlaps
////////////////////////////////////////////////////////////////////////////////

// ExampleOverlaps demonstrates aliasing detection: an outer stride smaller
// than the span claimed by the faster-varying axes lets two indices share
// one memory cell.
func ExampleOverlaps() {
	shape := []int{2, 3, 2}

	fmt.Println(dim.Overlaps(shape, []int{5, 2, 1}))
	fmt.Println(dim.Overlaps(shape, []int{6, 2, 1}))

	// Output:
	// true
	// false
}

////////////////////////////////////////////////////////////////////////////////
// Example: slicing a view
////////////////////////////////////////////////////////////////////////////////

// ExampleDim3_ApplySpans demonstrates per-axis slicing of a (2,3,4) shape:
// keep axis 0, window axis 1 to [1,3), reverse axis 2. The returned
// displacement is added to the view's base pointer.
func ExampleDim3_ApplySpans() {
	shape := dim.D3(2, 3, 4)
	strides := shape.DefaultStrides()

	offset := shape.ApplySpans(&strides, [3]dim.Span{
		dim.All(),
		dim.Range(1, 3),
		dim.All().By(-1),
	})

	fmt.Println("shape:  ", shape)
	fmt.Println("strides:", strides)
	fmt.Println("offset: ", offset)

	// Output:
	// shape:   [2 2 4]
	// strides: [12 4 -1]
	// offset:  7
}

////////////////////////////////////////////////////////////////////////////////
// Example: enumeration
////////////////////////////////////////////////////////////////////////////////

// ExampleDim2_NextFor demonstrates the restartable row-major index walk:
// the innermost axis varies fastest, and the sequence ends after exactly
// Size() indices.
func ExampleDim2_NextFor() {
	shape := dim.D2(2, 3)

	for idx, ok := shape.FirstIndex(); ok; idx, ok = shape.NextFor(idx) {
		fmt.Println(idx)
	}

	// Output:
	// [0 0]
	// [0 1]
	// [0 2]
	// [1 0]
	// [1 1]
	// [1 2]
}

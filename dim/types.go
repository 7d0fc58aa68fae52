// SPDX-License-Identifier: MIT

// Package dim: domain types shared across the package.
// This file intentionally contains ONLY the dimension kinds, the Axis and
// Span value types, and their constructors. Errors live in errors.go and
// algorithms in their dedicated files, per the global conventions.
package dim

import "slices"

// MaxFixedRank is the highest rank with a dedicated inline kind.
// Shapes of higher rank use DimDyn.
const MaxFixedRank = 5

// Axis selects one positional dimension of a shape, zero-indexed with axis 0
// outermost (slowest-varying under row-major default strides).
type Axis int

// Index returns the axis position as a plain int.
func (a Axis) Index() int { return int(a) }

// Fixed-rank dimension kinds. Each is a plain value type: copying is cloning,
// == is equality, the zero value is the all-zero shape. A Dim value is used
// both as a shape (extents per axis), as a stride vector and as an index,
// depending on context; pairing two different ranks is a compile-time error.
type (
	// Dim0 is the rank-0 (scalar) dimension. Its size is 1 (empty product)
	// and its only index is the empty index.
	Dim0 [0]int
	// Dim1 is the rank-1 dimension.
	Dim1 [1]int
	// Dim2 is the rank-2 dimension.
	Dim2 [2]int
	// Dim3 is the rank-3 dimension.
	Dim3 [3]int
	// Dim4 is the rank-4 dimension.
	Dim4 [4]int
	// Dim5 is the rank-5 dimension.
	Dim5 [5]int
)

// DimDyn is the dynamic-rank dimension: extents in a plain slice. It obeys
// the same contract as the fixed kinds, trading compile-time rank safety and
// zero allocation for an arbitrary runtime rank.
type DimDyn []int

// D1 builds a rank-1 shape from one extent.
func D1(a int) Dim1 { return Dim1{a} }

// D2 builds a rank-2 shape from two extents, outermost first.
func D2(a, b int) Dim2 { return Dim2{a, b} }

// D3 builds a rank-3 shape from three extents, outermost first.
func D3(a, b, c int) Dim3 { return Dim3{a, b, c} }

// D4 builds a rank-4 shape from four extents, outermost first.
func D4(a, b, c, d int) Dim4 { return Dim4{a, b, c, d} }

// D5 builds a rank-5 shape from five extents, outermost first.
func D5(a, b, c, d, e int) Dim5 { return Dim5{a, b, c, d, e} }

// Dyn builds a dynamic-rank shape from the given extents. The input is
// copied; the result never aliases caller memory.
func Dyn(extents ...int) DimDyn { return slices.Clone(extents) }

// DynFrom builds a dynamic-rank shape from an extent slice. The input is
// copied; the result never aliases caller memory.
func DynFrom(extents []int) DimDyn { return slices.Clone(extents) }

// Span is the elementary per-axis range descriptor consumed by ApplySlices:
// a half-open [Start, End) window stepped by Step. Negative Start/End count
// from the end of the axis (value + extent). An unbounded Span ends at the
// axis extent. Step must be nonzero; a negative Step reverses iteration
// order within the window.
//
// Construct Spans via All, Range, From and By; the zero Span is invalid
// (zero step).
type Span struct {
	// Start is the first position of the window; negative means extent+Start.
	Start int
	// End is the exclusive upper bound when bounded; ignored otherwise.
	End int
	// Step is the nonzero signed step between selected positions.
	Step int

	bounded bool
}

// All spans the whole axis with step 1.
func All() Span { return Span{Step: 1} }

// Range spans [start, end) with step 1. Negative bounds count from the end
// of the axis.
func Range(start, end int) Span {
	return Span{Start: start, End: end, Step: 1, bounded: true}
}

// From spans [start, extent) with step 1. A negative start counts from the
// end of the axis.
func From(start int) Span { return Span{Start: start, Step: 1} }

// By returns a copy of s with the given step. Step 0 is a contract
// violation, rejected later by ApplySlices.
func (s Span) By(step int) Span {
	s.Step = step
	return s
}

// Bounded reports whether the Span carries an explicit End.
func (s Span) Bounded() bool { return s.bounded }

package dim_test

import (
	"testing"

	"github.com/katalvlaran/ndshape/dim"
	"github.com/stretchr/testify/assert"
)

// TestStrideOffset_Signs verifies sign-correct offset arithmetic for
// positive, zero and negative strides.
func TestStrideOffset_Signs(t *testing.T) {
	assert.Equal(t, 6, dim.StrideOffset(2, 3), "positive stride advances forward")
	assert.Equal(t, -6, dim.StrideOffset(2, -3), "negative stride advances backward")
	assert.Equal(t, 0, dim.StrideOffset(0, 7), "zero count contributes nothing")
	assert.Equal(t, 0, dim.StrideOffset(5, 0), "zero stride contributes nothing")
}

// TestOverlaps_KnownLayouts pins the canonical aliasing fixtures for shape
// (2,3,2): strides (5,2,1) alias, (6,2,1) do not, (6,0,1) alias.
func TestOverlaps_KnownLayouts(t *testing.T) {
	shape := []int{2, 3, 2}

	assert.True(t, dim.Overlaps(shape, []int{5, 2, 1}),
		"outer stride 5 is smaller than the 6 cells claimed by inner axes")
	assert.False(t, dim.Overlaps(shape, []int{6, 2, 1}),
		"each stride covers the span of all faster axes")
	assert.True(t, dim.Overlaps(shape, []int{6, 0, 1}),
		"zero stride on a non-unit axis repeats the same cells")
}

// TestOverlaps_UnitAxesTolerated verifies that extent-1 axes accept any
// stride without triggering the alias report.
func TestOverlaps_UnitAxesTolerated(t *testing.T) {
	assert.False(t, dim.Overlaps([]int{1, 3}, []int{1, 1}),
		"a single-element axis may carry an arbitrary stride")
	assert.False(t, dim.Overlaps([]int{4, 1, 2}, []int{2, 7, 1}),
		"the unit middle axis must be skipped by the check")
}

// TestOverlaps_ZeroExtentCompared verifies that only extent-1 axes escape
// the stride comparison; a zero extent does not.
func TestOverlaps_ZeroExtentCompared(t *testing.T) {
	assert.True(t, dim.Overlaps([]int{2, 0}, []int{1, 1}),
		"an extent-0 axis still takes part in the comparison")
	assert.False(t, dim.Overlaps([]int{2, 1}, []int{1, 1}),
		"only extent 1 tolerates an arbitrary stride")
}

// TestOverlaps_RankMismatchPanics confirms the rank contract is enforced.
func TestOverlaps_RankMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { dim.Overlaps([]int{2, 3}, []int{1}) },
		"shape/strides rank mismatch is a programmer error")
}

// TestFastestVaryingStrideOrder_Fixed verifies the specialized orderings
// against hand-computed permutations.
func TestFastestVaryingStrideOrder_Fixed(t *testing.T) {
	assert.Equal(t, dim.Dim2{1, 0}, dim.Dim2{3, 1}.FastestVaryingStrideOrder(),
		"row-major rank-2 strides vary fastest on the last axis")
	assert.Equal(t, dim.Dim2{0, 1}, dim.Dim2{1, 2}.FastestVaryingStrideOrder(),
		"column-major rank-2 strides vary fastest on the first axis")
	assert.Equal(t, dim.Dim3{2, 1, 0}, dim.Dim3{6, 2, 1}.FastestVaryingStrideOrder(),
		"row-major rank-3 order is reversed axis order")
	assert.Equal(t, dim.Dim3{0, 2, 1}, dim.Dim3{1, 6, 2}.FastestVaryingStrideOrder(),
		"mixed strides sort by ascending magnitude")
}

// TestFastestVaryingStrideOrder_FixedMatchesDyn pins the specialized fixed
// orderings to the generic dynamic path.
func TestFastestVaryingStrideOrder_FixedMatchesDyn(t *testing.T) {
	cases := [][]int{
		{6, 2, 1},
		{1, 2, 6},
		{2, 12, 1},
		{4, 1, 8},
	}
	for _, strides := range cases {
		want := dim.DynFrom(strides).FastestVaryingStrideOrder()
		got := dim.Dim3{strides[0], strides[1], strides[2]}.FastestVaryingStrideOrder()
		assert.Equal(t, dim.Dim3{want[0], want[1], want[2]}, got,
			"fixed and dynamic orderings must agree for strides %v", strides)
	}
}

package dim_test

import (
	"testing"

	"github.com/katalvlaran/ndshape/dim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplySlices_FullRangeRoundTrip verifies the identity property: a
// step-1 Span over the whole range of every axis changes nothing and
// displaces nothing.
func TestApplySlices_FullRangeRoundTrip(t *testing.T) {
	shape := dim.D3(2, 3, 4)
	strides := shape.DefaultStrides()

	off := shape.ApplySpans(&strides, [3]dim.Span{dim.All(), dim.All(), dim.All()})

	assert.Zero(t, off, "a full-range slice must not displace the base")
	assert.Equal(t, dim.D3(2, 3, 4), shape, "shape unchanged")
	assert.Equal(t, dim.D3(2, 3, 4).DefaultStrides(), strides, "strides unchanged")
}

// TestApplySlices_Window verifies bounded windows, negative bounds and the
// end-clamp rule.
func TestApplySlices_Window(t *testing.T) {
	shape := dim.D2(5, 6)
	strides := shape.DefaultStrides() // (6, 1)

	off := shape.ApplySpans(&strides, [2]dim.Span{dim.Range(1, 4), dim.From(-2)})

	assert.Equal(t, dim.D2(3, 2), shape, "windows narrow the extents")
	assert.Equal(t, dim.Dim2{6, 1}, strides, "step 1 keeps the strides")
	assert.Equal(t, 1*6+4*1, off, "start positions displace the base")

	// end below start clamps to an empty window rather than failing
	empty := dim.D1(5)
	es := empty.DefaultStrides()
	_ = empty.ApplySpans(&es, [1]dim.Span{dim.Range(4, 2)})
	assert.Equal(t, dim.D1(0), empty, "inverted bounds clamp to extent 0")
}

// TestApplySlices_Step verifies extent rounding and stride scaling for
// steps larger than one.
func TestApplySlices_Step(t *testing.T) {
	shape := dim.D1(7)
	strides := shape.DefaultStrides()

	off := shape.ApplySpans(&strides, [1]dim.Span{dim.All().By(2)})

	assert.Zero(t, off)
	assert.Equal(t, dim.D1(4), shape, "ceil(7/2) elements remain")
	assert.Equal(t, dim.Dim1{2}, strides, "stride scales by the step")
}

// TestApplySlices_NegativeStep verifies the base re-anchors at the far end
// of the window and the stride turns negative.
func TestApplySlices_NegativeStep(t *testing.T) {
	shape := dim.D1(5)
	strides := shape.DefaultStrides()

	off := shape.ApplySpans(&strides, [1]dim.Span{dim.All().By(-1)})

	assert.Equal(t, 4, off, "reversal starts at the last element of the window")
	assert.Equal(t, dim.D1(5), shape)
	assert.Equal(t, dim.Dim1{-1}, strides)

	// bounded window with stride 2 within a larger axis
	shape2 := dim.D1(10)
	strides2 := shape2.DefaultStrides()
	off2 := shape2.ApplySpans(&strides2, [1]dim.Span{dim.Range(2, 8).By(-2)})
	assert.Equal(t, 2+5, off2, "anchor lands on the window's last element")
	assert.Equal(t, dim.D1(3), shape2, "ceil(6/2) elements selected")
	assert.Equal(t, dim.Dim1{-2}, strides2)
}

// TestApplySlices_Composes verifies re-slicing a sliced view equals slicing
// the original directly: offsets add, extents and strides match.
func TestApplySlices_Composes(t *testing.T) {
	// chain: [2:8) then [1:)·2 over a rank-1 axis of 10
	chained := dim.D1(10)
	cs := chained.DefaultStrides()
	off := chained.ApplySpans(&cs, [1]dim.Span{dim.Range(2, 8)})
	off += chained.ApplySpans(&cs, [1]dim.Span{dim.From(1).By(2)})

	direct := dim.D1(10)
	ds := direct.DefaultStrides()
	dOff := direct.ApplySpans(&ds, [1]dim.Span{dim.Range(3, 8).By(2)})

	assert.Equal(t, dOff, off, "displacements must compose")
	assert.Equal(t, direct, chained, "extents must compose")
	assert.Equal(t, ds, cs, "strides must compose")
}

// TestApplySlices_DynKind verifies the dynamic path shares the transform.
func TestApplySlices_DynKind(t *testing.T) {
	shape := dim.Dyn(4, 5, 6)
	strides := shape.DefaultStrides() // (30, 6, 1)

	off := shape.ApplySpans(strides, []dim.Span{dim.From(1), dim.All(), dim.Range(0, 3)})

	assert.Equal(t, dim.Dyn(3, 5, 3), shape)
	assert.Equal(t, dim.Dyn(30, 6, 1), strides)
	assert.Equal(t, 30, off)
}

// TestApplySlices_ContractViolations confirms the panicking preconditions:
// span count, zero step, out-of-range resolved bounds.
func TestApplySlices_ContractViolations(t *testing.T) {
	assert.Panics(t, func() {
		dim.ApplySlices([]int{4, 4}, []int{4, 1}, []dim.Span{dim.All()})
	}, "one Span per axis is required")

	assert.Panics(t, func() {
		dim.ApplySlices([]int{4}, []int{1}, []dim.Span{dim.All().By(0)})
	}, "zero step is a contract violation")

	assert.Panics(t, func() {
		dim.ApplySlices([]int{4}, []int{1}, []dim.Span{dim.Range(0, 5)})
	}, "resolved end beyond the extent is a contract violation")

	assert.Panics(t, func() {
		dim.ApplySlices([]int{3}, []int{1}, []dim.Span{dim.From(-5)})
	}, "start resolving below zero is a contract violation, not a clamp")

	assert.Panics(t, func() {
		dim.ApplySlices([]int{3}, []int{1}, []dim.Span{dim.Range(0, -4)})
	}, "end resolving below zero is a contract violation")
}

// TestSub_CollapsesAxis verifies single-index axis collapse: extent pinned
// to 1, displacement selects the slab.
func TestSub_CollapsesAxis(t *testing.T) {
	shape := dim.D3(2, 3, 4).Extents()
	strides := dim.D3(2, 3, 4).DefaultStrides().Extents()

	off := dim.Sub(shape, strides, dim.Axis(1), 2)

	assert.Equal(t, []int{2, 1, 4}, shape, "the selected axis collapses to extent 1")
	assert.Equal(t, 2*4, off, "displacement is index times the axis stride")

	require.Panics(t, func() { dim.Sub(shape, strides, dim.Axis(1), 1) },
		"index beyond the collapsed extent must panic")
	require.Panics(t, func() { dim.Sub(shape, strides, dim.Axis(3), 0) },
		"axis beyond the rank must panic")
}

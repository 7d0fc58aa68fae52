package dim

import "slices"

// DimDyn: the dynamic-rank kind. One generic implementation of the full
// contract; the fixed kinds must agree with it rank for rank.

// NDim returns the rank.
func (d DimDyn) NDim() int { return len(d) }

// Size returns the extent product (1 for rank 0).
func (d DimDyn) Size() int { return sizeOf(d) }

// CheckedSize returns the extent product, ok=false on overflow.
func (d DimDyn) CheckedSize() (int, bool) { return checkedSizeOf(d) }

// Extents returns the extents as a freshly backed slice.
func (d DimDyn) Extents() []int { return slices.Clone(d) }

// Clone returns an independent copy of d.
func (d DimDyn) Clone() DimDyn { return slices.Clone(d) }

// Equal reports shape equality (same rank, same extents).
func (d DimDyn) Equal(o DimDyn) bool { return EqualExtents(d, o) }

// String renders the extents.
func (d DimDyn) String() string { return formatExtents(d) }

// Get returns the extent at axis a. Panics if a is out of range.
func (d DimDyn) Get(a Axis) int { return d[a.Index()] }

// Set stores the extent at axis a. Panics if a is out of range.
func (d DimDyn) Set(a Axis, v int) { d[a.Index()] = v }

// DefaultStrides returns freshly allocated row-major strides.
func (d DimDyn) DefaultStrides() DimDyn {
	s := make(DimDyn, len(d))
	defaultStridesInto(s, d)
	return s
}

// FortranStrides returns freshly allocated column-major strides.
func (d DimDyn) FortranStrides() DimDyn {
	s := make(DimDyn, len(d))
	fortranStridesInto(s, d)
	return s
}

// FirstIndex returns the all-zero index unless any axis is empty.
func (d DimDyn) FirstIndex() (DimDyn, bool) {
	idx := make(DimDyn, len(d))
	if !firstIndexInto(idx, d) {
		return nil, false
	}
	return idx, true
}

// NextFor returns the index after idx in row-major order, or ok=false once
// the sequence is exhausted. idx itself is never mutated.
func (d DimDyn) NextFor(idx DimDyn) (DimDyn, bool) {
	next := slices.Clone(idx)
	if !nextForInPlace(d, next) {
		return nil, false
	}
	return next, true
}

// OffsetChecked returns the linear offset of idx, ok=false out of range.
// Ranks of the receiver, strides and idx must match.
func (d DimDyn) OffsetChecked(strides, idx DimDyn) (int, bool) {
	if len(strides) != len(d) || len(idx) != len(d) {
		panic("dim: OffsetChecked: rank mismatch")
	}
	return offsetChecked(d, strides, idx)
}

// FastestVaryingStrideOrder returns the axis permutation sorted by ascending
// stride; the receiver is the stride vector.
func (d DimDyn) FastestVaryingStrideOrder() DimDyn {
	order := make(DimDyn, len(d))
	fastestOrderInto(order, d)
	return order
}

// IsContiguous reports whether strides are layout-equivalent to the
// row-major default for this shape.
func (d DimDyn) IsContiguous(strides DimDyn) bool {
	if len(strides) != len(d) {
		panic("dim: IsContiguous: rank mismatch")
	}
	order := make([]int, len(d))
	return contiguous(d, strides, order)
}

// LastElem returns the innermost extent, 0 for rank 0.
func (d DimDyn) LastElem() int { return lastElemOf(d) }

// SetLastElem stores the innermost extent. Panics on rank 0.
func (d DimDyn) SetLastElem(v int) { d[len(d)-1] = v }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d DimDyn) CanIndex(bufLen int, strides DimDyn) error {
	return CanIndexSlice(bufLen, d, strides)
}

// ApplySpans applies per-axis Spans to shape and strides in place and
// returns the accumulated base displacement. One Span per axis is required.
// See ApplySlices.
func (d DimDyn) ApplySpans(strides DimDyn, spans []Span) int {
	return ApplySlices(d, strides, spans)
}

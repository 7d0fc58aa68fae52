package dim

// Fixed-rank kinds, ranks 4–5. These keep the inline backing and
// compile-time rank safety of the small ranks but route every algorithm
// through the shared slice core; at this width the branch-free forms stop
// paying for themselves.

////////////////////////////////////////////////////////////////////////////////
// Dim4
////////////////////////////////////////////////////////////////////////////////

// NDim returns 4.
func (d Dim4) NDim() int { return 4 }

// Size returns the extent product.
func (d Dim4) Size() int { return sizeOf(d[:]) }

// CheckedSize returns the extent product, ok=false on overflow.
func (d Dim4) CheckedSize() (int, bool) { return checkedSizeOf(d[:]) }

// Extents returns the extents as a freshly backed slice.
func (d Dim4) Extents() []int { return d[:] }

// Equal reports shape equality.
func (d Dim4) Equal(o Dim4) bool { return d == o }

// String renders the extents.
func (d Dim4) String() string { return formatExtents(d[:]) }

// Get returns the extent at axis a. Panics if a is out of range.
func (d Dim4) Get(a Axis) int { return d[a.Index()] }

// Set stores the extent at axis a. Panics if a is out of range.
func (d *Dim4) Set(a Axis, v int) { d[a.Index()] = v }

// DefaultStrides returns the row-major strides for this shape.
func (d Dim4) DefaultStrides() Dim4 {
	var s Dim4
	defaultStridesInto(s[:], d[:])
	return s
}

// FortranStrides returns the column-major strides for this shape.
func (d Dim4) FortranStrides() Dim4 {
	var s Dim4
	fortranStridesInto(s[:], d[:])
	return s
}

// FirstIndex returns the all-zero index unless any axis is empty.
func (d Dim4) FirstIndex() (Dim4, bool) {
	var idx Dim4
	ok := firstIndexInto(idx[:], d[:])
	return idx, ok
}

// NextFor advances idx in row-major order, reporting false once exhausted.
func (d Dim4) NextFor(idx Dim4) (Dim4, bool) {
	ok := nextForInPlace(d[:], idx[:])
	return idx, ok
}

// OffsetChecked returns the linear offset of idx, ok=false out of range.
func (d Dim4) OffsetChecked(strides, idx Dim4) (int, bool) {
	return offsetChecked(d[:], strides[:], idx[:])
}

// FastestVaryingStrideOrder returns the axis permutation sorted by ascending
// stride; the receiver is the stride vector.
func (d Dim4) FastestVaryingStrideOrder() Dim4 {
	var order Dim4
	fastestOrderInto(order[:], d[:])
	return order
}

// IsContiguous reports whether strides are layout-equivalent to the
// row-major default for this shape.
func (d Dim4) IsContiguous(strides Dim4) bool {
	var order Dim4
	return contiguous(d[:], strides[:], order[:])
}

// LastElem returns the innermost extent.
func (d Dim4) LastElem() int { return d[3] }

// SetLastElem stores the innermost extent.
func (d *Dim4) SetLastElem(v int) { d[3] = v }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d Dim4) CanIndex(bufLen int, strides Dim4) error {
	return CanIndexSlice(bufLen, d[:], strides[:])
}

// ApplySpans applies per-axis Spans to shape and strides in place and
// returns the accumulated base displacement. See ApplySlices.
func (d *Dim4) ApplySpans(strides *Dim4, spans [4]Span) int {
	return ApplySlices(d[:], strides[:], spans[:])
}

////////////////////////////////////////////////////////////////////////////////
// Dim5
////////////////////////////////////////////////////////////////////////////////

// NDim returns 5.
func (d Dim5) NDim() int { return 5 }

// Size returns the extent product.
func (d Dim5) Size() int { return sizeOf(d[:]) }

// CheckedSize returns the extent product, ok=false on overflow.
func (d Dim5) CheckedSize() (int, bool) { return checkedSizeOf(d[:]) }

// Extents returns the extents as a freshly backed slice.
func (d Dim5) Extents() []int { return d[:] }

// Equal reports shape equality.
func (d Dim5) Equal(o Dim5) bool { return d == o }

// String renders the extents.
func (d Dim5) String() string { return formatExtents(d[:]) }

// Get returns the extent at axis a. Panics if a is out of range.
func (d Dim5) Get(a Axis) int { return d[a.Index()] }

// Set stores the extent at axis a. Panics if a is out of range.
func (d *Dim5) Set(a Axis, v int) { d[a.Index()] = v }

// DefaultStrides returns the row-major strides for this shape.
func (d Dim5) DefaultStrides() Dim5 {
	var s Dim5
	defaultStridesInto(s[:], d[:])
	return s
}

// FortranStrides returns the column-major strides for this shape.
func (d Dim5) FortranStrides() Dim5 {
	var s Dim5
	fortranStridesInto(s[:], d[:])
	return s
}

// FirstIndex returns the all-zero index unless any axis is empty.
func (d Dim5) FirstIndex() (Dim5, bool) {
	var idx Dim5
	ok := firstIndexInto(idx[:], d[:])
	return idx, ok
}

// NextFor advances idx in row-major order, reporting false once exhausted.
func (d Dim5) NextFor(idx Dim5) (Dim5, bool) {
	ok := nextForInPlace(d[:], idx[:])
	return idx, ok
}

// OffsetChecked returns the linear offset of idx, ok=false out of range.
func (d Dim5) OffsetChecked(strides, idx Dim5) (int, bool) {
	return offsetChecked(d[:], strides[:], idx[:])
}

// FastestVaryingStrideOrder returns the axis permutation sorted by ascending
// stride; the receiver is the stride vector.
func (d Dim5) FastestVaryingStrideOrder() Dim5 {
	var order Dim5
	fastestOrderInto(order[:], d[:])
	return order
}

// IsContiguous reports whether strides are layout-equivalent to the
// row-major default for this shape.
func (d Dim5) IsContiguous(strides Dim5) bool {
	var order Dim5
	return contiguous(d[:], strides[:], order[:])
}

// LastElem returns the innermost extent.
func (d Dim5) LastElem() int { return d[4] }

// SetLastElem stores the innermost extent.
func (d *Dim5) SetLastElem(v int) { d[4] = v }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d Dim5) CanIndex(bufLen int, strides Dim5) error {
	return CanIndexSlice(bufLen, d[:], strides[:])
}

// ApplySpans applies per-axis Spans to shape and strides in place and
// returns the accumulated base displacement. See ApplySlices.
func (d *Dim5) ApplySpans(strides *Dim5, spans [5]Span) int {
	return ApplySlices(d[:], strides[:], spans[:])
}

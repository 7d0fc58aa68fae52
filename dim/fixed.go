package dim

// Fixed-rank kinds, ranks 0–3. The small ranks carry branch-free
// specializations of the shared algorithms in dimension.go; each must stay
// behaviorally indistinguishable from the generic slice path (the
// equivalence is pinned by tests).

////////////////////////////////////////////////////////////////////////////////
// Dim0
////////////////////////////////////////////////////////////////////////////////

// NDim returns 0.
func (d Dim0) NDim() int { return 0 }

// Size returns 1: the empty product. A scalar holds one element.
func (d Dim0) Size() int { return 1 }

// CheckedSize returns (1, true); rank 0 cannot overflow.
func (d Dim0) CheckedSize() (int, bool) { return 1, true }

// Extents returns an empty slice.
func (d Dim0) Extents() []int { return d[:] }

// Equal reports shape equality; all Dim0 values are equal.
func (d Dim0) Equal(Dim0) bool { return true }

// String renders the extents.
func (d Dim0) String() string { return formatExtents(d[:]) }

// DefaultStrides returns the empty stride vector.
func (d Dim0) DefaultStrides() Dim0 { return Dim0{} }

// FortranStrides returns the empty stride vector.
func (d Dim0) FortranStrides() Dim0 { return Dim0{} }

// FirstIndex returns the empty index; a scalar always has exactly one.
func (d Dim0) FirstIndex() (Dim0, bool) { return Dim0{}, true }

// NextFor reports false: the single-element sequence ends after FirstIndex.
func (d Dim0) NextFor(Dim0) (Dim0, bool) { return Dim0{}, false }

// OffsetChecked returns offset 0; the empty index is always in bounds.
func (d Dim0) OffsetChecked(Dim0, Dim0) (int, bool) { return 0, true }

// FastestVaryingStrideOrder returns the empty permutation.
func (d Dim0) FastestVaryingStrideOrder() Dim0 { return Dim0{} }

// IsContiguous reports true; a scalar layout is always contiguous.
func (d Dim0) IsContiguous(Dim0) bool { return true }

// LastElem returns 0 for rank 0.
func (d Dim0) LastElem() int { return 0 }

// SetLastElem panics: rank 0 has no innermost axis.
func (d *Dim0) SetLastElem(int) { panic("dim: SetLastElem on rank 0") }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d Dim0) CanIndex(bufLen int, strides Dim0) error {
	return CanIndexSlice(bufLen, d[:], strides[:])
}

// ApplySpans applies per-axis Spans in place; a no-op at rank 0.
func (d *Dim0) ApplySpans(strides *Dim0, spans [0]Span) int {
	return ApplySlices(d[:], strides[:], spans[:])
}

////////////////////////////////////////////////////////////////////////////////
// Dim1
////////////////////////////////////////////////////////////////////////////////

// NDim returns 1.
func (d Dim1) NDim() int { return 1 }

// Size returns the single extent.
func (d Dim1) Size() int { return d[0] }

// CheckedSize returns the single extent; rank 1 cannot overflow.
func (d Dim1) CheckedSize() (int, bool) { return d[0], true }

// Extents returns the extents as a freshly backed slice.
func (d Dim1) Extents() []int { return d[:] }

// Equal reports shape equality.
func (d Dim1) Equal(o Dim1) bool { return d == o }

// String renders the extents.
func (d Dim1) String() string { return formatExtents(d[:]) }

// Get returns the extent at axis a. Panics if a is out of range.
func (d Dim1) Get(a Axis) int { return d[a.Index()] }

// Set stores the extent at axis a. Panics if a is out of range.
func (d *Dim1) Set(a Axis, v int) { d[a.Index()] = v }

// DefaultStrides returns (1) regardless of extent.
func (d Dim1) DefaultStrides() Dim1 { return Dim1{1} }

// FortranStrides returns (1); the two layouts coincide at rank 1.
func (d Dim1) FortranStrides() Dim1 { return Dim1{1} }

// FirstIndex returns (0) unless the axis is empty.
func (d Dim1) FirstIndex() (Dim1, bool) {
	if d[0] == 0 {
		return Dim1{}, false
	}
	return Dim1{0}, true
}

// NextFor advances idx, reporting false once the axis is exhausted.
func (d Dim1) NextFor(idx Dim1) (Dim1, bool) {
	idx[0]++
	if idx[0] < d[0] {
		return idx, true
	}
	return Dim1{}, false
}

// OffsetChecked returns the linear offset of idx, ok=false out of range.
func (d Dim1) OffsetChecked(strides, idx Dim1) (int, bool) {
	if uint(idx[0]) >= uint(d[0]) {
		return 0, false
	}
	return StrideOffset(idx[0], strides[0]), true
}

// FastestVaryingStrideOrder returns the identity permutation (0).
func (d Dim1) FastestVaryingStrideOrder() Dim1 { return Dim1{0} }

// IsContiguous reports whether strides equal the row-major default.
// A rank-1 shape with any other stride is never contiguous, even at
// extent 1.
func (d Dim1) IsContiguous(strides Dim1) bool { return strides[0] == 1 }

// LastElem returns the innermost (only) extent.
func (d Dim1) LastElem() int { return d[0] }

// SetLastElem stores the innermost extent.
func (d *Dim1) SetLastElem(v int) { d[0] = v }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d Dim1) CanIndex(bufLen int, strides Dim1) error {
	return CanIndexSlice(bufLen, d[:], strides[:])
}

// ApplySpans applies per-axis Spans to shape and strides in place and
// returns the accumulated base displacement. See ApplySlices.
func (d *Dim1) ApplySpans(strides *Dim1, spans [1]Span) int {
	return ApplySlices(d[:], strides[:], spans[:])
}

////////////////////////////////////////////////////////////////////////////////
// Dim2
////////////////////////////////////////////////////////////////////////////////

// NDim returns 2.
func (d Dim2) NDim() int { return 2 }

// Size returns rows·cols.
func (d Dim2) Size() int { return d[0] * d[1] }

// CheckedSize returns rows·cols, ok=false on overflow.
func (d Dim2) CheckedSize() (int, bool) { return checkedMul(d[0], d[1]) }

// Extents returns the extents as a freshly backed slice.
func (d Dim2) Extents() []int { return d[:] }

// Equal reports shape equality.
func (d Dim2) Equal(o Dim2) bool { return d == o }

// String renders the extents.
func (d Dim2) String() string { return formatExtents(d[:]) }

// Get returns the extent at axis a. Panics if a is out of range.
func (d Dim2) Get(a Axis) int { return d[a.Index()] }

// Set stores the extent at axis a. Panics if a is out of range.
func (d *Dim2) Set(a Axis, v int) { d[a.Index()] = v }

// DefaultStrides returns the row-major strides (cols, 1).
func (d Dim2) DefaultStrides() Dim2 { return Dim2{d[1], 1} }

// FortranStrides returns the column-major strides (1, rows).
func (d Dim2) FortranStrides() Dim2 { return Dim2{1, d[0]} }

// FirstIndex returns (0,0) unless either axis is empty.
func (d Dim2) FirstIndex() (Dim2, bool) {
	if d[0] == 0 || d[1] == 0 {
		return Dim2{}, false
	}
	return Dim2{0, 0}, true
}

// NextFor advances idx in row-major order (column fastest), reporting false
// once the shape is exhausted.
func (d Dim2) NextFor(idx Dim2) (Dim2, bool) {
	i, j := idx[0], idx[1]
	j++
	if j >= d[1] {
		j = 0
		i++
		if i >= d[0] {
			return Dim2{}, false
		}
	}
	return Dim2{i, j}, true
}

// OffsetChecked returns the linear offset of idx, ok=false out of range.
func (d Dim2) OffsetChecked(strides, idx Dim2) (int, bool) {
	if uint(idx[0]) >= uint(d[0]) || uint(idx[1]) >= uint(d[1]) {
		return 0, false
	}
	return StrideOffset(idx[0], strides[0]) + StrideOffset(idx[1], strides[1]), true
}

// FastestVaryingStrideOrder returns the axis permutation sorted by ascending
// stride; the receiver is the stride vector.
func (d Dim2) FastestVaryingStrideOrder() Dim2 {
	if d[0] <= d[1] {
		return Dim2{0, 1}
	}
	return Dim2{1, 0}
}

// IsContiguous reports whether strides are layout-equivalent to the
// row-major default for this shape.
func (d Dim2) IsContiguous(strides Dim2) bool {
	var order Dim2
	return contiguous(d[:], strides[:], order[:])
}

// LastElem returns the innermost extent.
func (d Dim2) LastElem() int { return d[1] }

// SetLastElem stores the innermost extent.
func (d *Dim2) SetLastElem(v int) { d[1] = v }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d Dim2) CanIndex(bufLen int, strides Dim2) error {
	return CanIndexSlice(bufLen, d[:], strides[:])
}

// ApplySpans applies per-axis Spans to shape and strides in place and
// returns the accumulated base displacement. See ApplySlices.
func (d *Dim2) ApplySpans(strides *Dim2, spans [2]Span) int {
	return ApplySlices(d[:], strides[:], spans[:])
}

////////////////////////////////////////////////////////////////////////////////
// Dim3
////////////////////////////////////////////////////////////////////////////////

// NDim returns 3.
func (d Dim3) NDim() int { return 3 }

// Size returns the extent product.
func (d Dim3) Size() int { return d[0] * d[1] * d[2] }

// CheckedSize returns the extent product, ok=false on overflow.
func (d Dim3) CheckedSize() (int, bool) { return checkedSizeOf(d[:]) }

// Extents returns the extents as a freshly backed slice.
func (d Dim3) Extents() []int { return d[:] }

// Equal reports shape equality.
func (d Dim3) Equal(o Dim3) bool { return d == o }

// String renders the extents.
func (d Dim3) String() string { return formatExtents(d[:]) }

// Get returns the extent at axis a. Panics if a is out of range.
func (d Dim3) Get(a Axis) int { return d[a.Index()] }

// Set stores the extent at axis a. Panics if a is out of range.
func (d *Dim3) Set(a Axis, v int) { d[a.Index()] = v }

// DefaultStrides returns the row-major strides (b·c, c, 1).
func (d Dim3) DefaultStrides() Dim3 { return Dim3{d[1] * d[2], d[2], 1} }

// FortranStrides returns the column-major strides (1, a, a·b).
func (d Dim3) FortranStrides() Dim3 { return Dim3{1, d[0], d[0] * d[1]} }

// FirstIndex returns (0,0,0) unless any axis is empty.
func (d Dim3) FirstIndex() (Dim3, bool) {
	if d[0] == 0 || d[1] == 0 || d[2] == 0 {
		return Dim3{}, false
	}
	return Dim3{0, 0, 0}, true
}

// NextFor advances idx in row-major order (last axis fastest), reporting
// false once the shape is exhausted.
func (d Dim3) NextFor(idx Dim3) (Dim3, bool) {
	i, j, k := idx[0], idx[1], idx[2]
	k++
	if k == d[2] {
		k = 0
		j++
		if j == d[1] {
			j = 0
			i++
			if i == d[0] {
				return Dim3{}, false
			}
		}
	}
	return Dim3{i, j, k}, true
}

// OffsetChecked returns the linear offset of idx, ok=false out of range.
func (d Dim3) OffsetChecked(strides, idx Dim3) (int, bool) {
	return offsetChecked(d[:], strides[:], idx[:])
}

// FastestVaryingStrideOrder returns the axis permutation sorted by ascending
// stride, via a stable 3-element sorting network; the receiver is the stride
// vector.
func (d Dim3) FastestVaryingStrideOrder() Dim3 {
	s := d
	order := Dim3{0, 1, 2}
	swap := func(x, y int) {
		if s[x] > s[y] {
			s[x], s[y] = s[y], s[x]
			order[x], order[y] = order[y], order[x]
		}
	}
	swap(1, 2)
	swap(0, 1)
	swap(1, 2)
	return order
}

// IsContiguous reports whether strides are layout-equivalent to the
// row-major default for this shape.
func (d Dim3) IsContiguous(strides Dim3) bool {
	var order Dim3
	return contiguous(d[:], strides[:], order[:])
}

// LastElem returns the innermost extent.
func (d Dim3) LastElem() int { return d[2] }

// SetLastElem stores the innermost extent.
func (d *Dim3) SetLastElem(v int) { d[2] = v }

// CanIndex validates indexing a buffer of bufLen elements with this shape
// and the given strides. See CanIndexSlice.
func (d Dim3) CanIndex(bufLen int, strides Dim3) error {
	return CanIndexSlice(bufLen, d[:], strides[:])
}

// ApplySpans applies per-axis Spans to shape and strides in place and
// returns the accumulated base displacement. See ApplySlices.
func (d *Dim3) ApplySpans(strides *Dim3, spans [3]Span) int {
	return ApplySlices(d[:], strides[:], spans[:])
}

package dim

// Index resolution: converting ergonomic index representations into linear
// offsets. Every representation carries the checked/unchecked dual — hot
// iteration loops establish validity once and then pay no per-element
// bounds check.

// NdIndex is implemented by every index representation usable with the
// dimension kind D: Flat for rank 1, the fixed kinds for their own rank,
// and DimDyn for any rank.
type NdIndex[D any] interface {
	// IndexChecked returns the linear offset of the index under the given
	// shape and strides, ok=false when any component is out of range.
	IndexChecked(shape, strides D) (int, bool)
	// IndexUnchecked returns the linear offset with no bounds check. The
	// caller must already have established validity (a prior checked
	// access, or an invariant-preserving view); this is a contract, not an
	// error path.
	IndexUnchecked(strides D) int
}

// Locate resolves idx against shape and strides with bounds checking.
func Locate[D any, I NdIndex[D]](shape, strides D, idx I) (int, bool) {
	return idx.IndexChecked(shape, strides)
}

// LocateUnchecked resolves idx against strides with no bounds check; the
// index must be valid for the paired shape.
func LocateUnchecked[D any, I NdIndex[D]](strides D, idx I) int {
	return idx.IndexUnchecked(strides)
}

// Flat is a single-integer index into a rank-1 shape.
type Flat int

// IndexChecked returns the offset of the flat index, ok=false out of range.
func (ix Flat) IndexChecked(shape, strides Dim1) (int, bool) {
	return shape.OffsetChecked(strides, Dim1{int(ix)})
}

// IndexUnchecked returns the offset of the flat index with no bounds check.
func (ix Flat) IndexUnchecked(strides Dim1) int {
	return StrideOffset(int(ix), strides[0])
}

// IndexChecked returns offset 0; the empty index is always valid.
func (ix Dim0) IndexChecked(shape, strides Dim0) (int, bool) { return 0, true }

// IndexUnchecked returns offset 0.
func (ix Dim0) IndexUnchecked(Dim0) int { return 0 }

// IndexChecked returns the offset of ix, ok=false out of range.
func (ix Dim1) IndexChecked(shape, strides Dim1) (int, bool) {
	return shape.OffsetChecked(strides, ix)
}

// IndexUnchecked returns the offset of ix with no bounds check.
func (ix Dim1) IndexUnchecked(strides Dim1) int {
	return StrideOffset(ix[0], strides[0])
}

// IndexChecked returns the offset of ix, ok=false out of range.
func (ix Dim2) IndexChecked(shape, strides Dim2) (int, bool) {
	return shape.OffsetChecked(strides, ix)
}

// IndexUnchecked returns the offset of ix with no bounds check.
func (ix Dim2) IndexUnchecked(strides Dim2) int {
	return StrideOffset(ix[0], strides[0]) +
		StrideOffset(ix[1], strides[1])
}

// IndexChecked returns the offset of ix, ok=false out of range.
func (ix Dim3) IndexChecked(shape, strides Dim3) (int, bool) {
	return shape.OffsetChecked(strides, ix)
}

// IndexUnchecked returns the offset of ix with no bounds check.
func (ix Dim3) IndexUnchecked(strides Dim3) int {
	return StrideOffset(ix[0], strides[0]) +
		StrideOffset(ix[1], strides[1]) +
		StrideOffset(ix[2], strides[2])
}

// IndexChecked returns the offset of ix, ok=false out of range.
func (ix Dim4) IndexChecked(shape, strides Dim4) (int, bool) {
	return shape.OffsetChecked(strides, ix)
}

// IndexUnchecked returns the offset of ix with no bounds check.
func (ix Dim4) IndexUnchecked(strides Dim4) int {
	return offsetUnchecked(strides[:], ix[:])
}

// IndexChecked returns the offset of ix, ok=false out of range.
func (ix Dim5) IndexChecked(shape, strides Dim5) (int, bool) {
	return shape.OffsetChecked(strides, ix)
}

// IndexUnchecked returns the offset of ix with no bounds check.
func (ix Dim5) IndexUnchecked(strides Dim5) int {
	return offsetUnchecked(strides[:], ix[:])
}

// IndexChecked returns the offset of ix, ok=false out of range.
// Ranks must match; a mismatch panics.
func (ix DimDyn) IndexChecked(shape, strides DimDyn) (int, bool) {
	return shape.OffsetChecked(strides, ix)
}

// IndexUnchecked returns the offset of ix with no bounds check.
func (ix DimDyn) IndexUnchecked(strides DimDyn) int {
	return offsetUnchecked(strides, ix)
}

// Compile-time checks that every representation satisfies NdIndex.
var (
	_ NdIndex[Dim1]   = Flat(0)
	_ NdIndex[Dim0]   = Dim0{}
	_ NdIndex[Dim1]   = Dim1{}
	_ NdIndex[Dim2]   = Dim2{}
	_ NdIndex[Dim3]   = Dim3{}
	_ NdIndex[Dim4]   = Dim4{}
	_ NdIndex[Dim5]   = Dim5{}
	_ NdIndex[DimDyn] = DimDyn(nil)
)

package dim

import "slices"

// Typed axis relations. RemoveAxis proves, in the type system, that
// dropping one axis from a rank-N shape yields a rank-(N−1) shape;
// InsertAxis is its left inverse at the same position. The dynamic kind
// implements both as structural edits.
//
// All of these panic on an out-of-range axis: the axis is part of the
// caller's contract, and continuing would corrupt shape bookkeeping.

// removeAxisInto copies src into dst skipping the extent at axis a,
// preserving the relative order of the remaining axes.
func removeAxisInto(dst, src []int, a int) {
	if a < 0 || a >= len(src) {
		panic("dim: RemoveAxis: axis out of range")
	}
	k := 0
	for i, d := range src {
		if i == a {
			continue
		}
		dst[k] = d
		k++
	}
}

// insertAxisInto copies src into dst inserting extent e at axis a.
func insertAxisInto(dst, src []int, a, e int) {
	if a < 0 || a > len(src) {
		panic("dim: InsertAxis: axis out of range")
	}
	copy(dst[:a], src[:a])
	dst[a] = e
	copy(dst[a+1:], src[a:])
}

// RemoveAxis drops the only axis, yielding the scalar shape.
func (d Dim1) RemoveAxis(a Axis) Dim0 {
	if a.Index() != 0 {
		panic("dim: RemoveAxis: axis out of range")
	}
	return Dim0{}
}

// RemoveAxis drops axis a, yielding a rank-1 shape.
func (d Dim2) RemoveAxis(a Axis) Dim1 {
	switch a.Index() {
	case 0:
		return Dim1{d[1]}
	case 1:
		return Dim1{d[0]}
	}
	panic("dim: RemoveAxis: axis out of range")
}

// RemoveAxis drops axis a, yielding a rank-2 shape.
func (d Dim3) RemoveAxis(a Axis) Dim2 {
	var out Dim2
	removeAxisInto(out[:], d[:], a.Index())
	return out
}

// RemoveAxis drops axis a, yielding a rank-3 shape.
func (d Dim4) RemoveAxis(a Axis) Dim3 {
	var out Dim3
	removeAxisInto(out[:], d[:], a.Index())
	return out
}

// RemoveAxis drops axis a, yielding a rank-4 shape.
func (d Dim5) RemoveAxis(a Axis) Dim4 {
	var out Dim4
	removeAxisInto(out[:], d[:], a.Index())
	return out
}

// RemoveAxis returns a copy of d with axis a structurally deleted.
func (d DimDyn) RemoveAxis(a Axis) DimDyn {
	if a.Index() < 0 || a.Index() >= len(d) {
		panic("dim: RemoveAxis: axis out of range")
	}
	out := slices.Clone(d)
	return slices.Delete(out, a.Index(), a.Index()+1)
}

// InsertAxis inserts an axis of the given extent, yielding a rank-1 shape.
func (d Dim0) InsertAxis(a Axis, extent int) Dim1 {
	if a.Index() != 0 {
		panic("dim: InsertAxis: axis out of range")
	}
	return Dim1{extent}
}

// InsertAxis inserts an axis of the given extent at position a.
func (d Dim1) InsertAxis(a Axis, extent int) Dim2 {
	var out Dim2
	insertAxisInto(out[:], d[:], a.Index(), extent)
	return out
}

// InsertAxis inserts an axis of the given extent at position a.
func (d Dim2) InsertAxis(a Axis, extent int) Dim3 {
	var out Dim3
	insertAxisInto(out[:], d[:], a.Index(), extent)
	return out
}

// InsertAxis inserts an axis of the given extent at position a.
func (d Dim3) InsertAxis(a Axis, extent int) Dim4 {
	var out Dim4
	insertAxisInto(out[:], d[:], a.Index(), extent)
	return out
}

// InsertAxis inserts an axis of the given extent at position a.
func (d Dim4) InsertAxis(a Axis, extent int) Dim5 {
	var out Dim5
	insertAxisInto(out[:], d[:], a.Index(), extent)
	return out
}

// InsertAxis returns a copy of d with an axis of the given extent inserted
// at position a (a may equal the rank to append).
func (d DimDyn) InsertAxis(a Axis, extent int) DimDyn {
	if a.Index() < 0 || a.Index() > len(d) {
		panic("dim: InsertAxis: axis out of range")
	}
	out := make(DimDyn, 0, len(d)+1)
	out = append(out, d[:a.Index()]...)
	out = append(out, extent)
	return append(out, d[a.Index():]...)
}

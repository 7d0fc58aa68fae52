package dim

import "fmt"

// Dimension is the rank-erased view of a dimension kind, satisfied by
// Dim0 … Dim5 and DimDyn alike. It exposes the handful of queries an array
// container needs without knowing the concrete rank; rank-preserving
// derivations (strides, enumeration, transforms) stay on the concrete kinds
// so that fixed ranks keep their compile-time safety.
type Dimension interface {
	// NDim returns the rank (number of axes).
	NDim() int
	// Size returns the product of extents; 1 for rank 0.
	Size() int
	// CheckedSize is Size with overflow detection: ok=false if the product
	// does not fit an int. Use it whenever the shape comes from untrusted
	// input.
	CheckedSize() (int, bool)
	// Extents returns the extents outermost-first as a freshly backed
	// slice; mutating it never affects the receiver.
	Extents() []int
}

// Compile-time checks that every kind satisfies Dimension.
var (
	_ Dimension = Dim0{}
	_ Dimension = Dim1{}
	_ Dimension = Dim2{}
	_ Dimension = Dim3{}
	_ Dimension = Dim4{}
	_ Dimension = Dim5{}
	_ Dimension = DimDyn(nil)
)

// The helpers below are the shared rank-generic algorithms. Every dimension
// kind routes through them unless it carries a branch-free specialization;
// the specialized kinds must stay behaviorally identical to these.

// sizeOf returns the product of extents (1 for an empty slice).
func sizeOf(ext []int) int {
	n := 1
	for _, d := range ext {
		n *= d
	}
	return n
}

// checkedSizeOf is sizeOf with overflow detection.
func checkedSizeOf(ext []int) (int, bool) {
	n := 1
	for _, d := range ext {
		var ok bool
		if n, ok = checkedMul(n, d); !ok {
			return 0, false
		}
	}
	return n, true
}

// EqualExtents reports element-wise equality of two extent slices: same
// rank, same extents. It compares across kinds, e.g. a Dim3 against a
// rank-3 DimDyn via their Extents.
func EqualExtents(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// defaultStridesInto writes row-major strides for ext into dst:
// shape (a, b, c) gives strides (b·c, c, 1). Zero extents still yield a
// well-defined (if unused) stride.
func defaultStridesInto(dst, ext []int) {
	n := len(ext)
	if n == 0 {
		return
	}
	dst[n-1] = 1
	cum := 1
	for i := n - 2; i >= 0; i-- {
		cum *= ext[i+1]
		dst[i] = cum
	}
}

// fortranStridesInto writes column-major strides for ext into dst:
// shape (a, b, c) gives strides (1, a, a·b).
func fortranStridesInto(dst, ext []int) {
	n := len(ext)
	if n == 0 {
		return
	}
	dst[0] = 1
	cum := 1
	for i := 1; i < n; i++ {
		cum *= ext[i-1]
		dst[i] = cum
	}
}

// firstIndexInto zeroes dst and reports whether ext has a first index at
// all: a shape with any zero extent has no valid index.
func firstIndexInto(dst, ext []int) bool {
	for _, d := range ext {
		if d == 0 {
			return false
		}
	}
	for i := range dst {
		dst[i] = 0
	}
	return true
}

// nextForInPlace advances idx to the next index of ext in row-major order
// (last axis fastest), reporting false once the sequence is exhausted.
// Rank 0 has a single (empty) index, so its sequence ends immediately.
func nextForInPlace(ext, idx []int) bool {
	for i := len(ext) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] == ext[i] {
			idx[i] = 0
		} else {
			return true
		}
	}
	return false
}

// offsetUnchecked sums per-axis stride offsets with no bounds check.
func offsetUnchecked(strides, idx []int) int {
	off := 0
	for i, v := range idx {
		off += StrideOffset(v, strides[i])
	}
	return off
}

// offsetChecked is offsetUnchecked with a strict bounds check per axis.
// The uint comparison rejects negative components alongside overshoots.
func offsetChecked(ext, strides, idx []int) (int, bool) {
	off := 0
	for i, v := range idx {
		if uint(v) >= uint(ext[i]) {
			return 0, false
		}
		off += StrideOffset(v, strides[i])
	}
	return off, true
}

// offsetCheckedArith is offsetChecked with overflow-guarded arithmetic.
// Only the safety gate needs this form: there the strides are still
// untrusted and the product may wrap.
func offsetCheckedArith(ext, strides, idx []int) (int, bool) {
	off := 0
	for i, v := range idx {
		if uint(v) >= uint(ext[i]) {
			return 0, false
		}
		p, ok := checkedMul(v, strides[i])
		if !ok {
			return 0, false
		}
		if off, ok = checkedAdd(off, p); !ok {
			return 0, false
		}
	}
	return off, true
}

// contiguous reports whether strides describe a layout-equivalent row-major
// arrangement of ext. order is caller scratch of len(ext).
//
// True when strides equal the row-major default, or — rank ≥ 2 — when the
// cumulative extent product matches each stride while walking axes from
// fastest- to slowest-varying (extent-1 axes tolerate any stride).
// A rank-1 shape with a non-default stride is reported non-contiguous even
// when its extent is 1; that asymmetry is deliberate and relied upon by
// container fast paths.
func contiguous(ext, strides, order []int) bool {
	n := len(ext)
	cs := 1
	def := true
	for i := n - 1; i >= 0; i-- {
		if strides[i] != cs {
			def = false
			break
		}
		cs *= ext[i]
	}
	if def {
		return true
	}
	if n == 1 {
		return false
	}
	fastestOrderInto(order, strides)
	cstride := 1
	for _, ax := range order {
		if ext[ax] != 1 && strides[ax] != cstride {
			return false
		}
		cstride *= ext[ax]
	}
	return true
}

// lastElemOf returns the innermost extent, 0 for rank 0.
func lastElemOf(ext []int) int {
	if len(ext) == 0 {
		return 0
	}
	return ext[len(ext)-1]
}

// formatExtents renders extents the way fmt renders an int slice.
func formatExtents(ext []int) string {
	return fmt.Sprintf("%v", ext)
}

package dim

import (
	"cmp"
	"slices"
)

// StrideOffset returns the signed element offset produced by advancing count
// positions along an axis with the given stride. Both arguments are plain
// signed ints; callers must not pass values whose product overflows.
// Complexity: O(1).
func StrideOffset(count, stride int) int {
	return count * stride
}

// checkedMul multiplies a*b, reporting ok=false on overflow.
func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// checkedAdd adds a+b, reporting ok=false on overflow.
func checkedAdd(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// fastestOrderInto fills order with the axis permutation sorted by ascending
// stride (fastest-varying axis first), ties broken by original axis order.
// len(order) must equal len(strides). Meaningful only for positive, pairwise
// distinct strides.
// Complexity: O(n·log n).
func fastestOrderInto(order, strides []int) {
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(strides[a], strides[b])
	})
}

// Overlaps reports whether the given shape and strides allow two distinct
// logical indices to map to the same memory offset.
//
// Walking axes from fastest- to slowest-varying, each axis's stride must be
// at least the total span already claimed by the faster axes (extent-1 axes
// tolerate any stride). Assumes positive strides; the result is not
// meaningful for negative strides.
//
// Returns true for shape (2,3,2) with strides (5,2,1) or (6,0,1), false for
// strides (6,2,1).
// Complexity: O(n·log n), Memory: O(1) for rank ≤ MaxFixedRank.
func Overlaps(shape, strides []int) bool {
	if len(shape) != len(strides) {
		panic("dim: Overlaps: shape and strides rank mismatch")
	}
	var buf [MaxFixedRank]int
	order := buf[:0]
	if len(strides) > MaxFixedRank {
		order = make([]int, 0, len(strides))
	}
	order = order[:len(strides)]
	fastestOrderInto(order, strides)

	prev := 1
	for _, ax := range order {
		d, s := shape[ax], strides[ax]
		// any stride is fine while the axis holds a single element
		if d != 1 && s < prev {
			return true
		}
		prev = StrideOffset(d, s)
	}

	return false
}

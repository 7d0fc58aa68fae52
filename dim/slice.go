package dim

// Slicing transform: rewrite a shape/stride pair per axis from Span range
// descriptors, accumulating the element displacement to add to the view's
// base pointer. Re-slicing a view composes: the result is identical to
// building the narrower view directly from the original buffer.

// resolveBound maps a possibly negative bound onto [0, m]: negative values
// count from the end of an axis of extent m.
func resolveBound(m, v int) int {
	if v < 0 {
		return m + v
	}
	return v
}

// ApplySlices applies one Span per axis to shape and strides, mutating both
// in place, and returns the accumulated base displacement in elements.
//
// Per axis of extent m with original stride s:
//   - Start/End resolve negatives as m+value; an unbounded Span ends at m;
//     End is clamped up to Start.
//   - The new extent is ceil((end−start) / |step|).
//   - The displacement gains start·s; a negative step additionally gains
//     (end−start−1)·s, re-anchoring the base at the window's far end so the
//     negative stride walks back through it.
//   - The new stride is s·step.
//
// Panics — contract violations, not recoverable errors — when the Span
// count differs from the rank, a step is zero, or a resolved bound falls
// outside [0, extent] (a Start more negative than the extent resolves below
// zero and is rejected, not clamped).
// Complexity: O(n).
func ApplySlices(shape, strides []int, spans []Span) int {
	if len(shape) != len(strides) {
		panic("dim: ApplySlices: shape and strides rank mismatch")
	}
	if len(spans) != len(shape) {
		panic("dim: ApplySlices: one Span required per axis")
	}

	offset := 0
	for ax := range shape {
		m := shape[ax]
		s := strides[ax]
		sp := spans[ax]
		if sp.Step == 0 {
			panic("dim: ApplySlices: zero step")
		}

		end := m
		if sp.bounded {
			end = sp.End
		}
		b := resolveBound(m, sp.Start)
		e := resolveBound(m, end)
		if e < b {
			e = b
		}
		if b < 0 || e < 0 || b > m || e > m {
			panic("dim: ApplySlices: span bounds out of range")
		}

		w := e - b
		offset += StrideOffset(b, s)
		if sp.Step < 0 {
			// jump to the far end of the window; the negative stride then
			// walks back towards b
			offset += StrideOffset(w-1, s)
		}

		step := sp.Step
		if step < 0 {
			step = -step
		}
		m2 := w / step
		if w%step != 0 {
			m2++
		}

		shape[ax] = m2
		strides[ax] = s * sp.Step
	}

	return offset
}

// Sub collapses the axis ax to extent 1, selecting the slab at the given
// index, and returns the element displacement of that slab. Used for
// single-index reduction along an axis; the caller adds the displacement to
// the view's base pointer and may then RemoveAxis the collapsed axis.
//
// Panics if ax is out of range or index ≥ the axis extent.
// Complexity: O(1).
func Sub(shape, strides []int, ax Axis, index int) int {
	a := ax.Index()
	if a < 0 || a >= len(shape) {
		panic("dim: Sub: axis out of range")
	}
	if index < 0 || index >= shape[a] {
		panic("dim: Sub: index out of range")
	}
	shape[a] = 1
	return StrideOffset(index, strides[a])
}

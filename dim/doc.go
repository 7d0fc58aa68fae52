// Package dim implements the shape/stride arithmetic underlying a dense
// N-dimensional array container.
//
// What:
//
//   - Seven dimension kinds share one behavioral contract: Dim0 … Dim5 hold
//     their extents inline (rank fixed at compile time, no heap allocation),
//     DimDyn holds an arbitrary runtime rank.
//   - Stride derivations: DefaultStrides (row-major, innermost stride 1) and
//     FortranStrides (column-major, outermost stride 1).
//   - Offset resolution: OffsetChecked (bounds-checked, returns ok=false out
//     of range) and OffsetUnchecked (hot-path dual; validity is the caller's
//     contract).
//   - CanIndexSlice, the safety gate: proves that a (buffer length, shape,
//     strides) triple can be indexed without reading past the buffer and
//     without two distinct indices aliasing one memory cell.
//   - Transforms: ApplySlices rewrites shape/strides per axis from Span
//     range descriptors and returns the base-pointer displacement;
//     RemoveAxis/InsertAxis are typed rank relations; Sub collapses one
//     axis to a selected slab.
//   - Enumeration: FirstIndex/NextFor walk every index of a shape in
//     row-major order (innermost axis fastest).
//
// Why:
//
//   - Array containers: every view, slice and reduction is memory-safe only
//     if this layer's invariants hold.
//   - Interop: row-major and column-major layouts of foreign buffers are
//     validated before being wrapped.
//   - Cache-aware kernels: FastestVaryingStrideOrder yields the traversal
//     order from fastest- to slowest-varying axis.
//
// Complexity:
//
//   - All per-axis operations are O(rank) time; fixed kinds allocate nothing.
//   - CanIndexSlice: O(rank·log rank) (axis ordering), Memory: O(1) for
//     rank ≤ 5.
//   - Enumeration: O(size) total, O(rank) per step.
//
// Errors:
//
//   - ErrOutOfBounds: shape/strides address memory beyond the buffer, or a
//     size/offset computation overflowed.
//   - ErrUnsupported: non-positive stride where a positive one is required,
//     or a stride layout that aliases distinct indices.
//
// Contract violations (invalid axis, zero Span step, out-of-range resolved
// slice bounds, rank mismatch between paired arguments) are programmer
// errors and panic; they are never part of the recoverable error set.
package dim

// SPDX-License-Identifier: MIT
// Package dim: the safety gate.
//
// Purpose:
//   - Provide the single, canonical check run when a raw buffer is wrapped
//     into a shape/stride view. Everything downstream (element access,
//     iteration, mutation through views) is safe only if this gate passed.
//   - Return plain sentinel errors wrapped with a short context tag so call
//     sites can match via errors.Is and still see where the check failed.
//
// Determinism & Performance:
//   - Pure and deterministic; allocation-free for rank ≤ MaxFixedRank.
//   - Invoked once per view construction, never per element access.

package dim

import "fmt"

// CanIndexSlice reports whether a buffer of bufLen elements is safely
// indexable by the given shape and strides.
//
// The check proceeds in order, each step a distinct failure mode:
//  1. Overflow of the total size computation        → ErrOutOfBounds.
//  2. Any stride < 1 — except stride 0 paired with a total size of 0,
//     which touches no memory                        → ErrUnsupported.
//     Strictly negative strides are always rejected; reversed views must
//     be constructed unchecked by the container.
//  3. Total size 0: trivially safe, succeed.
//  4. Offset of the last index (every extent − 1) overflows or lands at or
//     beyond bufLen                                  → ErrOutOfBounds.
//  5. Two distinct indices could alias one cell (see Overlaps)
//     → ErrUnsupported.
//
// Shape and strides must have equal rank; a mismatch panics.
// Complexity: O(n·log n), Memory: O(1) for rank ≤ MaxFixedRank.
func CanIndexSlice(bufLen int, shape, strides []int) error {
	if len(shape) != len(strides) {
		panic("dim: CanIndexSlice: shape and strides rank mismatch")
	}

	size, ok := checkedSizeOf(shape)
	if !ok {
		return fmt.Errorf("CanIndexSlice: size overflow: %w", ErrOutOfBounds)
	}

	// strides must be strictly positive (zero tolerated only at size 0)
	for ax, s := range strides {
		if s < 1 && (size != 0 || s < 0) {
			return fmt.Errorf("CanIndexSlice: stride %d at axis %d: %w", s, ax, ErrUnsupported)
		}
	}
	if size == 0 {
		// no index exists, no memory is ever touched
		return nil
	}

	var buf [MaxFixedRank]int
	last := buf[:0]
	if len(shape) > MaxFixedRank {
		last = make([]int, 0, len(shape))
	}
	for _, d := range shape {
		last = append(last, d-1)
	}

	off, ok := offsetCheckedArith(shape, strides, last)
	if !ok {
		return fmt.Errorf("CanIndexSlice: offset overflow: %w", ErrOutOfBounds)
	}
	// strides are positive here, so off is the maximum reachable offset
	if off >= bufLen {
		return fmt.Errorf("CanIndexSlice: max offset %d for buffer length %d: %w", off, bufLen, ErrOutOfBounds)
	}
	if Overlaps(shape, strides) {
		return fmt.Errorf("CanIndexSlice: aliasing layout: %w", ErrUnsupported)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package dim: sentinel error set.
// This file defines ONLY package-level sentinel errors. The safety gate MUST
// return these sentinels (optionally wrapped with context via %w) and tests
// MUST check them via errors.Is. Panics are reserved for programmer errors
// (contract violations), never for user-triggered conditions.

package dim

import "errors"

var (
	// ErrOutOfBounds is returned when the requested shape/strides would
	// require addressing memory beyond the supplied buffer length, or when
	// a size or offset computation overflows the int range.
	ErrOutOfBounds = errors.New("dim: index or shape out of bounds")

	// ErrUnsupported is returned when a stride is non-positive where a
	// positive stride is required, or when the shape/stride combination
	// permits two distinct logical indices to alias the same memory cell.
	// Negative-stride views are never validated by the safety gate; they
	// must be constructed unchecked by the owning container.
	ErrUnsupported = errors.New("dim: unsupported shape/stride layout")
)

// Package ndshape is the shape/stride foundation for dense N-dimensional
// array containers — the single layer where memory safety of an array
// abstraction is decided.
//
// 🚀 What is ndshape?
//
//	A small, allocation-conscious, pure-Go library that brings together:
//		• Dimension kinds: fixed ranks 0–5 (inline, zero-alloc) plus a
//		  dynamic rank, all with one behavioral contract
//		• Stride derivations: row-major (C) and column-major (Fortran)
//		• Offset arithmetic: checked and unchecked linear offsets
//		• A safety gate: bounds & aliasing validation of
//		  (buffer length, shape, strides) triples
//		• Transforms: per-axis slicing with negative steps, axis removal
//		  and insertion, single-index axis collapse
//		• Row-major index enumeration over any shape
//
// ✨ Why choose ndshape?
//
//   - Rank-safe – fixed-rank kinds turn rank mismatches into compile errors
//   - Rock-solid guarantees – a view is only built after the safety gate
//     proves no out-of-bounds access and no element aliasing is possible
//   - Pure Go – no cgo, no runtime deps
//   - Value semantics – shapes and strides are plain data, safely shared
//     between concurrent readers
//
// Everything lives in one working subpackage:
//
//	dim/ — dimension kinds, stride derivations, the safety gate,
//	       slicing/axis transforms and index resolution
//
// Quick ASCII example:
//
//	shape (2,3), default strides (3,1):
//
//	    offset = i*3 + j*1
//	    ┌────┬────┬────┐
//	    │  0 │  1 │  2 │
//	    ├────┼────┼────┤
//	    │  3 │  4 │  5 │
//	    └────┴────┴────┘
//
// An array container built on top owns the data buffer, reference counts,
// broadcasting and arithmetic; ndshape decides whether a given buffer may be
// addressed by a given shape/stride pair, and by how much a base pointer
// must be displaced.
//
//	go get github.com/katalvlaran/ndshape/dim
package ndshape

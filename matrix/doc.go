// SPDX-License-Identifier: MIT

// Package matrix provides Square, a fixed-size N×N matrix of int64 values.
//
// The package offers:
//
//   - Construction: NewSquare (zero-filled), NewIdentity, FromGrid (validated
//     deep copy of a [][]int64), MustFromGrid for fixtures.
//   - Safe accessors: At/Set return ErrOutOfRange instead of panicking.
//   - Arithmetic: Add and Mul allocate a fresh result; operands are never
//     mutated.
//   - Structure: major/minor diagonal sums, in-place row and column swaps.
//   - Rendering: fixed-width text (Render, String, WriteTo).
//
// Storage is a flat row-major buffer (offset = i*n + j). A *Square owns its
// buffer exclusively; use Clone to obtain an independent copy.
//
// Arithmetic overflow wraps around using Go's two's-complement int64
// semantics (no saturation, no panic).
//
// Errors are package sentinels (ErrInvalidShape, ErrDimensionMismatch,
// ErrOutOfRange, ErrNilMatrix) wrapped with call-site context; match them
// with errors.Is.
//
// Square is not safe for concurrent mutation.
package matrix

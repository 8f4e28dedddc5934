// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape, nil and index checks.
//  - Validators return plain sentinels (or sentinel wrapped with a position)
//    so call sites can wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidateGrid is O(rows); the rest are O(1).

package matrix

import (
	"fmt"
	"math"
)

// maxElements bounds n*n so the buffer size in bytes (8 per int64) fits in int.
const maxElements = math.MaxInt / 8

// ValidateNotNil ensures m is a non-nil *Square.
func ValidateNotNil(m *Square) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameSize checks NotNil(a) → NotNil(b) → a.n == b.n.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameSize(a, b *Square) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.n, a.n, b.n, b.n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSize checks that an n×n buffer can exist: n >= 0 and n*n
// elements addressable without overflow.
//
// Errors: ErrInvalidShape.
func ValidateSize(n int) error {
	if n < 0 {
		return fmt.Errorf("size %d is negative: %w", n, ErrInvalidShape)
	}
	if n > 0 && n > maxElements/n {
		return fmt.Errorf("size %d exceeds the addressable element count: %w", n, ErrInvalidShape)
	}

	return nil
}

// ValidateGrid reports whether grid is square: every row must have exactly
// len(grid) elements. An empty grid is valid (size 0).
//
// Errors: ErrInvalidShape, wrapped with the first offending row.
func ValidateGrid(grid [][]int64) error {
	n := len(grid)
	for i, row := range grid {
		if len(row) != n {
			return fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), n, ErrInvalidShape)
		}
	}

	return nil
}

// inRange reports whether idx is a valid row/column index for size n.
func inRange(idx, n int) bool {
	return idx >= 0 && idx < n
}

// offset maps (i,j) to the flat buffer position or reports ErrOutOfRange.
// Every indexed read or write goes through here before touching data.
func (m *Square) offset(method string, i, j int) (int, error) {
	if !inRange(i, m.n) || !inRange(j, m.n) {
		return 0, squareErrorf(method, i, j, ErrOutOfRange)
	}

	return i*m.n + j, nil
}

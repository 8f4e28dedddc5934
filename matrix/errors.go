// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported operations return these sentinels, usually wrapped with
// operation context via %w. Tests MUST check them via errors.Is.
// No exported operation panics on user input (MustFromGrid excepted).

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/dimension -> index range.

var (
	// ErrInvalidShape is returned when a grid is not square (ragged rows or
	// row length != row count) or a negative size is requested.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates operands of different sizes in Add/Mul.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Square was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// squareErrorf wraps err with a Square method tag and the offending indices.
// Format: "Square.<method>(i,j): <err>".
func squareErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, i, j, err)
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

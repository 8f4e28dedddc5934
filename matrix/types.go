// SPDX-License-Identifier: MIT

// Package matrix: the Square type and package-level presentation constants.

package matrix

import (
	"fmt"
	"io"
)

// FieldWidth is the fixed column width used by Render. Values wider than
// FieldWidth are printed in full, never truncated.
const FieldWidth = 5

// EmptySentinel is the single line Render produces for a 0×0 matrix.
const EmptySentinel = "[ Empty Matrix ]"

// Operation tags for error wrapping.
const (
	opAdd      = "Add"
	opMul      = "Mul"
	opFromGrid = "FromGrid"
	opNew      = "NewSquare"
	opIdentity = "NewIdentity"
)

// Method tags for squareErrorf.
const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapCols"
)

// Square is an N×N matrix of int64 stored row-major in a flat buffer.
//   - n is the dimension (n >= 0; n == 0 is the empty matrix).
//   - data has exactly n*n elements; element (i,j) lives at i*n + j.
//
// The zero value is a valid empty matrix.
type Square struct {
	n    int     // dimension
	data []int64 // row-major storage, len == n*n
}

// Compile-time assertions.
var (
	_ fmt.Stringer = (*Square)(nil)
	_ io.WriterTo  = (*Square)(nil)
)

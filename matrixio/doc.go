// SPDX-License-Identifier: MIT

// Package matrixio reads the two-matrix demonstration input format.
//
// Format: whitespace-separated base-10 integers. The first token is the
// dimension N (N > 0); it is followed by N² elements of matrix A and then
// N² elements of matrix B, both in row-major order. Tokens after the last
// element of B are ignored.
//
// Errors (sentinel, match with errors.Is):
//
//	– ErrMissingSize  if the input holds no tokens at all.
//	– ErrBadSize      if N does not parse or N <= 0.
//	– ErrBadToken     if an element is not a valid int64.
//	– ErrShortInput   if the input ends before 2·N² elements were read.
//
// Example usage:
//
//	pair, err := matrixio.ReadPairFile("input.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sum, _ := matrix.Add(pair.A, pair.B)
package matrixio

// SPDX-License-Identifier: MIT
// Package matrix: thin facade with alternative spellings for common calls.
// Every function here delegates to exactly one kernel; no extra logic.

package matrix

// ZerosLike returns a zero matrix with the same size as m.
// Errors: ErrNilMatrix if m is nil.
func ZerosLike(m *Square) (*Square, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewSquare(m.n)
}

// CloneSquare returns m.Clone().
func CloneSquare(m *Square) *Square { return m.Clone() }

// Sum is an alias of Add.
func Sum(a, b *Square) (*Square, error) { return Add(a, b) }

// Product is an alias of Mul.
func Product(a, b *Square) (*Square, error) { return Mul(a, b) }

// Trace is an alias of m.SumMajorDiagonal().
func Trace(m *Square) int64 { return m.SumMajorDiagonal() }

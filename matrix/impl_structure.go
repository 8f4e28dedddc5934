// SPDX-License-Identifier: MIT
// Package matrix: diagonal reductions and in-place row/column swaps.
//
// Swaps validate both indices before any write, so a failed call leaves
// the matrix unchanged.

package matrix

// SumMajorDiagonal returns Σ m[i][i] for i in [0, n). Size 0 yields 0.
// Overflow wraps around. Complexity: O(n).
func (m *Square) SumMajorDiagonal() int64 {
	var sum int64
	n := m.Size()
	for i := 0; i < n; i++ {
		sum += m.data[i*n+i]
	}

	return sum
}

// SumMinorDiagonal returns Σ m[i][n-1-i] for i in [0, n). Size 0 yields 0.
// For odd n the centre cell lies on both diagonals and is counted once here.
// Complexity: O(n).
func (m *Square) SumMinorDiagonal() int64 {
	var sum int64
	n := m.Size()
	for i := 0; i < n; i++ {
		sum += m.data[i*n+(n-1-i)]
	}

	return sum
}

// SwapRows exchanges rows r1 and r2 in place.
// Returns ErrOutOfRange if either index is outside [0, n). r1 == r2 is a no-op.
// Complexity: O(n).
func (m *Square) SwapRows(r1, r2 int) error {
	if m == nil {
		return squareErrorf(ctxSwapRows, r1, r2, ErrNilMatrix)
	}
	if !inRange(r1, m.n) || !inRange(r2, m.n) {
		return squareErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if r1 == r2 {
		return nil
	}
	n := m.n
	a := m.data[r1*n : (r1+1)*n]
	b := m.data[r2*n : (r2+1)*n]
	for j := 0; j < n; j++ {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// SwapCols exchanges columns c1 and c2 in every row, in place.
// Returns ErrOutOfRange if either index is outside [0, n). c1 == c2 is a no-op.
// Complexity: O(n).
func (m *Square) SwapCols(c1, c2 int) error {
	if m == nil {
		return squareErrorf(ctxSwapCols, c1, c2, ErrNilMatrix)
	}
	if !inRange(c1, m.n) || !inRange(c2, m.n) {
		return squareErrorf(ctxSwapCols, c1, c2, ErrOutOfRange)
	}
	if c1 == c2 {
		return nil
	}
	n := m.n
	for i := 0; i < n; i++ {
		base := i * n
		m.data[base+c1], m.data[base+c2] = m.data[base+c2], m.data[base+c1]
	}

	return nil
}

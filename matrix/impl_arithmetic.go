// SPDX-License-Identifier: MIT
// Package matrix: element-wise addition and the standard matrix product.
//
// Purpose:
//   - Pure kernels: operands are never mutated, each call allocates one result.
//   - Same-size square operands only; there is no conformable-shape product.
//
// Overflow:
//   - Sums and products accumulate in int64 and wrap around on overflow
//     (two's complement, as defined by the language). No saturation, no panic.
//
// Determinism:
//   - Fixed loop orders (flat 0..n²-1 for Add, i→k→j for Mul).

package matrix

// Add returns a + b element-wise as a new Square.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Size() != b.Size().
//
// Complexity: Time O(n²), Space O(n²).
func Add(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := &Square{n: a.n, data: make([]int64, len(a.data))}
	// Identical shapes share the same flat layout: one pass suffices.
	for k := range out.data {
		out.data[k] = a.data[k] + b.data[k]
	}

	return out, nil
}

// Mul returns the matrix product a × b as a new Square:
// out[i][j] = Σ_k a[i][k] * b[k][j], k in [0, n).
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Size() != b.Size().
//
// Complexity: Time O(n³), Space O(n²).
func Mul(a, b *Square) (*Square, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := a.n
	out := &Square{n: n, data: make([]int64, n*n)}
	var (
		i, j, k int
		aik     int64
	)
	// i→k→j keeps the inner loop on contiguous rows of b and out.
	for i = 0; i < n; i++ {
		rowOut := out.data[i*n : (i+1)*n]
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			rowB := b.data[k*n : (k+1)*n]
			for j = 0; j < n; j++ {
				rowOut[j] += aik * rowB[j]
			}
		}
	}

	return out, nil
}

// Add is the method form of Add(m, other).
func (m *Square) Add(other *Square) (*Square, error) { return Add(m, other) }

// Mul is the method form of Mul(m, other).
func (m *Square) Mul(other *Square) (*Square, error) { return Mul(m, other) }

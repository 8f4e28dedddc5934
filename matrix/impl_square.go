// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics explicit: constructors and Clone always copy.
//
// Complexity quicksheet:
//   - NewSquare/FromGrid/Clone: O(n²); Size/At/Set: O(1).

package matrix

// NewSquare creates an n×n zero matrix.
//
// n == 0 yields a valid empty matrix. Negative n, or n so large that n*n
// int64 values cannot be addressed, returns ErrInvalidShape.
// Complexity: O(n²) time and memory.
func NewSquare(n int) (*Square, error) {
	if err := ValidateSize(n); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	// make() zero-fills the buffer.
	return &Square{n: n, data: make([]int64, n*n)}, nil
}

// FromGrid builds a Square from a caller-supplied grid of rows.
//
// An empty (nil or zero-length) grid produces a size-0 matrix. Otherwise
// every row must have exactly len(grid) elements, else ErrInvalidShape.
// The grid is deep-copied; later changes to it do not affect the result.
// Complexity: O(n²).
func FromGrid(grid [][]int64) (*Square, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(opFromGrid, err)
	}
	n := len(grid)
	m := &Square{n: n, data: make([]int64, n*n)}
	for i, row := range grid {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// MustFromGrid is FromGrid that panics on error. Intended for fixtures and
// literals known to be square.
func MustFromGrid(grid [][]int64) *Square {
	m, err := FromGrid(grid)
	if err != nil {
		panic(err)
	}

	return m
}

// NewIdentity returns the n×n identity matrix (1 on the major diagonal).
func NewIdentity(n int) (*Square, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Size returns the dimension N. A nil *Square reports 0.
func (m *Square) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns the element at (i, j).
// Returns ErrOutOfRange if i or j is outside [0, Size()).
func (m *Square) At(i, j int) (int64, error) {
	if m == nil {
		return 0, squareErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	idx, err := m.offset(ctxAt, i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set overwrites the element at (i, j) with v.
// Returns ErrOutOfRange if i or j is outside [0, Size()); the matrix is
// left untouched in that case.
func (m *Square) Set(i, j int, v int64) error {
	if m == nil {
		return squareErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	idx, err := m.offset(ctxSet, i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy that shares no storage with m.
// Cloning nil yields nil.
func (m *Square) Clone() *Square {
	if m == nil {
		return nil
	}
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Square{n: m.n, data: buf}
}

// Grid returns the elements as a freshly allocated slice of rows.
// A size-0 matrix yields an empty, non-nil slice.
func (m *Square) Grid() [][]int64 {
	n := m.Size()
	out := make([][]int64, n)
	for i := 0; i < n; i++ {
		row := make([]int64, n)
		copy(row, m.data[i*n:(i+1)*n])
		out[i] = row
	}

	return out
}

// Equal reports whether m and other have the same size and elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func (m *Square) Equal(other *Square) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Square tests.
//   • Fail fast via t.Fatalf so table cases stay one-liners.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// Fixtures from the two-matrix demonstration.
var (
	gridM1 = [][]int64{{1, 2}, {3, 4}}
	gridM2 = [][]int64{{5, 6}, {7, 8}}
)

// MustSquare allocates an n×n zero *Square or fails the test.
func MustSquare(tb testing.TB, n int) *matrix.Square {
	tb.Helper()
	m, err := matrix.NewSquare(n)
	if err != nil {
		tb.Fatalf("NewSquare(%d): %v", n, err)
	}

	return m
}

// MustGrid builds a *Square from grid or fails the test.
func MustGrid(tb testing.TB, grid [][]int64) *matrix.Square {
	tb.Helper()
	m, err := matrix.FromGrid(grid)
	if err != nil {
		tb.Fatalf("FromGrid(%v): %v", grid, err)
	}

	return m
}

// FillRandom fills m with reproducible values in [-limit, limit].
func FillRandom(tb testing.TB, m *matrix.Square, seed, limit int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.Size()
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Int63n(2*limit+1) - limit
			if err := m.Set(i, j, v); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// Compare asserts that m matches want exactly.
func Compare(tb testing.TB, want [][]int64, m *matrix.Square) {
	tb.Helper()
	n := m.Size()
	if len(want) != n {
		tb.Fatalf("Size = %d; want %d", n, len(want))
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(want[i]) != n {
			tb.Fatalf("want[%d] has %d elements; matrix size %d", i, len(want[i]), n)
		}
		for j = 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			if v != want[i][j] {
				tb.Errorf("At(%d,%d) = %d; want %d", i, j, v, want[i][j])
			}
		}
	}
}

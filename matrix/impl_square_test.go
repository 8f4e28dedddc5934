// Package matrix_test contains unit tests for Square construction and accessors.
package matrix_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewSquare_ZeroFilled verifies NewSquare allocates an n×n zero matrix.
func TestNewSquare_ZeroFilled(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Size())
	Compare(t, [][]int64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, m)
}

// TestNewSquare_Empty ensures size 0 is a valid empty matrix.
func TestNewSquare_Empty(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Size())
	require.Empty(t, m.Grid())
}

// TestNewSquare_Negative rejects negative sizes.
func TestNewSquare_Negative(t *testing.T) {
	_, err := matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestNewSquare_TooLarge rejects sizes whose n*n element count would
// overflow int or exceed the addressable buffer, instead of wrapping to a
// short buffer or panicking inside make.
func TestNewSquare_TooLarge(t *testing.T) {
	for _, n := range []int{
		1 << (strconv.IntSize / 2), // n*n wraps to 0
		1 << (strconv.IntSize/2 - 1),
		math.MaxInt,
	} {
		m, err := matrix.NewSquare(n)
		require.ErrorIs(t, err, matrix.ErrInvalidShape, "n=%d", n)
		require.Nil(t, m)

		_, err = matrix.NewIdentity(n)
		require.ErrorIs(t, err, matrix.ErrInvalidShape, "n=%d", n)
	}
}

// TestFromGrid_Shapes checks the square-shape invariant on a table of grids.
func TestFromGrid_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		grid    [][]int64
		wantErr bool
		size    int
	}{
		{"nil", nil, false, 0},
		{"empty", [][]int64{}, false, 0},
		{"1x1", [][]int64{{7}}, false, 1},
		{"2x2", [][]int64{{1, 2}, {3, 4}}, false, 2},
		{"2x3", [][]int64{{1, 2, 3}, {4, 5, 6}}, true, 0},
		{"3x2", [][]int64{{1, 2}, {3, 4}, {5, 6}}, true, 0},
		{"ragged", [][]int64{{1, 2}, {3}}, true, 0},
		{"empty rows", [][]int64{{}, {}}, true, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromGrid(tc.grid)
			if tc.wantErr {
				require.ErrorIs(t, err, matrix.ErrInvalidShape)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.size, m.Size())
		})
	}
}

// TestFromGrid_DeepCopy ensures the Square does not alias the caller's grid.
func TestFromGrid_DeepCopy(t *testing.T) {
	grid := [][]int64{{1, 2}, {3, 4}}
	m := MustGrid(t, grid)

	grid[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	out := m.Grid()
	out[1][1] = -1
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)
}

// TestMustFromGrid_Panics on a ragged grid.
func TestMustFromGrid_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.MustFromGrid([][]int64{{1}, {2, 3}}) })
	require.NotPanics(t, func() { matrix.MustFromGrid(gridM1) })
}

// TestNewIdentity builds I_3.
func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	Compare(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.NewIdentity(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := MustGrid(t, gridM1)
	require.NoError(t, m.Set(0, 0, 99))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(99), v)
	Compare(t, [][]int64{{99, 2}, {3, 4}}, m)
}

// TestAtSetOutOfRange ensures At/Set report ErrOutOfRange and Set writes nothing.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustGrid(t, gridM1)
	n := m.Size()

	for _, ij := range [][2]int{{n, 0}, {0, n}, {-1, 0}, {0, -1}, {n, n}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", ij[0], ij[1])

		err = m.Set(ij[0], ij[1], 42)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", ij[0], ij[1])
	}
	Compare(t, gridM1, m)

	empty := MustSquare(t, 0)
	_, err := empty.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestErrorContext checks the wrapped message carries method and indices.
func TestErrorContext(t *testing.T) {
	m := MustSquare(t, 2)
	_, err := m.At(2, 0)
	require.EqualError(t, err, "Square.At(2,0): matrix: index out of range")
}

// TestNilReceiver ensures nil *Square does not panic.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Square
	require.Equal(t, 0, m.Size())

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrNilMatrix)
	require.Nil(t, m.Clone())
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := MustGrid(t, gridM1)
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3))
	Compare(t, gridM1, m)
	Compare(t, [][]int64{{3, 2}, {3, 4}}, clone)
	require.False(t, m.Equal(clone))
}

// TestEqual covers size and nil handling.
func TestEqual(t *testing.T) {
	var nilM *matrix.Square
	require.True(t, nilM.Equal(nil))
	require.False(t, nilM.Equal(MustSquare(t, 0)))
	require.False(t, MustSquare(t, 0).Equal(nil))
	require.True(t, MustSquare(t, 0).Equal(MustGrid(t, nil)))
	require.False(t, MustSquare(t, 2).Equal(MustSquare(t, 3)))
	require.True(t, MustGrid(t, gridM2).Equal(MustGrid(t, [][]int64{{5, 6}, {7, 8}})))
}

// TestZeroValue treats the zero Square as an empty matrix.
func TestZeroValue(t *testing.T) {
	var m matrix.Square
	require.Equal(t, 0, m.Size())
	require.Equal(t, int64(0), m.SumMajorDiagonal())
	require.Equal(t, matrix.EmptySentinel+"\n", m.Render())
}

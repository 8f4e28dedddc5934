// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// Sentinel errors returned by the readers.
var (
	// ErrMissingSize indicates the input was empty.
	ErrMissingSize = errors.New("matrixio: could not read matrix size N")

	// ErrBadSize indicates N is not a positive integer.
	ErrBadSize = errors.New("matrixio: matrix size N must be a positive integer")

	// ErrBadToken indicates an element token is not a base-10 int64.
	ErrBadToken = errors.New("matrixio: element is not an integer")

	// ErrShortInput indicates the input ended before all elements were read.
	ErrShortInput = errors.New("matrixio: end of input reached prematurely")
)

// Pair is the decoded input: two matrices of the same dimension.
type Pair struct {
	Size int            // N
	A    *matrix.Square // first matrix
	B    *matrix.Square // second matrix
}

// tokenReader yields whitespace-separated tokens.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns the next token, io.EOF at end of input, or the scanner error.
func (tr *tokenReader) next() (string, error) {
	if tr.sc.Scan() {
		return tr.sc.Text(), nil
	}
	if err := tr.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// ReadPair decodes N and two N×N matrices from r.
func ReadPair(r io.Reader) (*Pair, error) {
	tr := newTokenReader(r)

	tok, err := tr.next()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingSize
	}
	if err != nil {
		return nil, fmt.Errorf("read size: %w", err)
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 || matrix.ValidateSize(n) != nil {
		return nil, fmt.Errorf("%q: %w", tok, ErrBadSize)
	}

	a, err := readSquare(tr, n, "Matrix 1")
	if err != nil {
		return nil, err
	}
	b, err := readSquare(tr, n, "Matrix 2")
	if err != nil {
		return nil, err
	}

	return &Pair{Size: n, A: a, B: b}, nil
}

// ReadPairFile opens path and decodes it with ReadPair.
func ReadPairFile(path string) (*Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	p, err := ReadPair(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// readSquare consumes n*n tokens into a grid and validates it via FromGrid.
// Storage grows with the tokens actually read, so a huge N on a short input
// fails with ErrShortInput instead of allocating N×N up front.
func readSquare(tr *tokenReader, n int, label string) (*matrix.Square, error) {
	var (
		grid [][]int64
		row  []int64
		i, j int
	)
	for i = 0; i < n; i++ {
		row = nil
		for j = 0; j < n; j++ {
			tok, err := tr.next()
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%s: element [%d][%d]: %w", label, i, j, ErrShortInput)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: element [%d][%d]: %w", label, i, j, err)
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: element [%d][%d] %q: %w", label, i, j, tok, ErrBadToken)
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}

	return matrix.FromGrid(grid)
}

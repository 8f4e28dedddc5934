// Package sqmatrix is a small toolkit for square integer matrices, from the
// core value type to a command-line walkthrough.
//
// What is inside?
//
//		• matrix/       : Square: N×N int64 matrix with safe accessors, Add, Mul,
//		                  diagonal sums, in-place row/column swaps, fixed-width Render
//		• matrixio/     : reader for the "N, then two N×N matrices" text format
//		• cmd/matrixdemo: CLI printing the sum, product, diagonal sums and edits
//		                  of two matrices read from a file
//
// Guarantees:
//
//   - No panics on user input: every failure is a sentinel error (errors.Is).
//   - Value semantics: results are fresh matrices, Clone copies deeply.
//   - Defined overflow: int64 arithmetic wraps around (two's complement).
//   - Pure Go core: matrix/ depends only on the standard library.
//
// Quick example:
//
//	a := matrix.MustFromGrid([][]int64{{1, 2}, {3, 4}})
//	b := matrix.MustFromGrid([][]int64{{5, 6}, {7, 8}})
//	p, _ := matrix.Mul(a, b)
//	fmt.Print(p)
//	//    19   22
//	//    43   50
//
//	go get github.com/katalvlaran/sqmatrix/matrix
package sqmatrix

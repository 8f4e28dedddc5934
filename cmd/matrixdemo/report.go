// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/katalvlaran/sqmatrix/matrixio"
)

// report accumulates the demo output; it is flushed to the writer once.
type report struct {
	sb strings.Builder
	st styles
}

func (r *report) title(format string, args ...any) {
	r.sb.WriteString(r.st.title.Render(fmt.Sprintf(format, args...)))
	r.sb.WriteByte('\n')
}

func (r *report) skip(format string, args ...any) {
	r.sb.WriteString(r.st.muted.Render(fmt.Sprintf(format, args...)))
	r.sb.WriteString("\n\n")
}

func (r *report) line(format string, args ...any) {
	fmt.Fprintf(&r.sb, format, args...)
	r.sb.WriteByte('\n')
}

// block writes a titled matrix followed by a blank line.
func (r *report) block(m *matrix.Square, format string, args ...any) {
	r.title(format, args...)
	r.sb.WriteString(m.Render())
	r.sb.WriteByte('\n')
}

// writeReport prints every demonstration for p to w. Edits are made on
// clones, so p is left unchanged.
func writeReport(w io.Writer, p *matrixio.Pair, cfg config) error {
	r := &report{st: newStyles(w)}
	n := p.A.Size()

	r.line("Matrix size N = %d", n)
	r.line("")

	r.block(p.A, "Matrix 1:")
	r.block(p.B, "Matrix 2:")

	sum, err := matrix.Add(p.A, p.B)
	if err != nil {
		return fmt.Errorf("matrix sum: %w", err)
	}
	r.block(sum, "Matrix Sum (Matrix 1 + Matrix 2):")

	prod, err := matrix.Mul(p.A, p.B)
	if err != nil {
		return fmt.Errorf("matrix product: %w", err)
	}
	r.block(prod, "Matrix Product (Matrix 1 * Matrix 2):")

	for i, m := range []*matrix.Square{p.A, p.B} {
		r.title("Diagonal Sums for Matrix %d:", i+1)
		r.line("  Major Diagonal Sum: %d", m.SumMajorDiagonal())
		r.line("  Minor Diagonal Sum: %d", m.SumMinorDiagonal())
		r.line("")
	}

	a, b := cfg.SwapA, cfg.SwapB
	need := max(a, b) + 1
	if n >= need {
		rows := p.A.Clone()
		if err := rows.SwapRows(a, b); err != nil {
			return fmt.Errorf("swap rows: %w", err)
		}
		r.block(rows, "Swapping rows %d and %d of Matrix 1:", a, b)

		cols := p.B.Clone()
		if err := cols.SwapCols(a, b); err != nil {
			return fmt.Errorf("swap columns: %w", err)
		}
		r.block(cols, "Swapping columns %d and %d of Matrix 2:", a, b)
	} else {
		r.skip("Matrix size < %d, skipping row swap demonstration.", need)
		r.skip("Matrix size < %d, skipping column swap demonstration.", need)
	}

	if n >= 1 {
		upd := p.A.Clone()
		if err := upd.Set(0, 0, cfg.UpdateValue); err != nil {
			return fmt.Errorf("update element: %w", err)
		}
		r.block(upd, "Updating element [0][0] of Matrix 1 to %d:", cfg.UpdateValue)
	} else {
		r.skip("Matrix size < 1, skipping element update demonstration.")
	}

	_, err = io.WriteString(w, r.sb.String())

	return err
}

// SPDX-License-Identifier: MIT
// Package matrix: fixed-width text rendering.
//
// Layout: one line per row, row 0 first; each element right-aligned in a
// FieldWidth-wide field (wider values are printed in full); every line
// ends with '\n'. A size-0 matrix renders as EmptySentinel + "\n".

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// Render returns the fixed-width text form of m. It never fails.
// Complexity: O(n²).
func (m *Square) Render() string {
	var sb strings.Builder
	m.render(&sb)

	return sb.String()
}

// String implements fmt.Stringer; it is Render.
func (m *Square) String() string {
	return m.Render()
}

// WriteTo implements io.WriterTo, streaming the Render layout to w.
// Only errors from w are returned.
func (m *Square) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.Render())

	return int64(n), err
}

// render appends the layout to sb.
func (m *Square) render(sb *strings.Builder) {
	n := m.Size()
	if n == 0 {
		sb.WriteString(EmptySentinel)
		sb.WriteByte('\n')
		return
	}
	sb.Grow(n * (n*FieldWidth + 1))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// %*d pads to FieldWidth and never truncates.
			fmt.Fprintf(sb, "%*d", FieldWidth, m.data[i*n+j])
		}
		sb.WriteByte('\n')
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette for report headings, tuned for dark terminal backgrounds.
const (
	// colorPrimary is purple - section titles.
	colorPrimary = lipgloss.Color("#7C3AED")

	// colorMuted is gray - skip notices.
	colorMuted = lipgloss.Color("#6B7280")
)

// styles holds the lipgloss styles bound to one output stream. The renderer
// detects that stream's color profile, so redirected output stays plain.
type styles struct {
	title lipgloss.Style
	muted lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		muted: r.NewStyle().Foreground(colorMuted),
	}
}

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// theme holds the styles used by command output. Styles are bound to a
// renderer for the destination writer, so piped output carries no color.
type theme struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Border    lipgloss.Color
}

func newTheme(w io.Writer) *theme {
	r := lipgloss.NewRenderer(w)
	accent := lipgloss.Color("#7aa2f7")
	muted := lipgloss.Color("#565f89")

	return &theme{
		Title:     r.NewStyle().Foreground(accent).Bold(true),
		Subtle:    r.NewStyle().Foreground(muted),
		Highlight: r.NewStyle().Foreground(lipgloss.Color("#e0af68")).Bold(true),
		Success:   r.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		Error:     r.NewStyle().Foreground(lipgloss.Color("#f7768e")).Bold(true),
		Header:    r.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),
		Cell:      r.NewStyle().Padding(0, 1),
		Border:    muted,
	}
}

package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glug/internal/record"
)

// Styles holds the lipgloss styles the viewer renders with.
type Styles struct {
	Header lipgloss.Style
	Muted  lipgloss.Style
	Stale  lipgloss.Style
	Levels [record.LevelCount]lipgloss.Style
}

// NewStyles builds styles whose level colors follow palette.
func NewStyles(palette record.Palette) Styles {
	s := Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Faint(true),
		Stale:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
	for i, c := range palette {
		st := lipgloss.NewStyle()
		if color, ok := ansiColor(c); ok {
			st = st.Foreground(color)
		}
		s.Levels[i] = st
	}
	return s
}

// ansiColor maps a basic foreground code onto lipgloss's 0-7 ANSI colors.
// Reset and Default have no color of their own.
func ansiColor(c record.Color) (lipgloss.Color, bool) {
	if c < record.Black || c > record.White {
		return "", false
	}
	return lipgloss.Color(strconv.Itoa(int(c - record.Black))), true
}

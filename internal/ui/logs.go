package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/five82/glug/internal/logtail"
	"github.com/five82/glug/internal/record"
)

// updateLogViewport re-renders the tailed lines into the pane.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLines())
	if m.follow {
		m.viewport.GotoBottom()
	}
}

// renderLines returns the snapshot's lines, oldest first, filtered and
// colored by level.
func (m Model) renderLines() string {
	if len(m.snapshot.Lines) == 0 {
		return m.styles.Muted.Render("waiting for " + m.file)
	}
	lines := slices.Clone(m.snapshot.Lines)
	slices.Reverse(lines)

	var b strings.Builder
	for i, l := range logtail.Filter(logtail.Tag(lines), m.minLevel) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.styles.Levels[l.Level].Render(l.Text))
	}
	return b.String()
}

func (m Model) renderHeader() string {
	parts := []string{m.styles.Header.Render("glugtail " + truncate(m.file, 40))}
	for _, level := range record.Levels {
		parts = append(parts, m.styles.Levels[level].Render(fmt.Sprintf("%s %d", level, m.snapshot.Counts[level])))
	}

	mode := "paused"
	if m.follow {
		mode = "follow"
	}
	parts = append(parts, m.styles.Muted.Render(fmt.Sprintf("≤%s %s", m.minLevel, mode)))

	if m.snapshot.Stale() && m.snapshot.LastError != nil {
		parts = append(parts, m.styles.Stale.Render("stale: "+m.snapshot.LastError.Error()))
	}
	return strings.Join(parts, "  ")
}

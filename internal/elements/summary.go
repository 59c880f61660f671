package elements

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/store"
)

// Summary prints the total and per-key totals on its first row, then one row
// per level with the same breakdown. Rows that do not fit are dropped and
// long rows are clipped.
type Summary struct{}

func (Summary) Draw(w io.Writer, area geometry.Box[int], st *store.Store) {
	if area.Empty() {
		return
	}
	keys := st.Keys()
	counts := st.Counts()

	lines := make([]string, 0, 1+record.LevelCount)
	lines = append(lines, summaryLine("", counts.Total(), keys, func(c record.Counts) uint64 { return c.Total() }, st))
	for _, level := range record.Levels {
		lines = append(lines, summaryLine(level.String(), counts[level], keys, func(c record.Counts) uint64 { return c[level] }, st))
	}

	for i, line := range lines {
		if i >= area.Height {
			return
		}
		color := record.Reset
		if i > 0 {
			color = st.Color(record.Levels[i-1])
		}
		moveTo(w, area.X, area.Y+i)
		io.WriteString(w, color.SGR())
		io.WriteString(w, fit(line, area.Length))
	}
	if len(lines) < area.Height {
		blank(w, geometry.Box[int]{X: area.X, Y: area.Y + len(lines), Length: area.Length, Height: area.Height - len(lines)})
	}
}

func summaryLine(label string, total uint64, keys []string, pick func(record.Counts) uint64, st *store.Store) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-6stotal: %d,", label, total)
	for _, k := range keys {
		c, _ := st.KeyCounts(k)
		fmt.Fprintf(&b, " %q: %d,", k, pick(c))
	}
	return b.String()
}

// fit clips or pads s to exactly width display cells.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

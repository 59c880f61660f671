package elements

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/store"
)

// Histogram draws one bar per level from the total counts.
type Histogram struct{}

func (Histogram) Draw(w io.Writer, area geometry.Box[int], st *store.Store) {
	if area.Empty() {
		return
	}
	if area.Length < MinHistogramWidth {
		blank(w, area)
		return
	}
	counts := st.Counts()
	drawBars(w, area, st, []record.Counts{counts}, maxCount(counts))
}

// KeyedHistogram draws a group of bars per key, side by side, as many groups
// as fit. The bottom row labels each group when there is room.
type KeyedHistogram struct{}

func (KeyedHistogram) Draw(w io.Writer, area geometry.Box[int], st *store.Store) {
	if area.Empty() {
		return
	}
	if !st.Keyed() || area.Length < MinHistogramWidth {
		blank(w, area)
		return
	}
	keys := st.Keys()
	if fit := area.Length / MinHistogramWidth; len(keys) > fit {
		keys = keys[:fit]
	}
	if len(keys) == 0 {
		blank(w, area)
		return
	}

	groups := make([]record.Counts, len(keys))
	var peak uint64
	for i, k := range keys {
		groups[i], _ = st.KeyCounts(k)
		if m := maxCount(groups[i]); m > peak {
			peak = m
		}
	}

	bars := area
	if area.Height > 1 {
		bars.Height--
		labelRow(w, area.X, area.Y+area.Height-1, area.Length, keys)
	}
	drawBars(w, bars, st, groups, peak)
}

func labelRow(w io.Writer, x, y, width int, keys []string) {
	var b strings.Builder
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(runewidth.FillRight(runewidth.Truncate(k, record.LevelCount, ""), record.LevelCount))
	}
	moveTo(w, x, y)
	io.WriteString(w, record.Reset.SGR())
	io.WriteString(w, runewidth.FillRight(b.String(), width))
}

// drawBars renders groups left to right, each a two column margin followed by
// one column per level, and pads the rest of every row.
func drawBars(w io.Writer, area geometry.Box[int], st *store.Store, groups []record.Counts, peak uint64) {
	used := len(groups) * MinHistogramWidth
	tail := strings.Repeat(" ", area.Length-used)
	for row := 0; row < area.Height; row++ {
		moveTo(w, area.X, area.Y+row)
		io.WriteString(w, record.Reset.SGR())
		for _, counts := range groups {
			io.WriteString(w, "  ")
			for _, level := range record.Levels {
				filled := BarHeight(counts[level], peak, area.Height)
				if filled >= area.Height-row {
					io.WriteString(w, reverseOn)
				} else {
					io.WriteString(w, reverseOff)
				}
				io.WriteString(w, st.Color(level).SGR())
				io.WriteString(w, " ")
			}
			io.WriteString(w, reverseOff)
			io.WriteString(w, record.Reset.SGR())
		}
		io.WriteString(w, tail)
	}
}

// BarHeight returns how many of height rows a bar of count fills when the
// tallest bar is peak. Bars grow one row per record until peak exceeds
// height, then scale proportionally. A non-zero count fills at least one row.
func BarHeight(count, peak uint64, height int) int {
	if count == 0 || height <= 0 {
		return 0
	}
	if peak <= uint64(height) {
		return int(count)
	}
	n := int(count * uint64(height) / peak)
	if n == 0 {
		n = 1
	}
	return n
}

func maxCount(c record.Counts) uint64 {
	var m uint64
	for _, n := range c {
		if n > m {
			m = n
		}
	}
	return m
}

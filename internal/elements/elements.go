// Package elements holds the stock draw elements and the default layout.
package elements

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/layout"
	"github.com/five82/glug/internal/record"
)

// MinHistogramWidth is the narrowest area a histogram draws bars in: a two
// column margin plus one column per level.
const MinHistogramWidth = 2 + record.LevelCount

const (
	reverseOn  = "\x1b[7m"
	reverseOff = "\x1b[27m"
)

// Layout selects the optional parts of the default tree.
type Layout struct {
	Summary            bool
	SeparateHistograms bool
}

// Default builds the stock layout: the feed, a separator and a histogram to
// its right, and with Summary a separator and six summary rows underneath.
func Default(l Layout) *layout.Tree {
	var hist layout.Element = Histogram{}
	if l.SeparateHistograms {
		hist = KeyedHistogram{}
	}
	t := layout.New(Feed{}).
		Place(VerticalBar{}, layout.Right, geometry.FromEnd(1)).
		Place(hist, layout.Right, geometry.FromEnd(MinHistogramWidth))
	if l.Summary {
		t.Place(HorizontalBar{}, layout.Down, geometry.FromEnd(1)).
			Place(Summary{}, layout.Down, geometry.FromEnd(1+record.LevelCount))
	}
	return t
}

// moveTo positions the cursor at zero-based cell (x, y).
func moveTo(w io.Writer, x, y int) {
	io.WriteString(w, ansi.CursorPosition(x+1, y+1))
}

func blank(w io.Writer, area geometry.Box[int]) {
	if area.Empty() {
		return
	}
	io.WriteString(w, record.Reset.SGR())
	row := strings.Repeat(" ", area.Length)
	for y := area.Y; y < area.Y+area.Height; y++ {
		moveTo(w, area.X, y)
		io.WriteString(w, row)
	}
}

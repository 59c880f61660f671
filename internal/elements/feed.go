package elements

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/store"
)

// Feed draws the history with the newest entry on the bottom row. Entries are
// wrapped to the area width and colored by level.
type Feed struct{}

func (Feed) Draw(w io.Writer, area geometry.Box[int], st *store.Store) {
	if area.Empty() {
		return
	}
	row := area.Y + area.Height
	st.Each(func(e store.Entry) bool {
		lines := Wrap(e.Text, area.Length)
		color := st.Color(e.Level).SGR()
		for i := len(lines) - 1; i >= 0; i-- {
			if row == area.Y {
				return false
			}
			row--
			moveTo(w, area.X, row)
			io.WriteString(w, color)
			io.WriteString(w, runewidth.FillRight(lines[i], area.Length))
		}
		return row > area.Y
	})
	if row > area.Y {
		blank(w, geometry.Box[int]{X: area.X, Y: area.Y, Length: area.Length, Height: row - area.Y})
	}
}

// Wrap splits text on newlines and cuts every line into chunks no wider than
// width display cells. Empty lines produce no chunks.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		var b strings.Builder
		used := 0
		for _, r := range line {
			rw := runewidth.RuneWidth(r)
			if used > 0 && used+rw > width {
				out = append(out, b.String())
				b.Reset()
				used = 0
			}
			b.WriteRune(r)
			used += rw
		}
		if b.Len() > 0 {
			out = append(out, b.String())
		}
	}
	return out
}

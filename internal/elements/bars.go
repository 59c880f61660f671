package elements

import (
	"io"
	"strings"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/store"
)

// HorizontalBar draws a row of '=' across the top of its area.
type HorizontalBar struct{}

func (HorizontalBar) Draw(w io.Writer, area geometry.Box[int], _ *store.Store) {
	if area.Empty() {
		return
	}
	moveTo(w, area.X, area.Y)
	io.WriteString(w, record.Reset.SGR())
	io.WriteString(w, strings.Repeat("=", area.Length))
}

// VerticalBar draws a column of '|' down the left edge of its area.
type VerticalBar struct{}

func (VerticalBar) Draw(w io.Writer, area geometry.Box[int], _ *store.Store) {
	if area.Empty() {
		return
	}
	io.WriteString(w, record.Reset.SGR())
	for y := area.Y; y < area.Y+area.Height; y++ {
		moveTo(w, area.X, y)
		io.WriteString(w, "|")
	}
}

package elements

import (
	"strconv"
	"strings"
)

// screen replays cursor positioning and reverse video from a frame onto a
// grid of cells.
type screen struct {
	cells   [][]rune
	reverse [][]bool
}

func newScreen(cols, rows int) *screen {
	s := &screen{}
	for i := 0; i < rows; i++ {
		s.cells = append(s.cells, []rune(strings.Repeat(".", cols)))
		s.reverse = append(s.reverse, make([]bool, cols))
	}
	return s
}

func (s *screen) replay(frame string) *screen {
	row, col, rev := 0, 0, false
	rs := []rune(frame)
	for i := 0; i < len(rs); i++ {
		if rs[i] == 0x1b && i+1 < len(rs) && rs[i+1] == '[' {
			j := i + 2
			for j < len(rs) && !(rs[j] >= 0x40 && rs[j] <= 0x7e) {
				j++
			}
			if j >= len(rs) {
				return s
			}
			params := string(rs[i+2 : j])
			switch rs[j] {
			case 'H':
				parts := strings.SplitN(params, ";", 2)
				row, col = param(parts, 0)-1, param(parts, 1)-1
			case 'm':
				for _, p := range strings.Split(params, ";") {
					switch p {
					case "7":
						rev = true
					case "27", "0", "":
						rev = false
					}
				}
			}
			i = j
			continue
		}
		if row >= 0 && row < len(s.cells) && col >= 0 && col < len(s.cells[row]) {
			s.cells[row][col] = rs[i]
			s.reverse[row][col] = rev
		}
		col++
	}
	return s
}

func param(parts []string, i int) int {
	if i >= len(parts) || parts[i] == "" {
		return 1
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func (s *screen) row(i int) string { return string(s.cells[i]) }

// bars renders reversed cells of a row as '#'.
func (s *screen) bars(i int) string {
	var b strings.Builder
	for _, r := range s.reverse[i] {
		if r {
			b.WriteByte('#')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

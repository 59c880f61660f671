package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/five82/glug/internal/record"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Line is a tailed line with the level of the record it belongs to.
type Line struct {
	Text  string
	Level record.Level
	// Continued marks the second and later lines of a multi-line message.
	Continued bool
}

// ParseLevel reads the level name that starts a mirrored record.
func ParseLevel(line string) (record.Level, bool) {
	name, _, _ := strings.Cut(line, " ")
	for _, l := range record.Levels {
		if name == l.String() {
			return l, true
		}
	}
	return 0, false
}

// Tag assigns a level to every line. Lines without a level prefix continue
// the previous record; leading orphans are treated as trace.
func Tag(lines []string) []Line {
	out := make([]Line, len(lines))
	current := record.LevelTrace
	for i, text := range lines {
		level, ok := ParseLevel(text)
		if ok {
			current = level
		}
		out[i] = Line{Text: text, Level: current, Continued: !ok}
	}
	return out
}

// Count tallies records per level, ignoring continuation lines.
func Count(lines []Line) record.Counts {
	var c record.Counts
	for _, l := range lines {
		if !l.Continued {
			c[l.Level]++
		}
	}
	return c
}

// Filter keeps lines at threshold or more severe.
func Filter(lines []Line, threshold record.Level) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Level <= threshold {
			out = append(out, l)
		}
	}
	return out
}

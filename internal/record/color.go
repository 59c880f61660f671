package record

import (
	"fmt"
	"strings"
)

// Color is one of the basic ANSI foreground color codes. The actual hue is
// decided by the terminal's palette.
type Color int

const (
	Reset   Color = 0
	Black   Color = 30
	Red     Color = 31
	Green   Color = 32
	Yellow  Color = 33
	Blue    Color = 34
	Magenta Color = 35
	Cyan    Color = 36
	White   Color = 37
	// Default selects the terminal's default foreground, unlike Reset which
	// clears every attribute.
	Default Color = 39
)

// Palette assigns a color to each level, indexed like Counts.
type Palette [LevelCount]Color

// DefaultPalette is red, yellow, green, blue and the terminal default for
// Error through Trace.
var DefaultPalette = Palette{Red, Yellow, Green, Blue, Default}

var colorNames = map[string]Color{
	"reset":   Reset,
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
	"default": Default,
}

// ParseColor looks up a color by name.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Reset, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

// Valid reports whether c is Reset or in the 30-39 range, excluding 38 which
// introduces extended colors.
func (c Color) Valid() bool {
	return c == Reset || (c >= Black && c <= Default && c != 38)
}

// SGR returns the escape sequence selecting c.
func (c Color) SGR() string {
	return fmt.Sprintf("\x1b[%dm", int(c))
}

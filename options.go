package glug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/five82/glug/internal/record"
)

// Level is a log severity. Lower values are more severe.
type Level = record.Level

const (
	LevelError = record.LevelError
	LevelWarn  = record.LevelWarn
	LevelInfo  = record.LevelInfo
	LevelDebug = record.LevelDebug
	LevelTrace = record.LevelTrace
)

// SlogLevelTrace is the slog level below Debug that maps to LevelTrace.
const SlogLevelTrace = record.SlogLevelTrace

// Color is a basic ANSI foreground color.
type Color = record.Color

const (
	Reset   = record.Reset
	Black   = record.Black
	Red     = record.Red
	Green   = record.Green
	Yellow  = record.Yellow
	Blue    = record.Blue
	Magenta = record.Magenta
	Cyan    = record.Cyan
	White   = record.White
	Default = record.Default
)

// DefaultColors colors Error through Trace.
var DefaultColors = [record.LevelCount]Color(record.DefaultPalette)

// RecordThreads turns on per-producer tracking. Every record carries its
// goroutine id and optional producer name, and counts are kept per producer.
type RecordThreads struct {
	// SeparateHistograms draws one histogram per producer instead of one
	// for all records.
	SeparateHistograms bool
	// Summary adds a per-producer count table under the feed.
	Summary bool
}

// Options configure a Logger. The zero value is usable.
type Options struct {
	// Colors for Error through Trace. The zero value uses DefaultColors.
	Colors [record.LevelCount]Color
	// SaveToFile, when set, appends every formatted record to this file.
	SaveToFile    string
	RecordThreads *RecordThreads
	// MaxMessagesPerLoop caps records ingested between redraws. Zero means
	// no cap.
	MaxMessagesPerLoop int
	Timestamps         bool

	// Output receives the frames. Nil uses os.Stderr.
	Output io.Writer
	// Size reports the terminal size. Nil measures os.Stderr.
	Size func() (cols, rows int, err error)
	// IdleWait bounds how long the writer sleeps when nothing arrives.
	IdleWait time.Duration
	// Diagnostics receives warnings about the sink itself. Nil writes warn
	// level text to os.Stderr.
	Diagnostics *slog.Logger
	// MinLevel drops records below this slog level. Nil accepts everything.
	MinLevel slog.Leveler
}

func (o Options) withDefaults() Options {
	if o.Colors == ([record.LevelCount]Color{}) {
		o.Colors = DefaultColors
	}
	if o.Output == nil {
		o.Output = os.Stderr
	}
	if o.Diagnostics == nil {
		o.Diagnostics = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if o.MinLevel == nil {
		o.MinLevel = SlogLevelTrace
	}
	return o
}

func (o Options) validate() error {
	for i, c := range o.Colors {
		if !c.Valid() {
			return fmt.Errorf("color for %s: %d is not a basic ANSI color", record.Levels[i], int(c))
		}
	}
	if o.MaxMessagesPerLoop < 0 {
		return fmt.Errorf("max messages per loop: %d is negative", o.MaxMessagesPerLoop)
	}
	return nil
}

func (o Options) features() record.Features {
	return record.Features{Threads: o.RecordThreads != nil, Timestamps: o.Timestamps}
}

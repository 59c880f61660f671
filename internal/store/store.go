package store

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/glug/internal/record"
)

// HistoryCapacity is the default number of formatted entries kept.
const HistoryCapacity = 512

// Entry is one formatted record in the history.
type Entry struct {
	Text  string
	Level record.Level
}

// Formatter renders a record for display and for sinks.
type Formatter func(message string, level record.Level, info record.Info) string

// KeyFunc derives the keyed-counting key from a record's Info. It returns
// false when the record carries no key.
type KeyFunc func(info record.Info) (string, bool)

// DefaultFormatter left-aligns the level in six columns, then the Info
// display form, then the message.
func DefaultFormatter(message string, level record.Level, info record.Info) string {
	return fmt.Sprintf("%-6s%s%s", level, info, message)
}

// ByProducer keys records by producer name, falling back to the goroutine id.
func ByProducer(info record.Info) (string, bool) {
	if info.Thread == nil {
		return "", false
	}
	return info.Thread.Key(), true
}

// Options configure a Store.
type Options struct {
	Capacity  int // zero uses HistoryCapacity
	Formatter Formatter
	// KeyFunc enables keyed counting when non-nil.
	KeyFunc KeyFunc
	Sinks   []io.Writer
	// Palette zero value uses record.DefaultPalette.
	Palette record.Palette
	Logger  *slog.Logger
}

type sinkState struct {
	w      io.Writer
	failed bool
}

// Store holds the aggregated view of every record inserted so far.
type Store struct {
	format  Formatter
	keyFunc KeyFunc
	palette record.Palette
	log     *slog.Logger

	ring  []Entry
	next  int
	count int

	counts record.Counts
	keyed  map[string]*record.Counts
	keys   []string

	sinks []sinkState
}

// New returns an empty store.
func New(opts Options) *Store {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	format := opts.Formatter
	if format == nil {
		format = DefaultFormatter
	}
	palette := opts.Palette
	if palette == (record.Palette{}) {
		palette = record.DefaultPalette
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{
		format:  format,
		keyFunc: opts.KeyFunc,
		palette: palette,
		log:     logger,
		ring:    make([]Entry, capacity),
	}
	if opts.KeyFunc != nil {
		s.keyed = make(map[string]*record.Counts)
	}
	for _, w := range opts.Sinks {
		if w != nil {
			s.sinks = append(s.sinks, sinkState{w: w})
		}
	}
	return s
}

// Insert formats r, mirrors it to the sinks and folds it into the counters
// and history.
func (s *Store) Insert(r *record.Record) {
	text := s.format(r.Message, r.Level, r.Info)
	s.writeSinks(text)

	level := r.Level
	if !level.Valid() {
		level = record.LevelTrace
	}
	s.counts[level]++

	if s.keyed != nil {
		if key, ok := s.keyFunc(r.Info); ok {
			c, seen := s.keyed[key]
			if !seen {
				c = &record.Counts{}
				s.keyed[key] = c
				s.keys = append(s.keys, key)
			}
			c[level]++
		}
	}

	s.ring[s.next] = Entry{Text: text, Level: level}
	s.next = (s.next + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
}

func (s *Store) writeSinks(text string) {
	if len(s.sinks) == 0 {
		return
	}
	line := []byte(text + "\n")
	for i := range s.sinks {
		sk := &s.sinks[i]
		if sk.failed {
			continue
		}
		n, err := sk.w.Write(line)
		if err == nil && n < len(line) {
			err = io.ErrShortWrite
		}
		if err != nil {
			s.disable(i, "write", err)
		}
	}
}

func (s *Store) disable(i int, op string, err error) {
	s.sinks[i].failed = true
	s.log.Warn("log sink disabled", "sink", i, "op", op, "error", err)
}

// Each calls fn for every history entry, newest first, until fn returns false.
func (s *Store) Each(fn func(Entry) bool) {
	for i := 0; i < s.count; i++ {
		idx := (s.next - 1 - i + len(s.ring)) % len(s.ring)
		if !fn(s.ring[idx]) {
			return
		}
	}
}

// Logs returns the formatted history, newest first.
func (s *Store) Logs() []string {
	out := make([]string, 0, s.count)
	s.Each(func(e Entry) bool {
		out = append(out, e.Text)
		return true
	})
	return out
}

// Len returns the number of entries in the history.
func (s *Store) Len() int { return s.count }

// Capacity returns the maximum history length.
func (s *Store) Capacity() int { return len(s.ring) }

// Counts returns the per-level totals.
func (s *Store) Counts() record.Counts { return s.counts }

// Total returns the number of records ever inserted.
func (s *Store) Total() uint64 { return s.counts.Total() }

// Keyed reports whether keyed counting is enabled.
func (s *Store) Keyed() bool { return s.keyed != nil }

// Keys returns the observed keys in the order they were first seen.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// KeyCounts returns the per-level counts for key.
func (s *Store) KeyCounts(key string) (record.Counts, bool) {
	c, ok := s.keyed[key]
	if !ok {
		return record.Counts{}, false
	}
	return *c, true
}

// KeyedCounts returns a copy of every keyed counter.
func (s *Store) KeyedCounts() map[string]record.Counts {
	if s.keyed == nil {
		return nil
	}
	out := make(map[string]record.Counts, len(s.keyed))
	for k, c := range s.keyed {
		out[k] = *c
	}
	return out
}

// Color returns the palette color for level.
func (s *Store) Color(level record.Level) record.Color {
	if !level.Valid() {
		return record.Default
	}
	return s.palette[level]
}

// LiveSinks returns how many sinks are still accepting writes.
func (s *Store) LiveSinks() int {
	n := 0
	for _, sk := range s.sinks {
		if !sk.failed {
			n++
		}
	}
	return n
}

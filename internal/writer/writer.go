// Package writer runs the single consumer of the log queue: it folds records
// into the store, redraws the layout and answers control signals.
package writer

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/layout"
	"github.com/five82/glug/internal/queue"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/state"
	"github.com/five82/glug/internal/store"
)

// DefaultIdleWait bounds how long an idle writer sleeps before redrawing.
const DefaultIdleWait = 25 * time.Millisecond

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (cols, rows int, err error)

// TerminalSize measures the terminal attached to f.
func TerminalSize(f *os.File) SizeFunc {
	return func() (int, int, error) {
		return term.GetSize(int(f.Fd()))
	}
}

// Options configure a Writer. Queue, Store and Tree are required.
type Options struct {
	Queue *queue.Queue[record.Message]
	Store *store.Store
	Tree  *layout.Tree
	// Out receives one frame per cycle; nil uses os.Stderr.
	Out io.Writer
	// Size nil measures os.Stderr.
	Size SizeFunc
	// MaxPerCycle caps records ingested per cycle; zero drains until empty.
	MaxPerCycle int
	IdleWait    time.Duration
	Logger      *slog.Logger
	// Stats, when set, receives the statistics after every cycle that
	// ingested something.
	Stats *state.Store
}

// Writer owns the store and the layout tree. All of its methods must be
// called from one goroutine.
type Writer struct {
	queue       *queue.Queue[record.Message]
	store       *store.Store
	tree        *layout.Tree
	out         io.Writer
	size        SizeFunc
	maxPerCycle int
	idleWait    time.Duration
	log         *slog.Logger
	stats       *state.Store

	frame       bytes.Buffer
	signals     []*record.Signal
	lastWarning string
	cycles      uint64
	stopped     bool
}

// New returns a writer ready to Run.
func New(opts Options) *Writer {
	w := &Writer{
		queue:       opts.Queue,
		store:       opts.Store,
		tree:        opts.Tree,
		out:         opts.Out,
		size:        opts.Size,
		maxPerCycle: opts.MaxPerCycle,
		idleWait:    opts.IdleWait,
		log:         opts.Logger,
		stats:       opts.Stats,
	}
	if w.out == nil {
		w.out = os.Stderr
	}
	if w.size == nil {
		w.size = TerminalSize(os.Stderr)
	}
	if w.idleWait <= 0 {
		w.idleWait = DefaultIdleWait
	}
	if w.log == nil {
		w.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w
}

// Run cycles until a Stop signal has been handled. A terminal size failure
// ends the loop: the queue and the sinks are closed, the terminal restored
// and the error returned.
func (w *Writer) Run() error {
	for {
		n, stopped, err := w.Cycle()
		if err != nil {
			w.queue.Close()
			_ = w.store.Close()
			w.restore()
			return err
		}
		if stopped {
			return nil
		}
		if n == 0 {
			w.idle()
		}
	}
}

func (w *Writer) idle() {
	t := time.NewTimer(w.idleWait)
	defer t.Stop()
	select {
	case <-w.queue.Ready():
	case <-t.C:
	}
}

// Cycle runs one read, draw and signal pass. It returns how many messages
// were taken off the queue and whether the writer has stopped.
func (w *Writer) Cycle() (int, bool, error) {
	if w.stopped {
		return 0, true, nil
	}
	w.frame.Reset()
	w.signals = w.signals[:0]

	cols, rows, err := w.size()
	if err != nil {
		return 0, false, fmt.Errorf("terminal size: %w", err)
	}

	n := w.read()
	if n > 0 {
		// Failing sinks are disabled and reported by the store.
		_ = w.store.Commit()
	}
	w.draw(geometry.Terminal(cols, rows))
	if n > 0 || w.cycles == 0 {
		w.publish()
	}
	w.cycles++
	w.handleSignals()
	return n, w.stopped, nil
}

// read drains the queue into the store. Only records count against the
// per-cycle cap. A Stop closes the queue and lifts the cap so that nothing
// sent before it is left behind.
func (w *Writer) read() int {
	limit := w.maxPerCycle
	n, records := 0, 0
	for limit <= 0 || records < limit {
		msg, ok := w.queue.TryRecv()
		if !ok {
			break
		}
		n++
		switch m := msg.(type) {
		case *record.Record:
			w.store.Insert(m)
			records++
		case *record.Signal:
			w.signals = append(w.signals, m)
			if m.Kind == record.Stop {
				w.queue.Close()
				limit = 0
			}
		}
	}
	return n
}

func (w *Writer) draw(box geometry.Box[int]) {
	w.frame.WriteString(ansi.HideCursor)
	err := w.tree.Descend(&w.frame, box, w.store)
	w.frame.WriteString(record.Reset.SGR())
	w.warn(err)
	if _, err := w.out.Write(w.frame.Bytes()); err != nil {
		w.warn(fmt.Errorf("write frame: %w", err))
	}
}

// warn logs err unless it repeats the previous warning.
func (w *Writer) warn(err error) {
	if err == nil {
		w.lastWarning = ""
		return
	}
	msg := err.Error()
	if msg == w.lastWarning {
		return
	}
	w.lastWarning = msg
	w.log.Warn("terminal layout incomplete", "error", err)
}

func (w *Writer) handleSignals() {
	var stops []*record.Signal
	for _, sig := range w.signals {
		switch sig.Kind {
		case record.Flush:
			// Failing sinks are disabled and reported by the store.
			_ = w.store.Flush()
			sig.Ack()
		case record.Stop:
			stops = append(stops, sig)
		}
	}
	if len(stops) == 0 {
		return
	}
	_ = w.store.Close()
	w.restore()
	w.stopped = true
	for _, sig := range stops {
		sig.Ack()
	}
}

func (w *Writer) restore() {
	io.WriteString(w.out, record.Reset.SGR()+ansi.ShowCursor)
}

func (w *Writer) publish() {
	if w.stats == nil {
		return
	}
	w.stats.Update(&state.Stats{
		Counts: w.store.Counts(),
		Keys:   w.store.Keys(),
		Keyed:  w.store.KeyedCounts(),
		Lines:  w.store.Logs(),
	}, nil)
}

// Stopped reports whether a Stop signal has been handled.
func (w *Writer) Stopped() bool { return w.stopped }

// Store returns the store the writer aggregates into.
func (w *Writer) Store() *store.Store { return w.store }

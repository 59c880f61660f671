package glug

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/five82/glug/internal/elements"
	"github.com/five82/glug/internal/queue"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/state"
	"github.com/five82/glug/internal/store"
	"github.com/five82/glug/internal/writer"
)

// Snapshot is a copy of the live statistics.
type Snapshot = state.Snapshot

// Logger feeds records to a background writer goroutine that draws them.
type Logger struct {
	features record.Features
	minLevel slog.Leveler
	queue    *queue.Queue[record.Message]
	stats    *state.Store

	ended atomic.Bool
	done  chan struct{}
	err   error
}

// New starts an unregistered logger. The caller owns it and must End or
// Close it.
func New(opts Options) (*Logger, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("glug: %w", err)
	}

	var sinks []io.Writer
	if opts.SaveToFile != "" {
		f, err := store.OpenFile(opts.SaveToFile)
		if err != nil {
			return nil, fmt.Errorf("glug: %w", err)
		}
		sinks = append(sinks, f)
	}

	storeOpts := store.Options{
		Sinks:   sinks,
		Palette: record.Palette(opts.Colors),
		Logger:  opts.Diagnostics,
	}
	var lay elements.Layout
	if rt := opts.RecordThreads; rt != nil {
		storeOpts.KeyFunc = store.ByProducer
		lay = elements.Layout{Summary: rt.Summary, SeparateHistograms: rt.SeparateHistograms}
	}

	l := &Logger{
		features: opts.features(),
		minLevel: opts.MinLevel,
		queue:    queue.New[record.Message](),
		stats:    &state.Store{},
		done:     make(chan struct{}),
	}
	w := writer.New(writer.Options{
		Queue:       l.queue,
		Store:       store.New(storeOpts),
		Tree:        elements.Default(lay),
		Out:         opts.Output,
		Size:        opts.Size,
		MaxPerCycle: opts.MaxMessagesPerLoop,
		IdleWait:    opts.IdleWait,
		Logger:      opts.Diagnostics,
		Stats:       l.stats,
	})
	go l.run(w)
	return l, nil
}

func (l *Logger) run(w *writer.Writer) {
	defer close(l.done)
	l.err = w.Run()
}

func (l *Logger) send(msg record.Message) {
	if l.ended.Load() {
		panic("glug: log sent after End")
	}
	if err := l.queue.Send(msg); err != nil {
		// The queue closes on Stop or when the writer fails.
		<-l.done
		if l.err == nil || l.ended.Load() {
			panic("glug: log sent after End")
		}
		panic(fmt.Sprintf("glug: writer failed: %v", l.err))
	}
}

func (l *Logger) enabled(level Level) bool {
	return level.SlogLevel() >= l.minLevel.Level()
}

// Submit queues msg at level on behalf of the calling goroutine.
func (l *Logger) Submit(msg string, level Level) {
	l.SubmitNamed("", msg, level)
}

// SubmitNamed is Submit with a producer name used for per-producer counts.
func (l *Logger) SubmitNamed(name, msg string, level Level) {
	if !l.enabled(level) {
		return
	}
	l.send(record.New(l.features, msg, level, name))
}

// Flush blocks until the writer has pushed buffered file output to disk.
func (l *Logger) Flush() {
	sig := record.NewSignal(record.Flush)
	l.send(sig)
	select {
	case <-sig.Done:
	case <-l.done:
	}
}

// End asks the writer to drain the queue, restore the terminal and exit. It
// does not wait; see Wait and Close. Calling End twice panics.
func (l *Logger) End() {
	if !l.ended.CompareAndSwap(false, true) {
		panic("glug: End called twice")
	}
	if err := l.queue.Send(record.NewSignal(record.Stop)); errors.Is(err, queue.ErrClosed) {
		// Only a failed writer closes the queue before a Stop arrives.
		<-l.done
	}
}

// Wait blocks until the writer goroutine has exited and returns the error
// that stopped it, if any.
func (l *Logger) Wait() error {
	<-l.done
	return l.err
}

// Close ends the logger and waits for the writer.
func (l *Logger) Close() error {
	l.End()
	return l.Wait()
}

// Stats returns the statistics published after the last writer cycle that
// ingested records.
func (l *Logger) Stats() Snapshot {
	return l.stats.Snapshot()
}

var (
	registered    atomic.Bool
	defaultLogger atomic.Pointer[Logger]
)

// Setup starts a logger and registers it as the process default, both for
// the package level helpers and for slog.Default. It panics when called
// twice or when opts are invalid.
func Setup(opts Options) *Logger {
	if !registered.CompareAndSwap(false, true) {
		panic("glug: Setup called twice")
	}
	l, err := New(opts)
	if err != nil {
		panic(err.Error())
	}
	defaultLogger.Store(l)
	slog.SetDefault(slog.New(l.Handler()))
	return l
}

// Registered returns the logger installed by Setup, or nil.
func Registered() *Logger {
	return defaultLogger.Load()
}

func mustDefault() *Logger {
	l := defaultLogger.Load()
	if l == nil {
		panic("glug: logging before Setup")
	}
	return l
}

// Error logs msg at LevelError on the registered logger.
func Error(msg string) { mustDefault().Submit(msg, LevelError) }

// Warn logs msg at LevelWarn on the registered logger.
func Warn(msg string) { mustDefault().Submit(msg, LevelWarn) }

// Info logs msg at LevelInfo on the registered logger.
func Info(msg string) { mustDefault().Submit(msg, LevelInfo) }

// Debug logs msg at LevelDebug on the registered logger.
func Debug(msg string) { mustDefault().Submit(msg, LevelDebug) }

// Trace logs msg at LevelTrace on the registered logger.
func Trace(msg string) { mustDefault().Submit(msg, LevelTrace) }

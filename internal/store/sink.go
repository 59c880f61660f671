package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Commit writes buffered sink data through to its destination so every
// inserted record is visible to readers of the sink. A failing sink is
// disabled.
func (s *Store) Commit() error {
	var errs []error
	for i := range s.sinks {
		sk := &s.sinks[i]
		if sk.failed {
			continue
		}
		if f, ok := sk.w.(flusher); ok {
			if err := f.Flush(); err != nil {
				s.disable(i, "flush", err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Flush commits the sinks, then syncs those exposing Sync to stable storage.
// A failing sink is disabled.
func (s *Store) Flush() error {
	errs := []error{s.Commit()}
	for i := range s.sinks {
		sk := &s.sinks[i]
		if sk.failed {
			continue
		}
		if f, ok := sk.w.(syncer); ok {
			if err := f.Sync(); err != nil {
				s.disable(i, "sync", err)
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// Close flushes the sinks and closes those that are io.Closers.
func (s *Store) Close() error {
	errs := []error{s.Flush()}
	for i := range s.sinks {
		if c, ok := s.sinks[i].w.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		s.sinks[i].failed = true
	}
	return errors.Join(errs...)
}

// FileSink appends lines to a file through a buffer that the writer
// commits once per cycle.
type FileSink struct {
	file *os.File
	buf  *bufio.Writer
}

// OpenFile opens path for appending, creating it when missing.
func OpenFile(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &FileSink{file: f, buf: bufio.NewWriterSize(f, 64*1024)}, nil
}

// Write buffers p.
func (f *FileSink) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Flush writes buffered data to the file.
func (f *FileSink) Flush() error {
	return f.buf.Flush()
}

// Sync commits the file to stable storage.
func (f *FileSink) Sync() error {
	return f.file.Sync()
}

// Close flushes and closes the file.
func (f *FileSink) Close() error {
	return errors.Join(f.buf.Flush(), f.file.Close())
}

// Name returns the file path.
func (f *FileSink) Name() string {
	return f.file.Name()
}

package record

import (
	"bytes"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Features selects which optional Info fields are captured. It is fixed when
// a logger is constructed.
type Features struct {
	Threads    bool
	Timestamps bool
}

// Fingerprint identifies the producer goroutine.
type Fingerprint struct {
	ID   uint64
	Name string
}

// Key returns the producer name, or "#<id>" when the producer is unnamed.
func (f Fingerprint) Key() string {
	if f.Name != "" {
		return f.Name
	}
	return "#" + strconv.FormatUint(f.ID, 10)
}

// Info holds the optional data captured with a record.
type Info struct {
	Thread *Fingerprint
	Time   time.Time
}

// String renders the display form used by the default formatter: a
// timestamp and/or a bracketed producer, each followed by a space.
func (i Info) String() string {
	var b strings.Builder
	if !i.Time.IsZero() {
		b.WriteString(i.Time.Format("15:04:05.000"))
		b.WriteByte(' ')
	}
	if i.Thread != nil {
		b.WriteByte('[')
		if i.Thread.Name != "" {
			b.WriteString(i.Thread.Name)
		}
		b.WriteByte('#')
		b.WriteString(strconv.FormatUint(i.Thread.ID, 10))
		b.WriteString("] ")
	}
	return b.String()
}

// Message is either a *Record or a *Signal.
type Message interface {
	isMessage()
}

// Record is a single log line submitted by a producer.
type Record struct {
	Message string
	Level   Level
	Info    Info
}

func (*Record) isMessage() {}

// New builds a record on the calling goroutine, capturing the Info fields
// enabled in f. name is recorded as the producer name when threads are
// captured.
func New(f Features, message string, level Level, name string) *Record {
	r := &Record{Message: message, Level: level}
	if f.Threads {
		r.Info.Thread = &Fingerprint{ID: GoroutineID(), Name: name}
	}
	if f.Timestamps {
		r.Info.Time = time.Now()
	}
	return r
}

var goroutinePrefix = []byte("goroutine ")

// GoroutineID returns the id of the calling goroutine, or 0 if the runtime
// trace header cannot be parsed.
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	line := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(line, ' '); i > 0 {
		line = line[:i]
	}
	id, err := strconv.ParseUint(string(line), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

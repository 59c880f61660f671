package record

import (
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLevelOrderMatchesCounterIndex(t *testing.T) {
	want := []string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}
	for i, l := range Levels {
		if int(l) != i {
			t.Fatalf("Levels[%d] = %d, want %d", i, l, i)
		}
		if l.String() != want[i] {
			t.Fatalf("Levels[%d].String() = %q, want %q", i, l.String(), want[i])
		}
	}
}

func TestFromSlog(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want Level
	}{
		{slog.LevelError + 4, LevelError},
		{slog.LevelError, LevelError},
		{slog.LevelWarn, LevelWarn},
		{slog.LevelInfo + 1, LevelInfo},
		{slog.LevelInfo, LevelInfo},
		{slog.LevelDebug, LevelDebug},
		{SlogLevelTrace, LevelTrace},
		{slog.Level(-100), LevelTrace},
	}
	for _, tt := range tests {
		if got := FromSlog(tt.in); got != tt.want {
			t.Errorf("FromSlog(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, l := range Levels {
		if got := FromSlog(l.SlogLevel()); got != l {
			t.Errorf("FromSlog(%v.SlogLevel()) = %v", l, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if l, err := ParseLevel(" Warning "); err != nil || l != LevelWarn {
		t.Fatalf("ParseLevel(Warning) = %v, %v; want WARN", l, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(loud) returned nil error")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Yellow")
	if err != nil || c != Yellow {
		t.Fatalf("ParseColor(Yellow) = %v, %v", c, err)
	}
	if _, err := ParseColor("mauve"); err == nil {
		t.Fatalf("ParseColor(mauve) returned nil error")
	}
	if got := Red.SGR(); got != "\x1b[31m" {
		t.Fatalf("Red.SGR() = %q", got)
	}
	if Color(38).Valid() || Color(41).Valid() {
		t.Fatalf("extended and background codes must be invalid")
	}
}

func TestNewCapturesEnabledFeaturesOnly(t *testing.T) {
	r := New(Features{}, "plain", LevelInfo, "ignored")
	if r.Info.Thread != nil || !r.Info.Time.IsZero() {
		t.Fatalf("Info = %+v, want empty", r.Info)
	}
	if r.Info.String() != "" {
		t.Fatalf("Info.String() = %q, want empty", r.Info.String())
	}

	before := time.Now()
	r = New(Features{Threads: true, Timestamps: true}, "full", LevelWarn, "worker")
	if r.Info.Thread == nil || r.Info.Thread.Name != "worker" || r.Info.Thread.ID == 0 {
		t.Fatalf("Thread = %+v, want named fingerprint with id", r.Info.Thread)
	}
	if r.Info.Time.Before(before) {
		t.Fatalf("Time = %v, want >= %v", r.Info.Time, before)
	}
	if s := r.Info.String(); !strings.Contains(s, "[worker#") {
		t.Fatalf("Info.String() = %q, want producer tag", s)
	}
}

func TestGoroutineIDDiffersAcrossGoroutines(t *testing.T) {
	main := GoroutineID()
	var other uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		other = GoroutineID()
	}()
	wg.Wait()
	if main == 0 || other == 0 || main == other {
		t.Fatalf("GoroutineID main=%d other=%d, want distinct non-zero", main, other)
	}
}

func TestFingerprintKey(t *testing.T) {
	if got := (Fingerprint{ID: 7}).Key(); got != "#7" {
		t.Fatalf("Key() = %q, want #7", got)
	}
	if got := (Fingerprint{ID: 7, Name: "X"}).Key(); got != "X" {
		t.Fatalf("Key() = %q, want X", got)
	}
}

func TestSignalAck(t *testing.T) {
	s := NewSignal(Flush)
	s.Ack()
	select {
	case <-s.Done:
	default:
		t.Fatalf("Done not closed after Ack")
	}
	(&Signal{Kind: Stop}).Ack()
}

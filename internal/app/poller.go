package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/glug/internal/logtail"
	"github.com/five82/glug/internal/state"
)

const (
	defaultPollInterval = time.Second
	maxBackoff          = 30 * time.Second
)

// Tail names the file the poller reads and how many lines it keeps.
type Tail struct {
	Path  string
	Lines int
}

// StartPoller launches a background goroutine that refreshes the store from
// the tailed file, backing off while reads keep failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, tail Tail, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(store, tail)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func refresh(store *state.Store, tail Tail) error {
	lines, err := logtail.Read(tail.Path, tail.Lines)
	if err != nil {
		store.Update(nil, err)
		log.Printf("tail poll failed: %v", err)
		return err
	}
	tagged := logtail.Tag(lines)

	newest := make([]string, len(lines))
	for i, line := range lines {
		newest[len(lines)-1-i] = line
	}
	store.Update(&state.Stats{Counts: logtail.Count(tagged), Lines: newest}, nil)
	return nil
}

package state

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/five82/glug/internal/record"
)

// Stats is one publication of log statistics.
type Stats struct {
	Counts record.Counts
	// Keys lists keyed counters in first-seen order; Keyed holds their counts.
	Keys  []string
	Keyed map[string]record.Counts
	// Lines holds recent formatted entries, newest first.
	Lines []string
}

// Snapshot represents the latest statistics available to readers.
type Snapshot struct {
	Stats
	HasData             bool
	Updates             uint64
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Stale reports whether the last several updates all failed.
func (s Snapshot) Stale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored statistics. When err is non-nil the previous data
// is kept but the error is recorded.
func (s *Store) Update(stats *Stats, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Updates++
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if stats != nil {
		s.snapshot.Stats = cloneStats(*stats)
		s.snapshot.HasData = true
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Stats = cloneStats(s.snapshot.Stats)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneStats(st Stats) Stats {
	out := Stats{Counts: st.Counts}
	if len(st.Keys) > 0 {
		out.Keys = slices.Clone(st.Keys)
	}
	if len(st.Keyed) > 0 {
		out.Keyed = maps.Clone(st.Keyed)
	}
	if len(st.Lines) > 0 {
		out.Lines = slices.Clone(st.Lines)
	}
	return out
}

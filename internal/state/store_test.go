package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/glug/internal/record"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	stats := &Stats{
		Counts: record.Counts{1, 0, 2, 0, 0},
		Keys:   []string{"X"},
		Keyed:  map[string]record.Counts{"X": {1, 0, 0, 0, 0}},
		Lines:  []string{"b", "a"},
	}

	before := time.Now()
	s.Update(stats, nil)

	snap := s.Snapshot()
	if !snap.HasData || snap.Counts.Total() != 3 {
		t.Fatalf("snapshot = %#v, want HasData with total 3", snap)
	}
	if !reflect.DeepEqual(snap.Lines, []string{"b", "a"}) {
		t.Fatalf("snapshot lines = %v, want [b a]", snap.Lines)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
	if snap.Updates != 1 {
		t.Fatalf("Updates = %d, want 1", snap.Updates)
	}

	// Neither the caller's Stats nor a returned snapshot aliases the store.
	stats.Lines[0] = "mutated"
	snap.Keyed["X"] = record.Counts{}
	snap.Keys[0] = "Z"
	snap2 := s.Snapshot()
	if snap2.Lines[0] != "b" || snap2.Keyed["X"][0] != 1 || snap2.Keys[0] != "X" {
		t.Fatalf("Snapshot should clone; got %#v", snap2.Stats)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&Stats{Counts: record.Counts{0, 1}, Lines: []string{"w"}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.Counts != prev.Counts || !reflect.DeepEqual(snap.Lines, prev.Lines) {
		t.Fatalf("stats changed on error: got %#v want %#v", snap.Stats, prev.Stats)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the recorded error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.Stale() {
		t.Fatalf("zero store: failures=%d stale=%v", snap.ConsecutiveFailures, snap.Stale())
	}

	for i, wantStale := range []bool{false, true, true} {
		s.Update(nil, errors.New("fail"))
		snap = s.Snapshot()
		if snap.ConsecutiveFailures != i+1 {
			t.Fatalf("ConsecutiveFailures = %d, want %d", snap.ConsecutiveFailures, i+1)
		}
		if snap.Stale() != wantStale {
			t.Fatalf("Stale() = %v after %d failures, want %v", snap.Stale(), i+1, wantStale)
		}
	}

	// A successful update with no stats still clears the error.
	s.Update(nil, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.Stale() || snap.LastError != nil {
		t.Fatalf("after success: %#v", snap)
	}
	if snap.HasData {
		t.Fatalf("HasData = true without any stats")
	}
	if snap.Updates != 4 {
		t.Fatalf("Updates = %d, want 4", snap.Updates)
	}
}

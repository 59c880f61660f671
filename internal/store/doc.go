// Package store aggregates the records drained by the writer.
//
// # Overview
//
// A Store keeps three views of everything inserted into it:
//
//   - a bounded history of formatted entries, newest first (512 by default)
//   - one counter per level, never reset
//   - optionally, one counter array per key, where the key is derived from the
//     record's Info by a KeyFunc (usually the producer name)
//
// Every formatted entry is also written, one line at a time, to each
// configured sink. A sink that fails a write, or accepts fewer bytes than it
// was given, is disabled for the rest of the run and reported once through the
// store's logger. In-memory aggregation carries on regardless.
//
// # Ownership
//
// A Store is owned by the writer goroutine. Insert, Flush and Close mutate it;
// draw elements only use the read accessors while the writer is between
// inserts. There is no locking: callers that need a concurrent view read the
// state.Snapshot the writer publishes after each cycle.
//
// # History Ring
//
// The history is a circular buffer like the one logtail uses for file tails:
// a fixed slice, a write index and a count. Inserting past capacity overwrites
// the oldest entry, so memory stays O(capacity) for the life of the process.
package store

// Package state shares the latest log statistics between the goroutine that
// produces them and the goroutines that display them.
//
// Two producers exist: the sink's writer loop, which publishes after every
// cycle, and the tail viewer's poller, which publishes after every read of a
// mirrored log file. Readers (Logger.Stats, the viewer UI) take snapshots on
// their own schedule.
//
// # Update Semantics
//
//	store.Update(&stats, nil)
//	→ counts, keys and lines replaced
//	→ LastError cleared, ConsecutiveFailures reset
//
//	store.Update(nil, err)
//	→ previous data kept
//	→ LastError = err, ConsecutiveFailures++
//
// A failed read or a failed layout leaves the last good numbers on screen while
// still surfacing the error.
//
// Snapshots are copies: slices and maps are cloned under the read lock, so a
// caller may keep or modify one freely. The zero Store is ready to use.
package state

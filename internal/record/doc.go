// Package record defines the values that travel from producers to the writer.
//
// A Record is created at the call site, carries a message, a Level and the
// optional Info captured according to the logger's Features, and is consumed
// exactly once by the writer goroutine. Signals (Flush, Stop) share the same
// queue as records so that their relative order is preserved; both satisfy the
// Message interface.
//
// Levels are indexed Error=0 through Trace=4. That index is also the slot used
// by every per-level counter array in the store.
package record

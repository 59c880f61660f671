// Package logtail reads the file a glug sink mirrors records to.
//
// # Reading
//
// Read returns the last N lines of a file using a ring buffer, so a large log
// is scanned once without being held in memory. Lines longer than 1MB fail
// the read.
//
// # Levels
//
// Every mirrored record starts with its level name padded to six columns.
// Tag attaches a level to each line, letting lines of a multi-line message
// inherit the level of the line that opened it. Count and Filter work on the
// tagged lines.
package logtail

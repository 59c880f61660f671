// Package glug is a log sink that draws to the terminal.
//
// Records submitted from any goroutine are queued without blocking and picked
// up by one writer goroutine. Each writer cycle folds the new records into
// running per-level counts and a bounded history, then redraws a layout of
// the newest records, a per-level histogram and, when producers are recorded,
// a per-producer summary. Formatted records can also be appended to a file.
//
// A program usually registers a process-wide logger once:
//
//	l := glug.Setup(glug.Options{RecordThreads: &glug.RecordThreads{Summary: true}})
//	defer l.Close()
//
//	glug.Info("started")
//	slog.Warn("disk nearly full", "free", "2GiB")
//
// Setup also installs the logger as slog.Default. Libraries can log through
// a logger built with New and its Handler without touching process state.
//
// Misuse panics: calling Setup twice, using the package level helpers before
// Setup, calling End twice, or logging after End.
package glug

// Package app wires the glugtail viewer together.
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()   options file, viewer settings
//	 ├─> prefs.Load()    saved level filter and follow mode
//	 ├─> refresh()       first read so the UI starts populated
//	 ├─> StartPoller()   background tail of the mirrored file
//	 └─> ui.Run()        Bubble Tea program (blocks)
//
// The poller reads the last viewer.lines lines every interval and publishes
// per-level counts and the lines into a state.Store. A failed read keeps the
// previous data, is logged with log.Printf and doubles the wait before the
// next read, up to 30 seconds.
//
// Summarize performs a single read for non-interactive use.
package app

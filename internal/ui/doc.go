// Package ui provides the Bubble Tea viewer behind glugtail.
//
// # Overview
//
// The viewer shows the file a glug sink mirrors records to: a header with the
// per-level counts and a scrollable pane of the tailed lines colored by
// level. It never reads the file itself. A poller (see package app) tails the
// file into a state.Store and the model pulls snapshots on every tick.
//
// # Keys
//
//	q, ctrl+c   quit
//	?           toggle full help
//	space       toggle follow mode
//	l           cycle the most verbose level shown
//	j/k, g/G    scroll, top, bottom
//	pgup/pgdown page
//
// Follow mode keeps the pane pinned to the newest line. Scrolling turns it
// off. The level filter and follow mode are saved to the prefs file when
// changed.
//
// # Colors
//
// Levels use the same basic ANSI colors as the sink's palette, translated to
// lipgloss colors, so the viewer and the live sink agree.
package ui

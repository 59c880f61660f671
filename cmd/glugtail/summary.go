package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/five82/glug/internal/record"
)

var levelColors = [record.LevelCount]text.Colors{
	{text.FgRed},
	{text.FgYellow},
	{text.FgGreen},
	{text.FgBlue},
	{text.Reset},
}

// renderSummary writes a per-level count table for the file at path.
func renderSummary(w io.Writer, path string, counts record.Counts) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(path)
	t.AppendHeader(table.Row{"LEVEL", "COUNT"})
	for _, l := range record.Levels {
		t.AppendRow(table.Row{levelColors[l].Sprint(l.String()), counts[l]})
	}
	t.AppendFooter(table.Row{"TOTAL", counts.Total()})
	t.Render()
}

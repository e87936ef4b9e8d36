// Package render writes go-pretty tables in the output formats the CLI supports.
package render

import (
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
)

var Formats = []string{"table", "md", "csv", "tsv", "html", "simple"}

func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

// NewTable returns a table writer mirroring its output to w.
func NewTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if len(header) > 0 {
		t.AppendHeader(header)
	}
	return t
}

// Render writes t in the given format. Unknown formats render nothing; call
// ValidateFormat before doing any work.
func Render(t table.Writer, format string) {
	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	case "simple":
		Simple(t)
		t.Render()
	}
}

// Simple strips borders and separators from t.
func Simple(t table.Writer) {
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.MiddleVertical = " "
}

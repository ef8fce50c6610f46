package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jeduden/tidystyle/internal/lint"
)

// TableFormatter outputs diagnostics as a box-drawn table followed by a
// problem count.
type TableFormatter struct{}

// Format writes one row per diagnostic. No diagnostics produces no output.
func (f *TableFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	if len(diagnostics) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Line", "Column", "Severity", "Rule", "Message"})

	errors, warnings := 0, 0
	for _, d := range diagnostics {
		if d.Severity == lint.Error {
			errors++
		} else {
			warnings++
		}
		t.AppendRow(table.Row{d.File, d.Line, d.Column, d.Severity.String(), d.Rule, d.Message})
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d problems: %d errors, %d warnings)\n", len(diagnostics), errors, warnings)
	return err
}

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeduden/tidystyle/internal/lint"
)

// TextFormatter outputs diagnostics in human-readable text format.
// When Color is true and w is a terminal, the location is muted, errors are
// red and warnings yellow.
type TextFormatter struct {
	Color bool
}

type textStyles struct {
	location lipgloss.Style
	rule     lipgloss.Style
	errorSev lipgloss.Style
	warnSev  lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		location: r.NewStyle().Foreground(lipgloss.Color("6")),
		rule:     r.NewStyle().Faint(true),
		errorSev: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		warnSev:  r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Format writes each diagnostic as a single line in the pattern:
// file:line:col severity message (rule)
func (f *TextFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	var st textStyles
	if f.Color {
		st = newTextStyles(w)
	}
	for _, d := range diagnostics {
		loc := fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
		sev := d.Severity.String()
		rule := "(" + d.Rule + ")"
		if f.Color {
			loc = st.location.Render(loc)
			if d.Severity == lint.Error {
				sev = st.errorSev.Render(sev)
			} else {
				sev = st.warnSev.Render(sev)
			}
			rule = st.rule.Render(rule)
		}
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", loc, sev, d.Message, rule); err != nil {
			return err
		}
	}
	return nil
}

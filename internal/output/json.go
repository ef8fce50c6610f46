package output

import (
	"encoding/json"
	"io"

	"github.com/jeduden/tidystyle/internal/lint"
)

// JSONFormatter outputs one object per file, in the order files first
// appear in the diagnostics.
type JSONFormatter struct{}

type jsonFile struct {
	Source   string        `json:"source"`
	Errored  bool          `json:"errored"`
	Warnings []jsonWarning `json:"warnings"`
}

type jsonWarning struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

// Format writes the grouped diagnostics as pretty-printed JSON. No
// diagnostics produces [].
func (f *JSONFormatter) Format(w io.Writer, diagnostics []lint.Diagnostic) error {
	files := make([]*jsonFile, 0)
	byName := map[string]*jsonFile{}
	for _, d := range diagnostics {
		jf, ok := byName[d.File]
		if !ok {
			jf = &jsonFile{Source: d.File, Warnings: []jsonWarning{}}
			byName[d.File] = jf
			files = append(files, jf)
		}
		if d.Severity == lint.Error {
			jf.Errored = true
		}
		jf.Warnings = append(jf.Warnings, jsonWarning{
			Line:     d.Line,
			Column:   d.Column,
			Rule:     d.Rule,
			Severity: d.Severity.String(),
			Text:     d.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(files)
}

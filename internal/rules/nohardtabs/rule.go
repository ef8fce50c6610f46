package nohardtabs

import (
	"bytes"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
)

// Name is the rule's configuration key.
const Name = "no-hard-tabs"

func init() {
	rule.Register(Name, New)
}

// New returns the check. The rule takes no options.
func New(_, _ any) rule.Check {
	return Check
}

// Check reports the first hard tab on every line.
func Check(f *lint.File, res *lint.Result) error {
	for i, line := range f.Lines {
		if idx := bytes.IndexByte(line, '\t'); idx >= 0 {
			res.Report(Name, lint.Position{Line: i + 1, Column: idx + 1}, "Unexpected hard tab")
		}
	}
	return nil
}

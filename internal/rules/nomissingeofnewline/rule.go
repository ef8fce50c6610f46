package nomissingeofnewline

import (
	"bytes"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
)

// Name is the rule's configuration key.
const Name = "no-missing-eof-newline"

func init() {
	rule.Register(Name, New)
}

// New returns the check. The rule takes no options.
func New(_, _ any) rule.Check {
	return Check
}

// Check reports a non-empty source that does not end with a newline.
func Check(f *lint.File, res *lint.Result) error {
	if len(f.Source) == 0 || bytes.HasSuffix(f.Source, []byte("\n")) {
		return nil
	}
	last := len(f.Lines)
	res.Report(Name, lint.Position{Line: last, Column: len(f.Lines[last-1]) + 1},
		"Unexpected missing end-of-source newline")
	return nil
}

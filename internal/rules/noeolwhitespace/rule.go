package noeolwhitespace

import (
	"bytes"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
)

// Name is the rule's configuration key.
const Name = "no-eol-whitespace"

func init() {
	rule.Register(Name, New)
}

// New returns the check. The rule takes no options.
func New(_, _ any) rule.Check {
	return Check
}

// Check reports lines ending in spaces or tabs, pointing at the first
// trailing whitespace character.
func Check(f *lint.File, res *lint.Result) error {
	for i, line := range f.Lines {
		trimmed := bytes.TrimRight(line, " \t")
		if len(trimmed) == len(line) {
			continue
		}
		res.Report(Name, lint.Position{Line: i + 1, Column: len(trimmed) + 1}, "Unexpected whitespace at end of line")
	}
	return nil
}

package maxemptylines

import (
	"bytes"
	"fmt"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
)

// Name is the rule's configuration key.
const Name = "max-empty-lines"

func init() {
	rule.Register(Name, New)
}

// New binds the maximum number of adjacent empty lines (primary).
func New(primary, _ any) rule.Check {
	limit, ok := rule.AsInt(primary)
	return func(f *lint.File, res *lint.Result) error {
		if !ok || limit < 0 {
			res.InvalidOption(Name, fmt.Sprintf("expected a non-negative integer, got %v", primary))
			return nil
		}

		run := 0
		for i, line := range f.ContentLines() {
			if len(bytes.TrimSpace(line)) > 0 {
				run = 0
				continue
			}
			run++
			if run == limit+1 {
				res.Report(Name, lint.Position{Line: i + 1, Column: 1},
					fmt.Sprintf("Expected no more than %d empty line(s)", limit))
			}
		}
		return nil
	}
}

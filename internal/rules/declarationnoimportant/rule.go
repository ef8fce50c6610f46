package declarationnoimportant

import (
	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Name is the rule's configuration key.
const Name = "declaration-no-important"

func init() {
	rule.Register(Name, New)
}

// New returns the check. The rule takes no options.
func New(_, _ any) rule.Check {
	return Check
}

// Check reports every declaration flagged !important.
func Check(f *lint.File, res *lint.Result) error {
	return f.Root.WalkKind(stylesheet.DeclNode, func(n *stylesheet.Node) error {
		if n.Important {
			res.Report(Name, n.Start, "Unexpected !important")
		}
		return nil
	})
}

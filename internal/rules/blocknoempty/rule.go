package blocknoempty

import (
	"fmt"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Name is the rule's configuration key.
const Name = "block-no-empty"

func init() {
	rule.Register(Name, New)
}

// New binds the secondary option {ignore: [comments]}. When comments are
// ignored a block holding only comments counts as empty.
func New(_, secondary any) rule.Check {
	ignoreComments, optErr := parseOptions(secondary)
	return func(f *lint.File, res *lint.Result) error {
		if optErr != nil {
			res.InvalidOption(Name, optErr.Error())
			return nil
		}
		return f.Root.Walk(func(n *stylesheet.Node) error {
			if !n.HasBlock || !isEmpty(n, ignoreComments) {
				return nil
			}
			res.Report(Name, n.Start, "Unexpected empty block")
			return nil
		})
	}
}

func parseOptions(secondary any) (bool, error) {
	sec, err := rule.AsMap(secondary)
	if err != nil {
		return false, err
	}
	ignore, err := rule.GetStringSliceOption(sec, "ignore", nil)
	if err != nil {
		return false, err
	}
	for _, v := range ignore {
		if v != "comments" {
			return false, fmt.Errorf("invalid ignore value %q (valid: comments)", v)
		}
	}
	return len(ignore) > 0, nil
}

func isEmpty(n *stylesheet.Node, ignoreComments bool) bool {
	for _, c := range n.Nodes {
		if c.Kind != stylesheet.CommentNode || !ignoreComments {
			return false
		}
	}
	return true
}

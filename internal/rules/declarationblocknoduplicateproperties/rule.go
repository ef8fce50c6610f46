package declarationblocknoduplicateproperties

import (
	"fmt"
	"strings"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Name is the rule's configuration key.
const Name = "declaration-block-no-duplicate-properties"

func init() {
	rule.Register(Name, New)
}

// New binds the secondary option {ignoreProperties: [...]}.
func New(_, secondary any) rule.Check {
	ignored, optErr := parseOptions(secondary)
	return func(f *lint.File, res *lint.Result) error {
		if optErr != nil {
			res.InvalidOption(Name, optErr.Error())
			return nil
		}
		check(f.Root.Nodes, ignored, res)
		return f.Root.Walk(func(n *stylesheet.Node) error {
			if n.HasBlock {
				check(n.Nodes, ignored, res)
			}
			return nil
		})
	}
}

func parseOptions(secondary any) (map[string]bool, error) {
	sec, err := rule.AsMap(secondary)
	if err != nil {
		return nil, err
	}
	props, err := rule.GetStringSliceOption(sec, "ignoreProperties", nil)
	if err != nil {
		return nil, err
	}
	ignored := make(map[string]bool, len(props))
	for _, p := range props {
		ignored[strings.ToLower(p)] = true
	}
	return ignored, nil
}

// check reports every declaration in one block whose property was already
// declared earlier in the same block. Custom properties are compared
// case-sensitively, standard ones case-insensitively.
func check(nodes []*stylesheet.Node, ignored map[string]bool, res *lint.Result) {
	seen := make(map[string]bool)
	for _, n := range nodes {
		if n.Kind != stylesheet.DeclNode {
			continue
		}
		key := n.Prop
		if !strings.HasPrefix(key, "--") {
			key = strings.ToLower(key)
		}
		if ignored[strings.ToLower(key)] {
			continue
		}
		if seen[key] {
			res.Report(Name, n.Start, fmt.Sprintf("Unexpected duplicate %q", n.Prop))
			continue
		}
		seen[key] = true
	}
}

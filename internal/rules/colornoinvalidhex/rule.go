package colornoinvalidhex

import (
	"fmt"
	"regexp"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/rules/valuescan"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Name is the rule's configuration key.
const Name = "color-no-invalid-hex"

func init() {
	rule.Register(Name, New)
}

var (
	hashRe     = regexp.MustCompile(`#[\w-]+`)
	validHexRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// New returns the check. The rule takes no options.
func New(_, _ any) rule.Check {
	return Check
}

// Check reports hex colors in declaration values that are not 3, 4, 6 or
// 8 hex digits long. Strings and url() arguments are skipped.
func Check(f *lint.File, res *lint.Result) error {
	return f.Root.WalkKind(stylesheet.DeclNode, func(n *stylesheet.Node) error {
		masked := valuescan.Mask(n.RawValue)
		for _, loc := range hashRe.FindAllStringIndex(masked, -1) {
			hex := masked[loc[0]:loc[1]]
			if validHexRe.MatchString(hex) {
				continue
			}
			pos := f.Root.Position(n.ValueStart.Offset + loc[0])
			res.Report(Name, pos, fmt.Sprintf("Unexpected invalid hex color %q", hex))
		}
		return nil
	})
}

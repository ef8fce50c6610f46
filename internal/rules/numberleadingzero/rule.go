package numberleadingzero

import (
	"fmt"
	"regexp"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/rules/valuescan"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Name is the rule's configuration key.
const Name = "number-leading-zero"

// Primary option values.
const (
	Always = "always"
	Never  = "never"
)

func init() {
	rule.Register(Name, New)
}

var (
	// missingZeroRe finds fractions written without an integer part.
	missingZeroRe = regexp.MustCompile(`(?:^|[^\w.])(\.\d)`)
	// leadingZeroRe finds fractions whose integer part is a lone zero.
	leadingZeroRe = regexp.MustCompile(`(?:^|[^\w.])(0+\.\d)`)
)

// New binds "always" or "never" (primary).
func New(primary, _ any) rule.Check {
	mode, _ := primary.(string)
	return func(f *lint.File, res *lint.Result) error {
		var re *regexp.Regexp
		var msg string
		switch mode {
		case Always:
			re, msg = missingZeroRe, "Expected a leading zero"
		case Never:
			re, msg = leadingZeroRe, "Unexpected leading zero"
		default:
			res.InvalidOption(Name, fmt.Sprintf("expected %q or %q, got %v", Always, Never, primary))
			return nil
		}

		return f.Root.WalkKind(stylesheet.DeclNode, func(n *stylesheet.Node) error {
			masked := valuescan.Mask(n.RawValue)
			for _, m := range re.FindAllStringSubmatchIndex(masked, -1) {
				pos := f.Root.Position(n.ValueStart.Offset + m[2])
				res.Report(Name, pos, msg)
			}
			return nil
		})
	}
}

package maxlinelength

import (
	"fmt"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Name is the rule's configuration key.
const Name = "max-line-length"

// Values accepted in the secondary option's ignore list.
const (
	IgnoreComments = "comments"
	IgnoreURLs     = "urls"
)

func init() {
	rule.Register(Name, New)
}

// urlRe matches a url() reference or a bare absolute URL.
var urlRe = regexp.MustCompile(`(?i)url\(|https?://`)

type options struct {
	max      int
	comments bool
	urls     bool
}

func parseOptions(primary, secondary any) (options, error) {
	var o options
	n, ok := rule.AsInt(primary)
	if !ok || n <= 0 {
		return o, fmt.Errorf("expected a positive integer, got %v", primary)
	}
	o.max = n

	sec, err := rule.AsMap(secondary)
	if err != nil {
		return o, err
	}
	ignore, err := rule.GetStringSliceOption(sec, "ignore", nil)
	if err != nil {
		return o, err
	}
	for _, v := range ignore {
		switch v {
		case IgnoreComments:
			o.comments = true
		case IgnoreURLs:
			o.urls = true
		default:
			return o, fmt.Errorf("invalid ignore value %q (valid: %s, %s)", v, IgnoreComments, IgnoreURLs)
		}
	}
	return o, nil
}

// New binds the maximum length (primary) and the ignore list (secondary).
func New(primary, secondary any) rule.Check {
	o, optErr := parseOptions(primary, secondary)
	return func(f *lint.File, res *lint.Result) error {
		if optErr != nil {
			res.InvalidOption(Name, optErr.Error())
			return nil
		}

		var commentLines []int
		if o.comments {
			commentLines = commentOnlyLines(f)
		}

		for i, line := range f.Lines {
			if utf8.RuneCount(line) <= o.max {
				continue
			}
			lineNum := i + 1
			if o.urls && urlRe.Match(line) {
				continue
			}
			if o.comments && slices.Contains(commentLines, lineNum) {
				continue
			}
			res.Report(Name, lint.Position{Line: lineNum, Column: o.max + 1},
				fmt.Sprintf("Expected line length to be no more than %d characters", o.max))
		}
		return nil
	}
}

// commentOnlyLines returns the lines covered entirely by comments: every
// line a comment spans, except a first line with code before the comment.
func commentOnlyLines(f *lint.File) []int {
	var lines []int
	_ = f.Root.WalkKind(stylesheet.CommentNode, func(n *stylesheet.Node) error {
		from := n.Start.Line
		if from-1 < len(f.Lines) {
			before := f.Lines[from-1][:n.Start.Column-1]
			if len(trimSpace(before)) > 0 {
				from++
			}
		}
		for l := from; l <= n.End.Line; l++ {
			lines = append(lines, l)
		}
		return nil
	})
	return lines
}

func trimSpace(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	return b
}

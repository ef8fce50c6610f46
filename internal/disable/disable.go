// Package disable computes the regions of a stylesheet in which rules are
// switched off by comment directives:
//
//	/* tidystyle-disable */                      every rule until enabled
//	/* tidystyle-disable a, b */                 the listed rules until enabled
//	/* tidystyle-enable [a, b] */                closes open regions
//	/* tidystyle-disable-line [a, b] */          the comment's own line
//	/* tidystyle-disable-next-line [a, b] */     the line after the comment
//
// Anything after " -- " in a directive is a free-form description.
package disable

import (
	"fmt"
	"math"
	"strings"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Prefix starts every directive.
const Prefix = "tidystyle-"

type command int

const (
	cmdDisable command = iota
	cmdEnable
	cmdDisableLine
	cmdDisableNextLine
)

// Longest first, so "disable" does not swallow "disable-line".
var commands = []struct {
	word string
	cmd  command
}{
	{Prefix + "disable-next-line", cmdDisableNextLine},
	{Prefix + "disable-line", cmdDisableLine},
	{Prefix + "disable", cmdDisable},
	{Prefix + "enable", cmdEnable},
}

// Error reports a directive that contradicts the current state.
type Error struct {
	Pos     lint.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

type tracker struct {
	ranges []lint.DisableRange
	open   map[string]int // rule -> index into ranges
}

// Compute scans the comments of root and returns the disable ranges they
// declare, in the order they were opened. Ranges still open at the end of
// the file have a nil End.
func Compute(root *stylesheet.Root) ([]lint.DisableRange, error) {
	t := &tracker{open: make(map[string]int)}
	err := root.WalkKind(stylesheet.CommentNode, func(n *stylesheet.Node) error {
		cmd, rules, ok := parseDirective(n.Text)
		if !ok {
			return nil
		}
		return t.apply(cmd, rules, n)
	})
	if err != nil {
		return nil, err
	}
	return t.ranges, nil
}

func parseDirective(text string) (command, []string, bool) {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, " -- "); i >= 0 {
		text = text[:i]
	}
	for _, c := range commands {
		rest, found := strings.CutPrefix(text, c.word)
		if !found {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\n' {
			return 0, nil, false
		}
		var rules []string
		for _, r := range strings.Split(rest, ",") {
			if r = strings.TrimSpace(r); r != "" {
				rules = append(rules, r)
			}
		}
		return c.cmd, rules, true
	}
	return 0, nil, false
}

func (t *tracker) apply(cmd command, rules []string, n *stylesheet.Node) error {
	scope := rules
	if len(scope) == 0 {
		scope = []string{lint.AllRules}
	}

	switch cmd {
	case cmdDisableLine:
		t.lines(scope, n.Start.Line, n.End.Line)
	case cmdDisableNextLine:
		t.lines(scope, n.End.Line+1, n.End.Line+1)
	case cmdDisable:
		for _, r := range scope {
			if _, ok := t.open[r]; ok {
				return &Error{Pos: n.Start, Message: alreadyDisabled(r)}
			}
			if _, ok := t.open[lint.AllRules]; ok && r != lint.AllRules {
				return &Error{Pos: n.Start, Message: fmt.Sprintf("%q is already disabled by a disable-all directive", r)}
			}
		}
		for _, r := range scope {
			t.open[r] = len(t.ranges)
			t.ranges = append(t.ranges, lint.DisableRange{Rule: r, Start: n.Start})
		}
	case cmdEnable:
		if len(rules) == 0 {
			if len(t.open) == 0 {
				return &Error{Pos: n.Start, Message: "no rules are disabled"}
			}
			for r := range t.open {
				t.close(r, n.Start)
			}
			return nil
		}
		for _, r := range rules {
			if _, ok := t.open[r]; ok {
				continue
			}
			if _, ok := t.open[lint.AllRules]; ok {
				return &Error{Pos: n.Start, Message: fmt.Sprintf(
					"cannot enable %q inside a disable-all region; use %senable first", r, Prefix)}
			}
			return &Error{Pos: n.Start, Message: fmt.Sprintf("%q is not disabled", r)}
		}
		for _, r := range rules {
			t.close(r, n.Start)
		}
	}
	return nil
}

func (t *tracker) lines(scope []string, from, to int) {
	end := lint.Position{Line: to, Column: math.MaxInt}
	for _, r := range scope {
		e := end
		t.ranges = append(t.ranges, lint.DisableRange{
			Rule:  r,
			Start: lint.Position{Line: from, Column: 1},
			End:   &e,
		})
	}
}

func (t *tracker) close(rule string, at lint.Position) {
	i := t.open[rule]
	end := at
	t.ranges[i].End = &end
	delete(t.open, rule)
}

func alreadyDisabled(rule string) string {
	if rule == lint.AllRules {
		return "all rules are already disabled"
	}
	return fmt.Sprintf("%q is already disabled", rule)
}

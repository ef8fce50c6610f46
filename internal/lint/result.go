package lint

import (
	"fmt"

	"github.com/jeduden/tidystyle/internal/stylesheet"
)

// Position is a location in the linted source.
type Position = stylesheet.Position

// AllRules is the rule scope of a disable range that covers every rule.
const AllRules = "*"

// DisableRange is a region in which diagnostics for Rule are suppressed.
// A nil End leaves the range open until the end of the file.
type DisableRange struct {
	Rule  string
	Start Position
	End   *Position
}

// Covers reports whether a diagnostic for rule at pos falls inside d.
func (d DisableRange) Covers(rule string, pos Position) bool {
	if d.Rule != AllRules && d.Rule != rule {
		return false
	}
	if pos.Before(d.Start) {
		return false
	}
	return d.End == nil || !d.End.Before(pos)
}

// Result is the state of one lint of one file. It is created by the
// engine, handed to every rule check of that lint and discarded with it.
type Result struct {
	File string

	// RuleSeverities records every rule that ran and its severity.
	RuleSeverities map[string]Severity

	// Quiet drops warning-level diagnostics at report time.
	Quiet bool

	DisableRanges  []DisableRange
	Diagnostics    []Diagnostic
	InvalidOptions []Diagnostic

	// Suppressed counts diagnostics dropped by disable ranges.
	Suppressed int
}

// NewResult returns an empty Result for the named file.
func NewResult(file string) *Result {
	return &Result{
		File:           file,
		RuleSeverities: make(map[string]Severity),
	}
}

// Report records a diagnostic for rule at pos, tagged with the rule's
// recorded severity. Nothing is recorded when the rule is off, when pos is
// inside a disable range for the rule, or when Quiet is set and the rule
// is only a warning.
func (r *Result) Report(rule string, pos Position, message string) {
	sev := r.RuleSeverities[rule]
	if sev == Off {
		return
	}
	if r.Quiet && sev < Error {
		return
	}
	if pos.Line < 1 {
		pos.Line = 1
	}
	if pos.Column < 1 {
		pos.Column = 1
	}
	if r.Disabled(rule, pos) {
		r.Suppressed++
		return
	}
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		File:     r.File,
		Line:     pos.Line,
		Column:   pos.Column,
		Rule:     rule,
		Severity: sev,
		Message:  message,
	})
}

// Reportf is Report with a formatted message.
func (r *Result) Reportf(rule string, pos Position, format string, args ...any) {
	r.Report(rule, pos, fmt.Sprintf(format, args...))
}

// Disabled reports whether any disable range covers rule at pos.
func (r *Result) Disabled(rule string, pos Position) bool {
	for _, d := range r.DisableRanges {
		if d.Covers(rule, pos) {
			return true
		}
	}
	return false
}

// InvalidOption records a rule option problem. Rules call it while binding
// their options and then skip their check.
func (r *Result) InvalidOption(rule, message string) {
	r.InvalidOptions = append(r.InvalidOptions, Diagnostic{
		File:     r.File,
		Line:     1,
		Column:   1,
		Rule:     rule,
		Severity: Error,
		Message:  fmt.Sprintf("Invalid option for %q: %s", rule, message),
	})
}

// Package rule defines the rule contract and the registry of rule
// implementations.
package rule

import "github.com/jeduden/tidystyle/internal/lint"

// Check inspects a parsed file and reports findings through res. A
// returned error aborts the lint.
type Check func(f *lint.File, res *lint.Result) error

// Func binds a rule's options and returns its check. It is called once per
// configured rule per lint. Invalid options are reported with
// res.InvalidOption from inside the returned check.
type Func func(primary, secondary any) Check

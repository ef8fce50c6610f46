// Package output renders diagnostics for the command line.
package output

import (
	"fmt"
	"io"

	"github.com/jeduden/tidystyle/internal/lint"
)

// Formatter defines the interface for outputting diagnostics.
type Formatter interface {
	Format(w io.Writer, diagnostics []lint.Diagnostic) error
}

// Formats lists the names accepted by New.
var Formats = []string{"text", "json", "table"}

// New returns the formatter registered under name. color only affects
// the text formatter.
func New(name string, color bool) (Formatter, error) {
	switch name {
	case "", "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "table":
		return &TableFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of text, json, table)", name)
	}
}

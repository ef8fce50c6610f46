package lint

import (
	"fmt"
	"math"
)

// Severity indicates the severity level of a rule and its diagnostics.
// Off is terminal: a rule at Off never runs and never reports.
type Severity int

// Severity levels.
const (
	Off Severity = iota
	Warning
	Error
)

// String returns the configuration spelling of s.
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSeverity converts a configuration value (0, 1, 2, "off", "warning"
// or "error") to a Severity. YAML and JSON decoders may hand numbers over
// as int, int64 or float64.
func ParseSeverity(v any) (Severity, bool) {
	switch x := v.(type) {
	case int:
		return severityFromInt(int64(x))
	case int64:
		return severityFromInt(x)
	case uint64:
		if x > math.MaxInt64 {
			return Off, false
		}
		return severityFromInt(int64(x))
	case float64:
		if x != math.Trunc(x) {
			return Off, false
		}
		return severityFromInt(int64(x))
	case string:
		switch x {
		case "off":
			return Off, true
		case "warning":
			return Warning, true
		case "error":
			return Error, true
		}
	}
	return Off, false
}

func severityFromInt(n int64) (Severity, bool) {
	if n < int64(Off) || n > int64(Error) {
		return Off, false
	}
	return Severity(n), true
}

// Diagnostic represents a single lint finding.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Rule     string
	Severity Severity
	Message  string
}

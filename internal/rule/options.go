package rule

import (
	"fmt"
	"math"
)

// AsMap returns opt as a string-keyed mapping. A nil opt yields an empty
// mapping.
func AsMap(opt any) (map[string]any, error) {
	switch m := opt.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return m, nil
	}
	return nil, fmt.Errorf("expected a mapping, got %T", opt)
}

// AsInt accepts the numeric shapes YAML and JSON decoders produce.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

// GetIntOption extracts an int option, handling float64 from JSON.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if n, ok := AsInt(v); ok {
		return n
	}
	return defaultVal
}

// GetStringSliceOption extracts a string slice option. A single string is
// treated as a one-element slice.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) ([]string, error) {
	v, ok := opts[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch s := v.(type) {
	case string:
		return []string{s}, nil
	case []string:
		return s, nil
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%q: expected strings, got %T", key, item)
			}
			out = append(out, str)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%q: expected a string or list of strings, got %T", key, v)
}

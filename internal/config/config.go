// Package config loads, resolves and decodes linter configuration.
//
// Configuration is kept as an ordered Value until it has been fully
// resolved, so that rule order survives inheritance and overrides.
package config

import (
	"fmt"

	"github.com/jeduden/tidystyle/internal/lint"
)

// Configuration keys.
const (
	KeyRules         = "rules"
	KeyExtends       = "extends"
	KeyPlugins       = "plugins"
	KeyQuiet         = "quiet"
	KeyConfigBasedir = "configBasedir"
	KeyIgnoreFiles   = "ignoreFiles"
)

// Config is a resolved configuration.
type Config struct {
	// Rules maps rule names to raw settings, in dispatch order.
	Rules         *Map
	Plugins       []Plugin
	Quiet         bool
	ConfigBasedir string
	IgnoreFiles   []string
}

// Plugin names a rule whose implementation is loaded from Lookup.
type Plugin struct {
	Rule   string
	Lookup string
}

// Decode converts a resolved Value to a Config. Rule settings are left raw
// and normalized by ParseRuleSetting when the rule is dispatched.
func Decode(v Value) (*Config, error) {
	if v.IsEmpty() {
		return nil, Errorf("No configuration provided")
	}
	if v.Kind != KindMapping {
		return nil, Errorf("configuration must be a mapping, got %s", v.Kind)
	}
	if _, ok := v.Get(KeyExtends); ok {
		return nil, Errorf("configuration still has %q; resolve it first", KeyExtends)
	}

	rules, ok := v.Get(KeyRules)
	if !ok || rules.Kind == KindNull {
		return nil, Errorf("No rules found within configuration")
	}
	if rules.Kind != KindMapping {
		return nil, Errorf("%q must be a mapping of rule names to settings", KeyRules)
	}

	cfg := &Config{Rules: rules.Map.Clone()}

	if p, ok := v.Get(KeyPlugins); ok && p.Kind != KindNull {
		plugins, err := decodePlugins(p)
		if err != nil {
			return nil, err
		}
		cfg.Plugins = plugins
	}

	if q, ok := v.Get(KeyQuiet); ok && q.Kind != KindNull {
		b, ok := q.Scalar.(bool)
		if q.Kind != KindScalar || !ok {
			return nil, Errorf("%q must be a boolean", KeyQuiet)
		}
		cfg.Quiet = b
	}

	if d, ok := v.Get(KeyConfigBasedir); ok && d.Kind != KindNull {
		s, ok := d.Scalar.(string)
		if d.Kind != KindScalar || !ok {
			return nil, Errorf("%q must be a string", KeyConfigBasedir)
		}
		cfg.ConfigBasedir = s
	}

	if ig, ok := v.Get(KeyIgnoreFiles); ok && ig.Kind != KindNull {
		patterns, err := stringList(KeyIgnoreFiles, ig)
		if err != nil {
			return nil, err
		}
		cfg.IgnoreFiles = patterns
	}

	return cfg, nil
}

func decodePlugins(v Value) ([]Plugin, error) {
	if v.Kind != KindMapping {
		return nil, Errorf("%q must be a mapping of rule names to module lookups", KeyPlugins)
	}
	plugins := make([]Plugin, 0, v.Map.Len())
	for _, name := range v.Map.Keys() {
		lv, _ := v.Map.Get(name)
		lookup, ok := lv.Scalar.(string)
		if lv.Kind != KindScalar || !ok || lookup == "" {
			return nil, Errorf("plugin %q must name a module lookup string", name)
		}
		plugins = append(plugins, Plugin{Rule: name, Lookup: lookup})
	}
	return plugins, nil
}

// stringList accepts a single string or a sequence of strings.
func stringList(key string, v Value) ([]string, error) {
	if s, ok := v.Scalar.(string); v.Kind == KindScalar && ok {
		return []string{s}, nil
	}
	if v.Kind != KindSequence {
		return nil, Errorf("%q must be a string or a list of strings", key)
	}
	out := make([]string, 0, len(v.Items))
	for i, it := range v.Items {
		s, ok := it.Scalar.(string)
		if it.Kind != KindScalar || !ok {
			return nil, Errorf("%q entry %d must be a string", key, i)
		}
		out = append(out, s)
	}
	return out, nil
}

// RuleSetting is a normalized rule entry.
type RuleSetting struct {
	Severity  lint.Severity
	Primary   any
	Secondary any
}

// ParseRuleSetting normalizes a bare severity or a sequence of
// (severity, primary option, secondary option).
func ParseRuleSetting(name string, v Value) (RuleSetting, error) {
	var rs RuleSetting
	sev := v
	if v.Kind == KindSequence {
		if len(v.Items) == 0 {
			return rs, Errorf("Invalid setting for rule %q: empty list", name)
		}
		if len(v.Items) > 3 {
			return rs, Errorf("Invalid setting for rule %q: expected at most 3 entries, got %d", name, len(v.Items))
		}
		sev = v.Items[0]
		if len(v.Items) > 1 {
			rs.Primary = v.Items[1].Interface()
		}
		if len(v.Items) > 2 {
			rs.Secondary = v.Items[2].Interface()
		}
	}
	s, ok := lint.ParseSeverity(sev.Interface())
	if !ok {
		return rs, Errorf("Invalid severity %s for rule %q; expected 0, 1, 2, \"off\", \"warning\" or \"error\"",
			describe(sev), name)
	}
	rs.Severity = s
	return rs, nil
}

func describe(v Value) string {
	switch v.Kind {
	case KindScalar:
		if s, ok := v.Scalar.(string); ok {
			return fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("%v", v.Scalar)
	default:
		return v.Kind.String()
	}
}

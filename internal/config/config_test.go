package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/lint"
)

func TestDecode(t *testing.T) {
	v := mustParse(t, `
rules:
  max-line-length: [warning, 100]
  block-no-empty: error
plugins:
  no-red: ./plugins/no-red.star
quiet: true
configBasedir: /srv/styles
ignoreFiles: vendor/**
`)
	cfg, err := Decode(v)
	require.NoError(t, err)

	t.Run("rules", func(t *testing.T) {
		assert.Equal(t, []string{"max-line-length", "block-no-empty"}, cfg.Rules.Keys())
	})

	t.Run("plugins", func(t *testing.T) {
		assert.Equal(t, []Plugin{{Rule: "no-red", Lookup: "./plugins/no-red.star"}}, cfg.Plugins)
	})

	t.Run("scalars", func(t *testing.T) {
		assert.True(t, cfg.Quiet)
		assert.Equal(t, "/srv/styles", cfg.ConfigBasedir)
		assert.Equal(t, []string{"vendor/**"}, cfg.IgnoreFiles)
	})
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "No configuration provided"},
		{"no rules", "quiet: true\n", "No rules found within configuration"},
		{"null rules", "rules:\n", "No rules found within configuration"},
		{"rules not mapping", "rules: [a]\n", `"rules" must be a mapping`},
		{"unresolved extends", "extends: ./a\nrules: {}\n", "resolve it first"},
		{"bad plugin", "rules: {}\nplugins:\n  a: 1\n", `plugin "a"`},
		{"bad quiet", "rules: {}\nquiet: yes please\n", `"quiet" must be a boolean`},
		{"bad ignoreFiles", "rules: {}\nignoreFiles: [1]\n", `"ignoreFiles" entry 0`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(mustParse(t, tt.src))
			require.True(t, IsConfigurationError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_Null(t *testing.T) {
	_, err := Decode(Null())
	assert.EqualError(t, err, "No configuration provided")
}

func TestParseRuleSetting(t *testing.T) {
	tests := []struct {
		src  string
		want RuleSetting
	}{
		{"error", RuleSetting{Severity: lint.Error}},
		{"0", RuleSetting{Severity: lint.Off}},
		{"[warning]", RuleSetting{Severity: lint.Warning}},
		{"[2, 80]", RuleSetting{Severity: lint.Error, Primary: 80}},
		{"[1, never, {ignore: [urls]}]", RuleSetting{
			Severity:  lint.Warning,
			Primary:   "never",
			Secondary: map[string]any{"ignore": []any{"urls"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			x, _ := mustParse(t, "x: "+tt.src+"\n").Get("x")
			got, err := ParseRuleSetting("r", x)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRuleSetting_Invalid(t *testing.T) {
	for _, src := range []string{"3", "warn", "[]", "[error, 1, 2, 3]", "{a: 1}", "null", "[[1]]"} {
		t.Run(src, func(t *testing.T) {
			x, _ := mustParse(t, "x: "+src+"\n").Get("x")
			_, err := ParseRuleSetting("r", x)
			assert.True(t, IsConfigurationError(err), "got %v", err)
		})
	}
}

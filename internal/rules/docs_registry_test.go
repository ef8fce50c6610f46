package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/engine"
	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
	"github.com/jeduden/tidystyle/internal/rules"

	_ "github.com/jeduden/tidystyle/internal/rules/all"
)

// Every documented rule must be registered and every registered rule
// documented.
func TestDocsMatchRegistry(t *testing.T) {
	docs, err := rules.ListRules()
	require.NoError(t, err)

	documented := map[string]bool{}
	for _, d := range docs {
		documented[d.Name] = true
		_, ok := rule.Builtins().Lookup(d.Name)
		assert.True(t, ok, "rule %q has a README but is not registered", d.Name)
	}
	for _, name := range rule.Builtins().SortedNames() {
		assert.True(t, documented[name], "rule %q is registered but has no README", name)
	}
}

// The generated starter config must validate and lint a clean stylesheet
// without invalid options or diagnostics.
func TestDefaultsLintCleanly(t *testing.T) {
	defaults, err := rules.Defaults()
	require.NoError(t, err)
	cfg, err := config.DumpDefaults(defaults)
	require.NoError(t, err)
	require.NoError(t, config.Validate(cfg))

	f, err := lint.NewFile("clean.css", []byte("a {\n  color: #fff; /* brand */\n  margin: 0.5em 0;\n}\n"))
	require.NoError(t, err)
	res, err := engine.Lint(engine.Options{Config: cfg}, f)
	require.NoError(t, err)

	assert.Empty(t, res.InvalidOptions)
	assert.Empty(t, res.Diagnostics)
	assert.Len(t, res.RuleSeverities, len(defaults))
}

package nohardtabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/lint"
)

func run(t *testing.T, src string) *lint.Result {
	t.Helper()
	f, err := lint.NewFile("test.css", []byte(src))
	require.NoError(t, err)
	res := lint.NewResult(f.Path)
	res.RuleSeverities[Name] = lint.Error
	require.NoError(t, New(nil, nil)(f, res))
	return res
}

func TestCheck_TabPresent(t *testing.T) {
	res := run(t, "a {\n  col\tor: red;\n}\n")
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 6, d.Column)
	assert.Equal(t, Name, d.Rule)
}

func TestCheck_OnePerLine(t *testing.T) {
	res := run(t, "a {\n\tcolor:\tred;\n\ttop: 0;\n}\n")
	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, 1, res.Diagnostics[0].Column)
}

func TestCheck_NoTabs(t *testing.T) {
	assert.Empty(t, run(t, "a {\n  color: red;\n}\n").Diagnostics)
}

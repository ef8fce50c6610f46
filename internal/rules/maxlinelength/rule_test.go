package maxlinelength

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/lint"
)

func run(t *testing.T, src string, primary, secondary any) *lint.Result {
	t.Helper()
	f, err := lint.NewFile("test.css", []byte(src))
	require.NoError(t, err)
	res := lint.NewResult(f.Path)
	res.RuleSeverities[Name] = lint.Error
	require.NoError(t, New(primary, secondary)(f, res))
	return res
}

func TestCheck_LongLine(t *testing.T) {
	long := "a { content: \"" + strings.Repeat("x", 30) + "\"; }\n"
	res := run(t, long+"b {}\n", 20, nil)
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, 1, d.Line)
	assert.Equal(t, 21, d.Column)
	assert.Equal(t, "Expected line length to be no more than 20 characters", d.Message)
}

func TestCheck_CountsRunes(t *testing.T) {
	res := run(t, "a { content: \"äöü\"; }\n", 21, nil)
	assert.Empty(t, res.Diagnostics, "a 21-rune line fits")
}

func TestCheck_IgnoreURLs(t *testing.T) {
	src := "a { background: url(" + strings.Repeat("x", 40) + ".png); }\n"
	assert.Len(t, run(t, src, 20, nil).Diagnostics, 1)
	assert.Empty(t, run(t, src, 20, map[string]any{"ignore": []any{"urls"}}).Diagnostics)
}

func TestCheck_IgnoreComments(t *testing.T) {
	comment := "/* " + strings.Repeat("long comment ", 4) + "*/\n"
	trailing := "a { top: 0; } /* " + strings.Repeat("x", 30) + " */\n"
	res := run(t, comment+trailing, 20, map[string]any{"ignore": "comments"})
	require.Len(t, res.Diagnostics, 1, "only the code line")
	assert.Equal(t, 2, res.Diagnostics[0].Line)
}

func TestCheck_InvalidOptions(t *testing.T) {
	tests := []struct {
		name      string
		primary   any
		secondary any
	}{
		{"missing", nil, nil},
		{"zero", 0, nil},
		{"string", "80", nil},
		{"bad ignore", 80, map[string]any{"ignore": []any{"selectors"}}},
		{"secondary not mapping", 80, "urls"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, strings.Repeat("x", 200)+" {}\n", tt.primary, tt.secondary)
			assert.Len(t, res.InvalidOptions, 1)
			assert.Empty(t, res.Diagnostics, "rule does not run with invalid options")
		})
	}
}

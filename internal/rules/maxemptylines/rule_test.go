package maxemptylines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/lint"
)

func run(t *testing.T, src string, primary any) *lint.Result {
	t.Helper()
	f, err := lint.NewFile("test.css", []byte(src))
	require.NoError(t, err)
	res := lint.NewResult(f.Path)
	res.RuleSeverities[Name] = lint.Error
	require.NoError(t, New(primary, nil)(f, res))
	return res
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		max   any
		lines []int
	}{
		{"within limit", "a {}\n\nb {}\n", 1, nil},
		{"one run too long", "a {}\n\n\n\nb {}\n", 1, []int{3}},
		{"two runs", "a {}\n\n\nb {}\n\n\nc {}\n", 1, []int{3, 6}},
		{"zero allowed", "a {}\n\nb {}\n", 0, []int{2}},
		{"whitespace lines count", "a {}\n  \n\t\nb {}\n", 1, []int{3}},
		{"trailing newline only", "a {}\n", 0, nil},
		{"float from json", "a {}\n\n\nb {}\n", float64(2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, tt.src, tt.max)
			var got []int
			for _, d := range res.Diagnostics {
				got = append(got, d.Line)
			}
			assert.Equal(t, tt.lines, got)
		})
	}
}

func TestCheck_InvalidOption(t *testing.T) {
	for _, primary := range []any{nil, -1, "two"} {
		res := run(t, "a {}\n\n\n\nb {}\n", primary)
		assert.Len(t, res.InvalidOptions, 1, "primary %v", primary)
		assert.Empty(t, res.Diagnostics, "primary %v", primary)
	}
}

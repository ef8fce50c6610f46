package nomissingeofnewline

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

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{"with newline", "a {}\n", 0},
		{"empty", "", 0},
		{"missing", "a {}\nb {}", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, run(t, tt.src).Diagnostics, tt.want)
		})
	}
}

func TestCheck_Position(t *testing.T) {
	res := run(t, "a {}\nb {}")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 2, res.Diagnostics[0].Line)
	assert.Equal(t, 5, res.Diagnostics[0].Column)
}

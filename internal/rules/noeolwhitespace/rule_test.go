package noeolwhitespace

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

func TestCheck_TrailingSpaces(t *testing.T) {
	res := run(t, "a {  \n  color: red;\t\n}\n")
	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, [2]int{1, 4}, [2]int{res.Diagnostics[0].Line, res.Diagnostics[0].Column})
	assert.Equal(t, [2]int{2, 14}, [2]int{res.Diagnostics[1].Line, res.Diagnostics[1].Column})
}

func TestCheck_WhitespaceOnlyLine(t *testing.T) {
	res := run(t, "a {}\n   \nb {}\n")
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 1, res.Diagnostics[0].Column)
}

func TestCheck_CRLFIsNotTrailingWhitespace(t *testing.T) {
	assert.Empty(t, run(t, "a {}\r\nb {}\r\n").Diagnostics)
}

package disable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/stylesheet"
)

func compute(t *testing.T, src string) ([]lint.DisableRange, error) {
	t.Helper()
	root, err := stylesheet.Parse([]byte(src))
	require.NoError(t, err)
	return Compute(root)
}

func TestCompute_NoDirectives(t *testing.T) {
	ranges, err := compute(t, "/* plain comment */\na { color: red; }\n")
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestCompute_DisableEnable(t *testing.T) {
	src := "a {}\n/* tidystyle-disable block-no-empty, max-line-length */\nb {}\n/* tidystyle-enable block-no-empty */\nc {}\n"
	ranges, err := compute(t, src)
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	assert.Equal(t, "block-no-empty", ranges[0].Rule)
	assert.Equal(t, 2, ranges[0].Start.Line)
	require.NotNil(t, ranges[0].End)
	assert.Equal(t, 4, ranges[0].End.Line)

	assert.Equal(t, "max-line-length", ranges[1].Rule)
	assert.Nil(t, ranges[1].End, "range without enable stays open")
}

func TestCompute_DisableAll(t *testing.T) {
	ranges, err := compute(t, "/* tidystyle-disable */\na {}\n/* tidystyle-enable */\n")
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, lint.AllRules, ranges[0].Rule)
	assert.Equal(t, 3, ranges[0].End.Line)
}

func TestCompute_DisableLine(t *testing.T) {
	ranges, err := compute(t, "a { color: red; } /* tidystyle-disable-line block-no-empty */\n")
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	r := ranges[0]
	assert.Equal(t, lint.Position{Line: 1, Column: 1}, r.Start)
	assert.Equal(t, lint.Position{Line: 1, Column: math.MaxInt}, *r.End)
	assert.True(t, r.Covers("block-no-empty", lint.Position{Line: 1, Column: 3}))
	assert.False(t, r.Covers("block-no-empty", lint.Position{Line: 2, Column: 1}))
}

func TestCompute_DisableNextLine(t *testing.T) {
	ranges, err := compute(t, "/* tidystyle-disable-next-line -- legacy selector */\na {}\nb {}\n")
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	r := ranges[0]
	assert.Equal(t, lint.AllRules, r.Rule)
	assert.True(t, r.Covers("anything", lint.Position{Line: 2, Column: 1}))
	assert.False(t, r.Covers("anything", lint.Position{Line: 1, Column: 1}))
	assert.False(t, r.Covers("anything", lint.Position{Line: 3, Column: 1}))
}

func TestCompute_IgnoresLookalikes(t *testing.T) {
	ranges, err := compute(t, "/* tidystyle-disabled */\n/* not tidystyle-disable */\n")
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"enable without disable", "/* tidystyle-enable a */\n", 1},
		{"enable all without disable", "/* tidystyle-enable */\n", 1},
		{"double disable", "/* tidystyle-disable a */\n/* tidystyle-disable a */\n", 2},
		{"double disable all", "/* tidystyle-disable */\n/* tidystyle-disable */\n", 2},
		{"rule inside disable all", "/* tidystyle-disable */\n/* tidystyle-disable a */\n", 2},
		{"enable one inside disable all", "/* tidystyle-disable */\n/* tidystyle-enable a */\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compute(t, tt.src)
			var de *Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.line, de.Pos.Line)
		})
	}
}

func TestCompute_NestedComments(t *testing.T) {
	src := "@media print {\n  /* tidystyle-disable color-no-invalid-hex */\n  a { color: #ggg; }\n}\n"
	ranges, err := compute(t, src)
	require.NoError(t, err)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2, ranges[0].Start.Line)
	assert.Equal(t, 3, ranges[0].Start.Column)
}

func TestCompute_DirectiveInsideDeclaration(t *testing.T) {
	src := "a {\n  color: #ggg /* tidystyle-disable-line color-no-invalid-hex */\n}\nb {\n  top: 0 /* tidystyle-disable-next-line */;\n  left: 0;\n}\n"
	ranges, err := compute(t, src)
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	assert.Equal(t, "color-no-invalid-hex", ranges[0].Rule)
	assert.True(t, ranges[0].Covers("color-no-invalid-hex", lint.Position{Line: 2, Column: 10}))

	assert.Equal(t, lint.AllRules, ranges[1].Rule)
	assert.True(t, ranges[1].Covers("any-rule", lint.Position{Line: 6, Column: 3}))
}

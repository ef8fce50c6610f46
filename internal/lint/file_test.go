package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeduden/tidystyle/internal/stylesheet"
)

func TestNewFile_EmptyContent(t *testing.T) {
	f, err := NewFile("empty.css", []byte(""))
	require.NoError(t, err)
	require.NotNil(t, f.Root)
	assert.Empty(t, f.Root.Nodes)
	assert.Equal(t, "empty.css", f.Path)
}

func TestNewFile_Lines(t *testing.T) {
	f, err := NewFile("a.css", []byte("a {\r\n  color: red;\n}\n"))
	require.NoError(t, err)
	require.Len(t, f.Lines, 4)
	assert.Equal(t, "a {", string(f.Lines[0]), "CR is trimmed")
	assert.Len(t, f.ContentLines(), 3)
	assert.Equal(t, stylesheet.RuleNode, f.Root.Nodes[0].Kind)
}

func TestNewFile_NoTrailingNewline(t *testing.T) {
	f, err := NewFile("a.css", []byte("a {}"))
	require.NoError(t, err)
	assert.Len(t, f.ContentLines(), 1)
}

func TestNewFile_ParseError(t *testing.T) {
	_, err := NewFile("bad.css", []byte("a { color: red;"))
	assert.Error(t, err, "unclosed block")
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatched(t *testing.T) {
	assert.True(t, watched("/p/app.css"))
	assert.True(t, watched("/p/.tidystyle.yml"))
	assert.True(t, watched("/p/.tidystyle.json"))
	assert.False(t, watched("/p/notes.md"))
	assert.False(t, watched("/p/other.yml"))
}

func TestWatchRoots(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "css", "app.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte("a {}\n"), 0o644))

	roots := watchRoots([]string{dir, file, filepath.Join(dir, "css")})
	assert.Equal(t, []string{dir, filepath.Join(dir, "css")}, roots)
}

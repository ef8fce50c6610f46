package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, ".tidystyle.yml"), "rules:\n  block-no-empty: error\n")
	v, err := Load(path)
	require.NoError(t, err)
	rules, _ := v.Get("rules")
	assert.Equal(t, 1, rules.Map.Len())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err, "missing file")

	bad := writeFile(t, filepath.Join(dir, "bad.yml"), "rules: [\n")
	_, err = Load(bad)
	assert.Error(t, err, "invalid YAML")
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0o755))
	cfgPath := writeFile(t, filepath.Join(root, ".tidystyle.json"), "{}")
	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	got, err := Discover(deep)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got)
}

func TestDiscover_PrefersYML(t *testing.T) {
	dir := t.TempDir()
	_ = writeFile(t, filepath.Join(dir, ".tidystyle.json"), "{}")
	yml := writeFile(t, filepath.Join(dir, ".tidystyle.yml"), "rules: {}\n")
	got, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, yml, got)
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	outer := t.TempDir()
	_ = writeFile(t, filepath.Join(outer, ".tidystyle.yml"), "rules: {}\n")
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	got, err := Discover(repo)
	require.NoError(t, err)
	assert.Empty(t, got, "no config beyond the .git boundary")
}

func TestDumpDefaults(t *testing.T) {
	v, err := DumpDefaults(map[string]any{
		"no-hard-tabs":    "error",
		"max-line-length": []any{"warning", 80},
	})
	require.NoError(t, err)
	rules, _ := v.Get("rules")
	assert.Equal(t, []string{"max-line-length", "no-hard-tabs"}, rules.Map.Keys())
	assert.NoError(t, Validate(v))
}

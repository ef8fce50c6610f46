package rules

import (
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRules_SortedByName(t *testing.T) {
	rules, err := ListRules()
	require.NoError(t, err)
	require.NotEmpty(t, rules)

	assert.True(t, sort.SliceIsSorted(rules, func(i, j int) bool {
		return rules[i].Name < rules[j].Name
	}))
}

func TestListRules_ContainsMaxLineLength(t *testing.T) {
	rules, err := ListRules()
	require.NoError(t, err)

	for _, r := range rules {
		if r.Name != "max-line-length" {
			continue
		}
		assert.NotEmpty(t, r.Description)
		seq, ok := r.Default.([]any)
		require.True(t, ok, "default = %#v", r.Default)
		require.Len(t, seq, 3)
		assert.Equal(t, "error", seq[0])
		assert.Equal(t, 80, seq[1])
		return
	}
	t.Error("max-line-length not found in rule list")
}

func TestLookupRule_ByName(t *testing.T) {
	content, err := LookupRule("no-hard-tabs")
	require.NoError(t, err)
	assert.Contains(t, content, "# no-hard-tabs")
}

func TestLookupRule_Unknown(t *testing.T) {
	_, err := LookupRule("not-a-real-rule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule")
}

func TestDefaults(t *testing.T) {
	defaults, err := Defaults()
	require.NoError(t, err)
	assert.Equal(t, "warning", defaults["declaration-no-important"])
}

func TestListRulesFromFS_SkipsMissingFrontMatter(t *testing.T) {
	fsys := fstest.MapFS{
		"good/README.md": &fstest.MapFile{
			Data: []byte("---\nname: good-rule\ndescription: A good rule.\ndefault: error\n---\n# good-rule\n"),
		},
		"bare/README.md": &fstest.MapFile{
			Data: []byte("no front matter here\n"),
		},
		"anonymous/README.md": &fstest.MapFile{
			Data: []byte("---\ndescription: Nameless.\n---\n# ?\n"),
		},
	}

	rules, err := listRulesFromFS(fsys)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "good-rule", rules[0].Name)
	assert.Equal(t, "error", rules[0].Default)
}

func TestListRulesFromFS_BadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"broken/README.md": &fstest.MapFile{
			Data: []byte("---\nname: [unclosed\n---\n# broken\n"),
		},
	}

	_, err := listRulesFromFS(fsys)
	assert.Error(t, err)
}

func TestLookupRuleFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"testrule/README.md": &fstest.MapFile{
			Data: []byte("---\nname: test-rule\ndescription: Test.\n---\n# Content\n"),
		},
	}

	content, err := lookupRuleFromFS(fsys, "test-rule")
	require.NoError(t, err)
	assert.Contains(t, content, "# Content")

	_, err = lookupRuleFromFS(fsys, "other-rule")
	assert.Error(t, err)
}

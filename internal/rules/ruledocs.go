// Package rules holds the built-in rules and their embedded documentation.
package rules

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

//go:embed */README.md
var rulesFS embed.FS

// RuleInfo holds metadata extracted from a rule README's front matter.
type RuleInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Default is the setting written by `tidystyle init`.
	Default any    `yaml:"default"`
	Content string `yaml:"-"`
}

// ListRules returns all embedded rules sorted by name.
func ListRules() ([]RuleInfo, error) {
	return listRulesFromFS(rulesFS)
}

// LookupRule finds a rule by name and returns its full README content.
func LookupRule(name string) (string, error) {
	return lookupRuleFromFS(rulesFS, name)
}

// Defaults maps every documented rule to its default setting.
func Defaults() (map[string]any, error) {
	rules, err := ListRules()
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(rules))
	for _, r := range rules {
		out[r.Name] = r.Default
	}
	return out, nil
}

func listRulesFromFS(fsys fs.FS) ([]RuleInfo, error) {
	paths, err := fs.Glob(fsys, "*/README.md")
	if err != nil {
		return nil, fmt.Errorf("reading rules directory: %w", err)
	}

	var rules []RuleInfo
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		info, ok, err := parseFrontMatter(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if !ok {
			continue
		}
		info.Content = string(data)
		rules = append(rules, info)
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Name < rules[j].Name
	})

	return rules, nil
}

func lookupRuleFromFS(fsys fs.FS, name string) (string, error) {
	rules, err := listRulesFromFS(fsys)
	if err != nil {
		return "", err
	}
	for _, r := range rules {
		if r.Name == name {
			return r.Content, nil
		}
	}
	return "", fmt.Errorf("unknown rule %q", name)
}

// parseFrontMatter decodes the YAML front matter of a README. ok is false
// when the document has no front matter or it carries no name.
func parseFrontMatter(data []byte) (info RuleInfo, ok bool, err error) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(data), parser.WithContext(ctx))

	fm := frontmatter.Get(ctx)
	if fm == nil {
		return RuleInfo{}, false, nil
	}
	if err := fm.Decode(&info); err != nil {
		return RuleInfo{}, false, fmt.Errorf("decoding front matter: %w", err)
	}
	return info, info.Name != "", nil
}

// Package discovery finds stylesheets from command-line arguments and glob
// patterns.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns select stylesheets when a directory is given.
var DefaultPatterns = []string{"**/*.css"}

// skippedDirs are never descended into during a walk.
var skippedDirs = map[string]bool{
	".git":          true,
	"node_modules":  true,
	"style_modules": true,
}

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of glob patterns to match files against.
	// An empty or nil list means no files are discovered.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	if len(opts.Patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	validPatterns := validatePatterns(opts.Patterns)
	if len(validPatterns) == 0 {
		return nil, nil
	}

	w := &walker{
		base:     baseDir,
		patterns: validPatterns,
		seen:     make(map[string]bool),
	}
	if err := filepath.WalkDir(baseDir, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

// ResolveArgs turns positional arguments into a sorted, deduplicated list of
// stylesheet paths. Arguments may be files, directories (walked for *.css)
// or doublestar glob patterns. A named file is taken as is whatever its
// extension; a missing non-glob argument is an error.
func ResolveArgs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, add); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

func resolveArg(arg string, add func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, add)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}
	if info.IsDir() {
		return addDirFiles(arg, add)
	}
	add(arg)
	return nil
}

func resolveGlob(pattern string, add func(string)) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("expanding %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := addDirFiles(m, add); err != nil {
				return err
			}
		} else if IsStylesheet(m) {
			add(m)
		}
	}
	return nil
}

func addDirFiles(dir string, add func(string)) error {
	files, err := Discover(Options{Patterns: DefaultPatterns, BaseDir: dir})
	if err != nil {
		return err
	}
	for _, f := range files {
		add(f)
	}
	return nil
}

// IsStylesheet reports whether path has a .css extension.
func IsStylesheet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".css")
}

func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// walker holds state for the directory walk.
type walker struct {
	base     string
	patterns []string
	seen     map[string]bool
	result   []string
}

func (w *walker) visit(path string, d os.DirEntry, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.base, path)
	if err != nil || rel == "." {
		return nil
	}

	if d.IsDir() {
		if skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		return nil
	}

	if w.matchesAny(filepath.ToSlash(rel)) && !w.seen[path] {
		w.seen[path] = true
		w.result = append(w.result, path)
	}
	return nil
}

// matchesAny returns true if rel matches any of the configured patterns.
func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

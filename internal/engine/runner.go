package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/lint"
)

// Runner drives the linting pipeline over many files: it prepares the
// plan once, then for each file reads the content, parses it, lints it
// and collects diagnostics.
type Runner struct {
	Options Options
}

// Result holds the output of a lint run.
type Result struct {
	Diagnostics    []lint.Diagnostic
	InvalidOptions []lint.Diagnostic
	Errors         []error

	// Files is the number of files linted; ignored files are not counted.
	Files int
}

// Run lints the files at the given paths and returns a Result containing
// all diagnostics (sorted by file, line, column) and any per-file errors.
// A configuration error aborts the run and is returned.
func (r *Runner) Run(paths []string) (*Result, error) {
	plan, err := Prepare(r.Options)
	if err != nil {
		return nil, err
	}
	ignore := plan.ignorePatterns()

	res := &Result{}
	for _, path := range paths {
		if plan.isIgnored(ignore, path) {
			plan.Log.Printf("ignored: %s", path)
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}
		if err := plan.lintInto(res, path, source); err != nil {
			return nil, err
		}
	}

	res.sort()
	return res, nil
}

// RunSource lints in-memory source under the given name. Ignore patterns
// are not applied.
func (r *Runner) RunSource(name string, source []byte) (*Result, error) {
	plan, err := Prepare(r.Options)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	if err := plan.lintInto(res, name, source); err != nil {
		return nil, err
	}
	res.sort()
	return res, nil
}

// lintInto records the outcome of linting one file in res. Only
// configuration errors are returned.
func (p *Plan) lintInto(res *Result, path string, source []byte) error {
	res.Files++
	p.Log.Printf("file: %s", path)

	f, err := lint.NewFile(path, source)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("parsing %q: %w", path, err))
		return nil
	}

	lr, err := p.Lint(f)
	if err != nil {
		if config.IsConfigurationError(err) {
			return err
		}
		res.Errors = append(res.Errors, fmt.Errorf("linting %q: %w", path, err))
		return nil
	}
	res.Diagnostics = append(res.Diagnostics, lr.Diagnostics...)
	res.InvalidOptions = append(res.InvalidOptions, lr.InvalidOptions...)
	return nil
}

func (r *Result) sort() {
	sort.SliceStable(r.Diagnostics, func(i, j int) bool {
		di, dj := r.Diagnostics[i], r.Diagnostics[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		return di.Column < dj.Column
	})
}

func (p *Plan) ignorePatterns() []glob.Glob {
	var out []glob.Glob
	for _, pattern := range p.Config.IgnoreFiles {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			p.Log.Warnf("invalid ignoreFiles pattern %q: %v", pattern, err)
			continue
		}
		out = append(out, g)
	}
	return out
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns. The path is tried as given, cleaned, relative to the
// base directory and as a base name.
func (p *Plan) isIgnored(patterns []glob.Glob, path string) bool {
	if len(patterns) == 0 {
		return false
	}
	candidates := []string{path, filepath.ToSlash(filepath.Clean(path)), filepath.Base(path)}
	if abs, err := filepath.Abs(path); err == nil {
		if rel, err := filepath.Rel(p.BaseDir, abs); err == nil {
			candidates = append(candidates, filepath.ToSlash(rel))
		}
	}
	for _, g := range patterns {
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}
	return false
}

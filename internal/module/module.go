// Package module resolves module lookup strings, as written in
// configuration, to files on disk.
package module

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver turns a lookup string into an absolute file path.
type Resolver interface {
	Resolve(lookup, baseDir string) (string, error)
}

// NotFoundError is returned when no file matches a lookup.
type NotFoundError struct {
	Lookup  string
	BaseDir string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find module %q from %q", e.Lookup, e.BaseDir)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ModulesDir is the directory searched for bare lookups.
const ModulesDir = "style_modules"

// Extensions are tried in order when a lookup names no existing file.
var Extensions = []string{".yml", ".yaml", ".json", ".star"}

// FileResolver resolves lookups on the local file system.
//
// Lookups starting with "./", "../" or "/" are relative to baseDir (or
// absolute). Any other lookup is a bare module name searched for in
// style_modules directories from baseDir up to the file system root.
type FileResolver struct{}

// Resolve implements Resolver.
func (FileResolver) Resolve(lookup, baseDir string) (string, error) {
	if lookup == "" {
		return "", &NotFoundError{Lookup: lookup, BaseDir: baseDir}
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory %q: %w", baseDir, err)
	}

	if IsPathLike(lookup) {
		p := lookup
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		if found, ok := probe(filepath.Clean(p)); ok {
			return found, nil
		}
		return "", &NotFoundError{Lookup: lookup, BaseDir: baseDir}
	}

	dir := base
	for {
		if found, ok := probe(filepath.Join(dir, ModulesDir, filepath.FromSlash(lookup))); ok {
			return found, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &NotFoundError{Lookup: lookup, BaseDir: baseDir}
		}
		dir = parent
	}
}

// IsPathLike reports whether lookup is a relative or absolute path rather
// than a bare module name.
func IsPathLike(lookup string) bool {
	return lookup == "." || lookup == ".." ||
		strings.HasPrefix(lookup, "./") || strings.HasPrefix(lookup, "../") ||
		strings.HasPrefix(lookup, `.\`) || strings.HasPrefix(lookup, `..\`) ||
		filepath.IsAbs(lookup)
}

// IsRelative reports whether lookup is a "./" or "../" path.
func IsRelative(lookup string) bool {
	return IsPathLike(lookup) && !filepath.IsAbs(lookup)
}

// probe tries p itself, p with each of Extensions, then index files inside
// p when it is a directory.
func probe(p string) (string, bool) {
	if isFile(p) {
		return p, true
	}
	for _, ext := range Extensions {
		if isFile(p + ext) {
			return p + ext, true
		}
	}
	for _, ext := range Extensions {
		idx := filepath.Join(p, "index"+ext)
		if isFile(idx) {
			return idx, true
		}
	}
	return "", false
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

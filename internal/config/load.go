package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// FileNames are the configuration files Discover looks for, in order of
// preference within a directory.
var FileNames = []string{".tidystyle.yml", ".tidystyle.yaml", ".tidystyle.json"}

// Load reads and parses a YAML or JSON config file at the given path. An
// empty file yields an empty mapping.
func Load(path string) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(path, data)
}

// Parse parses YAML or JSON configuration data; name is used in errors.
func Parse(name string, data []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Value{}, fmt.Errorf("parsing config file %q: %w", name, err)
	}
	switch v.Kind {
	case KindNull:
		return Mapping(nil), nil
	case KindMapping:
		return v, nil
	}
	return Value{}, Errorf("configuration in %q must be a mapping, got %s", name, v.Kind)
}

// Discover walks up the directory tree from startDir looking for one of
// FileNames. It stops searching when it encounters a .git directory (the
// repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// DumpDefaults returns a configuration enabling every rule in defaults
// with its default setting, rules sorted by name. It is consumed by
// `tidystyle init` to generate a starter config file.
func DumpDefaults(defaults map[string]any) (Value, error) {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)

	rules := NewMap()
	for _, name := range names {
		v, err := FromGo(defaults[name])
		if err != nil {
			return Value{}, fmt.Errorf("default for rule %q: %w", name, err)
		}
		rules.Set(name, v)
	}

	root := NewMap()
	root.Set(KeyRules, Mapping(rules))
	return Mapping(root), nil
}

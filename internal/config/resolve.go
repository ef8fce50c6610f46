package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jeduden/tidystyle/internal/log"
	"github.com/jeduden/tidystyle/internal/module"
)

// Resolver flattens "extends" inheritance.
type Resolver struct {
	Modules module.Resolver
	Log     *log.Logger
}

// NewResolver returns a Resolver using modules to locate extends targets.
// A nil modules uses module.FileResolver.
func NewResolver(modules module.Resolver, logger *log.Logger) *Resolver {
	if modules == nil {
		modules = module.FileResolver{}
	}
	return &Resolver{Modules: modules, Log: logger}
}

// Resolve returns cfg with every extends target merged in and the extends
// key removed. Lookups are resolved against baseDir. Entries are applied
// left to right, each underneath what has been accumulated so far, so the
// local config beats every target and an earlier target beats a later
// one. cfg is not modified.
func (r *Resolver) Resolve(cfg Value, baseDir string) (Value, error) {
	return r.resolve(cfg, baseDir, nil)
}

func (r *Resolver) resolve(cfg Value, baseDir string, chain []string) (Value, error) {
	ext, ok := cfg.Get(KeyExtends)
	if !ok {
		return cfg.Clone(), nil
	}
	lookups, err := extendsList(ext)
	if err != nil {
		return Value{}, err
	}

	acc := cfg.Clone()
	acc.Map.Delete(KeyExtends)

	for _, lookup := range lookups {
		path, err := r.Modules.Resolve(lookup, baseDir)
		if err != nil {
			if module.IsNotFound(err) {
				return Value{}, CouldNotFind(lookup)
			}
			return Value{}, fmt.Errorf("resolving %q: %w", lookup, err)
		}
		if slices.Contains(chain, path) {
			return Value{}, Errorf("Circular extends: %s", strings.Join(append(slices.Clone(chain), path), " -> "))
		}
		r.Log.Debugf("extends: %s -> %s", lookup, path)

		target, err := Load(path)
		if err != nil {
			return Value{}, err
		}
		targetDir := filepath.Dir(path)
		absolutizePlugins(target, targetDir)

		resolved, err := r.resolve(target, targetDir, append(slices.Clone(chain), path))
		if err != nil {
			return Value{}, err
		}
		acc = Merge(Mapping(nil), resolved, acc)
	}
	return acc, nil
}

func extendsList(v Value) ([]string, error) {
	switch v.Kind {
	case KindNull:
		return nil, nil
	case KindScalar:
		if s, ok := v.Scalar.(string); ok && s != "" {
			return []string{s}, nil
		}
	case KindSequence:
		out := make([]string, 0, len(v.Items))
		for i, it := range v.Items {
			s, ok := it.Scalar.(string)
			if it.Kind != KindScalar || !ok || s == "" {
				return nil, Errorf("%q entry %d must be a non-empty string, got %s", KeyExtends, i, describe(it))
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, Errorf("%q must be a string or a list of strings, got %s", KeyExtends, describe(v))
}

// absolutizePlugins rewrites "./" and "../" plugin lookups in cfg to
// absolute paths against dir, so they keep pointing at the right files
// once merged into a config living elsewhere.
func absolutizePlugins(cfg Value, dir string) {
	p, ok := cfg.Get(KeyPlugins)
	if !ok || p.Kind != KindMapping {
		return
	}
	for _, name := range p.Map.Keys() {
		v, _ := p.Map.Get(name)
		s, ok := v.Scalar.(string)
		if v.Kind != KindScalar || !ok || !module.IsRelative(s) {
			continue
		}
		p.Map.Set(name, Scalar(filepath.Join(dir, s)))
	}
}

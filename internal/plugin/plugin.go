// Package plugin loads rule implementations named in configuration and
// registers them into a per-run rule registry.
package plugin

import (
	"fmt"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/log"
	"github.com/jeduden/tidystyle/internal/module"
	"github.com/jeduden/tidystyle/internal/rule"
)

// ModuleLoader turns a resolved module file into a rule implementation.
type ModuleLoader interface {
	LoadRule(name, path string) (rule.Func, error)
}

// Loader resolves plugin lookups and registers what they load.
type Loader struct {
	Modules module.Resolver
	Rules   ModuleLoader
	Log     *log.Logger
}

// NewLoader returns a Loader. Nil collaborators default to
// module.FileResolver and a StarlarkLoader.
func NewLoader(modules module.Resolver, rules ModuleLoader, logger *log.Logger) *Loader {
	if modules == nil {
		modules = module.FileResolver{}
	}
	if rules == nil {
		rules = &StarlarkLoader{Log: logger}
	}
	return &Loader{Modules: modules, Rules: rules, Log: logger}
}

// Load resolves each plugin against baseDir in order and registers it in
// reg under its rule name, replacing any rule already registered there.
func (l *Loader) Load(plugins []config.Plugin, baseDir string, reg *rule.Registry) error {
	for _, p := range plugins {
		path, err := l.Modules.Resolve(p.Lookup, baseDir)
		if err != nil {
			if module.IsNotFound(err) {
				return config.CouldNotFind(p.Lookup)
			}
			return fmt.Errorf("resolving plugin %q: %w", p.Rule, err)
		}

		fn, err := l.Rules.LoadRule(p.Rule, path)
		if err != nil {
			return fmt.Errorf("loading plugin %q: %w", p.Rule, err)
		}
		l.Log.Debugf("plugin: %s -> %s", p.Rule, path)
		reg.Register(p.Rule, fn)
	}
	return nil
}

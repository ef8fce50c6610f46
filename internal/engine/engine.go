// Package engine resolves configuration into a lint plan and runs the
// configured rules against parsed stylesheets.
//
// A lint goes through three phases. RESOLVE (Prepare) flattens extends,
// applies overrides, validates and loads plugins. ANNOTATE computes the
// disable ranges of the document. DISPATCH runs every enabled rule in
// configuration order. An error in one phase stops the lint before the
// next.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/disable"
	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/log"
	"github.com/jeduden/tidystyle/internal/module"
	"github.com/jeduden/tidystyle/internal/plugin"
	"github.com/jeduden/tidystyle/internal/rule"
)

// Options describe where configuration comes from and how modules are
// found.
type Options struct {
	// Config is the configuration to use. When empty and ConfigFile is
	// set, the file is loaded instead.
	Config config.Value

	// ConfigFile is where Config came from. Its directory is the base
	// for extends and plugin lookups unless a configBasedir is given.
	ConfigFile string

	// ConfigBasedir overrides every other base directory.
	ConfigBasedir string

	// ConfigOverrides is merged over the resolved configuration.
	ConfigOverrides config.Value

	Modules module.Resolver
	Plugins plugin.ModuleLoader

	// Rules is the registry plugins are added to (as a copy). Nil means
	// the built-in rules.
	Rules *rule.Registry

	Log *log.Logger
}

// Plan is a resolved configuration with the registry to run it against.
// It can lint any number of documents.
type Plan struct {
	Config   *config.Config
	Resolved config.Value
	Registry *rule.Registry
	BaseDir  string
	Log      *log.Logger
}

// Prepare runs the RESOLVE phase.
func Prepare(opts Options) (*Plan, error) {
	raw := opts.Config
	if raw.IsEmpty() && opts.ConfigFile != "" {
		v, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		raw = v
	}
	if raw.IsEmpty() {
		return nil, config.Errorf("No configuration provided")
	}
	if raw.Kind != config.KindMapping {
		return nil, config.Errorf("configuration must be a mapping, got %s", raw.Kind)
	}

	baseDir, err := baseDir(opts, raw)
	if err != nil {
		return nil, err
	}
	opts.Log.Printf("config base directory: %s", baseDir)

	resolved, err := config.NewResolver(opts.Modules, opts.Log).Resolve(raw, baseDir)
	if err != nil {
		return nil, err
	}
	if !opts.ConfigOverrides.IsEmpty() {
		if _, ok := opts.ConfigOverrides.Get(config.KeyExtends); ok {
			return nil, config.Errorf("configOverrides cannot contain %q; put it in the configuration instead", config.KeyExtends)
		}
		resolved = config.Merge(resolved, opts.ConfigOverrides)
	}

	cfg, err := config.Decode(resolved)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(resolved); err != nil {
		return nil, err
	}

	base := opts.Rules
	if base == nil {
		base = rule.Builtins()
	}
	reg := base.Clone()
	if err := plugin.NewLoader(opts.Modules, opts.Plugins, opts.Log).Load(cfg.Plugins, baseDir, reg); err != nil {
		return nil, err
	}

	return &Plan{
		Config:   cfg,
		Resolved: resolved,
		Registry: reg,
		BaseDir:  baseDir,
		Log:      opts.Log,
	}, nil
}

// baseDir picks, in order: the explicit option, the config's own
// configBasedir, the config file's directory, the working directory.
// A relative configBasedir is taken relative to the config file.
func baseDir(opts Options, raw config.Value) (string, error) {
	if opts.ConfigBasedir != "" {
		return filepath.Abs(opts.ConfigBasedir)
	}
	fileDir := ""
	if opts.ConfigFile != "" {
		abs, err := filepath.Abs(opts.ConfigFile)
		if err != nil {
			return "", fmt.Errorf("resolving config path: %w", err)
		}
		fileDir = filepath.Dir(abs)
	}
	if v, ok := raw.Get(config.KeyConfigBasedir); ok {
		if s, ok := v.Scalar.(string); ok && s != "" {
			if filepath.IsAbs(s) {
				return filepath.Clean(s), nil
			}
			if fileDir != "" {
				return filepath.Join(fileDir, s), nil
			}
			return filepath.Abs(s)
		}
	}
	if fileDir != "" {
		return fileDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}

// Lint runs the ANNOTATE and DISPATCH phases for one document and returns
// a fresh Result.
func (p *Plan) Lint(f *lint.File) (*lint.Result, error) {
	res := lint.NewResult(f.Path)
	res.Quiet = p.Config.Quiet

	ranges, err := disable.Compute(f.Root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	res.DisableRanges = ranges

	if err := Dispatch(p.Config, p.Registry, f, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Lint prepares opts and lints a single document.
func Lint(opts Options, f *lint.File) (*lint.Result, error) {
	plan, err := Prepare(opts)
	if err != nil {
		return nil, err
	}
	return plan.Lint(f)
}

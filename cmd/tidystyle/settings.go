package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	flag "github.com/spf13/pflag"
)

const envPrefix = "TIDYSTYLE_"

// settings are the per-user CLI preferences of the check command. They
// are separate from the project configuration: nothing here changes which
// rules run, only where the configuration comes from and how results are
// shown.
type settings struct {
	Config          string `koanf:"config"`
	ConfigBasedir   string `koanf:"config_basedir"`
	ConfigOverrides string `koanf:"config_overrides"`
	Format          string `koanf:"format"`
	Color           bool   `koanf:"color"`
	Quiet           bool   `koanf:"quiet"`
	Verbose         bool   `koanf:"verbose"`
	Watch           bool   `koanf:"watch"`
}

// settingsFile returns the user settings path, or "" when no user config
// directory is known. XDG_CONFIG_HOME is honored on every platform.
func settingsFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "tidystyle", "settings.yml")
}

// loadSettings layers, lowest first: defaults, the user settings file,
// TIDYSTYLE_* environment variables and explicitly set flags.
func loadSettings(flags *flag.FlagSet) (settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"format":  "text",
		"color":   os.Getenv("NO_COLOR") == "",
		"quiet":   false,
		"verbose": false,
		"watch":   false,
	}, "."), nil); err != nil {
		return settings{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path := settingsFile(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
			}
		}
	}

	// TIDYSTYLE_CONFIG_BASEDIR -> config_basedir
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return settings{}, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *flag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			if f.Name == "no-color" {
				v, _ := flags.GetBool("no-color")
				return "color", !v
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return settings{}, fmt.Errorf("loading flags: %w", err)
		}
	}

	var s settings
	if err := k.Unmarshal("", &s); err != nil {
		return settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

package engine

import (
	"github.com/jeduden/tidystyle/internal/config"
	"github.com/jeduden/tidystyle/internal/lint"
	"github.com/jeduden/tidystyle/internal/rule"
)

// Dispatch runs every rule in cfg.Rules, in order, against f. A rule name
// missing from reg or an invalid setting stops dispatch with a
// *config.ConfigurationError; rules after it do not run. Rules at
// severity off are skipped without being bound. An error returned by a
// check is returned unchanged.
func Dispatch(cfg *config.Config, reg *rule.Registry, f *lint.File, res *lint.Result) error {
	for _, name := range cfg.Rules.Keys() {
		fn, ok := reg.Lookup(name)
		if !ok {
			return config.Errorf("Undefined rule %s", name)
		}

		raw, _ := cfg.Rules.Get(name)
		setting, err := config.ParseRuleSetting(name, raw)
		if err != nil {
			return err
		}
		if setting.Severity == lint.Off {
			continue
		}

		res.RuleSeverities[name] = setting.Severity
		check := fn(setting.Primary, setting.Secondary)
		if check == nil {
			continue
		}
		if err := check(f, res); err != nil {
			return err
		}
	}
	return nil
}

package config

import (
	"time"

	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/arthur-debert/dp/pkg/rules"
)

// Config is the effective dp configuration
type Config struct {
	// Fallthrough retries later rules on a colliding candidate
	Fallthrough bool `koanf:"fallthrough" toml:"fallthrough" yaml:"fallthrough"`

	// WholePath applies rules to the full path rather than the filename
	WholePath bool `koanf:"whole_path" toml:"whole_path" yaml:"whole_path"`

	// Rules is the ordered rule chain
	Rules []rules.Spec `koanf:"rules" toml:"rules" yaml:"rules"`
}

// Validate checks that every rule names a kind.
func (c *Config) Validate() error {
	for i, r := range c.Rules {
		if r.Kind == "" {
			return errors.Newf(errors.ErrConfigParse, "rule #%d has no kind", i+1)
		}
	}
	return nil
}

// BuildRules builds the configured chain bound to now. Unless WholePath is
// set, every rule is restricted to the filename through paths.
func (c *Config) BuildRules(now time.Time, paths rules.PathSplitter) ([]rules.Rule, error) {
	chain, err := rules.BuildChain(c.Rules, now)
	if err != nil {
		return nil, err
	}
	if c.WholePath {
		return chain, nil
	}
	for i, r := range chain {
		chain[i] = rules.NameOnly(r, paths)
	}
	return chain, nil
}

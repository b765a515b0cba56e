package rules

import (
	"strings"
	"time"

	"github.com/arthur-debert/dp/pkg/errors"
)

// Rule kinds accepted in configuration
const (
	KindDate      = "date"
	KindIncrement = "increment"
)

// Spec is the declarative form of a rule as it appears in configuration.
type Spec struct {
	Kind    string `koanf:"kind" toml:"kind" yaml:"kind"`
	Pattern string `koanf:"pattern" toml:"pattern,omitempty" yaml:"pattern,omitempty"`
	Format  string `koanf:"format" toml:"format,omitempty" yaml:"format,omitempty"`
}

// Build turns a single spec into a Rule. Date rules are bound to now.
func (s Spec) Build(now time.Time) (Rule, error) {
	switch strings.ToLower(s.Kind) {
	case KindDate:
		return NewDateRule(s.Pattern, s.Format, now)
	case KindIncrement:
		return NewIncrementRule(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidRule, "unknown rule kind %q", s.Kind)
	}
}

// BuildChain builds specs in order. The first failing spec aborts the chain.
func BuildChain(specs []Spec, now time.Time) ([]Rule, error) {
	chain := make([]Rule, 0, len(specs))
	for i, s := range specs {
		r, err := s.Build(now)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidRule, "rule #%d", i+1)
		}
		chain = append(chain, r)
	}
	return chain, nil
}

package duplicator

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dp/pkg/logging"
	"github.com/arthur-debert/dp/pkg/rules"
	"github.com/arthur-debert/dp/pkg/vfs"
	"github.com/rs/zerolog"
)

// Duplicator applies a rule chain to input paths against a VFS.
type Duplicator struct {
	rules       []rules.Rule
	fs          vfs.VFS
	fallThrough bool
	logger      zerolog.Logger
}

// Option configures a Duplicator.
type Option func(*Duplicator)

// WithFallthrough sets the collision policy.
func WithFallthrough(enabled bool) Option {
	return func(d *Duplicator) {
		d.fallThrough = enabled
	}
}

// WithLogger replaces the default component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Duplicator) {
		d.logger = logger
	}
}

// New creates a Duplicator. The chain order is both priority and, under
// fallthrough, the order in which collisions are retried.
func New(chain []rules.Rule, fs vfs.VFS, opts ...Option) *Duplicator {
	d := &Duplicator{
		rules:  append([]rules.Rule(nil), chain...),
		fs:     fs,
		logger: logging.GetLogger("duplicator"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Fallthrough reports whether fallthrough mode is enabled.
func (d *Duplicator) Fallthrough() bool {
	return d.fallThrough
}

// Rules returns the configured chain in order.
func (d *Duplicator) Rules() []rules.Rule {
	return append([]rules.Rule(nil), d.rules...)
}

// Duplicate copies path to the first unused name produced by the chain.
// It returns true iff a copy was performed. The error is non-nil only when
// a rule breaks its own invariants; such errors are not per-file failures.
func (d *Duplicator) Duplicate(path string) (bool, error) {
	_, copied, err := d.duplicate(path)
	return copied, err
}

func (d *Duplicator) duplicate(path string) (string, bool, error) {
	logger := d.logger.With().Str("path", path).Logger()
	current := path

	// Advancing i after a fallthrough collision is the resumption point:
	// the next rule sees the colliding candidate, never the same rule twice.
	for i, rule := range d.rules {
		candidate, ok, err := rule.Apply(current)
		if err != nil {
			logger.Error().Err(err).Int("rule", i).Str("input", current).Msg("Rule invariant violated")
			return "", false, err
		}
		if !ok {
			logger.Trace().Int("rule", i).Str("input", current).Msg("Rule declined")
			continue
		}

		if !d.fs.Exists(candidate) {
			if err := d.fs.Copy(path, candidate); err != nil {
				logger.Warn().Err(err).Str("target", candidate).Msg("Copy failed")
				return candidate, false, nil
			}
			logger.Info().Str("target", candidate).Int("rule", i).Msg("Duplicated")
			return candidate, true, nil
		}

		logger.Warn().Str("target", candidate).Int("rule", i).Msg("Renamed file already exists")
		if !d.fallThrough {
			return "", false, nil
		}
		current = candidate
	}

	logger.Debug().Msg("No rule produced an unused name")
	return "", false, nil
}

// PrintHelp writes the configured rules in chain order.
func (d *Duplicator) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "=== Rules ===")
	for i, rule := range d.rules {
		fmt.Fprintf(w, "%d. %s\n", i+1, rule)
	}
	if d.fallThrough {
		fmt.Fprintln(w, "fallthrough: on")
	} else {
		fmt.Fprintln(w, "fallthrough: off")
	}
}

package rules

import (
	"fmt"
	"regexp"
	"time"

	"github.com/arthur-debert/dp/pkg/errors"
	"github.com/lestrrat-go/strftime"
)

// DateRule replaces the last occurrence of a pattern in a name with the
// reference time formatted by a strftime layout.
//
// With pattern `\d{2}-\d{2}`, layout "%m-%d" and a reference time of
// 2019-11-10, "hello-10-23.org" becomes "hello-11-10.org".
type DateRule struct {
	pattern string
	layout  string
	re      *regexp.Regexp
	now     time.Time
	value   string
}

// NewDateRule compiles pattern and layout against the reference time now.
func NewDateRule(pattern, layout string, now time.Time) (*DateRule, error) {
	if pattern == "" {
		return nil, errors.New(errors.ErrInvalidRule, "date rule needs a pattern")
	}
	re, err := wrapPattern(pattern)
	if err != nil {
		return nil, err
	}
	f, err := strftime.New(layout)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRule, "invalid date layout %q", layout)
	}

	return &DateRule{
		pattern: pattern,
		layout:  layout,
		re:      re,
		now:     now,
		value:   f.FormatString(now),
	}, nil
}

// Apply implements Rule.
func (r *DateRule) Apply(name string) (string, bool, error) {
	m := r.re.FindStringSubmatchIndex(name)
	if m == nil {
		return "", false, nil
	}
	// m[4], m[5] bound the embedded pattern group
	return replaceSpan(name, m[4], m[5], r.value), true, nil
}

// Value returns the formatted date substituted by this rule.
func (r *DateRule) Value() string {
	return r.value
}

func (r *DateRule) String() string {
	return fmt.Sprintf("DateRule { pattern: %s, format: %s, value: %s }", r.pattern, r.layout, r.value)
}

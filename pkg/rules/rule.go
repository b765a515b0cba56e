package rules

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/dp/pkg/errors"
)

// Rule transforms a name into a candidate new name.
//
// Apply returns ok == false when the rule does not match (a decline). A
// non-nil error means the rule's own invariants were broken; callers must
// treat it as fatal rather than as a decline.
type Rule interface {
	Apply(name string) (renamed string, ok bool, err error)
	String() string
}

// wrapPattern embeds pattern between greedy anything-before and
// anything-after groups so it matches anywhere in the name.
func wrapPattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(fmt.Sprintf("(?s)(.*)(%s)(.*)", pattern))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidRule, "invalid pattern %q", pattern)
	}
	return re, nil
}

// replaceSpan swaps input[start:end] for value.
func replaceSpan(input string, start, end int, value string) string {
	return input[:start] + value + input[end:]
}

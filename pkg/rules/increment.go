package rules

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/arthur-debert/dp/pkg/errors"
)

var lastDigitRun = regexp.MustCompile(`(\d+)(\D*)$`)

// IncrementRule replaces the last run of digits in a name with its value
// plus one: "meeting-10.org" becomes "meeting-11.org". Zero padding is kept
// to the width of the original run, so "take-007.wav" becomes "take-008.wav".
type IncrementRule struct{}

// NewIncrementRule returns an IncrementRule.
func NewIncrementRule() *IncrementRule {
	return &IncrementRule{}
}

// Apply implements Rule. A digit run too large for a uint64 is reported as
// an invariant error, never as a decline.
func (r *IncrementRule) Apply(name string) (string, bool, error) {
	m := lastDigitRun.FindStringSubmatchIndex(name)
	if m == nil {
		return "", false, nil
	}

	digits := name[m[2]:m[3]]
	n, err := strconv.ParseUint(digits, 10, 64)
	if err == nil && n == ^uint64(0) {
		err = strconv.ErrRange
	}
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrRuleInvariant, "cannot increment digit run %q in %s", digits, name)
	}

	next := fmt.Sprintf("%0*d", len(digits), n+1)
	return replaceSpan(name, m[2], m[3], next), true, nil
}

func (r *IncrementRule) String() string {
	return `IncrementRule { pattern: (\d+)(\D*)$ }`
}

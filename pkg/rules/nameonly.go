package rules

import (
	"strings"
)

// PathSplitter decomposes a path into its last component. vfs.VFS satisfies it.
type PathSplitter interface {
	Filename(path string) string
}

// NameOnlyRule applies an inner rule to the filename of a path and keeps
// every directory component untouched.
type NameOnlyRule struct {
	inner Rule
	paths PathSplitter
}

// NameOnly wraps inner so it only sees the last path component.
func NameOnly(inner Rule, paths PathSplitter) *NameOnlyRule {
	return &NameOnlyRule{inner: inner, paths: paths}
}

// Apply implements Rule.
func (r *NameOnlyRule) Apply(path string) (string, bool, error) {
	name := r.paths.Filename(path)
	if name == "" || !strings.HasSuffix(path, name) {
		return "", false, nil
	}

	renamed, ok, err := r.inner.Apply(name)
	if err != nil || !ok {
		return "", false, err
	}
	return path[:len(path)-len(name)] + renamed, true, nil
}

// Unwrap returns the wrapped rule.
func (r *NameOnlyRule) Unwrap() Rule {
	return r.inner
}

func (r *NameOnlyRule) String() string {
	return r.inner.String()
}

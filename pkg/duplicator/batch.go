package duplicator

import (
	"github.com/arthur-debert/dp/pkg/logging"
)

// Result is the outcome of one input in a batch. Target is the name copied
// to, or the name whose copy failed; it is empty when no rule produced a
// usable name.
type Result struct {
	Path   string
	Target string
	Copied bool
}

// Report summarises a batch.
type Report struct {
	Results []Result
	Copied  int
	Failed  int
}

// Failures returns the inputs that were not copied.
func (r Report) Failures() []string {
	var failed []string
	for _, res := range r.Results {
		if !res.Copied {
			failed = append(failed, res.Path)
		}
	}
	return failed
}

// DuplicateAll processes paths sequentially in order. It stops at the first
// rule invariant violation and returns the partial report with that error;
// copies already made are kept.
func (d *Duplicator) DuplicateAll(paths []string) (Report, error) {
	done := logging.LogOperationStart(d.logger, "duplicate_all")
	defer done()

	var report Report
	for _, p := range paths {
		target, copied, err := d.duplicate(p)
		if err != nil {
			return report, err
		}

		report.Results = append(report.Results, Result{Path: p, Target: target, Copied: copied})
		if copied {
			report.Copied++
		} else {
			report.Failed++
		}
	}
	return report, nil
}

package runner

import (
	"fmt"

	"github.com/aretw0/sift/pkg/issue"
)

// Input names one value to validate. The name carries through to the
// result, so batch callers can map failures back to files or records.
type Input struct {
	Name  string
	Value any
}

// Result is the outcome for a single input. Err is nil when the input
// passed; Value then holds the accepted, coerced value.
type Result struct {
	Name  string
	Value any
	Err   *issue.Error
}

// Valid reports whether the input passed.
func (r Result) Valid() bool { return r.Err == nil }

// IssueCount returns the number of issues, zero for a passing result.
func (r Result) IssueCount() int {
	if r.Err == nil {
		return 0
	}
	return len(r.Err.Issues)
}

// Lines renders the result as human-readable report lines.
func (r Result) Lines() []string {
	if r.Err == nil {
		return []string{fmt.Sprintf("ok   %s", r.Name)}
	}
	lines := make([]string, 0, 1+len(r.Err.Issues))
	lines = append(lines, fmt.Sprintf("FAIL %s (%d issues)", r.Name, len(r.Err.Issues)))
	for _, is := range r.Err.Issues {
		if len(is.Path) > 0 {
			lines = append(lines, fmt.Sprintf("  - %s: %s [%s]", is.Path, is.Message, is.Code))
			continue
		}
		lines = append(lines, fmt.Sprintf("  - %s [%s]", is.Message, is.Code))
	}
	return lines
}

// Report aggregates the results of one run, in input order.
type Report struct {
	Results []Result
}

// Valid reports whether every input passed.
func (r *Report) Valid() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return false
		}
	}
	return true
}

// Failed counts the inputs that did not pass.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Issues flattens every result's issues, in input order.
func (r *Report) Issues() []issue.Issue {
	var out []issue.Issue
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res.Err.Issues...)
		}
	}
	return out
}

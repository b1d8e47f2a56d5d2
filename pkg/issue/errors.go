package issue

import (
	"fmt"
	"strings"
)

// Error is the aggregate failure value of a parse: the ordered sequence of
// every issue found during one traversal. It is returned by Parse and
// carried by the panic raised from MustParse.
//
// Extract it from a wrapped chain with errors.As.
type Error struct {
	Issues []Issue
}

// NewError wraps the given issues. It returns a value even for an empty
// slice; callers decide whether an empty aggregate is meaningful.
func NewError(issues []Issue) *Error {
	return &Error{Issues: issues}
}

// Error renders a deterministic single-line summary of every issue, in the
// order they were recorded.
func (e *Error) Error() string {
	switch len(e.Issues) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e.Issues[0].String()
	}
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("validation failed with %d issues: %s", len(e.Issues), strings.Join(parts, "; "))
}

// Flatten groups issue messages by rendered path. Root-level issues land
// under the empty key. Useful for form-style rendering where each field
// shows its own failures.
func (e *Error) Flatten() map[string][]string {
	out := make(map[string][]string, len(e.Issues))
	for _, is := range e.Issues {
		key := is.Path.String()
		out[key] = append(out[key], is.Message)
	}
	return out
}

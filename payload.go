package sift

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/aretw0/sift/pkg/issue"
)

// payload carries one value through a single validation traversal. Variants
// may replace the value when they coerce and append issues when they fail.
// Each Parse call allocates its own payload; payloads are never shared.
//
// Issue paths are recorded relative to the node that found them: a child
// traversal starts from a fresh payload and the parent rebases the child's
// issues under the connecting segment on merge. No node ever sees its
// parent's path prefix.
type payload struct {
	value  any
	issues []issue.Issue
}

// report records is, applying the context's message formatter first.
func (p *payload) report(ctx *ParseContext, is issue.Issue) {
	if ctx != nil && ctx.Formatter != nil {
		is.Message = ctx.Formatter(is)
	}
	p.issues = append(p.issues, is)
}

// halted reports whether an abort-early traversal already found an issue
// and should stop descending.
func (p *payload) halted(ctx *ParseContext) bool {
	return ctx != nil && ctx.AbortEarly && len(p.issues) > 0
}

// merge folds a child payload's issues into p, rebased under seg.
func (p *payload) merge(seg issue.Segment, child *payload) {
	for _, is := range child.issues {
		is.Path = is.Path.Prepend(seg)
		p.issues = append(p.issues, is)
	}
}

// typeName names a runtime value for issue messages: coarse tags for the
// shapes decoded data takes, the Go type for everything else.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "function"
	}
	return fmt.Sprintf("%T", v)
}

// displayValue renders a rejected input for issue messages.
func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

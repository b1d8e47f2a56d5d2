package issue

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one element of a Path: either an object key or an array index.
// Construct segments with Key or Index.
type Segment struct {
	name    string
	index   int
	indexed bool
}

// Key returns a segment addressing an object field.
func Key(name string) Segment {
	return Segment{name: name}
}

// Index returns a segment addressing an array element or argument position.
func Index(i int) Segment {
	return Segment{index: i, indexed: true}
}

// IsIndex reports whether the segment addresses an index.
func (s Segment) IsIndex() bool { return s.indexed }

// Name returns the key name, or "" for index segments.
func (s Segment) Name() string { return s.name }

// Index returns the index, or 0 for key segments.
func (s Segment) Index() int { return s.index }

// String renders the segment as it appears inside a path: `name` or `[3]`.
func (s Segment) String() string {
	if s.indexed {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name
}

// MarshalJSON emits keys as JSON strings and indexes as JSON numbers, so a
// path round-trips as a heterogeneous array.
func (s Segment) MarshalJSON() ([]byte, error) {
	if s.indexed {
		return []byte(strconv.Itoa(s.index)), nil
	}
	return []byte(strconv.Quote(s.name)), nil
}

// UnmarshalJSON accepts a JSON string (key) or number (index).
func (s *Segment) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if strings.HasPrefix(text, `"`) {
		name, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid path segment %s: %w", text, err)
		}
		*s = Key(name)
		return nil
	}
	i, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid path segment %s: %w", text, err)
	}
	*s = Index(i)
	return nil
}

// Path records the field/index chain from the root of a validated value to
// the position where an issue occurred. An empty path means the root value.
type Path []Segment

// Prepend returns a new path with seg in front. The receiver is never
// mutated; issues discovered in a child traversal are rebased onto the
// parent by prepending the child's segment on return.
func (p Path) Prepend(seg Segment) Path {
	rebased := make(Path, 0, len(p)+1)
	rebased = append(rebased, seg)
	return append(rebased, p...)
}

// String renders the path in dotted/bracket form, e.g. `profile.tags[2]`.
// The root path renders as "".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if !seg.indexed && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

package issue

// Issue is one structured validation failure. Issues are immutable once
// recorded; the traversal only ever appends new ones.
//
// Origin identifies the kind of schema that produced the issue (for example
// "enum" or "function"). It is an informational tag, never a reference to
// the schema itself, so error values do not pin schema trees in memory.
type Issue struct {
	Code     Code     `json:"code"`
	Path     Path     `json:"path"`
	Message  string   `json:"message"`
	Input    any      `json:"input,omitempty"`
	Origin   string   `json:"origin,omitempty"`
	Options  []string `json:"options,omitempty"`
	Expected any      `json:"expected,omitempty"`
	Received any      `json:"received,omitempty"`
	Issues   []Issue  `json:"issues,omitempty"`
}

// String renders the issue as `path: message`, or just the message at the
// root.
func (i Issue) String() string {
	if len(i.Path) == 0 {
		return i.Message
	}
	return i.Path.String() + ": " + i.Message
}

package loam

// SchemaMetadata represents the frontmatter of a schema document.
// It uses "mapstructure" tags to match standard Frontmatter/YAML keys.
// Nested specs stay untyped here; the compiler decodes them precisely.
type SchemaMetadata struct {
	Name     string   `json:"name" mapstructure:"name"`
	Doc      string   `json:"doc" mapstructure:"doc"`
	Type     string   `json:"type" mapstructure:"type"`
	Ref      string   `json:"ref" mapstructure:"ref"`
	Optional bool     `json:"optional" mapstructure:"optional"`
	Values   []string `json:"values" mapstructure:"values"`

	// Composite Config
	Fields  map[string]any `json:"fields" mapstructure:"fields"`
	Items   map[string]any `json:"items" mapstructure:"items"`
	Unknown string         `json:"unknown" mapstructure:"unknown"`

	// Function Config
	Input  []any          `json:"input" mapstructure:"input"`
	Output map[string]any `json:"output" mapstructure:"output"`

	// Constraints
	Min     *float64 `json:"min" mapstructure:"min"`
	Max     *float64 `json:"max" mapstructure:"max"`
	Pattern string   `json:"pattern" mapstructure:"pattern"`
	Refine  string   `json:"refine" mapstructure:"refine"`
}

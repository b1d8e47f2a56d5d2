package dto

// SchemaSpec is the declarative form of a schema as it appears in
// schema files. It uses "mapstructure" tags so the same shape decodes
// from Frontmatter metadata, plain YAML and JSON documents.
//
// Type accepts a shorthand for arrays: "[string]" is equivalent to
// Type "array" with Items {Type: "string"}.
type SchemaSpec struct {
	Name string `json:"name" yaml:"name" mapstructure:"name"`
	Doc  string `json:"doc" yaml:"doc" mapstructure:"doc"`
	Type string `json:"type" yaml:"type" mapstructure:"type"`

	// Ref names another registered schema; only read when Type is "ref".
	Ref      string `json:"ref" yaml:"ref" mapstructure:"ref"`
	Optional bool   `json:"optional" yaml:"optional" mapstructure:"optional"`

	// Enum Config
	Values []string `json:"values" yaml:"values" mapstructure:"values"`

	// Composite Config
	Fields  map[string]*SchemaSpec `json:"fields" yaml:"fields" mapstructure:"fields"`
	Items   *SchemaSpec            `json:"items" yaml:"items" mapstructure:"items"`
	Unknown string                 `json:"unknown" yaml:"unknown" mapstructure:"unknown"`

	// Function Config
	Input  []*SchemaSpec `json:"input" yaml:"input" mapstructure:"input"`
	Output *SchemaSpec   `json:"output" yaml:"output" mapstructure:"output"`

	// Constraints
	Min     *float64 `json:"min" yaml:"min" mapstructure:"min"`
	Max     *float64 `json:"max" yaml:"max" mapstructure:"max"`
	Pattern string   `json:"pattern" yaml:"pattern" mapstructure:"pattern"`

	// Refine holds an expression evaluated against {"value": v} after
	// the structural checks pass.
	Refine string `json:"refine" yaml:"refine" mapstructure:"refine"`
}

package sift

// Kind tags each schema variant. It doubles as the Origin field on issues:
// a lightweight identifier for the schema that produced a failure, never a
// reference to the schema itself.
type Kind string

const (
	KindString   Kind = "string"
	KindNumber   Kind = "number"
	KindInt      Kind = "int"
	KindBool     Kind = "bool"
	KindEnum     Kind = "enum"
	KindObject   Kind = "object"
	KindArray    Kind = "array"
	KindOptional Kind = "optional"
	KindAny      Kind = "any"
	KindCustom   Kind = "custom"
	KindLazy     Kind = "lazy"
	KindFunction Kind = "function"
)

// Schema is the contract every variant satisfies: a kind tag plus a single
// validation function over the shared payload. The validate method is
// unexported, which closes the variant set: schemas come from the factory
// functions in this package and from composing existing schemas.
//
// Schemas are immutable once constructed and safe to share across any
// number of concurrent Parse calls. Fluent modifiers such as Min, Strict or
// Output return modified copies and never touch their receiver or its
// children.
type Schema interface {
	Kind() Kind
	validate(p *payload, ctx *ParseContext)
}

// core supplies the scaffolding shared by every variant: the kind tag and
// the derived untyped parse operations. A variant embeds core and
// contributes only its validate function plus typed conveniences, so Parse
// and MustParse exist exactly once.
type core struct {
	kind Kind
	node Schema
}

func newCore(kind Kind, node Schema) core {
	return core{kind: kind, node: node}
}

// Kind returns the variant tag.
func (c core) Kind() Kind { return c.kind }

// ParseAny validates value and returns the accepted value untyped.
func (c core) ParseAny(value any, opts ...ParseOption) (any, error) {
	return Parse(c.node, value, opts...)
}

// MustParseAny is the panicking form of ParseAny.
func (c core) MustParseAny(value any, opts ...ParseOption) any {
	return MustParse(c.node, value, opts...)
}

package sift

import "time"

// ParseEvent describes one observed validation through an instrumented
// schema. Issues and Duration are zero on start events.
type ParseEvent struct {
	Kind     Kind
	Issues   int
	Duration time.Duration
}

// Hooks observe validations without touching traversal semantics. Nil hooks
// are skipped. The metrics collector in pkg/observability adapts itself to
// this shape.
type Hooks struct {
	OnParseStart func(*ParseEvent)
	OnParseEnd   func(*ParseEvent)
}

// instrumented decorates a schema with lifecycle hooks.
type instrumented struct {
	inner Schema
	hooks Hooks
}

// Instrument returns a schema that fires h around every validation of s.
// The result is interchangeable with s anywhere a Schema is accepted,
// including inside objects and arrays, where it observes each field or
// element traversal.
func Instrument(s Schema, h Hooks) Schema {
	return &instrumented{inner: s, hooks: h}
}

func (s *instrumented) Kind() Kind { return s.inner.Kind() }

func (s *instrumented) validate(p *payload, ctx *ParseContext) {
	if s.hooks.OnParseStart != nil {
		s.hooks.OnParseStart(&ParseEvent{Kind: s.inner.Kind()})
	}
	start := time.Now()
	before := len(p.issues)
	s.inner.validate(p, ctx)
	if s.hooks.OnParseEnd != nil {
		s.hooks.OnParseEnd(&ParseEvent{
			Kind:     s.inner.Kind(),
			Issues:   len(p.issues) - before,
			Duration: time.Since(start),
		})
	}
}

package sift

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aretw0/sift/pkg/issue"
)

// Func is the untyped callable shape Implement wraps: positional arguments,
// one result, one error. Fixed-arity typed wrappers live in typed.go.
type Func func(args ...any) (any, error)

// FunctionSchema declares a callable contract: an ordered list of input
// schemas, one per positional parameter, and an optional output schema.
type FunctionSchema struct {
	core
	inputs []Schema
	output Schema
}

// Function declares an empty callable contract. Chain Input and Output to
// describe the signature.
func Function() *FunctionSchema {
	s := &FunctionSchema{}
	s.core = newCore(KindFunction, s)
	return s
}

// Input returns a copy with the given positional parameter schemas.
func (s *FunctionSchema) Input(schemas ...Schema) *FunctionSchema {
	out := *s
	out.inputs = append([]Schema(nil), schemas...)
	out.core = newCore(KindFunction, &out)
	return &out
}

// Output returns a copy with the declared return schema.
func (s *FunctionSchema) Output(schema Schema) *FunctionSchema {
	out := *s
	out.output = schema
	out.core = newCore(KindFunction, &out)
	return &out
}

// Inputs returns the declared parameter schemas in order.
func (s *FunctionSchema) Inputs() []Schema {
	return append([]Schema(nil), s.inputs...)
}

// OutputSchema returns the declared return schema, or nil when none was
// declared.
func (s *FunctionSchema) OutputSchema() Schema { return s.output }

// As a schema node, a function schema accepts any Go func value.
func (s *FunctionSchema) validate(p *payload, ctx *ParseContext) {
	if p.value == nil || reflect.TypeOf(p.value).Kind() != reflect.Func {
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected function, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindFunction),
			Expected: "function",
			Received: typeName(p.value),
		})
	}
}

// Implement wraps fn with the declared contract and returns the guarded
// callable.
//
// The wrapper checks the argument count first and never invokes fn on a
// mismatch. It then validates every position before giving up, so one call
// surfaces every bad argument. When fn itself returns an error, that error
// propagates unchanged and the output schema is not consulted. When no
// output schema was declared, fn's result passes through unvalidated; this
// pass-through is part of the contract and callers rely on receiving the
// value. A *Future result is handled without blocking: the wrapper returns
// a new future that validates the resolved value on settlement and
// propagates a rejection untouched.
func (s *FunctionSchema) Implement(fn Func) Func {
	if fn == nil {
		panic("sift: Implement requires a function")
	}
	inputs := s.inputs
	output := s.output

	return func(args ...any) (any, error) {
		// 1. Arity gate. fn must never run when the count is wrong, and the
		// structural issue stands alone: per-argument checks are moot.
		if len(args) != len(inputs) {
			return nil, issue.NewError([]issue.Issue{{
				Code:     issue.CodeInvalidFunctionArity,
				Message:  fmt.Sprintf("expected %d arguments, received %d", len(inputs), len(args)),
				Origin:   string(KindFunction),
				Expected: len(inputs),
				Received: len(args),
			}})
		}

		// 2. Validate every position, aggregating one issue per failing
		// argument with the detail nested under it.
		validated := make([]any, len(args))
		var issues []issue.Issue
		for i, arg := range args {
			child := &payload{value: arg}
			inputs[i].validate(child, &ParseContext{})
			if len(child.issues) > 0 {
				issues = append(issues, issue.Issue{
					Code:    issue.CodeInvalidFunctionArgument,
					Path:    issue.Path{issue.Index(i)},
					Message: fmt.Sprintf("invalid argument %d: %s", i, child.issues[0].Message),
					Input:   arg,
					Origin:  string(KindFunction),
					Issues:  child.issues,
				})
				continue
			}
			validated[i] = child.value
		}
		if len(issues) > 0 {
			return nil, issue.NewError(issues)
		}

		// 3. Invoke exactly once, with the coerced arguments.
		result, err := fn(validated...)
		if err != nil {
			// A failed call propagates unchanged; the output contract only
			// speaks about successful results.
			return result, err
		}

		// 4. No declared output: pass the result through untouched, even
		// though nothing vouches for it. Futures pass through unvalidated
		// too.
		if output == nil {
			return result, nil
		}

		// 5. Asynchronous result: validate on settlement, without blocking
		// this call.
		if fut, ok := result.(*Future); ok {
			return chainOutput(fut, output), nil
		}

		// 6. Synchronous result: fn has already run, so a mismatch surfaces
		// after its side effects. There is no rollback.
		return validateReturn(result, output)
	}
}

// validateReturn checks a settled result against the output schema.
func validateReturn(result any, output Schema) (any, error) {
	child := &payload{value: result}
	output.validate(child, &ParseContext{})
	if len(child.issues) > 0 {
		return nil, issue.NewError([]issue.Issue{{
			Code:    issue.CodeInvalidFunctionReturn,
			Message: "invalid return value: " + child.issues[0].Message,
			Input:   result,
			Origin:  string(KindFunction),
			Issues:  child.issues,
		}})
	}
	return child.value, nil
}

// chainOutput returns a future that validates fut's resolved value against
// output. A rejection of fut propagates unchanged: the output schema is
// never consulted for a failed computation.
func chainOutput(fut *Future, output Schema) *Future {
	out := NewFuture()
	go func() {
		result, err := fut.Await(context.Background())
		if err != nil {
			out.Reject(err)
			return
		}
		validated, verr := validateReturn(result, output)
		if verr != nil {
			out.Reject(verr)
			return
		}
		out.Resolve(validated)
	}()
	return out
}

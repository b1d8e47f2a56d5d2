package sift

import "fmt"

// Fixed-arity typed wrappers over Implement. Go generics cannot derive one
// function signature per schema value, so the statically typed form is
// offered as a small family; the untyped Implement remains the general
// mechanism and the runtime contract is identical. Each wrapper panics at
// wrap time when the schema's declared input count does not match the
// type-level arity, since that mismatch is a programming error.

// Implement0 wraps a niladic function.
func Implement0[R any](s *FunctionSchema, fn func() (R, error)) func() (R, error) {
	mustArity(s, 0)
	wrapped := s.Implement(func(...any) (any, error) {
		return fn()
	})
	return func() (R, error) {
		return assertResult[R](wrapped())
	}
}

// Implement1 wraps a unary function.
func Implement1[A, R any](s *FunctionSchema, fn func(A) (R, error)) func(A) (R, error) {
	mustArity(s, 1)
	wrapped := s.Implement(func(args ...any) (any, error) {
		a, err := assertArg[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		return fn(a)
	})
	return func(a A) (R, error) {
		return assertResult[R](wrapped(a))
	}
}

// Implement2 wraps a binary function.
func Implement2[A, B, R any](s *FunctionSchema, fn func(A, B) (R, error)) func(A, B) (R, error) {
	mustArity(s, 2)
	wrapped := s.Implement(func(args ...any) (any, error) {
		a, err := assertArg[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := assertArg[B](args[1], 1)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	})
	return func(a A, b B) (R, error) {
		return assertResult[R](wrapped(a, b))
	}
}

// Implement3 wraps a ternary function.
func Implement3[A, B, C, R any](s *FunctionSchema, fn func(A, B, C) (R, error)) func(A, B, C) (R, error) {
	mustArity(s, 3)
	wrapped := s.Implement(func(args ...any) (any, error) {
		a, err := assertArg[A](args[0], 0)
		if err != nil {
			return nil, err
		}
		b, err := assertArg[B](args[1], 1)
		if err != nil {
			return nil, err
		}
		c, err := assertArg[C](args[2], 2)
		if err != nil {
			return nil, err
		}
		return fn(a, b, c)
	})
	return func(a A, b B, c C) (R, error) {
		return assertResult[R](wrapped(a, b, c))
	}
}

func mustArity(s *FunctionSchema, want int) {
	if len(s.inputs) != want {
		panic(fmt.Sprintf("sift: schema declares %d inputs, wrapper expects %d", len(s.inputs), want))
	}
}

// assertArg converts a validated argument to its declared Go type. The
// validated value may differ from the raw input where the schema coerces,
// so the declared type must match the schema's canonical output (float64
// for Number, int64 for Int).
func assertArg[T any](v any, pos int) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("sift: argument %d is %T after validation, not %T", pos, v, zero)
	}
	return t, nil
}

func assertResult[R any](v any, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("sift: result is %T, not %T", v, zero)
	}
	return r, nil
}

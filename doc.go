/*
Package sift is a runtime schema-validation engine: a tree of composable,
immutable schema nodes that validate arbitrary input values, collect
structured path-qualified issues, and wrap functions with argument/return
contracts.

It separates the schema (built once, shared freely) from the validation call
(a pure traversal that owns all of its per-call state), so one schema tree
serves any number of concurrent parses without locking.

# Concept

A schema is declared with factory functions and composed from smaller
schemas. Validating a value walks the tree exactly once and aggregates every
failure it finds into ordered, path-qualified issues; nothing panics
mid-traversal and nothing stops at the first problem unless asked to. The
(value, error) pair returned by Parse is the tagged result; MustParse is the
panicking form for inputs whose invalidity is a bug.

# Key Features

  - Aggregate error reporting: one call surfaces every issue, each with the
    full path from the root (for example "profile.tags[2]").
  - Immutable composition: modifiers like Min, Strict and Output return new
    schemas; existing trees never change behind a caller's back.
  - Function contracts: Implement wraps a callable so arity and argument
    validation run before the function and output validation after it, with
    a non-blocking path for asynchronous results.
  - Schema files: the registry and compiler subpackages load schema
    definitions from YAML/Markdown documents and keep them hot-reloaded.

# Usage

	package main

	import (
		"errors"
		"fmt"

		"github.com/aretw0/sift"
		"github.com/aretw0/sift/pkg/issue"
	)

	func main() {
		user := sift.Object(map[string]sift.Schema{
			"name": sift.String().Min(1),
			"age":  sift.Int().Min(0),
			"role": sift.Enum("admin", "member", "guest"),
			"tags": sift.Optional(sift.Array(sift.String())),
		})

		_, err := user.Parse(map[string]any{
			"name": "",
			"age":  -3,
			"role": "root",
		})

		var verr *issue.Error
		if errors.As(err, &verr) {
			for _, is := range verr.Issues {
				fmt.Printf("%s %s: %s\n", is.Code, is.Path, is.Message)
			}
		}
	}
*/
package sift

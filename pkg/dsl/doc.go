/*
Package dsl derives schemas from Go struct definitions, so a type's
validation rules can live on its fields as tags instead of a separate
schema declaration.

Example usage:

	package main

	import (
		"github.com/aretw0/sift"
		"github.com/aretw0/sift/pkg/dsl"
	)

	type Profile struct {
		Name string   `sift:"name,min=2,max=40"`
		Role string   `sift:"role,values=admin|member"`
		Tags []string `sift:"tags,omitempty"`
	}

	var ProfileSchema = dsl.MustFromStruct[Profile]()

	func main() {
		p, err := sift.Bind[Profile](ProfileSchema, map[string]any{
			"name": "ada",
			"role": "admin",
		})
		// ...
	}

The same tags that drive the derivation drive Bind's decode, so a type
declares its rules once and both validates and materializes with them.
*/
package dsl

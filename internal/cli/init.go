package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/sift/pkg/registry"
)

// InitOptions contains all the configuration for the init command.
type InitOptions struct {
	Dir   string
	Force bool // overwrite existing starter files
	Quiet bool
	Debug bool
	Out   io.Writer
}

// starterDocs are the documents init scaffolds: a ref target plus an
// object that exercises most of the document syntax. Keys double as
// filenames.
var starterDocs = map[string]string{
	"role.md": `---
name: role
type: enum
values: [admin, editor, viewer]
---

Access level granted to a user.
`,
	"user.md": `---
name: user
type: object
unknown: strict
fields:
  name:
    type: string
    min: 1
  email:
    type: string
    pattern: "^[^@\\s]+@[^@\\s]+$"
  role:
    type: ref
    ref: role
  tags:
    type: "[string]"
    optional: true
---

A user account. One schema per document; this body is its doc text.
`,
}

// RunInit scaffolds a schema directory with starter documents and loads
// it once to prove the result compiles. Existing files are left alone
// unless Force is set.
func RunInit(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Dir == "" {
		return fmt.Errorf("a target directory is required")
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if !opts.Force {
		for name := range starterDocs {
			path := filepath.Join(opts.Dir, name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
		}
	}

	for name, content := range starterDocs {
		path := filepath.Join(opts.Dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	// Open the fresh directory as a registry so a broken scaffold never
	// reaches the user silently.
	logger := createLogger(opts.Debug)
	reg, err := registry.Open(context.Background(), opts.Dir, registry.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("scaffold did not load back: %w", err)
	}

	if !opts.Quiet {
		names := reg.List()
		printSystemMessage(opts.Out, "Initialized %s with %d schemas: %v", opts.Dir, len(names), names)
	}
	return nil
}

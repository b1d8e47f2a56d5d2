package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/sift/internal/compiler"
	"github.com/aretw0/sift/internal/dto"
	"github.com/aretw0/sift/internal/presentation/markdown"
	"github.com/aretw0/sift/internal/presentation/tui"
)

// DescribeOptions contains all the configuration for the describe command.
type DescribeOptions struct {
	SchemaPath string
	Dir        string
	Name       string
	Raw        bool
	Debug      bool
	Out        io.Writer
}

// RunDescribe prints a human-readable summary of a schema: its shape,
// field constraints and doc text. The summary is markdown, rendered for
// the terminal unless Raw is set or output is not a TTY.
func RunDescribe(opts DescribeOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	spec, err := describeSpec(opts)
	if err != nil {
		return err
	}

	doc := markdown.Describe(spec)

	if !opts.Raw && tui.IsTerminal(opts.Out) {
		render := tui.NewRenderer()
		if pretty, err := render(doc); err == nil {
			doc = pretty
		}
	}

	fmt.Fprint(opts.Out, doc)
	return nil
}

// describeSpec resolves the spec to describe, from a file or from a
// registry directory. Describing only needs the parsed document, so
// a lone file with refs still renders without its dependencies.
func describeSpec(opts DescribeOptions) (*dto.SchemaSpec, error) {
	switch {
	case opts.SchemaPath != "" && opts.Dir != "":
		return nil, fmt.Errorf("a schema file and --dir are mutually exclusive")
	case opts.SchemaPath != "":
		return loadSpecFile(opts.SchemaPath)
	case opts.Dir != "":
		if opts.Name == "" {
			return nil, fmt.Errorf("--name is required with --dir")
		}
		logger := createLogger(opts.Debug)
		reg, _, err := openRegistry(context.Background(), opts.Dir, opts.Name, logger)
		if err != nil {
			return nil, err
		}
		raw, err := reg.Source(opts.Name)
		if err != nil {
			return nil, err
		}
		return compiler.New(compiler.WithLogger(logger)).Parse(raw)
	default:
		return nil, fmt.Errorf("a schema file or --dir is required")
	}
}

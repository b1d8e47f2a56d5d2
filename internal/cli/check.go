package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/loam"

	"github.com/aretw0/sift/internal/compiler"
	"github.com/aretw0/sift/internal/dto"
	"github.com/aretw0/sift/internal/validator"
	loamAdapter "github.com/aretw0/sift/pkg/adapters/loam"
)

// ErrProblems reports that the schema set has integrity problems.
var ErrProblems = errors.New("schema problems found")

// CheckOptions contains all the configuration for the check command.
type CheckOptions struct {
	Dir   string
	Quiet bool
	Debug bool
	Out   io.Writer
}

// RunCheck loads every schema document under the directory and reports
// integrity problems: unparseable documents, dangling refs, duplicate
// names, empty enums, inverted bounds. Unlike validate, it inspects the
// schema set itself rather than data.
func RunCheck(opts CheckOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Dir == "" {
		return fmt.Errorf("a schema directory is required")
	}
	logger := createLogger(opts.Debug)

	absPath, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize loam: %w", err)
	}
	loader := loamAdapter.New(loam.NewTypedRepository[loamAdapter.SchemaMetadata](repo))

	ids, err := loader.ListSchemas()
	if err != nil {
		return err
	}

	// Unparseable documents are reported as problems rather than aborting,
	// so one broken file does not hide the rest of the report.
	var problems []validator.Problem
	specs := make(map[string]*dto.SchemaSpec, len(ids))
	comp := compiler.New(compiler.WithLogger(logger))
	for _, id := range ids {
		raw, err := loader.GetSchema(id)
		if err != nil {
			problems = append(problems, validator.Problem{Schema: id, Msg: err.Error()})
			continue
		}
		spec, err := comp.Parse(raw)
		if err != nil {
			problems = append(problems, validator.Problem{Schema: id, Msg: err.Error()})
			continue
		}
		specs[spec.Name] = spec
	}

	problems = append(problems, validator.Check(specs)...)

	if len(problems) == 0 {
		if !opts.Quiet {
			fmt.Fprintf(opts.Out, "ok: %d schemas, no problems\n", len(specs))
		}
		return nil
	}

	if !opts.Quiet {
		for _, p := range problems {
			fmt.Fprintln(opts.Out, p.String())
		}
	}
	return fmt.Errorf("%d problems in %d schemas: %w", len(problems), len(ids), ErrProblems)
}

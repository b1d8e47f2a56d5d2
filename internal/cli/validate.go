package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/presentation/tui"
	"github.com/aretw0/sift/pkg/issue"
	"github.com/aretw0/sift/pkg/runner"
)

// Output formats for validation reports.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidInput reports that at least one data document failed
// validation. Commands map it to a non-zero exit without a usage dump.
var ErrInvalidInput = errors.New("validation failed")

// ValidateOptions contains all the configuration for the validate command.
type ValidateOptions struct {
	SchemaPath string   // standalone schema document
	Dir        string   // registry directory, alternative to SchemaPath
	Name       string   // schema name inside the registry
	DataPaths  []string // data documents; "-" reads stdin
	Format     string   // text | json
	AbortEarly bool
	Quiet      bool
	Watch      bool
	Debug      bool

	// Out and In default to the process streams; tests inject buffers.
	Out io.Writer
	In  io.Reader
}

func (o *ValidateOptions) normalize() error {
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Format == "" {
		o.Format = FormatText
	}
	if o.Format != FormatText && o.Format != FormatJSON {
		return fmt.Errorf("unsupported format %q (want %s or %s)", o.Format, FormatText, FormatJSON)
	}
	if o.SchemaPath == "" && o.Dir == "" {
		return fmt.Errorf("a schema document or --dir is required")
	}
	if o.SchemaPath != "" && o.Dir != "" {
		return fmt.Errorf("schema document and --dir are mutually exclusive")
	}
	if len(o.DataPaths) == 0 {
		return fmt.Errorf("at least one data document is required ('-' for stdin)")
	}
	return nil
}

// RunValidate executes the validate command: it resolves the schema,
// decodes every data document and reports the outcome in the requested
// format. A non-nil ErrInvalidInput signals failing inputs.
func RunValidate(opts ValidateOptions) error {
	if err := opts.normalize(); err != nil {
		return err
	}
	if opts.Watch {
		return RunValidateWatch(opts)
	}

	logger := createLogger(opts.Debug)
	ctx := context.Background()

	var schema sift.Schema
	var err error
	if opts.Dir != "" {
		_, schema, err = openRegistry(ctx, opts.Dir, opts.Name, logger)
	} else {
		schema, err = compileSchemaFile(opts.SchemaPath, logger)
	}
	if err != nil {
		return err
	}

	inputs, err := decodeInputs(opts)
	if err != nil {
		return err
	}

	report, err := validateOnce(ctx, schema, inputs, opts, logger)
	if err != nil {
		return err
	}
	if !report.Valid() {
		return fmt.Errorf("%d of %d inputs failed: %w",
			report.Failed(), len(report.Results), ErrInvalidInput)
	}
	return nil
}

// decodeInputs reads every data document into a named runner input.
func decodeInputs(opts ValidateOptions) ([]runner.Input, error) {
	inputs := make([]runner.Input, 0, len(opts.DataPaths))
	for _, path := range opts.DataPaths {
		value, err := decodeDataFile(path, opts.In)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inputName(path), err)
		}
		inputs = append(inputs, runner.Input{Name: inputName(path), Value: value})
	}
	return inputs, nil
}

// validateOnce runs one batch validation and renders it per the options.
func validateOnce(ctx context.Context, s sift.Schema, inputs []runner.Input, opts ValidateOptions, logger *slog.Logger) (*runner.Report, error) {
	rOpts := []runner.Option{runner.WithLogger(logger)}
	if opts.AbortEarly {
		rOpts = append(rOpts, runner.WithAbortEarly())
	}
	if opts.Format == FormatText && !opts.Quiet {
		rOpts = append(rOpts, runner.WithOutput(opts.Out))
		if tui.IsTerminal(opts.Out) {
			rOpts = append(rOpts, runner.WithRenderer(tui.NewReportRenderer()))
		}
	}

	report, err := runner.New(rOpts...).Run(ctx, s, inputs)
	if err != nil {
		return nil, err
	}

	if opts.Format == FormatJSON && !opts.Quiet {
		if err := emitJSON(opts.Out, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// jsonResult is the machine-readable report entry. Issue fields keep the
// stable names from pkg/issue.
type jsonResult struct {
	Name   string        `json:"name"`
	Valid  bool          `json:"valid"`
	Issues []issue.Issue `json:"issues,omitempty"`
}

func emitJSON(out io.Writer, report *runner.Report) error {
	results := make([]jsonResult, 0, len(report.Results))
	for _, res := range report.Results {
		jr := jsonResult{Name: res.Name, Valid: res.Valid()}
		if res.Err != nil {
			jr.Issues = res.Err.Issues
		}
		results = append(results, jr)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

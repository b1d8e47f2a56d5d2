package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/sift/internal/cli"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [schema] [data...]",
	Short: "Validate data documents against a schema",
	Long: `Validates one or more data documents (YAML or JSON, '-' for stdin)
against a schema. The schema comes from a standalone document given as
the first argument, or from a schema directory via --dir and --name.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ValidateOptions{}
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Name, _ = cmd.Flags().GetString("name")
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.AbortEarly, _ = cmd.Flags().GetBool("abort-early")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		if opts.Dir != "" {
			opts.DataPaths = args
		} else if len(args) > 0 {
			opts.SchemaPath = args[0]
			opts.DataPaths = args[1:]
		}

		if err := cli.RunValidate(opts); err != nil {
			// Failing inputs already rendered a report; everything else
			// deserves a message.
			if !errors.Is(err, cli.ErrInvalidInput) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("dir", "", "Schema directory to load instead of a standalone document")
	validateCmd.Flags().String("name", "", "Schema name inside --dir")
	validateCmd.Flags().StringP("format", "f", cli.FormatText, "Report format: text or json")
	validateCmd.Flags().Bool("abort-early", false, "Stop each document at its first issue")
	validateCmd.Flags().BoolP("quiet", "q", false, "Suppress the report; exit code only")
	validateCmd.Flags().BoolP("watch", "w", false, "Revalidate when the schema directory changes (requires --dir)")
}

package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sift/internal/cli"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [schema]",
	Short: "Export a schema as an OpenAPI 3 document",
	Long: `Compiles a schema and emits the equivalent OpenAPI 3 schema object.
Schemas with no OpenAPI form, such as functions and custom checks,
are rejected rather than exported lossily.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ExportOptions{}
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Name, _ = cmd.Flags().GetString("name")
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.OutPath, _ = cmd.Flags().GetString("out")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		if len(args) > 0 {
			opts.SchemaPath = args[0]
		}

		if err := cli.RunExport(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("dir", "", "Schema directory to load instead of a standalone document")
	exportCmd.Flags().String("name", "", "Schema name inside --dir")
	exportCmd.Flags().StringP("format", "f", cli.FormatOpenAPIJSON, "Export format: openapi-json or openapi-yaml")
	exportCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")
}

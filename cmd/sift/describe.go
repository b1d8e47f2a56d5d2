package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sift/internal/cli"
	"github.com/spf13/cobra"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [schema]",
	Short: "Print a human-readable summary of a schema",
	Long: `Renders a schema document as a readable summary: its shape, field
constraints and doc text. Output is markdown, pretty-printed when
stdout is a terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.DescribeOptions{}
		opts.Dir, _ = cmd.Flags().GetString("dir")
		opts.Name, _ = cmd.Flags().GetString("name")
		opts.Raw, _ = cmd.Flags().GetBool("raw")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		if len(args) > 0 {
			opts.SchemaPath = args[0]
		}

		if err := cli.RunDescribe(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().String("dir", "", "Schema directory to load instead of a standalone document")
	describeCmd.Flags().String("name", "", "Schema name inside --dir")
	describeCmd.Flags().Bool("raw", false, "Print plain markdown without terminal rendering")
}

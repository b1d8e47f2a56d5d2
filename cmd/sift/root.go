package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "Sift is a schema validation engine",
	Long: `Sift validates data against declarative schema documents: plain YAML,
JSON or Markdown files with frontmatter. Schemas compose through refs,
carry constraints and refinements, and compile into validators that
report every problem with its exact path.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

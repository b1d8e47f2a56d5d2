package main

import (
	"fmt"
	"os"

	"github.com/aretw0/sift/internal/cli"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a schema directory with starter documents",
	Long: `Creates a schema directory seeded with commented starter documents
and loads it back once to prove the set compiles. The default target
is ./schemas.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "schemas"
		if len(args) > 0 {
			dir = args[0]
		}
		force, _ := cmd.Flags().GetBool("force")
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunInit(cli.InitOptions{Dir: dir, Force: force, Quiet: quiet, Debug: debug})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite existing starter files")
	initCmd.Flags().BoolP("quiet", "q", false, "Suppress the confirmation message")
}

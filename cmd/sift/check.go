package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/sift/internal/cli"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Check a schema directory for integrity problems",
	Long: `Loads every schema document under the directory and reports problems
in the set itself: unparseable documents, dangling refs, duplicate
names, empty enums and inverted bounds. No data is validated.`,
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")

		err := cli.RunCheck(cli.CheckOptions{Dir: dir, Quiet: quiet, Debug: debug})
		if err != nil {
			if !errors.Is(err, cli.ErrProblems) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolP("quiet", "q", false, "Suppress the problem list; exit code only")
}

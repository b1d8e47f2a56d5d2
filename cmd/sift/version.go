package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sift"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sift",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sift version %s\n", strings.TrimSpace(sift.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

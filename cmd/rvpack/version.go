package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at release time via -ldflags "-X main.version=...".
var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rvpack version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rvpack", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"rvpack/builder"
)

var (
	cleanOutDir string

	cleanCmd = &cobra.Command{
		Use:   "clean",
		Short: "Remove archives and objects from the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return builder.Clean(cleanOutDir)
		},
	}
)

func init() {
	cleanCmd.Flags().StringVar(&cleanOutDir, "out-dir", builder.DefaultOutputDir, "output directory")

	rootCmd.AddCommand(cleanCmd)
}

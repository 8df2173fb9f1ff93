package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rvpack/builder"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the resolved tool environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := builder.Environment()
		for _, entry := range env.List() {
			fmt.Println(entry)
		}

		toolchain, err := builder.FindToolchain(env)
		if err != nil {
			return err
		}
		fmt.Printf("cc=%s\n", toolchain.CC)
		fmt.Printf("ar=%s\n", toolchain.AR)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rvpack/builder"
)

var listCmd = &cobra.Command{
	Use:   "list <archive>",
	Short: "Print the members of a static archive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := builder.ArchiveMembers(args[0])
		if err != nil {
			return err
		}
		for _, member := range members {
			fmt.Printf("%-20s %8d\n", member.Name, member.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

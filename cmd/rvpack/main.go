package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rvpack/internal/logger"
)

var (
	verbose bool
	noColor bool

	rootCmd = &cobra.Command{
		Use:   "rvpack",
		Short: "Build static archives from bare-metal RISC-V assembly",
		Long: "rvpack drives an external RISC-V cross toolchain to turn assembly\n" +
			"sources into fresh static archives with a symbol index, the way HAL\n" +
			"and runtime crates pre-build their trap and startup code.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(verbose, noColor)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every step")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

package logger

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init configures the default logger. Build tool output goes to stderr so
// stdout stays reserved for machine-readable output (member listings, env
// dumps).
func Init(verbose, noColor bool) {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "rvpack",
	}))

	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}

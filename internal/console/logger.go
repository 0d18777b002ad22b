package console

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/natively-ui/natively/internal/branding"
)

// NewLogger returns the diagnostic logger. Debug records (request URLs,
// probe results, subprocess arguments) are only emitted when verbose is set.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          branding.CLIName(),
		Level:           level,
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
	})
}

// NopLogger returns a logger that discards everything.
func NopLogger() *log.Logger {
	return log.New(io.Discard)
}

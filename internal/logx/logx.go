// Package logx builds the shared CLI logger.
package logx

import (
	"os"

	"github.com/charmbracelet/log"
)

// New creates a stderr logger. With verbose set, debug traces from
// the provisioning layer are included.
func New(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

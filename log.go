package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger builds the process logger. Diagnostics go to stderr so the
// output stays usable in pipelines.
func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

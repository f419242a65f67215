/*
Package logger - Structured logging configuration for the scheduler

==============================================================================
FILE: internal/logger/logger.go
==============================================================================

DESCRIPTION:
    Configures structured logging using logrus. Provides environment-based
    log level configuration and a per-run logger that attaches a run_id
    field to every line for the duration of one solve, the way an HTTP
    logging middleware would attach per-request fields for the duration of one
    request.

USER PERSPECTIVE:
    - Production logs are optimized (Info level) to reduce noise while
      development runs log at Debug level
    - JSON format enables easy parsing by log aggregation tools

DEVELOPER GUIDELINES:
    OK to modify: Log output destination (stdout, file, log aggregator)
    OK to modify: Add custom log fields for specific pipeline stages
    CAUTION: Changing formatter type - ensure downstream tools can parse it
    DO NOT modify: Core logrus fields structure without updating log parsers

LOG LEVELS (from most to least severe):
    - Error: solver/model failures
    - Warn: capacity shortfalls
    - Info: stage transitions, solve outcome
    - Debug: enabled outside production; no pipeline stage logs at this level

==============================================================================
*/
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup initializes the logger for a given environment.
func Setup(env string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	if env == "production" {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

// ForRun returns an entry scoped to one solve, tagging every line with the
// run's correlation ID for the duration of the solve.
func ForRun(log *logrus.Logger, runID string) *logrus.Entry {
	return log.WithFields(logrus.Fields{"run_id": runID})
}

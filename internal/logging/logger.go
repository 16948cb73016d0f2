// Package logging builds the component loggers used across the app.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LevelEnv overrides the configured log level.
const LevelEnv = "STUDYFOCUS_LOG_LEVEL"

// Options configures a logger.
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// New returns a logger tagged with component.
// The level comes from LevelEnv, then options.Level, then "info".
func New(component string, options Options) *logrus.Entry {
	logger := logrus.New()

	levelStr := "info"
	if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
		levelStr = env
	} else if options.Level != "" {
		levelStr = options.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if options.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if options.Output != nil {
		logger.SetOutput(options.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	return logger.WithField("component", component)
}

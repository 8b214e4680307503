// Package logging builds the console loggers used across the tool.
package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLevel overrides the configured log level when set.
const EnvLevel = "RBEIT_LOG_LEVEL"

// New returns a console logger for one component, writing to stderr so
// exported data on stdout stays clean. Unknown or empty levels fall
// back to info. The returned logger also becomes the global default.
func New(component, level string) zerolog.Logger {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Str("component", component).Logger().Level(lvl)
	log.Logger = logger
	return logger
}

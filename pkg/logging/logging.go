// Package logging configures the global zerolog logger. Diagnostics always
// go to stderr so that report output on stdout stays machine-readable.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// logWriter stores the current log destination globally
	logWriter io.Writer = os.Stderr
)

// init keeps the global level at error until ConfigureGlobalLogging runs.
func init() {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	log.Logger = zerolog.New(consoleWriter(logWriter)).With().Timestamp().Logger()
}

// ConfigureGlobalLogging configures the global logger from the log.level
// and log.format settings.
func ConfigureGlobalLogging(levelStr, format string) {
	level := parseLogLevel(levelStr)
	zerolog.SetGlobalLevel(level)

	var w io.Writer = logWriter
	if strings.ToLower(format) != "json" {
		w = consoleWriter(logWriter)
	}

	logContext := zerolog.New(w).With().Timestamp()
	if level <= zerolog.DebugLevel {
		logContext = logContext.Caller()
	}

	log.Logger = logContext.Logger().Level(level)
	zerolog.DefaultContextLogger = &log.Logger
}

func consoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}
}

// parseLogLevel converts a string log level to zerolog.Level
func parseLogLevel(levelString string) zerolog.Level {
	if levelString == "" {
		levelString = "error"
	}

	level, err := zerolog.ParseLevel(strings.ToLower(levelString))
	if err != nil {
		log.Error().Err(err).
			Str("logLevel", levelString).
			Msg("Invalid log level provided. Defaulting to error level.")
		return zerolog.ErrorLevel
	}
	return level
}

// SetLogWriter sets the global log destination. It takes effect on the
// next ConfigureGlobalLogging call.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

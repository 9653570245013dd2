// Package logger configures the process-wide zerolog logger.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration options.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Pretty enables the human-readable console writer.
	Pretty bool
}

// Configure sets up the global logger according to the given config.
func Configure(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if cfg.Pretty {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
		logger = zerolog.New(output).With().Timestamp().Caller().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	log.Logger = logger
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug starts a debug-level event on the global logger
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info starts an info-level event on the global logger
func Info() *zerolog.Event {
	return log.Info()
}

// Warn starts a warn-level event on the global logger
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error starts an error-level event on the global logger
func Error() *zerolog.Event {
	return log.Error()
}

// Fatal starts a fatal-level event on the global logger
func Fatal() *zerolog.Event {
	return log.Fatal()
}

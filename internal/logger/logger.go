// Package logger wraps zerolog with the service-level conventions used
// across this module: pretty console output in development, JSON in
// production, and a nil-safe handle so internal packages can take a
// *Logger without forcing every caller to configure one.
package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with codec-specific context.
type Logger struct {
	logger zerolog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level       string `json:"level" env:"IPCOLUMN_LOG_LEVEL" envDefault:"info"`
	Environment string `json:"environment" env:"IPCOLUMN_ENVIRONMENT" envDefault:"development"`
	Component   string `json:"component" env:"IPCOLUMN_COMPONENT" envDefault:"ipcolumn"`
}

// New creates a new Logger with the given configuration.
func New(config Config) *Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if config.Environment == "development" || config.Environment == "dev" {
		colorForLevel := func(level string) string {
			switch strings.ToLower(level) {
			case "debug":
				return "[36m" // cyan
			case "info":
				return "[32m" // green
			case "warn", "warning":
				return "[33m" // yellow
			case "error":
				return "[31m" // red
			case "fatal", "panic":
				return "[35m" // magenta
			default:
				return "[0m" // reset
			}
		}
		reset := "[0m"

		output := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				lvl := fmt.Sprintf("%v", i)
				color := colorForLevel(lvl)
				return fmt.Sprintf("%s| %-6s|%s", color, strings.ToUpper(lvl), reset)
			},
			FormatMessage: func(i interface{}) string {
				return fmt.Sprintf("%-50s", i)
			},
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	logger = logger.With().Str("component", config.Component).Logger()

	return &Logger{logger: logger}
}

// addFields adds a field map to an in-flight event.
func addFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}

// Debug logs a debug message. Safe to call on a nil *Logger (no-op).
func (l *Logger) Debug(msg string, fields ...map[string]interface{}) {
	if l == nil {
		return
	}
	event := l.logger.Debug()
	for _, f := range fields {
		event = addFields(event, f)
	}
	event.Msg(msg)
}

// Info logs an info message. Safe to call on a nil *Logger (no-op).
func (l *Logger) Info(msg string, fields ...map[string]interface{}) {
	if l == nil {
		return
	}
	event := l.logger.Info()
	for _, f := range fields {
		event = addFields(event, f)
	}
	event.Msg(msg)
}

// Warn logs a warning message. Safe to call on a nil *Logger (no-op).
func (l *Logger) Warn(msg string, fields ...map[string]interface{}) {
	if l == nil {
		return
	}
	event := l.logger.Warn()
	for _, f := range fields {
		event = addFields(event, f)
	}
	event.Msg(msg)
}

// Error logs an error message. Safe to call on a nil *Logger (no-op).
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	if l == nil {
		return
	}
	event := l.logger.Error()
	if err != nil {
		event = event.Err(err)
	}
	for _, f := range fields {
		event = addFields(event, f)
	}
	event.Msg(msg)
}

// GetZerolog returns the underlying zerolog logger for advanced usage.
func (l *Logger) GetZerolog() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.logger
}

package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
}

// SetLevel sets the global log level
func SetLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Debug logs a debug message
func Debug(msg string) {
	logger.Debug().Msg(msg)
}

// Debugf logs a debug message with formatting
func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

// Info logs an info message
func Info(msg string) {
	logger.Info().Msg(msg)
}

// Infof logs an info message with formatting
func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

// Warn logs a warning message
func Warn(msg string) {
	logger.Warn().Msg(msg)
}

// Warnf logs a warning message with formatting
func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

// Error logs an error message with the error object
func Error(msg string, err error) {
	logger.Error().Err(err).Msg(msg)
}

// Errorf logs an error message with formatting and the error object
func Errorf(format string, err error, v ...interface{}) {
	logger.Error().Err(err).Msgf(format, v...)
}

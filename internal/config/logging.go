package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logging environment variables.
const (
	logLevelEnvKey = "ROCKSHOT_LOG_LEVEL"
	logFileEnvKey  = "ROCKSHOT_LOG_FILE"
)

// NewLogger creates a timestamped logger writing to w at the level named by
// ROCKSHOT_LOG_LEVEL (info when unset or unknown).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv(logLevelEnvKey, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// LogFileFromEnv opens the file named by ROCKSHOT_LOG_FILE for appending.
// With no file configured it returns io.Discard and a no-op close.
func LogFileFromEnv() (io.Writer, func() error, error) {
	path := GetEnv(logFileEnvKey, "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv(logLevelEnvKey, "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Info("hidden")
	logger.Warn("shown", "score", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "score=3") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestNewLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	t.Setenv(logLevelEnvKey, "chatty")
	var buf bytes.Buffer
	NewLogger(&buf, "").Info("hello")

	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("info line missing: %q", buf.String())
	}
}

func TestLogFileFromEnv(t *testing.T) {
	t.Setenv(logFileEnvKey, "")
	w, closeFn, err := LogFileFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if w != io.Discard {
		t.Error("expected io.Discard without a log file")
	}
	if err := closeFn(); err != nil {
		t.Error(err)
	}

	path := filepath.Join(t.TempDir(), "game.log")
	t.Setenv(logFileEnvKey, path)
	w, closeFn, err = LogFileFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, "line\n"); err != nil {
		t.Fatal(err)
	}
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "line\n" {
		t.Errorf("log file = %q", data)
	}
}

package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"albumdupes/internal/config"
	"albumdupes/internal/logging"
)

func TestNewFromConfigWritesToFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "debug"
	cfg.Logging.Output = filepath.Join(t.TempDir(), "logs", "albumdupes.log")

	logger, closeLog, err := logging.NewFromConfig(&cfg, "run-1")
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("debug message")
	if err := closeLog(); err != nil {
		t.Fatalf("close log file: %v", err)
	}
	if err := closeLog(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("expected log file to be closed already, got %v", err)
	}

	content, err := os.ReadFile(cfg.Logging.Output)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "debug message") {
		t.Fatalf("expected debug message in log file, got %q", content)
	}
	if !strings.Contains(string(content), "run_id=run-1") {
		t.Fatalf("expected run id on debug line, got %q", content)
	}
}

func TestNewFromNilConfig(t *testing.T) {
	logger, closeLog, err := logging.NewFromConfig(nil, "")
	if err != nil {
		t.Fatalf("NewFromConfig(nil) returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	if err := closeLog(); err != nil {
		t.Fatalf("closing a stderr logger should be a no-op, got %v", err)
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "dupes").Info("message without caller", logging.Int("groups", 2))

	out := buf.String()
	if strings.Contains(out, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", out)
	}
	if !strings.Contains(out, "INFO [dupes] – message without caller groups=2") {
		t.Fatalf("unexpected console line %q", out)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("filtered out")
	logger.Warn("entry skipped", logging.String("text", "No Separator"), logging.Bool("header", false))

	out := buf.String()
	if strings.Contains(out, "filtered out") {
		t.Fatalf("info line should be below warn level: %q", out)
	}
	if !strings.Contains(out, `text="No Separator" header=false`) {
		t.Fatalf("expected quoted value, got %q", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf, RunID: "abc"})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "json message" || entry["level"] != "info" || entry["k"] != "v" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry[logging.FieldRunID] != "abc" {
		t.Fatalf("expected run id, got %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", entry)
	}
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "console", Level: "invalid", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("expected info level, got %q", buf.String())
	}
}

func TestWithContextAddsInput(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := logging.WithInput(context.Background(), "albums.txt")

	logging.WithContext(ctx, logger).Info("contextual log")

	if !strings.Contains(buf.String(), `"input":"albums.txt"`) {
		t.Fatalf("expected input field, got %q", buf.String())
	}
	if _, ok := logging.InputFromContext(context.Background()); ok {
		t.Fatal("expected no input on empty context")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("no-op logger should not be enabled")
	}
	logging.NewComponentLogger(nil, "x").Error("discarded")
}

func TestCallerWriterIsNotClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caller.log")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer file.Close()

	logger, closeLog, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: file})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	logger.Info("still writable")
	if _, err := file.WriteString("tail\n"); err != nil {
		t.Fatalf("caller-supplied writer was closed: %v", err)
	}
}

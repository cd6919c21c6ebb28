package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewStdout(t *testing.T) {
	logger := NewStdout(false)
	if logger == nil {
		t.Fatal("NewStdout returned nil")
	}

	// Should not panic without a file
	logger.Info("test info")
	logger.Debug("suppressed debug")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "templet.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("picked template %s", "notes.txt")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "picked template notes.txt") {
		t.Errorf("log file missing message, got %q", content)
	}
	if !strings.Contains(content, "[INFO ]") {
		t.Errorf("log file missing level, got %q", content)
	}
}

func TestNew_AppendsAcrossInstances(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "templet.log")

	for _, msg := range []string{"first", "second"} {
		logger, err := New(logPath, false)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		logger.Info("%s", msg)
		logger.Close()
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Errorf("log file has %d lines, want 2:\n%s", got, data)
	}
}

func TestDebug_DisabledWritesNothing(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "templet.log")

	logger, err := New(logPath, false)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("should not appear")
	logger.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty log file, got %q", data)
	}
}

func TestSetGlobal(t *testing.T) {
	orig := Global()
	defer SetGlobal(orig)

	logger := NewStdout(false)
	SetGlobal(logger)

	if Global() != logger {
		t.Error("Global() did not return the logger set via SetGlobal")
	}
}

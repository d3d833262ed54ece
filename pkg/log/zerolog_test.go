package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]interface{}{}
		if err := jsoniter.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewZerologAdapterWithOptions(Options{Format: FormatJSON, Out: &buf, Level: "debug"})
	if err != nil {
		t.Fatalf("NewZerologAdapterWithOptions() error: %v", err)
	}
	defer closer.Close()

	logger.Info("processed",
		File("a.jpg"),
		Progress(2, 5),
		Int("index", 3),
		Any("margin", 0.03),
		Bool("rotated", true),
		Duration("took", 2*time.Second),
		Err(errors.New("boom")),
	)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	got := lines[0]
	if got["message"] != "processed" {
		t.Errorf("message = %v, want processed", got["message"])
	}
	if got["file"] != "a.jpg" {
		t.Errorf("file = %v, want a.jpg", got["file"])
	}
	if got["progress"] != "3/5" {
		t.Errorf("progress = %v, want 3/5", got["progress"])
	}
	if got["margin"] != 0.03 {
		t.Errorf("margin = %v, want 0.03", got["margin"])
	}
	if got["index"] != float64(3) {
		t.Errorf("index = %v, want 3", got["index"])
	}
	if got["rotated"] != true {
		t.Errorf("rotated = %v, want true", got["rotated"])
	}
	if got["error"] != "boom" {
		t.Errorf("error = %v, want boom", got["error"])
	}
	if got["level"] != "info" {
		t.Errorf("level = %v, want info", got["level"])
	}
}

func TestZerologAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewZerologAdapterWithOptions(Options{Format: FormatJSON, Out: &buf})
	if err != nil {
		t.Fatalf("NewZerologAdapterWithOptions() error: %v", err)
	}

	child := logger.With(String("file", "b.png"))
	child.Warn("first")
	child.Error("second")
	logger.Info("parent")

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i := 0; i < 2; i++ {
		if lines[i]["file"] != "b.png" {
			t.Errorf("line %d file = %v, want b.png", i, lines[i]["file"])
		}
	}
	if _, ok := lines[2]["file"]; ok {
		t.Error("parent logger picked up child field")
	}
}

func TestZerologAdapter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := NewZerologAdapterWithOptions(Options{Format: FormatJSON, Out: &buf, Level: "warn"})
	if err != nil {
		t.Fatalf("NewZerologAdapterWithOptions() error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "shown" {
		t.Errorf("lines = %v, want only the warning", lines)
	}
}

func TestNewZerologAdapterWithOptions_Errors(t *testing.T) {
	if _, _, err := NewZerologAdapterWithOptions(Options{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, _, err := NewZerologAdapterWithOptions(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestZerologAdapter_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logostamp.log")
	var buf bytes.Buffer
	logger, closer, err := NewZerologAdapterWithOptions(Options{Format: FormatJSON, Out: &buf, LogFile: path})
	if err != nil {
		t.Fatalf("NewZerologAdapterWithOptions() error: %v", err)
	}

	logger.Info("to both sinks")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "to both sinks") {
		t.Errorf("log file = %q, want message", data)
	}
	if !strings.Contains(buf.String(), "to both sinks") {
		t.Errorf("primary output = %q, want message", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Info("ignored", String("k", "v"))
	if l.With(Int("n", 1)) == nil {
		t.Error("With() returned nil")
	}
}

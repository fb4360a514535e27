package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"DEBUG": DEBUG,
		"INFO":  INFO,
		"WARN":  WARN,
		"ERROR": ERROR,
		"bogus": INFO,
		"":      INFO,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerWritesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(Config{Level: DEBUG, FilePath: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	l.Info("task created", F("id", "abc"), F("count", 3))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "task created") {
		t.Errorf("log entry missing parts: %q", out)
	}
	if !strings.Contains(out, "id=abc") || !strings.Contains(out, "count=3") {
		t.Errorf("fields missing: %q", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(Config{Level: WARN, FilePath: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	l.Debug("hidden")
	l.Info("also hidden")
	l.Warn("shown")

	data, _ := os.ReadFile(path)
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("filtered entries written: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("WARN entry missing: %q", out)
	}
}

func TestLoggerRotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(Config{Level: DEBUG, FilePath: path, MaxSize: 64})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	for i := 0; i < 10; i++ {
		l.Info("padding entry to push the file over the rotation threshold")
	}

	if _, err := os.Stat(path + ".old"); err != nil {
		t.Errorf("rotated file missing: %v", err)
	}
}

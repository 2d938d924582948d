//go:build !release

package log

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{"Print", func() { Print("cache hit") }, "cache hit"},
		{"Printf", func() { Printf("slot %d loaded", 2) }, "slot 2 loaded"},
		{"Println", func() { Println("advance denied") }, "advance denied"},
		{"Debug", func() { Debug("generation bumped") }, "[DEBUG] generation bumped"},
		{"Debugf", func() { Debugf("stale result for %s", "next") }, "[DEBUG] stale result for next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected log to contain %q, but got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestLoggingReportsCallerFile(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	Printf("where am I")
	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("Expected caller file in log line, got %q", buf.String())
	}
}

func TestFilePath(t *testing.T) {
	home := func() (string, error) { return "/home/ann", nil }
	cache := func() (string, error) { return `C:\Users\ann\AppData\Local`, nil }

	got, err := filePath("linux", cache, home)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/home/ann", ".wallin", "wallin.log"); got != want {
		t.Errorf("linux: got %q, want %q", got, want)
	}

	got, err = filePath("windows", cache, home)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(`C:\Users\ann\AppData\Local`, "Wallin", "wallin.log"); got != want {
		t.Errorf("windows: got %q, want %q", got, want)
	}

	_, err = filePath("darwin", cache, func() (string, error) { return "", os.ErrNotExist })
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped home dir error, got %v", err)
	}
}

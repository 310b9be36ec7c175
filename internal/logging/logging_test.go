package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWritesStructuredLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.InfoLevel)

	logger.Info("round started", "game_level", 3)
	logger.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "lostnfound") || !strings.Contains(out, "round started") {
		t.Errorf("unexpected log output %q", out)
	}
	if !strings.Contains(out, "game_level=3") {
		t.Errorf("missing key/value in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug line should be filtered at info level")
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	logger, closer, err := OpenFile(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("first")
	closer.Close()

	logger, closer, err = OpenFile(path, log.InfoLevel)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	logger.Info("second")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file = %q, want both lines", data)
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err = ExpandHome("~/x.log")
	if err != nil || got != filepath.Join(home, "x.log") {
		t.Errorf("ExpandHome(~/x.log) = %q, %v", got, err)
	}
}

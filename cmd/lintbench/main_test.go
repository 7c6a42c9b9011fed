package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/lintbubble/internal/errors"
)

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no targets", nil, apperrors.ExitErrorConfig},
		{"zero runs", []string{"-n", "0", "a.py"}, apperrors.ExitErrorConfig},
		{"unknown flag", []string{"-x", "a.py"}, apperrors.ExitErrorConfig},
		{"help", []string{"-h"}, apperrors.ExitSuccess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("run(%q) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_WritesReport(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	report := filepath.Join(t.TempDir(), "result.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-n", "2", "-o", report, "-tool", "true", "-wrapper", "false", "a.py"}, &stdout, &stderr)
	if code != apperrors.ExitSuccess {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "direct  a.py: ") || !strings.HasPrefix(lines[1], "wrapped a.py: ") {
		t.Errorf("report = %q", data)
	}
	if stdout.String() != string(data) {
		t.Error("stdout should mirror the report file")
	}
}

func TestRun_MissingTool(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "no-such-linter")
	code := run([]string{"-n", "1", "-o", "-", "-tool", missing, "a.py"}, &stdout, &stderr)
	if code != apperrors.ExitErrorGeneric {
		t.Errorf("run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(stderr.String(), "Error:") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

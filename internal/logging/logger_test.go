package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("path", "a.py"), "path", "a.py"},
		{"Int", Int("index", 3), "index", 3},
		{"Uint64", Uint64("bytes", 12345678901234567890), "bytes", uint64(12345678901234567890)},
		{"Float64", Float64("seconds", 0.25), "seconds", 0.25},
		{"Bool", Bool("clean", true), "clean", true},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	if adapter == nil {
		t.Fatal("NewZerologAdapter returned nil")
	}

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestNewLogger tests the component logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "orchestrator")

	logger.Info("hello")
	output := buf.String()

	if !strings.Contains(output, "orchestrator") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestNewRunLogger tests the run id field and level filtering.
func TestNewRunLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		logDebug  bool
		wantDebug bool
	}{
		{"info level hides debug", "info", true, false},
		{"debug level shows debug", "debug", true, true},
		{"unknown level falls back to info", "chatty", true, false},
		{"empty level falls back to info", "", true, false},
		{"uppercase accepted", "DEBUG", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewRunLogger(&buf, "app", "run-123", tt.level)
			logger.Debug("debug line")
			logger.Info("info line")

			output := buf.String()
			if !strings.Contains(output, `"run_id":"run-123"`) {
				t.Errorf("expected run_id field, got: %s", output)
			}
			if got := strings.Contains(output, "debug line"); got != tt.wantDebug {
				t.Errorf("debug visible = %v, want %v; output: %s", got, tt.wantDebug, output)
			}
			if !strings.Contains(output, "info line") {
				t.Errorf("info line should always be visible, got: %s", output)
			}
		})
	}
}

// TestNop verifies the discard logger writes nothing and does not panic.
func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("ignored", String("k", "v"))
	logger.Error("ignored", errors.New("x"))
}

// TestZerologAdapter_Levels tests each level method.
func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info with fields",
			log:      func(l Logger) { l.Info("file checked", String("path", "b.py"), Int("exit_code", 1)) },
			contains: []string{"file checked", "b.py", `"exit_code":1`, "info"},
		},
		{
			name:     "warn",
			log:      func(l Logger) { l.Warn("skipping directory", String("path", "secret")) },
			contains: []string{"skipping directory", "secret", "warn"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("run failed", errors.New("linter not found"), String("tool", "ruff")) },
			contains: []string{"run failed", "linter not found", "ruff", "error"},
		},
		{
			name:     "error with nil cause",
			log:      func(l Logger) { l.Error("warning", nil) },
			contains: []string{"warning", "error"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("frame", Int("index", 2)) },
			contains: []string{"frame", "debug"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("checked %d of %d", 2, 5) },
			contains: []string{"checked 2 of 5"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("hello", "world") },
			contains: []string{"hello world"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
			tt.log(logger)

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("test", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

// TestStdLoggerAdapter tests the standard library adapter.
func TestStdLoggerAdapter(t *testing.T) {
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "info",
			log:      func(l Logger) { l.Info("bench run", String("file", "1.py")) },
			contains: []string{"[INFO]", "bench run", "file=1.py"},
		},
		{
			name:     "warn",
			log:      func(l Logger) { l.Warn("slow", Int("runs", 100)) },
			contains: []string{"[WARN]", "slow", "runs=100"},
		},
		{
			name:     "error",
			log:      func(l Logger) { l.Error("failed", errors.New("boom"), String("tool", "ruff")) },
			contains: []string{"[ERROR]", "failed", "boom", "tool=ruff"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("trace", Int("line", 42)) },
			contains: []string{"[DEBUG]", "trace", "line=42"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("value is %d", 123) },
			contains: []string{"value is 123"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("a", "b", "c") },
			contains: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestLoggerInterface verifies both adapters implement the Logger interface.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}

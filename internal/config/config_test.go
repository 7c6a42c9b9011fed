package config

import (
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/lintbubble/internal/errors"
)

func TestParseConfig_Positionals(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantDir   string
		wantDelay time.Duration
		wantErr   bool
	}{
		{"zero delay", []string{"src", "0"}, "src", 0, false},
		{"fractional delay", []string{"src", "0.5"}, "src", 500 * time.Millisecond, false},
		{"integer delay", []string{"./pkg", "2"}, "./pkg", 2 * time.Second, false},
		{"missing delay", []string{"src"}, "", 0, true},
		{"no arguments", nil, "", 0, true},
		{"too many arguments", []string{"src", "1", "extra"}, "", 0, true},
		{"non numeric delay", []string{"src", "soon"}, "", 0, true},
		{"negative delay", []string{"src", "-1"}, "", 0, true},
		{"NaN delay", []string{"src", "NaN"}, "", 0, true},
		{"infinite delay", []string{"src", "+Inf"}, "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig("lintbubble", tt.args, io.Discard)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.TargetDir != tt.wantDir {
				t.Errorf("TargetDir = %q, want %q", cfg.TargetDir, tt.wantDir)
			}
			if cfg.Delay != tt.wantDelay {
				t.Errorf("Delay = %s, want %s", cfg.Delay, tt.wantDelay)
			}
		})
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("lintbubble", []string{"src", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tool != DefaultTool {
		t.Errorf("Tool = %q, want %q", cfg.Tool, DefaultTool)
	}
	if cfg.Extension != DefaultExtension {
		t.Errorf("Extension = %q, want %q", cfg.Extension, DefaultExtension)
	}
	if cfg.Offset != DefaultOffset {
		t.Errorf("Offset = %d, want %d", cfg.Offset, DefaultOffset)
	}
	if cfg.FrameDuration != DefaultFrameDuration {
		t.Errorf("FrameDuration = %s, want %s", cfg.FrameDuration, DefaultFrameDuration)
	}
	if cfg.TooSmallPause != DefaultTooSmallPause {
		t.Errorf("TooSmallPause = %s, want %s", cfg.TooSmallPause, DefaultTooSmallPause)
	}
}

func TestParseConfig_Help(t *testing.T) {
	var buf strings.Builder
	_, err := ParseConfig("lintbubble", []string{"-h"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(buf.String(), "Usage: lintbubble <target-dir> <delay-seconds>") {
		t.Errorf("usage not printed, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "LINTBUBBLE_TOOL") {
		t.Errorf("usage should list environment variables, got:\n%s", buf.String())
	}
}

func TestParseConfig_ConfigErrorType(t *testing.T) {
	_, err := ParseConfig("lintbubble", []string{"src", "later"}, io.Discard)
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TOOL", "flake8")
	t.Setenv(EnvPrefix+"TOOL_ARGS", "--quiet  --no-cache")
	t.Setenv(EnvPrefix+"EXT", ".pyi")
	t.Setenv(EnvPrefix+"OFFSET", "12")
	t.Setenv(EnvPrefix+"FRAME_DURATION", "100ms")
	t.Setenv(EnvPrefix+"TOO_SMALL_PAUSE", "2s")
	t.Setenv(EnvPrefix+"PLAIN", "yes")
	t.Setenv(EnvPrefix+"NO_ANIMATION", "1")
	t.Setenv(EnvPrefix+"LOG_FILE", "run.log")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "debug")
	t.Setenv(EnvPrefix+"METRICS_FILE", "lint.prom")

	cfg, err := ParseConfig("lintbubble", []string{"src", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Tool != "flake8" {
		t.Errorf("Tool = %q", cfg.Tool)
	}
	if len(cfg.ToolArgs) != 2 || cfg.ToolArgs[0] != "--quiet" || cfg.ToolArgs[1] != "--no-cache" {
		t.Errorf("ToolArgs = %q", cfg.ToolArgs)
	}
	if cfg.Extension != ".pyi" {
		t.Errorf("Extension = %q", cfg.Extension)
	}
	if cfg.Offset != 12 {
		t.Errorf("Offset = %d", cfg.Offset)
	}
	if cfg.FrameDuration != 100*time.Millisecond {
		t.Errorf("FrameDuration = %s", cfg.FrameDuration)
	}
	if cfg.TooSmallPause != 2*time.Second {
		t.Errorf("TooSmallPause = %s", cfg.TooSmallPause)
	}
	if !cfg.Plain || !cfg.NoAnimation {
		t.Errorf("Plain = %v, NoAnimation = %v, want both true", cfg.Plain, cfg.NoAnimation)
	}
	if cfg.LogFile != "run.log" || cfg.LogLevel != "debug" || cfg.MetricsFile != "lint.prom" {
		t.Errorf("LogFile = %q, LogLevel = %q, MetricsFile = %q", cfg.LogFile, cfg.LogLevel, cfg.MetricsFile)
	}
}

func TestParseConfig_InvalidEnv(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"OFFSET", "wide"},
		{"OFFSET", "-4"},
		{"FRAME_DURATION", "fast"},
		{"FRAME_DURATION", "0s"},
		{"TOO_SMALL_PAUSE", "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			t.Setenv(EnvPrefix+tt.key, tt.val)
			_, err := ParseConfig("lintbubble", []string{"src", "0"}, io.Discard)
			var configErr apperrors.ConfigError
			if !errors.As(err, &configErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}

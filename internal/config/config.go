// Package config parses the command line and environment into an AppConfig.
//
// Resolution order (highest priority first):
//  1. Positional arguments (target directory, delay)
//  2. Environment variables (LINTBUBBLE_*)
//  3. Defaults in this file
package config

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/lintbubble/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "LINTBUBBLE_"

// Defaults for the values that can only be changed through the environment.
const (
	DefaultTool          = "ruff"
	DefaultExtension     = ".py"
	DefaultOffset        = 30
	DefaultFrameDuration = 500 * time.Millisecond
	DefaultTooSmallPause = 10 * time.Second
	DefaultLogLevel      = "info"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// TargetDir is the root directory to scan.
	TargetDir string
	// Delay is the pause between two consecutive files. Zero disables it.
	Delay time.Duration

	// Tool is the linter command, invoked as "<Tool> check [ToolArgs...] <path>".
	Tool string
	// ToolArgs are extra arguments placed between "check" and the path.
	ToolArgs []string
	// Extension selects which files are checked (matched as a name suffix).
	Extension string

	// Offset is the layout width of the animation; frames are drawn at Offset/2.
	Offset int
	// FrameDuration is how long each animation frame stays on screen.
	FrameDuration time.Duration
	// TooSmallPause is how long the "too small" warning stays before re-checking.
	TooSmallPause time.Duration
	// Plain forces the single-line spinner instead of the full-screen animation.
	Plain bool
	// NoAnimation disables the animation entirely.
	NoAnimation bool

	// LogFile receives JSON logs. Empty discards them.
	LogFile string
	// LogLevel is the minimum log level.
	LogLevel string
	// MetricsFile receives Prometheus text-format metrics after the run. Empty disables it.
	MetricsFile string
}

// Default returns an AppConfig populated with defaults and no target.
func Default() AppConfig {
	return AppConfig{
		Tool:          DefaultTool,
		Extension:     DefaultExtension,
		Offset:        DefaultOffset,
		FrameDuration: DefaultFrameDuration,
		TooSmallPause: DefaultTooSmallPause,
		LogLevel:      DefaultLogLevel,
	}
}

// ParseConfig parses the command-line arguments and LINTBUBBLE_* environment
// variables. Usage and parse errors are written to errWriter. A --help request
// is reported as flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(fs.Name(), errWriter) }

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	positional := fs.Args()
	if len(positional) != 2 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("expected 2 arguments (target directory and delay), got %d", len(positional))
	}

	cfg := Default()
	cfg.TargetDir = positional[0]

	delay, err := ParseDelay(positional[1])
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Delay = delay

	if err := applyEnvOverrides(&cfg); err != nil {
		return AppConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// ParseDelay converts a non-negative number of seconds (e.g. "0", "1.5") into
// a duration.
func ParseDelay(s string) (time.Duration, error) {
	secs, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, apperrors.NewConfigError("invalid delay %q: not a number", s)
	}
	if math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0, apperrors.NewConfigError("invalid delay %q: must be a finite number >= 0", s)
	}
	if secs > math.MaxInt64/float64(time.Second) {
		return 0, apperrors.NewConfigError("invalid delay %q: too large", s)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

// Validate checks cross-field constraints.
func (c AppConfig) Validate() error {
	switch {
	case c.TargetDir == "":
		return apperrors.NewConfigError("target directory must not be empty")
	case strings.TrimSpace(c.Tool) == "":
		return apperrors.NewConfigError("linter command must not be empty")
	case c.Extension == "":
		return apperrors.NewConfigError("file extension must not be empty")
	case c.Delay < 0:
		return apperrors.NewConfigError("delay must be >= 0, got %s", c.Delay)
	case c.Offset < 0:
		return apperrors.NewConfigError("animation offset must be >= 0, got %d", c.Offset)
	case c.FrameDuration <= 0:
		return apperrors.NewConfigError("frame duration must be > 0, got %s", c.FrameDuration)
	case c.TooSmallPause <= 0:
		return apperrors.NewConfigError("too-small pause must be > 0, got %s", c.TooSmallPause)
	}
	return nil
}

func printUsage(name string, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <target-dir> <delay-seconds>\n\n", name)
	fmt.Fprintf(w, "Runs \"<linter> check <file>\" on every matching file under <target-dir>,\n")
	fmt.Fprintf(w, "waiting <delay-seconds> between files (0 disables the wait).\n\n")
	fmt.Fprintf(w, "Options:\n  -h, --help    Show this message\n  --version     Show version information\n\n")
	fmt.Fprintf(w, "Environment:\n")
	for _, o := range envOverrides {
		fmt.Fprintf(w, "  %s%-16s %s\n", EnvPrefix, o.envKey, o.help)
	}
}

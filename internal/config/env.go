// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/lintbubble/internal/errors"
)

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the LINTBUBBLE_ prefix) to a function
// that applies the env value.
type envOverride struct {
	envKey string
	help   string
	apply  func(*AppConfig, string) error
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	{"TOOL", "linter command (default ruff)", func(c *AppConfig, v string) error {
		c.Tool = v
		return nil
	}},
	{"TOOL_ARGS", "extra arguments passed after \"check\"", func(c *AppConfig, v string) error {
		c.ToolArgs = strings.Fields(v)
		return nil
	}},
	{"EXT", "file suffix to check (default .py)", func(c *AppConfig, v string) error {
		c.Extension = v
		return nil
	}},
	{"OFFSET", "animation layout width (default 30)", func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return envError("OFFSET", v, err)
		}
		c.Offset = parsed
		return nil
	}},
	{"FRAME_DURATION", "time each frame is shown (default 500ms)", func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return envError("FRAME_DURATION", v, err)
		}
		c.FrameDuration = parsed
		return nil
	}},
	{"TOO_SMALL_PAUSE", "wait before re-checking a small terminal (default 10s)", func(c *AppConfig, v string) error {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return envError("TOO_SMALL_PAUSE", v, err)
		}
		c.TooSmallPause = parsed
		return nil
	}},
	{"PLAIN", "use a one-line spinner instead of the full-screen animation", func(c *AppConfig, v string) error {
		c.Plain = parseBoolEnv(v, c.Plain)
		return nil
	}},
	{"NO_ANIMATION", "disable the animation", func(c *AppConfig, v string) error {
		c.NoAnimation = parseBoolEnv(v, c.NoAnimation)
		return nil
	}},
	{"LOG_FILE", "write JSON logs to this file", func(c *AppConfig, v string) error {
		c.LogFile = v
		return nil
	}},
	{"LOG_LEVEL", "debug, info, warn or error (default info)", func(c *AppConfig, v string) error {
		c.LogLevel = v
		return nil
	}},
	{"METRICS_FILE", "write Prometheus metrics to this file after the run", func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

func envError(key, val string, err error) error {
	return apperrors.NewConfigError("invalid %s%s=%q: %v", EnvPrefix, key, val, err)
}

// applyEnvOverrides applies every non-empty LINTBUBBLE_* variable to the
// configuration, in table order.
func applyEnvOverrides(config *AppConfig) error {
	for _, o := range envOverrides {
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			if err := o.apply(config, val); err != nil {
				return err
			}
		}
	}
	return nil
}

// Package bench measures how much the wrapper costs compared with running
// the linter directly. Every command is run a fixed number of times and the
// mean wall-clock time is reported per target.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/bitfield/script"

	"github.com/agbru/lintbubble/internal/format"
	"github.com/agbru/lintbubble/internal/logging"
	"github.com/agbru/lintbubble/internal/sysmon"
)

// DefaultRuns is the number of runs per command.
const DefaultRuns = 100

// Mode names the way a target is checked.
type Mode string

const (
	// Direct runs "<tool> check <target>".
	Direct Mode = "direct"
	// Wrapped runs "<wrapper> <target> 0".
	Wrapped Mode = "wrapped"
)

// Result is the mean duration of one command over all runs.
type Result struct {
	Mode    Mode
	Target  string
	Runs    int
	Average time.Duration
	// Load is the host load over the runs, when a Sampler was set.
	Load *sysmon.Stats
}

// CommandRunner runs one shell-style command line and waits for it. A
// non-zero exit is not an error: linters exit 1 when they find something.
type CommandRunner func(cmdLine string) error

// ScriptRunner runs cmdLine with bitfield/script and discards its output.
func ScriptRunner(cmdLine string) error {
	_, err := script.Exec(cmdLine).String()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	return err
}

// Benchmark times direct and wrapped checks of each target.
type Benchmark struct {
	Tool    string
	Wrapper string
	Runs    int
	Run     CommandRunner
	Logger  logging.Logger
	// Sampler, if set, measures host load around each batch of runs.
	Sampler sysmon.Sampler
}

// Execute runs every command. Direct results come first, then wrapped ones,
// each in target order. It stops at the first command that cannot be run.
func (b *Benchmark) Execute(ctx context.Context, targets []string) ([]Result, error) {
	runs := b.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}
	run := b.Run
	if run == nil {
		run = ScriptRunner
	}
	logger := b.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	results := make([]Result, 0, 2*len(targets))
	for _, mode := range []Mode{Direct, Wrapped} {
		for _, target := range targets {
			cmdLine := b.commandLine(mode, target)
			logger.Info("benchmarking", logging.String("mode", string(mode)), logging.String("command", cmdLine), logging.Int("runs", runs))

			if b.Sampler != nil {
				b.Sampler.Sample() // reset the CPU window
			}
			start := time.Now()
			for i := 0; i < runs; i++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				if err := run(cmdLine); err != nil {
					return results, fmt.Errorf("running %q: %w", cmdLine, err)
				}
			}
			avg := time.Since(start) / time.Duration(runs)
			res := Result{Mode: mode, Target: target, Runs: runs, Average: avg}
			if b.Sampler != nil {
				load := b.Sampler.Sample()
				res.Load = &load
			}
			results = append(results, res)
			logger.Info("benchmark done", logging.String("mode", string(mode)), logging.String("target", target), logging.String("average", format.FormatExecutionDuration(avg)))
		}
	}
	return results, nil
}

func (b *Benchmark) commandLine(mode Mode, target string) string {
	if mode == Direct {
		return fmt.Sprintf("%s check %s", b.Tool, quote(target))
	}
	return fmt.Sprintf("%s %s 0", b.Wrapper, quote(target))
}

// WriteReport writes one line per result:
//
//	direct  path/to/file.py: 0.012345 s (100 runs, cpu 12.5%, mem 40.2%)
//
// The load figures appear only when they were sampled.
func WriteReport(w io.Writer, results []Result) error {
	for _, r := range results {
		load := ""
		if r.Load != nil {
			load = fmt.Sprintf(", cpu %.1f%%, mem %.1f%%", r.Load.CPUPercent, r.Load.MemPercent)
		}
		if _, err := fmt.Fprintf(w, "%-7s %s: %s s (%d runs%s)\n", r.Mode, r.Target, format.FormatSeconds(r.Average), r.Runs, load); err != nil {
			return err
		}
	}
	return nil
}

// quote protects a path from the command-line splitter.
func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

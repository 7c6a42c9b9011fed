// Command lintbench compares the run time of the linter alone with the run
// time of lintbubble on the same targets.
//
//	lintbench [-n runs] [-o result.txt] [-tool ruff] [-wrapper lintbubble] [-no-load] target...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/lintbubble/internal/bench"
	apperrors "github.com/agbru/lintbubble/internal/errors"
	"github.com/agbru/lintbubble/internal/logging"
	"github.com/agbru/lintbubble/internal/sysmon"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lintbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	runs := fs.Int("n", bench.DefaultRuns, "runs per command")
	output := fs.String("o", "result.txt", "report file (\"-\" for stdout only)")
	tool := fs.String("tool", "ruff", "linter command")
	wrapper := fs.String("wrapper", "lintbubble", "wrapper command")
	noLoad := fs.Bool("no-load", false, "do not sample host CPU and memory load")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: lintbench [options] target...\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}
	if fs.NArg() == 0 || *runs <= 0 {
		fs.Usage()
		return apperrors.ExitErrorConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := &bench.Benchmark{
		Tool:    *tool,
		Wrapper: *wrapper,
		Runs:    *runs,
		Logger:  logging.NewStdLoggerAdapter(log.New(stderr, "lintbench: ", log.LstdFlags)),
	}
	if !*noLoad {
		b.Sampler = sysmon.HostSampler{}
	}
	results, err := b.Execute(ctx, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}

	if err := bench.WriteReport(stdout, results); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if *output != "-" {
		if err := writeReportFile(*output, results); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	return apperrors.ExitSuccess
}

func writeReportFile(path string, results []bench.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return bench.WriteReport(f, results)
}

package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/lintbubble/internal/errors"
	"github.com/agbru/lintbubble/internal/format"
	"github.com/agbru/lintbubble/internal/linter"
	"github.com/agbru/lintbubble/internal/logging"
	"github.com/agbru/lintbubble/internal/scanner"
)

var tracer = otel.Tracer("lintbubble/orchestration")

// ErrInterrupted is returned by an Animator when the user asked to quit.
// It wraps context.Canceled so callers treat it as a cancellation.
var ErrInterrupted = fmt.Errorf("interrupted by user: %w", context.Canceled)

// Orchestrator checks every matching file under a root, one at a time.
type Orchestrator struct {
	// Invoker runs the linter on one file.
	Invoker linter.Invoker
	// Extension selects files by name suffix.
	Extension string
	// Delay is the pause between two consecutive files. Zero disables it.
	Delay time.Duration
	// Logger receives per-file and run-level entries. Nil disables logging.
	Logger logging.Logger
	// Progress receives an event after each file. Nil disables reporting.
	Progress ProgressReporter
	// Recorder collects metrics. Nil disables them.
	Recorder CheckRecorder
}

// Run checks the files under root and returns their feedback.
//
// stop is set exactly once before Run returns, on every path, including an
// empty tree and fatal errors. Fatal errors are a missing or unreadable root
// (DirectoryError, reported before any linter process starts), a missing
// linter (ToolNotFoundError) and cancellation of ctx. On a fatal error the
// feedback gathered so far is returned alongside it. Unreadable directories
// below root are logged and skipped.
func (o *Orchestrator) Run(ctx context.Context, root string, stop *StopSignal) (feedback *FeedbackMap, err error) {
	defer stop.Set()

	logger := o.logger()
	recorder := o.recorder()
	progress := o.progress()

	ctx, span := tracer.Start(ctx, "orchestration.Run",
		trace.WithAttributes(
			attribute.String("lint.root", root),
			attribute.String("lint.extension", o.Extension),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.SetAttributes(attribute.Int("lint.files", feedback.Len()))
		span.End()
	}()

	feedback = NewFeedbackMap()
	if err := scanner.ValidateRoot(root); err != nil {
		return feedback, err
	}

	start := time.Now()
	index := 0
	for path, scanErr := range scanner.Scan(root, o.Extension) {
		if scanErr != nil {
			var dirErr apperrors.DirectoryError
			if errors.As(scanErr, &dirErr) && dirErr.Path == root {
				return feedback, scanErr
			}
			logger.Warn("skipping unreadable directory", logging.Err(scanErr))
			continue
		}

		if index > 0 && o.Delay > 0 {
			if err := sleep(ctx, o.Delay); err != nil {
				return feedback, apperrors.WrapError(err, "waiting before %s", path)
			}
		}

		res, err := o.Invoker.Check(ctx, path)
		if err != nil {
			logger.Error("linter invocation aborted the run", err, logging.String("path", path))
			return feedback, err
		}

		outcome := outcomeOf(res)
		feedback.Set(path, FeedbackText(res))
		recorder.ObserveCheck(outcome.String(), res.Duration)
		progress.ReportCheck(CheckEvent{Index: index, Path: path, Outcome: outcome, Duration: res.Duration})

		if res.Crashed() {
			logger.Warn("linter crashed", logging.String("path", path), logging.Err(res.Err))
		} else {
			logger.Debug("file checked",
				logging.String("path", path),
				logging.Int("exit_code", res.ExitCode),
				logging.String("outcome", outcome.String()),
			)
		}
		index++
	}

	elapsed := time.Since(start)
	recorder.ObserveRun(index, elapsed)
	logger.Info("check run complete",
		logging.String("root", root),
		logging.Int("files", index),
		logging.String("elapsed", format.FormatExecutionDuration(elapsed)),
	)
	return feedback, nil
}

// ExecuteChecks runs the orchestrator and the animator concurrently and
// waits for both. The orchestrator's error is returned; animator errors are
// logged and dropped unless they wrap ErrInterrupted, in which case the
// checks are canceled and ErrInterrupted is returned.
//
// The animator has returned, and with it released the terminal, by the time
// ExecuteChecks returns.
func ExecuteChecks(ctx context.Context, o *Orchestrator, animator Animator, root string) (*FeedbackMap, error) {
	logger := o.logger()
	stop := NewStopSignal()
	g, gctx := errgroup.WithContext(ctx)

	var feedback *FeedbackMap
	g.Go(func() error {
		fb, err := o.Run(gctx, root, stop)
		feedback = fb
		return err
	})
	g.Go(func() error {
		err := animator.Animate(gctx, stop)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrInterrupted):
			if stop.IsSet() {
				// The checks finished before the user quit.
				return nil
			}
			return err
		default:
			logger.Warn("animation stopped early", logging.Err(err))
			return nil
		}
	})

	err := g.Wait()
	return feedback, err
}

func outcomeOf(res linter.CheckResult) Outcome {
	switch {
	case res.Crashed():
		return OutcomeCrashed
	case res.ExitCode == 0:
		return OutcomeClean
	default:
		return OutcomeFindings
	}
}

func (o *Orchestrator) logger() logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

func (o *Orchestrator) recorder() CheckRecorder {
	if o.Recorder == nil {
		return NullRecorder{}
	}
	return o.Recorder
}

func (o *Orchestrator) progress() ProgressReporter {
	if o.Progress == nil {
		return NullProgressReporter{}
	}
	return o.Progress
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package orchestration

import (
	"context"
	"time"
)

// Outcome classifies a single file check.
type Outcome int

const (
	// OutcomeClean means the linter exited 0.
	OutcomeClean Outcome = iota
	// OutcomeFindings means the linter exited non-zero.
	OutcomeFindings
	// OutcomeCrashed means the linter process failed.
	OutcomeCrashed
)

// String returns the metric/log label of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeFindings:
		return "findings"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// CheckEvent describes one finished file check.
type CheckEvent struct {
	// Index is the zero-based position of the file in scan order.
	Index int
	// Path is the checked file.
	Path string
	// Outcome classifies the result.
	Outcome Outcome
	// Duration is the linter's wall-clock time.
	Duration time.Duration
}

// ProgressReporter receives an event after each file is checked.
// Implementations are called from the check goroutine and must not block
// for long.
type ProgressReporter interface {
	ReportCheck(event CheckEvent)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(event CheckEvent)

// ReportCheck calls the underlying function.
func (f ProgressReporterFunc) ReportCheck(event CheckEvent) { f(event) }

// NullProgressReporter discards progress events.
type NullProgressReporter struct{}

// ReportCheck does nothing.
func (NullProgressReporter) ReportCheck(CheckEvent) {}

// CheckRecorder collects run metrics.
type CheckRecorder interface {
	// ObserveCheck records one file check.
	ObserveCheck(outcome string, d time.Duration)
	// ObserveRun records a completed run.
	ObserveRun(files int, d time.Duration)
}

// NullRecorder discards metrics.
type NullRecorder struct{}

// ObserveCheck does nothing.
func (NullRecorder) ObserveCheck(string, time.Duration) {}

// ObserveRun does nothing.
func (NullRecorder) ObserveRun(int, time.Duration) {}

// Animator plays a decorative animation until the stop signal is set.
//
// Animate blocks. It returns nil once it has observed stop, or an error if
// the display failed; display errors never abort the checks. Returning an
// error that wraps ErrInterrupted asks for the whole run to be canceled.
type Animator interface {
	Animate(ctx context.Context, stop *StopSignal) error
}

// AnimatorFunc is a function adapter that implements Animator.
type AnimatorFunc func(ctx context.Context, stop *StopSignal) error

// Animate calls the underlying function.
func (f AnimatorFunc) Animate(ctx context.Context, stop *StopSignal) error { return f(ctx, stop) }

// NullAnimator shows nothing and returns when stop is set or ctx is done.
type NullAnimator struct{}

// Animate waits for stop.
func (NullAnimator) Animate(ctx context.Context, stop *StopSignal) error {
	select {
	case <-stop.Done():
		return nil
	case <-ctx.Done():
		return nil
	}
}

//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks

// Package linter runs the external static-analysis tool on a single file.
package linter

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/lintbubble/internal/errors"
)

var tracer = otel.Tracer("lintbubble/linter")

// waitDelay bounds how long Wait blocks on output pipes held open by
// grandchildren after the linter itself has exited or been killed.
const waitDelay = 2 * time.Second

// CheckResult is the outcome of one linter invocation.
type CheckResult struct {
	// Path is the file that was checked.
	Path string
	// ExitCode is the process exit status, or -1 if it never exited normally.
	ExitCode int
	// Stdout and Stderr hold everything the process wrote.
	Stdout string
	Stderr string
	// Duration is the wall-clock time of the invocation.
	Duration time.Duration
	// Err is a SubprocessError when the process crashed, was killed by a
	// signal, or could not be started. Nil otherwise.
	Err error
}

// Clean reports whether the linter found no issues.
func (r CheckResult) Clean() bool { return r.Err == nil && r.ExitCode == 0 }

// Crashed reports whether the invocation failed as a process.
func (r CheckResult) Crashed() bool { return r.Err != nil }

// Invoker checks a single file.
type Invoker interface {
	// Check runs the linter on path and waits for it to finish.
	// The returned error is non-nil only for fatal conditions: a missing
	// linter binary (ToolNotFoundError) or a canceled context.
	Check(ctx context.Context, path string) (CheckResult, error)
}

// Runner invokes "<Tool> check [Args...] <path>".
type Runner struct {
	Tool string
	Args []string
}

// Verify interface compliance.
var _ Invoker = (*Runner)(nil)

// NewRunner creates a Runner for the given tool and extra arguments.
func NewRunner(tool string, args ...string) *Runner {
	return &Runner{Tool: tool, Args: args}
}

// Check implements Invoker.
func (r *Runner) Check(ctx context.Context, path string) (CheckResult, error) {
	ctx, span := tracer.Start(ctx, "linter.Check",
		trace.WithAttributes(
			attribute.String("linter.tool", r.Tool),
			attribute.String("linter.file", path),
		),
	)
	defer span.End()

	args := make([]string, 0, len(r.Args)+2)
	args = append(args, "check")
	args = append(args, r.Args...)
	args = append(args, path)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Tool, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	start := time.Now()
	runErr := cmd.Run()
	res := CheckResult{
		Path:     path,
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	span.SetAttributes(attribute.Int("linter.exit_code", res.ExitCode))

	if runErr == nil {
		span.SetStatus(codes.Ok, "")
		return res, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		span.RecordError(ctxErr)
		span.SetStatus(codes.Error, "context canceled")
		return res, apperrors.WrapError(ctxErr, "checking %s", path)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		if res.ExitCode >= 0 {
			// A non-zero exit is the linter's way of reporting findings.
			return res, nil
		}
		res.Err = apperrors.SubprocessError{Path: path, Cause: runErr}
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, "linter crashed")
		return res, nil
	}

	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		err := apperrors.ToolNotFoundError{Tool: r.Tool, Cause: runErr}
		span.RecordError(err)
		span.SetStatus(codes.Error, "linter not found")
		return res, err
	}

	res.Err = apperrors.SubprocessError{Path: path, Cause: runErr}
	span.RecordError(res.Err)
	span.SetStatus(codes.Error, "linter failed to start")
	return res, nil
}

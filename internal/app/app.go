// Package app wires configuration, the check orchestrator, the animation and
// the feedback renderer into the lintbubble command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/agbru/lintbubble/internal/cli"
	"github.com/agbru/lintbubble/internal/config"
	apperrors "github.com/agbru/lintbubble/internal/errors"
	"github.com/agbru/lintbubble/internal/linter"
	"github.com/agbru/lintbubble/internal/logging"
	"github.com/agbru/lintbubble/internal/metrics"
	"github.com/agbru/lintbubble/internal/orchestration"
	"github.com/agbru/lintbubble/internal/scanner"
	"github.com/agbru/lintbubble/internal/tui"
	"github.com/agbru/lintbubble/internal/ui"
)

// Application represents the lintbubble application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	invoker  linter.Invoker
	animator orchestration.Animator
	progress orchestration.ProgressReporter
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInvoker replaces the linter invoker built from the configuration.
func WithInvoker(inv linter.Invoker) AppOption {
	return func(a *Application) { a.invoker = inv }
}

// WithAnimator replaces the animation chosen from the terminal and the
// configuration. progress may be nil.
func WithAnimator(anim orchestration.Animator, progress orchestration.ProgressReporter) AppOption {
	return func(a *Application) {
		a.animator = anim
		a.progress = progress
	}
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "lintbubble"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if IsHelpError(err) {
			return nil, err
		}
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			err = apperrors.ConfigError{Message: err.Error()}
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run checks the target directory, shows the animation while it does, then
// prints the feedback to out. It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	runID := uuid.NewString()
	logger, closeLog, err := a.openLogger(runID)
	if err != nil {
		return a.fail(err)
	}
	defer closeLog()

	// An unreadable root is fatal before the animation takes the terminal.
	if err := scanner.ValidateRoot(a.Config.TargetDir); err != nil {
		logger.Error("invalid target directory", err, logging.String("target", a.Config.TargetDir))
		return a.fail(err)
	}

	interactive := isTerminal(out)
	ui.InitTheme(!interactive)

	recorder := metrics.NewPrometheusRecorder()
	animator, progress := a.selectAnimator(interactive)

	orch := &orchestration.Orchestrator{
		Invoker:   a.selectInvoker(),
		Extension: a.Config.Extension,
		Delay:     a.Config.Delay,
		Logger:    logger,
		Progress:  progress,
		Recorder:  recorder,
	}

	logger.Info("run started",
		logging.String("target", a.Config.TargetDir),
		logging.String("tool", a.Config.Tool),
		logging.Float64("delay_seconds", a.Config.Delay.Seconds()),
	)
	feedback, runErr := orchestration.ExecuteChecks(ctx, orch, animator, a.Config.TargetDir)

	if a.Config.MetricsFile != "" {
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			logger.Warn("writing metrics failed", logging.String("path", a.Config.MetricsFile), logging.Err(err))
		}
	}

	if runErr != nil {
		logger.Error("run failed", runErr)
		return a.fail(runErr)
	}

	cli.DisplayFeedback(feedback, out)
	return apperrors.ExitSuccess
}

func (a *Application) fail(err error) int {
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}

func (a *Application) selectInvoker() linter.Invoker {
	if a.invoker != nil {
		return a.invoker
	}
	return linter.NewRunner(a.Config.Tool, a.Config.ToolArgs...)
}

// selectAnimator picks the full-screen animation on an interactive
// terminal, the spinner otherwise, and nothing when animation is disabled.
func (a *Application) selectAnimator(interactive bool) (orchestration.Animator, orchestration.ProgressReporter) {
	switch {
	case a.animator != nil:
		progress := a.progress
		if progress == nil {
			progress = orchestration.NullProgressReporter{}
		}
		return a.animator, progress
	case a.Config.NoAnimation:
		return orchestration.NullAnimator{}, orchestration.NullProgressReporter{}
	case interactive && !a.Config.Plain:
		anim := tui.NewAnimator(tui.AnimationConfig{
			Frames:        tui.DefaultFrames(),
			Offset:        a.Config.Offset,
			FrameDuration: a.Config.FrameDuration,
			TooSmallPause: a.Config.TooSmallPause,
		})
		return anim, anim.Progress()
	default:
		spin := cli.NewSpinnerAnimator(os.Stderr)
		return spin, spin
	}
}

// openLogger returns the run logger. Logs go to LogFile, or nowhere: the
// animation owns the terminal while checks run.
func (a *Application) openLogger(runID string) (logging.Logger, func(), error) {
	if a.Config.LogFile == "" {
		return logging.NewRunLogger(io.Discard, "lintbubble", runID, a.Config.LogLevel), func() {}, nil
	}
	f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, apperrors.NewConfigError("cannot open log file: %v", err)
	}
	return logging.NewRunLogger(f, "lintbubble", runID, a.Config.LogLevel), func() { _ = f.Close() }, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

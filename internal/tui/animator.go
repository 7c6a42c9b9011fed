package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/lintbubble/internal/orchestration"
)

// Animator runs the animation as a full-screen bubbletea program.
type Animator struct {
	cfg    AnimationConfig
	input  io.Reader
	output io.Writer
	ref    *programRef
}

// Verify interface compliance.
var _ orchestration.Animator = (*Animator)(nil)

// Option customizes an Animator.
type Option func(*Animator)

// WithIO replaces the terminal with the given reader and writer.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *Animator) {
		a.input = in
		a.output = out
	}
}

// NewAnimator creates an animator for the given configuration.
func NewAnimator(cfg AnimationConfig, opts ...Option) *Animator {
	a := &Animator{cfg: cfg, ref: &programRef{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Progress returns the reporter that feeds the status bar.
func (a *Animator) Progress() *ProgressReporter {
	return &ProgressReporter{ref: a.ref}
}

// Animate implements orchestration.Animator. It returns nil once the stop
// signal has been observed or ctx is canceled, and
// orchestration.ErrInterrupted when the user aborts.
func (a *Animator) Animate(ctx context.Context, stop *orchestration.StopSignal) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if a.input != nil {
		opts = append(opts, tea.WithInput(a.input))
	}
	if a.output != nil {
		opts = append(opts, tea.WithOutput(a.output))
	}

	p := tea.NewProgram(NewModel(a.cfg, stop), opts...)
	// Inject the program reference before running so ReportCheck can Send.
	a.ref.SetProgram(p)
	defer a.ref.SetProgram(nil)

	final, err := p.Run()
	switch {
	case errors.Is(err, tea.ErrInterrupted):
		return orchestration.ErrInterrupted
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	case err != nil:
		return fmt.Errorf("animation: %w", err)
	}

	if m, ok := final.(Model); ok && m.Interrupted() {
		return orchestration.ErrInterrupted
	}
	return nil
}

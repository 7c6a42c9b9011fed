//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/agbru/lintbubble/internal/orchestration"
)

// SpinnerRefreshRate is the spinner's frame interval.
const SpinnerRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so the animator can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation and clears its line.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix takes the spinner's lock because the render loop reads Suffix
// from its own goroutine.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerAnimator is the single-line fallback animation. It spins on a
// terminal until the stop signal is set and shows the last checked file.
// The spinner library stays silent when the file is not a terminal.
type SpinnerAnimator struct {
	file    *os.File
	spinner Spinner

	mu      sync.Mutex
	checked int
}

// Verify interface compliance.
var (
	_ orchestration.Animator         = (*SpinnerAnimator)(nil)
	_ orchestration.ProgressReporter = (*SpinnerAnimator)(nil)
)

// NewSpinnerAnimator creates a spinner that writes to file, usually stderr.
func NewSpinnerAnimator(file *os.File) *SpinnerAnimator {
	s := newSpinner(spinner.WithWriterFile(file), spinner.WithHiddenCursor(true))
	s.UpdateSuffix(" scanning...")
	return &SpinnerAnimator{file: file, spinner: s}
}

// Animate implements orchestration.Animator.
func (a *SpinnerAnimator) Animate(ctx context.Context, stop *orchestration.StopSignal) error {
	a.spinner.Start()
	defer a.spinner.Stop()

	select {
	case <-stop.Done():
	case <-ctx.Done():
	}
	return nil
}

// ReportCheck implements orchestration.ProgressReporter.
func (a *SpinnerAnimator) ReportCheck(event orchestration.CheckEvent) {
	a.mu.Lock()
	a.checked++
	checked := a.checked
	a.mu.Unlock()

	suffix := fmt.Sprintf(" [%d] %s (%s)", checked, event.Path, event.Outcome)
	a.spinner.UpdateSuffix(truncate(suffix, a.width()))
}

// width returns the usable suffix width, or 0 when it cannot be measured.
func (a *SpinnerAnimator) width() int {
	if a.file == nil {
		return 0
	}
	fd := int(a.file.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	// One cell for the spinner glyph and one spare so the line never wraps.
	return w - 2
}

// truncate shortens s to at most max runes, marking the cut with "…".
// A max of zero or less means no limit.
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

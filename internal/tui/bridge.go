package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/lintbubble/internal/orchestration"
)

// programRef is a shared reference to the running tea.Program.
// Because bubbletea copies the model on every Update, the check goroutine
// reaches the program through this pointer instead.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op when no program is set,
// and blocks until the program starts if it has not yet.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// ProgressReporter forwards check events to the animation's status bar.
type ProgressReporter struct {
	ref *programRef
}

// Verify interface compliance.
var _ orchestration.ProgressReporter = (*ProgressReporter)(nil)

// ReportCheck implements orchestration.ProgressReporter.
func (r *ProgressReporter) ReportCheck(event orchestration.CheckEvent) {
	r.ref.Send(checkMsg(event))
}

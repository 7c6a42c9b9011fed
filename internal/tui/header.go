package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/lintbubble/internal/format"
	"github.com/agbru/lintbubble/internal/orchestration"
)

// StatusModel renders the one-line status bar below the frames: elapsed
// time, number of checked files and the last result.
type StatusModel struct {
	startTime time.Time
	checked   int
	last      *orchestration.CheckEvent
	width     int
}

// NewStatusModel creates a status bar whose timer starts now.
func NewStatusModel() StatusModel {
	return StatusModel{startTime: time.Now()}
}

// Record counts a finished check.
func (s *StatusModel) Record(event orchestration.CheckEvent) {
	s.checked++
	s.last = &event
}

// SetWidth updates the available width.
func (s *StatusModel) SetWidth(w int) {
	s.width = w
}

// View renders the status bar, truncated to the terminal width.
func (s StatusModel) View() string {
	sep := dimStyle.Render(" | ")
	row := titleStyle.Render("lintbubble") + sep +
		elapsedStyle.Render(format.FormatExecutionDuration(time.Since(s.startTime).Truncate(time.Millisecond))) + sep +
		elapsedStyle.Render(fmt.Sprintf("%d checked", s.checked))

	if s.last != nil {
		row += sep + outcomeStyle(s.last.Outcome).Render(
			fmt.Sprintf("%s %s", filepath.Base(s.last.Path), s.last.Outcome))
	}
	row += sep + keyStyle.Render("q") + dimStyle.Render(" abort")

	if s.width > 0 && lipgloss.Width(row) > s.width {
		return lipgloss.NewStyle().MaxWidth(s.width).Render(row)
	}
	return row
}

func outcomeStyle(o orchestration.Outcome) lipgloss.Style {
	switch o {
	case orchestration.OutcomeClean:
		return cleanStyle
	case orchestration.OutcomeCrashed:
		return crashedStyle
	default:
		return findingsStyle
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/lintbubble/internal/ui"
)

// Style variables, rebuilt from the ui theme by initTUIStyles.
var (
	frameStyle    lipgloss.Style
	warningStyle  lipgloss.Style
	titleStyle    lipgloss.Style
	dimStyle      lipgloss.Style
	elapsedStyle  lipgloss.Style
	cleanStyle    lipgloss.Style
	findingsStyle lipgloss.Style
	crashedStyle  lipgloss.Style
	keyStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Animate after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	frameStyle = lipgloss.NewStyle().Foreground(t.Accent)
	warningStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	elapsedStyle = lipgloss.NewStyle().Foreground(t.Text)
	cleanStyle = lipgloss.NewStyle().Foreground(t.Success)
	findingsStyle = lipgloss.NewStyle().Foreground(t.Warning)
	crashedStyle = lipgloss.NewStyle().Foreground(t.Error)
	keyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
}

// Package ui holds the color themes shared by the spinner, the feedback
// renderer and the full-screen animation. Plain-text output uses the ANSI
// Theme; the bubbletea views use the matching lipgloss TUITheme.
package ui

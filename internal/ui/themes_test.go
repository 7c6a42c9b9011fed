package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Theme state is global, so these tests do not run in parallel.

func TestInitTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	tests := []struct {
		name    string
		noColor bool
		env     bool
		want    string
	}{
		{"default", false, false, "dark"},
		{"flag disables", true, false, "none"},
		{"NO_COLOR disables", false, true, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env {
				t.Setenv("NO_COLOR", "")
			}
			InitTheme(tt.noColor)
			if got := GetCurrentTheme().Name; got != tt.want {
				t.Errorf("theme = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorFunctions_FollowTheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	SetCurrentTheme(DarkTheme)
	if ColorAccent() != DarkTheme.Accent || ColorReset() != "\033[0m" {
		t.Error("color functions should return the dark theme codes")
	}

	SetCurrentTheme(NoColorTheme)
	for name, fn := range map[string]func() string{
		"Accent": ColorAccent, "Success": ColorSuccess, "Warning": ColorWarning,
		"Error": ColorError, "Dim": ColorDim, "Bold": ColorBold, "Reset": ColorReset,
	} {
		if got := fn(); got != "" {
			t.Errorf("Color%s() = %q with colors disabled, want empty", name, got)
		}
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	orig := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(orig) })

	SetCurrentTheme(NoColorTheme)
	if _, ok := GetCurrentTUITheme().Accent.(lipgloss.NoColor); !ok {
		t.Error("no-color theme should map to lipgloss.NoColor")
	}
	SetCurrentTheme(DarkTheme)
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}

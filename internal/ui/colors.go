package ui

// The functions below return the escape code of the active theme, so callers
// can write fmt.Sprintf("%s...%s", ui.ColorAccent(), ui.ColorReset()) without
// caring whether colors are enabled.

func ColorAccent() string  { return GetCurrentTheme().Accent }
func ColorSuccess() string { return GetCurrentTheme().Success }
func ColorWarning() string { return GetCurrentTheme().Warning }
func ColorError() string   { return GetCurrentTheme().Error }
func ColorDim() string     { return GetCurrentTheme().Dim }
func ColorBold() string    { return GetCurrentTheme().Bold }
func ColorReset() string   { return GetCurrentTheme().Reset }

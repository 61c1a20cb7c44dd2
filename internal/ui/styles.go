package ui

// defaultThemeManager is the global theme manager instance.
// It starts with the Claude Warm theme and is switched by SetGlobalTheme
// once the configuration has been loaded.
var defaultThemeManager *ThemeManager

func init() {
	defaultThemeManager = NewThemeManager(ThemeClaudeWarm)
}

// SetGlobalTheme switches the global theme manager to the named preset.
// An unknown name leaves the current theme in place.
func SetGlobalTheme(name string) error {
	theme, err := LookupTheme(name)
	if err != nil {
		return err
	}
	defaultThemeManager.SetTheme(theme)
	return nil
}

// GetGlobalThemeManager returns the global theme manager instance.
func GetGlobalThemeManager() *ThemeManager {
	return defaultThemeManager
}

func renderSeparator(width int) string {
	return defaultThemeManager.RenderSeparator(width)
}

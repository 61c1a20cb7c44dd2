package domain

import (
	"fmt"
	"regexp"
)

// Theme represents a visual theme for the TUI.
type Theme struct {
	Name        string
	Description string
	Colors      ThemeColors
	Backgrounds ThemeBackgrounds
}

// ThemeColors defines the primary color palette for a theme.
type ThemeColors struct {
	// Primary accent color (selected rows, headers)
	Primary string

	// Secondary accent color (section titles)
	Secondary string

	Success string
	Warning string
	Error   string

	// Muted text color (descriptions, help)
	Muted string

	Border string
	Text   string
}

// ThemeBackgrounds defines background colors for various UI elements.
type ThemeBackgrounds struct {
	FormInput   string
	FormFocused string
	Panel       string
	ErrorBanner string
}

// hexColorRegex matches valid hex color codes (#RGB or #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// Validate checks if the theme has valid color values.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme name cannot be empty")
	}

	colors := []struct {
		name  string
		value string
	}{
		{"Primary", t.Colors.Primary},
		{"Secondary", t.Colors.Secondary},
		{"Success", t.Colors.Success},
		{"Warning", t.Colors.Warning},
		{"Error", t.Colors.Error},
		{"Muted", t.Colors.Muted},
		{"Border", t.Colors.Border},
		{"Text", t.Colors.Text},
		{"FormInput", t.Backgrounds.FormInput},
		{"FormFocused", t.Backgrounds.FormFocused},
		{"Panel", t.Backgrounds.Panel},
		{"ErrorBanner", t.Backgrounds.ErrorBanner},
	}

	for _, c := range colors {
		if !hexColorRegex.MatchString(c.value) {
			return fmt.Errorf("invalid hex color for %s: %s", c.name, c.value)
		}
	}

	return nil
}

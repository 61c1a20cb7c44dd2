package ui

import (
	"fmt"
	"strings"

	"github.com/yourusername/ghexplorer/internal/domain"
)

// Available theme presets for the TUI.
var (
	// ThemeClaudeWarm is the default theme with warm orange-rust tones.
	ThemeClaudeWarm = domain.Theme{
		Name:        "claude-warm",
		Description: "Professional warm theme with orange-rust accents (default)",
		Colors: domain.ThemeColors{
			Primary:   "#C15F3C",
			Secondary: "#A14A2F",
			Success:   "#7A9A6E",
			Warning:   "#D4945A",
			Error:     "#C16B6B",
			Muted:     "#B1ADA1",
			Border:    "#3A3631",
			Text:      "#E8E6E3",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#2F2A1F",
			FormFocused: "#3A2F1F",
			Panel:       "#1F2937",
			ErrorBanner: "#3A1F1F",
		},
	}

	// ThemeOceanBlue is a calm blue theme.
	ThemeOceanBlue = domain.Theme{
		Name:        "ocean-blue",
		Description: "Cool blue theme for focus and reduced eye strain",
		Colors: domain.ThemeColors{
			Primary:   "#4A90E2",
			Secondary: "#357ABD",
			Success:   "#6EA06E",
			Warning:   "#E2A04A",
			Error:     "#E24A4A",
			Muted:     "#A1B1C1",
			Border:    "#2A3641",
			Text:      "#E3E8ED",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#1F2A37",
			FormFocused: "#2A3641",
			Panel:       "#1A2532",
			ErrorBanner: "#3A1F1F",
		},
	}

	// ThemeTwilight is a purple-blue theme for evening sessions.
	ThemeTwilight = domain.Theme{
		Name:        "twilight",
		Description: "Purple-blue theme optimized for evening sessions",
		Colors: domain.ThemeColors{
			Primary:   "#8B7EC8",
			Secondary: "#6B5FA8",
			Success:   "#7AAA88",
			Warning:   "#D9A85A",
			Error:     "#C17B8B",
			Muted:     "#ADA1C1",
			Border:    "#2A2541",
			Text:      "#EDE8F5",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#1F1A2F",
			FormFocused: "#2A2541",
			Panel:       "#1A1628",
			ErrorBanner: "#3A1F2F",
		},
	}

	// ThemeMonochrome works on terminals with limited color support.
	ThemeMonochrome = domain.Theme{
		Name:        "monochrome",
		Description: "Grayscale theme",
		Colors: domain.ThemeColors{
			Primary:   "#FFFFFF",
			Secondary: "#CCCCCC",
			Success:   "#BBBBBB",
			Warning:   "#DDDDDD",
			Error:     "#FFFFFF",
			Muted:     "#888888",
			Border:    "#444444",
			Text:      "#EEEEEE",
		},
		Backgrounds: domain.ThemeBackgrounds{
			FormInput:   "#222222",
			FormFocused: "#333333",
			Panel:       "#1A1A1A",
			ErrorBanner: "#333333",
		},
	}
)

// AllThemes returns a slice of all available themes.
func AllThemes() []domain.Theme {
	return []domain.Theme{
		ThemeClaudeWarm,
		ThemeOceanBlue,
		ThemeTwilight,
		ThemeMonochrome,
	}
}

// LookupTheme returns the preset called name after checking its colors.
func LookupTheme(name string) (domain.Theme, error) {
	for _, theme := range AllThemes() {
		if theme.Name == name {
			if err := theme.Validate(); err != nil {
				return domain.Theme{}, err
			}
			return theme, nil
		}
	}
	return domain.Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(GetThemeNames(), ", "))
}

// GetThemeNames returns a slice of all theme names.
func GetThemeNames() []string {
	themes := AllThemes()
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = theme.Name
	}
	return names
}

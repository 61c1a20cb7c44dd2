package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghexplorer/internal/domain"
)

// ThemeManager manages the current theme and provides styled components.
type ThemeManager struct {
	currentTheme domain.Theme
	styles       *ThemeStyles
}

// ThemeStyles contains all lipgloss styles for the TUI.
type ThemeStyles struct {
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorText      lipgloss.Color

	// Header styles
	Title  lipgloss.Style
	Header lipgloss.Style

	// Search form
	FormInput        lipgloss.Style
	FormInputFocused lipgloss.Style
	FormInputError   lipgloss.Style
	FormButton       lipgloss.Style
	InputError       lipgloss.Style

	// List rows
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowTitle    lipgloss.Style
	RowDesc     lipgloss.Style
	Avatar      lipgloss.Style
	Chevron     lipgloss.Style

	// Detail panel
	Panel      lipgloss.Style
	StatValue  lipgloss.Style
	StatLabel  lipgloss.Style
	IssueTitle lipgloss.Style
	IssueUser  lipgloss.Style

	// Status indicator styles
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style

	// Footer styles
	Footer   lipgloss.Style
	Metadata lipgloss.Style

	Banner    lipgloss.Style
	Separator lipgloss.Style
	Loading   lipgloss.Style
}

// NewThemeManager creates a new theme manager with the specified theme.
func NewThemeManager(theme domain.Theme) *ThemeManager {
	tm := &ThemeManager{
		currentTheme: theme,
		styles:       &ThemeStyles{},
	}
	tm.regenerateStyles()
	return tm
}

// GetCurrentTheme returns the current theme.
func (tm *ThemeManager) GetCurrentTheme() domain.Theme {
	return tm.currentTheme
}

// SetTheme changes the current theme and regenerates all styles.
func (tm *ThemeManager) SetTheme(theme domain.Theme) {
	tm.currentTheme = theme
	tm.regenerateStyles()
}

// GetStyles returns the current theme styles.
func (tm *ThemeManager) GetStyles() *ThemeStyles {
	return tm.styles
}

// regenerateStyles rebuilds all lipgloss styles based on the current theme.
func (tm *ThemeManager) regenerateStyles() {
	c := tm.currentTheme.Colors
	bg := tm.currentTheme.Backgrounds

	colorPrimary := lipgloss.Color(c.Primary)
	colorSecondary := lipgloss.Color(c.Secondary)
	colorSuccess := lipgloss.Color(c.Success)
	colorWarning := lipgloss.Color(c.Warning)
	colorError := lipgloss.Color(c.Error)
	colorMuted := lipgloss.Color(c.Muted)
	colorBorder := lipgloss.Color(c.Border)
	colorText := lipgloss.Color(c.Text)

	s := tm.styles
	s.ColorPrimary = colorPrimary
	s.ColorSecondary = colorSecondary
	s.ColorSuccess = colorSuccess
	s.ColorWarning = colorWarning
	s.ColorError = colorError
	s.ColorMuted = colorMuted
	s.ColorBorder = colorBorder
	s.ColorText = colorText

	s.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorText).
		MarginBottom(1)

	s.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPrimary).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder)

	s.FormInput = lipgloss.NewStyle().
		Foreground(colorText).
		Background(lipgloss.Color(bg.FormInput)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	s.FormInputFocused = s.FormInput.
		Background(lipgloss.Color(bg.FormFocused)).
		BorderForeground(colorPrimary)

	s.FormInputError = s.FormInput.
		BorderForeground(colorError)

	s.FormButton = lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSuccess).
		Padding(0, 2).
		Bold(true)

	s.InputError = lipgloss.NewStyle().
		Foreground(colorError).
		MarginTop(1)

	s.RowNormal = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	s.RowSelected = s.RowNormal.
		BorderForeground(colorPrimary)

	s.RowTitle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	s.RowDesc = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.Avatar = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.Chevron = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Background(lipgloss.Color(bg.Panel)).
		Padding(1, 2)

	s.StatValue = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)

	s.StatLabel = lipgloss.NewStyle().
		Foreground(colorMuted)

	s.IssueTitle = lipgloss.NewStyle().
		Foreground(colorText).
		Bold(true)

	s.IssueUser = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	s.StatusWarning = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true)

	s.StatusError = lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true)

	s.Footer = lipgloss.NewStyle().
		Foreground(colorMuted).
		MarginTop(1).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		PaddingTop(1)

	s.Metadata = lipgloss.NewStyle().
		Foreground(colorMuted).
		Italic(true)

	s.Banner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorError).
		Background(lipgloss.Color(bg.ErrorBanner)).
		Padding(0, 2)

	s.Separator = lipgloss.NewStyle().
		Foreground(colorBorder).
		MarginTop(1).
		MarginBottom(1)

	s.Loading = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true)
}

// RenderSeparator returns a styled horizontal separator.
func (tm *ThemeManager) RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return tm.styles.Separator.Render(strings.Repeat("─", width))
}

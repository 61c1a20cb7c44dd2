package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghexplorer/internal/ui/layout"
)

// ErrorBanner is a bordered error message with optional hints.
type ErrorBanner struct {
	Title   string
	Message string
	Actions []string // Suggested actions to resolve
	Width   int
}

// NewErrorBanner creates a new error banner
func NewErrorBanner(message string) *ErrorBanner {
	return &ErrorBanner{
		Title:   "Error",
		Message: message,
	}
}

// WithTitle sets a custom title
func (eb *ErrorBanner) WithTitle(title string) *ErrorBanner {
	eb.Title = title
	return eb
}

// WithActions adds suggested actions
func (eb *ErrorBanner) WithActions(actions ...string) *ErrorBanner {
	eb.Actions = actions
	return eb
}

// WithWidth sets the width
func (eb *ErrorBanner) WithWidth(width int) *ErrorBanner {
	eb.Width = width
	return eb
}

// Render renders the error banner
func (eb *ErrorBanner) Render() string {
	styles := GetGlobalThemeManager().GetStyles()

	bannerStyle := styles.Banner
	if eb.Width > 0 {
		bannerStyle = bannerStyle.Width(eb.Width - (layout.SpacingSM * 2) - 2)
	}

	var content strings.Builder

	content.WriteString(styles.StatusError.Render("✗ "+eb.Title) + "\n")
	content.WriteString(lipgloss.NewStyle().Foreground(styles.ColorText).Render(eb.Message))

	if len(eb.Actions) > 0 {
		content.WriteString("\n")
		for _, action := range eb.Actions {
			content.WriteString("\n" + styles.RowDesc.Render("• "+action))
		}
	}

	return bannerStyle.Render(content.String())
}

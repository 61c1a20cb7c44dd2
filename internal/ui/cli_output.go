package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghexplorer/internal/domain"
)

func prefix(color lipgloss.Color, label string) string {
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(label)
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	styles := GetGlobalThemeManager().GetStyles()
	fmt.Fprintf(w, "%s %s\n", prefix(styles.ColorSuccess, "[SUCCESS]"), message)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	styles := GetGlobalThemeManager().GetStyles()
	fmt.Fprintf(w, "%s %s\n", prefix(styles.ColorError, "[ERROR]"), message)
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, message string) {
	styles := GetGlobalThemeManager().GetStyles()
	fmt.Fprintf(w, "%s %s\n", prefix(styles.ColorPrimary, "[INFO]"), message)
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, message string) {
	styles := GetGlobalThemeManager().GetStyles()
	fmt.Fprintf(w, "%s %s\n", prefix(styles.ColorWarning, "[WARNING]"), message)
}

// FormatValue highlights a value in output
func FormatValue(value string) string {
	return GetGlobalThemeManager().GetStyles().StatValue.Render(value)
}

// FormatLabel formats a label
func FormatLabel(label string) string {
	return GetGlobalThemeManager().GetStyles().StatLabel.Render(label)
}

// PrintEntry writes a single history entry.
func PrintEntry(w io.Writer, e domain.SearchHistoryEntry) {
	fmt.Fprintln(w, renderHistoryRow(e, false, 0))
}

// PrintHistory writes one block per entry, in order.
func PrintHistory(w io.Writer, entries []domain.SearchHistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, FormatLabel("No repositories searched yet"))
		return
	}
	for _, e := range entries {
		PrintEntry(w, e)
	}
}

// PrintDetail writes the metadata panel and the issue list.
func PrintDetail(w io.Writer, repo *domain.RepositoryDetail, issues []domain.Issue) {
	fmt.Fprintln(w, renderRepositoryPanel(repo, 0))
	fmt.Fprintln(w, renderIssueList(issues, -1))
}

// renderIssueList renders the issues, highlighting index selected.
func renderIssueList(issues []domain.Issue, selected int) string {
	styles := GetGlobalThemeManager().GetStyles()
	if len(issues) == 0 {
		return styles.RowDesc.Italic(true).Render("No open issues")
	}

	rows := make([]string, 0, len(issues))
	for i, is := range issues {
		rows = append(rows, renderIssueRow(is, i == selected))
	}
	return strings.Join(rows, "\n")
}

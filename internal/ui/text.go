package ui

import (
	"fmt"
	"strings"
)

// truncateText shortens text to maxLen runes, ending with an ellipsis.
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return text
	}

	if maxLen < 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}

// singleLine collapses newlines and runs of whitespace into single spaces.
func singleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// pluralize returns singular or plural form based on count
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// FormatCount formats a count with its singular/plural noun.
func FormatCount(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, pluralize(count, singular, plural))
}

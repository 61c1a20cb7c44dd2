package domain

import (
	"fmt"
	"slices"
)

// HistorySaver persists the complete history after each change.
type HistorySaver func(entries []SearchHistoryEntry) error

// History is the ordered list of searched repositories.
// Every mutation calls the saver with the full sequence before returning.
type History struct {
	entries []SearchHistoryEntry
	save    HistorySaver
}

// NewHistory creates a history seeded with entries.
// A nil saver makes the history purely in-memory.
func NewHistory(entries []SearchHistoryEntry, save HistorySaver) *History {
	return &History{
		entries: slices.Clone(entries),
		save:    save,
	}
}

// Append adds an entry at the end and persists the whole list.
// Duplicates are allowed. The entry is kept in memory even if saving fails.
func (h *History) Append(entry SearchHistoryEntry) error {
	h.entries = append(h.entries, entry)
	if h.save == nil {
		return nil
	}
	if err := h.save(h.Entries()); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Entries returns a copy of the entries in insertion order.
func (h *History) Entries() []SearchHistoryEntry {
	return slices.Clone(h.entries)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at index i.
func (h *History) At(i int) (SearchHistoryEntry, bool) {
	if i < 0 || i >= len(h.entries) {
		return SearchHistoryEntry{}, false
	}
	return h.entries[i], true
}

// Package storage persists the search history under a single fixed key.
//
// Both backends store the same payload: the JSON array of
// domain.SearchHistoryEntry values. There is no versioning or migration.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yourusername/ghexplorer/internal/domain"
)

// HistoryKey is the fixed key holding the serialized history.
const HistoryKey = "githubexplorer::repositories"

// Store holds raw values by key.
type Store interface {
	// Get returns the value for key and false if the key is absent.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Close() error
}

// Open opens the backend selected by cfg.
func Open(cfg domain.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case domain.StorageBolt:
		return OpenBolt(cfg.Path)
	case domain.StorageFile:
		return NewFileStore(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// HistoryRepository reads and writes the search history.
type HistoryRepository struct {
	store  Store
	logger *slog.Logger
}

// NewHistoryRepository wraps store.
func NewHistoryRepository(store Store, logger *slog.Logger) *HistoryRepository {
	return &HistoryRepository{store: store, logger: logger}
}

// Load returns the persisted history. A missing key yields an empty history.
// A payload that cannot be parsed is logged and treated as empty; it is
// overwritten by the next Save.
func (r *HistoryRepository) Load() ([]domain.SearchHistoryEntry, error) {
	data, ok, err := r.store.Get(HistoryKey)
	if errors.Is(err, ErrCorrupt) {
		r.logger.Warn("discarding unreadable store",
			slog.String("key", HistoryKey),
			slog.String("error", err.Error()),
		)
		return []domain.SearchHistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if !ok || len(data) == 0 {
		return []domain.SearchHistoryEntry{}, nil
	}

	var entries []domain.SearchHistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		r.logger.Warn("discarding unreadable history",
			slog.String("key", HistoryKey),
			slog.String("error", err.Error()),
		)
		return []domain.SearchHistoryEntry{}, nil
	}
	if entries == nil {
		entries = []domain.SearchHistoryEntry{}
	}

	r.logger.Debug("history loaded", slog.Int("entries", len(entries)))
	return entries, nil
}

// Save replaces the persisted history with entries.
func (r *HistoryRepository) Save(entries []domain.SearchHistoryEntry) error {
	if entries == nil {
		entries = []domain.SearchHistoryEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	if err := r.store.Put(HistoryKey, data); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}

	r.logger.Debug("history saved", slog.Int("entries", len(entries)))
	return nil
}

// History loads the persisted entries into a collection that saves itself
// on every change.
func (r *HistoryRepository) History() (*domain.History, error) {
	entries, err := r.Load()
	if err != nil {
		return nil, err
	}
	return domain.NewHistory(entries, r.Save), nil
}

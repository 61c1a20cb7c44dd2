package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yourusername/ghexplorer/internal/domain"
)

// RepositoryReader is the remote source of repositories and issues.
type RepositoryReader interface {
	GetRepository(ctx context.Context, fullName string) (*domain.RepositoryDetail, error)
	ListOpenIssues(ctx context.Context, fullName string) ([]domain.Issue, error)
}

// SearchRepositoryUseCase looks up a repository and records it in the history.
type SearchRepositoryUseCase struct {
	reader  RepositoryReader
	history *domain.History
	logger  *slog.Logger
}

// NewSearchRepositoryUseCase creates a new SearchRepositoryUseCase.
func NewSearchRepositoryUseCase(reader RepositoryReader, history *domain.History, logger *slog.Logger) *SearchRepositoryUseCase {
	return &SearchRepositoryUseCase{
		reader:  reader,
		history: history,
		logger:  logger,
	}
}

// SearchRepositoryRequest contains the parameters for a search.
type SearchRepositoryRequest struct {
	Query string // "owner/name", forwarded without trimming
}

// SearchRepositoryResponse contains the recorded entry.
type SearchRepositoryResponse struct {
	Entry   domain.SearchHistoryEntry
	Count   int   // history length after the append
	SaveErr error // non-nil when the entry could not be persisted
}

// Execute validates the query, looks the repository up and appends it to the
// history. On failure the history is left unchanged.
func (uc *SearchRepositoryUseCase) Execute(ctx context.Context, req SearchRepositoryRequest) (*SearchRepositoryResponse, error) {
	entry, err := uc.Lookup(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	return uc.Record(entry), nil
}

// Lookup validates the query and fetches the normalized entry without
// touching the history. It is safe to call from a background goroutine.
func (uc *SearchRepositoryUseCase) Lookup(ctx context.Context, query string) (domain.SearchHistoryEntry, error) {
	if query == "" {
		return domain.SearchHistoryEntry{}, domain.ErrEmptyQuery
	}

	detail, err := uc.reader.GetRepository(ctx, query)
	if err != nil {
		uc.logger.Info("repository search failed",
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
		return domain.SearchHistoryEntry{}, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}

	return detail.HistoryEntry(), nil
}

// Record appends entry to the history, which persists the full list.
// It must run on the goroutine that owns the history.
func (uc *SearchRepositoryUseCase) Record(entry domain.SearchHistoryEntry) *SearchRepositoryResponse {
	resp := &SearchRepositoryResponse{Entry: entry}

	if err := uc.history.Append(entry); err != nil {
		uc.logger.Warn("history not persisted",
			slog.String("repository", entry.FullName),
			slog.String("error", err.Error()),
		)
		resp.SaveErr = err
	}

	resp.Count = uc.history.Len()

	uc.logger.Info("repository added to history",
		slog.String("repository", entry.FullName),
		slog.Int("entries", resp.Count),
	)

	return resp
}

// History returns the history this use case records into.
func (uc *SearchRepositoryUseCase) History() *domain.History {
	return uc.history
}

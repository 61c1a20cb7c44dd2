package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yourusername/ghexplorer/internal/domain"
	"golang.org/x/sync/errgroup"
)

// LoadDetailUseCase fetches everything the detail screen shows.
type LoadDetailUseCase struct {
	reader RepositoryReader
	logger *slog.Logger
}

// NewLoadDetailUseCase creates a new LoadDetailUseCase.
func NewLoadDetailUseCase(reader RepositoryReader, logger *slog.Logger) *LoadDetailUseCase {
	return &LoadDetailUseCase{reader: reader, logger: logger}
}

// LoadDetailRequest identifies the repository to load.
type LoadDetailRequest struct {
	FullName string
}

// LoadDetailResponse contains the repository metadata and its open issues.
type LoadDetailResponse struct {
	FullName   string
	Repository *domain.RepositoryDetail
	Issues     []domain.Issue
}

// Execute runs both lookups concurrently and returns only when both have
// succeeded. If either fails the other is cancelled and nothing is returned.
func (uc *LoadDetailUseCase) Execute(ctx context.Context, req LoadDetailRequest) (*LoadDetailResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: empty repository identifier", domain.ErrDetailFailed)
	}

	var (
		repo   *domain.RepositoryDetail
		issues []domain.Issue
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		repo, err = uc.reader.GetRepository(gctx, req.FullName)
		return err
	})

	g.Go(func() error {
		var err error
		issues, err = uc.reader.ListOpenIssues(gctx, req.FullName)
		return err
	})

	if err := g.Wait(); err != nil {
		if !errors.Is(err, context.Canceled) {
			uc.logger.Warn("repository detail failed",
				slog.String("repository", req.FullName),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrDetailFailed, err)
	}

	uc.logger.Debug("repository detail loaded",
		slog.String("repository", req.FullName),
		slog.Int("issues", len(issues)),
	)

	return &LoadDetailResponse{
		FullName:   req.FullName,
		Repository: repo,
		Issues:     issues,
	}, nil
}

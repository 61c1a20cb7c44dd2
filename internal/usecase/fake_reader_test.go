package usecase

import (
	"context"
	"sync"

	"github.com/yourusername/ghexplorer/internal/domain"
)

// fakeReader serves canned repositories and issues keyed by full name.
type fakeReader struct {
	mu sync.Mutex

	repos     map[string]*domain.RepositoryDetail
	issues    map[string][]domain.Issue
	repoErr   error
	issuesErr error

	// block, when set, holds ListOpenIssues until ctx is done.
	block bool

	repoCalls   []string
	issuesCalls []string
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		repos:  map[string]*domain.RepositoryDetail{},
		issues: map[string][]domain.Issue{},
	}
}

func (f *fakeReader) GetRepository(ctx context.Context, fullName string) (*domain.RepositoryDetail, error) {
	f.mu.Lock()
	f.repoCalls = append(f.repoCalls, fullName)
	repo, ok := f.repos[fullName]
	err := f.repoErr
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errNotFound
	}
	return repo, nil
}

func (f *fakeReader) ListOpenIssues(ctx context.Context, fullName string) ([]domain.Issue, error) {
	f.mu.Lock()
	f.issuesCalls = append(f.issuesCalls, fullName)
	issues := f.issues[fullName]
	err := f.issuesErr
	block := f.block
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return issues, nil
}

func (f *fakeReader) calls() (repo, issues int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.repoCalls), len(f.issuesCalls)
}

package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/ghexplorer/internal/domain"
	"github.com/yourusername/ghexplorer/internal/logging"
	"github.com/yourusername/ghexplorer/internal/usecase"
)

var errNotFound = errors.New("404 Not Found")

// stubReader serves canned repositories and issues keyed by full name.
type stubReader struct {
	mu        sync.Mutex
	repos     map[string]*domain.RepositoryDetail
	issues    map[string][]domain.Issue
	failIssue bool
	calls     int
	queries   []string
}

func newStubReader(repos ...*domain.RepositoryDetail) *stubReader {
	r := &stubReader{
		repos:  map[string]*domain.RepositoryDetail{},
		issues: map[string][]domain.Issue{},
	}
	for _, repo := range repos {
		r.repos[repo.FullName] = repo
	}
	return r
}

func (r *stubReader) GetRepository(ctx context.Context, fullName string) (*domain.RepositoryDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.queries = append(r.queries, fullName)
	repo, ok := r.repos[fullName]
	if !ok {
		return nil, errNotFound
	}
	return repo, nil
}

func (r *stubReader) ListOpenIssues(ctx context.Context, fullName string) ([]domain.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIssue {
		return nil, errors.New("issues unavailable")
	}
	return r.issues[fullName], nil
}

func (r *stubReader) lastQuery() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queries) == 0 {
		return ""
	}
	return r.queries[len(r.queries)-1]
}

func (r *stubReader) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func repoDetail(fullName, description string) *domain.RepositoryDetail {
	owner, _, _ := domain.SplitFullName(fullName)
	return &domain.RepositoryDetail{
		FullName:     fullName,
		Description:  description,
		Stars:        10,
		Forks:        2,
		IssuesOpened: 1,
		Owner:        domain.Owner{Login: owner, AvatarURL: "https://avatars.example/" + owner},
	}
}

// recorder captures every list handed to the history saver.
type recorder struct {
	saves [][]domain.SearchHistoryEntry
}

func (r *recorder) save(entries []domain.SearchHistoryEntry) error {
	r.saves = append(r.saves, entries)
	return nil
}

func newSearchUseCase(reader usecase.RepositoryReader, seed []domain.SearchHistoryEntry, rec *recorder) *usecase.SearchRepositoryUseCase {
	var save domain.HistorySaver
	if rec != nil {
		save = rec.save
	}
	return usecase.NewSearchRepositoryUseCase(reader, domain.NewHistory(seed, save), logging.Discard())
}

// runCmd executes cmd and returns the messages it produces, flattening
// batches. Commands that do not finish quickly (cursor blink, spinner
// frames) are dropped.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// firstMsg returns the first message of type T produced by cmd.
func firstMsg[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range runCmd(t, cmd) {
		if m, ok := msg.(T); ok {
			return m
		}
	}
	var zero T
	t.Fatalf("command produced no %T", zero)
	return zero
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ghexplorer/internal/domain"
	"github.com/yourusername/ghexplorer/internal/logging"
	"github.com/yourusername/ghexplorer/internal/usecase"
)

func newDetailView(reader usecase.RepositoryReader, open URLOpener) DetailViewModel {
	load := usecase.NewLoadDetailUseCase(reader, logging.Discard())
	return NewDetailViewModel(context.Background(), load, open)
}

func updateDetail(t *testing.T, m DetailViewModel, msg tea.Msg) (DetailViewModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(DetailViewModel), cmd
}

func reactReader() *stubReader {
	reader := newStubReader(repoDetail("facebook/react", "UI library"), repoDetail("golang/go", "Go"))
	reader.issues["facebook/react"] = []domain.Issue{
		{ID: 1, Title: "Hooks bug", HTMLURL: "https://github.com/facebook/react/issues/1", AuthorLogin: "alice"},
		{ID: 2, Title: "Docs typo", HTMLURL: "https://github.com/facebook/react/issues/2", AuthorLogin: "bob"},
	}
	return reader
}

func TestDetailView_LoadsRepositoryAndIssues(t *testing.T) {
	m := newDetailView(reactReader(), nil)

	m, cmd := m.Navigate("facebook/react")
	assert.True(t, m.Loading())
	assert.Equal(t, "facebook/react", m.FullName())
	assert.Nil(t, m.Repository())

	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))

	assert.False(t, m.Loading())
	require.NoError(t, m.Err())
	require.NotNil(t, m.Repository())
	assert.Equal(t, 10, m.Repository().Stars)
	assert.Equal(t, 2, m.Repository().Forks)
	assert.Equal(t, 1, m.Repository().IssuesOpened)
	require.Len(t, m.Issues(), 2)
	assert.Equal(t, "Hooks bug", m.Issues()[0].Title)
	assert.Equal(t, "Docs typo", m.Issues()[1].Title)

	view := m.View()
	for _, want := range []string{"Stars", "Forks", "Open issues", "Hooks bug", "alice", "Docs typo", "bob", "/repository/facebook/react"} {
		assert.Contains(t, view, want)
	}
	// Issues render in the order the API returned them.
	assert.Less(t, strings.Index(view, "Hooks bug"), strings.Index(view, "Docs typo"))
}

func TestDetailView_NoIssues(t *testing.T) {
	m := newDetailView(reactReader(), nil)

	m, cmd := m.Navigate("golang/go")
	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))

	assert.Empty(t, m.Issues())
	assert.Contains(t, m.View(), "No open issues")
}

func TestDetailView_FailureShowsBanner(t *testing.T) {
	reader := reactReader()
	reader.failIssue = true
	m := newDetailView(reader, nil)

	m, cmd := m.Navigate("facebook/react")
	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))

	assert.ErrorIs(t, m.Err(), domain.ErrDetailFailed)
	assert.Nil(t, m.Repository(), "metadata must not be shown without issues")
	assert.Empty(t, m.Issues())
	assert.False(t, m.Loading())
	assert.Contains(t, m.View(), "Repository unavailable")
}

func TestDetailView_RetryAfterFailure(t *testing.T) {
	reader := reactReader()
	reader.failIssue = true
	m := newDetailView(reader, nil)

	m, cmd := m.Navigate("facebook/react")
	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))
	require.Error(t, m.Err())

	reader.mu.Lock()
	reader.failIssue = false
	reader.mu.Unlock()

	m, cmd = updateDetail(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.Loading())
	assert.NoError(t, m.Err())

	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))
	assert.NotNil(t, m.Repository())
	assert.Len(t, m.Issues(), 2)
}

func TestDetailView_SecondNavigationReplacesFirst(t *testing.T) {
	m := newDetailView(reactReader(), nil)

	m, cmd := m.Navigate("facebook/react")
	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))
	require.NotNil(t, m.Repository())

	m, cmd = m.Navigate("golang/go")
	assert.Nil(t, m.Repository(), "previous metadata must be cleared")
	assert.Empty(t, m.Issues(), "previous issues must be cleared")
	assert.True(t, m.Loading())

	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))
	require.NotNil(t, m.Repository())
	assert.Equal(t, "golang/go", m.Repository().FullName)
}

func TestDetailView_StaleResultIgnored(t *testing.T) {
	m := newDetailView(reactReader(), nil)

	m, first := m.Navigate("facebook/react")
	staleMsg := firstMsg[detailLoadedMsg](t, first)

	m, second := m.Navigate("golang/go")
	freshMsg := firstMsg[detailLoadedMsg](t, second)

	// The earlier load finishing late must not overwrite the current one.
	m, _ = updateDetail(t, m, freshMsg)
	m, _ = updateDetail(t, m, staleMsg)

	require.NotNil(t, m.Repository())
	assert.Equal(t, "golang/go", m.Repository().FullName)
	assert.Empty(t, m.Issues())

	// Nor may it end the loading state of a newer load.
	m, third := m.Navigate("facebook/react")
	m, _ = updateDetail(t, m, freshMsg)
	assert.True(t, m.Loading())
	assert.Nil(t, m.Repository())

	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, third))
	assert.Equal(t, "facebook/react", m.Repository().FullName)
}

func TestDetailView_OpenIssue(t *testing.T) {
	var opened []string
	open := func(url string) error {
		opened = append(opened, url)
		return nil
	}
	m := newDetailView(reactReader(), open)

	m, cmd := m.Navigate("facebook/react")
	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))

	m, _ = updateDetail(t, m, keyType(tea.KeyDown))
	_, cmd = updateDetail(t, m, keyType(tea.KeyEnter))

	msg := firstMsg[urlOpenedMsg](t, cmd)
	assert.NoError(t, msg.err)
	assert.Equal(t, []string{"https://github.com/facebook/react/issues/2"}, opened)
}

func TestDetailView_OpenFailureShowsStatus(t *testing.T) {
	m := newDetailView(reactReader(), func(string) error { return errors.New("no browser") })

	m, cmd := m.Navigate("facebook/react")
	m, _ = updateDetail(t, m, firstMsg[detailLoadedMsg](t, cmd))

	_, cmd = updateDetail(t, m, keyType(tea.KeyEnter))
	m, _ = updateDetail(t, m, firstMsg[urlOpenedMsg](t, cmd))

	assert.True(t, strings.Contains(m.View(), "Could not open"))
}

func TestDetailView_BackNavigatesToSearch(t *testing.T) {
	m := newDetailView(reactReader(), nil)
	m, _ = m.Navigate("facebook/react")

	_, cmd := updateDetail(t, m, keyType(tea.KeyEsc))

	nav := firstMsg[NavigateMsg](t, cmd)
	assert.Equal(t, SearchRoute(), nav.Route)
}

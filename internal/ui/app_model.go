package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/ghexplorer/internal/usecase"
)

// NavigateMsg asks the application to switch to another route.
type NavigateMsg struct {
	Route Route
}

// Navigate returns a command that switches to route.
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

// AppModel is the root model that routes between the two screens.
type AppModel struct {
	route Route

	search SearchViewModel
	detail DetailViewModel

	windowWidth  int
	windowHeight int
}

// NewAppModel creates the root model starting at route.
func NewAppModel(ctx context.Context, search *usecase.SearchRepositoryUseCase, load *usecase.LoadDetailUseCase, open URLOpener, start Route) AppModel {
	return AppModel{
		route:  start,
		search: NewSearchViewModel(ctx, search),
		detail: NewDetailViewModel(ctx, load, open),
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.search.Init()}
	if m.route.Kind == RouteDetail {
		cmds = append(cmds, Navigate(m.route))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the application state
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height

		search, _ := m.search.Update(msg)
		m.search = search.(SearchViewModel)
		detail, _ := m.detail.Update(msg)
		m.detail = detail.(DetailViewModel)
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Route)

	case searchResultMsg:
		return m.updateSearch(msg)

	case detailLoadedMsg, urlOpenedMsg:
		return m.updateDetail(msg)

	case spinner.TickMsg:
		// Each spinner ignores ticks carrying another spinner's ID.
		search, searchCmd := m.search.Update(msg)
		m.search = search.(SearchViewModel)
		detail, detailCmd := m.detail.Update(msg)
		m.detail = detail.(DetailViewModel)
		return m, tea.Batch(searchCmd, detailCmd)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.detail.Close()
			return m, tea.Quit
		}
	}

	// Everything else goes to the active screen.
	if m.route.Kind == RouteDetail {
		return m.updateDetail(msg)
	}
	return m.updateSearch(msg)
}

func (m AppModel) navigate(route Route) (tea.Model, tea.Cmd) {
	m.route = route

	if route.Kind == RouteSearch {
		m.detail.Close()
		var cmd tea.Cmd
		m.search, cmd = m.search.FocusInput()
		return m, cmd
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Navigate(route.FullName)
	return m, cmd
}

func (m AppModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.search.Update(msg)
	m.search = updated.(SearchViewModel)
	return m, cmd
}

func (m AppModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.detail.Update(msg)
	m.detail = updated.(DetailViewModel)
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.route.Kind == RouteDetail {
		return m.detail.View()
	}
	return m.search.View()
}

// Route returns the active route.
func (m AppModel) Route() Route {
	return m.route
}

// Search returns the search screen.
func (m AppModel) Search() SearchViewModel {
	return m.search
}

// Detail returns the detail screen.
func (m AppModel) Detail() DetailViewModel {
	return m.detail
}

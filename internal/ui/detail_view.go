package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghexplorer/internal/domain"
	"github.com/yourusername/ghexplorer/internal/ui/layout"
	"github.com/yourusername/ghexplorer/internal/usecase"
)

// URLOpener opens a link outside the terminal.
type URLOpener func(url string) error

// detailLoadedMsg carries the joined result of both detail lookups.
type detailLoadedMsg struct {
	loadID int
	resp   *usecase.LoadDetailResponse
	err    error
}

type urlOpenedMsg struct {
	url string
	err error
}

// DetailViewModel is the repository detail screen.
type DetailViewModel struct {
	parent context.Context
	cancel context.CancelFunc
	load   *usecase.LoadDetailUseCase
	open   URLOpener

	fullName string
	loadID   int
	loading  bool

	repo   *domain.RepositoryDetail
	issues []domain.Issue
	err    error
	status string

	selected int
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     detailKeyMap

	windowWidth  int
	windowHeight int
}

// NewDetailViewModel creates a detail screen. Call Navigate to pick the
// repository; nothing is loaded until then.
func NewDetailViewModel(ctx context.Context, load *usecase.LoadDetailUseCase, open URLOpener) DetailViewModel {
	m := DetailViewModel{
		parent:       ctx,
		load:         load,
		open:         open,
		viewport:     viewport.New(layout.DefaultWidth, layout.DefaultHeight),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:         help.New(),
		keys:         newDetailKeyMap(),
		windowWidth:  layout.DefaultWidth,
		windowHeight: layout.DefaultHeight,
	}
	m.resize()
	return m
}

// Init initializes the detail view.
func (m DetailViewModel) Init() tea.Cmd {
	return nil
}

// Navigate switches the screen to fullName. Any previous metadata and issues
// are dropped and both lookups start again; in-flight lookups for the
// previous identifier are cancelled and their results ignored.
func (m DetailViewModel) Navigate(fullName string) (DetailViewModel, tea.Cmd) {
	m.Close()

	m.fullName = fullName
	m.repo = nil
	m.issues = nil
	m.err = nil
	m.status = ""
	m.selected = 0

	return m.reload()
}

// Close cancels in-flight lookups.
func (m DetailViewModel) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m DetailViewModel) reload() (DetailViewModel, tea.Cmd) {
	m.Close()

	ctx, cancel := context.WithCancel(m.parent)
	m.cancel = cancel
	m.loadID++
	m.loading = true
	m.refreshContent()

	id, load, fullName := m.loadID, m.load, m.fullName
	fetch := func() tea.Msg {
		resp, err := load.Execute(ctx, usecase.LoadDetailRequest{FullName: fullName})
		return detailLoadedMsg{loadID: id, resp: resp, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, fetch)
}

// Update handles messages and updates the detail view.
func (m DetailViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case detailLoadedMsg:
		return m.handleLoaded(msg), nil

	case urlOpenedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not open %s", msg.url)
		} else {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m DetailViewModel) handleLoaded(msg detailLoadedMsg) DetailViewModel {
	if msg.loadID != m.loadID {
		return m
	}

	m.loading = false

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m
		}
		m.err = msg.err
		m.repo = nil
		m.issues = nil
		m.resize()
		return m
	}

	m.err = nil
	m.repo = msg.resp.Repository
	m.issues = msg.resp.Issues
	m.selected = 0
	m.resize()
	m.viewport.GotoTop()

	return m
}

func (m DetailViewModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.Close()
		return m, Navigate(SearchRoute())

	case key.Matches(msg, m.keys.Retry):
		if m.loading {
			return m, nil
		}
		m.err = nil
		return m.reload()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.refreshContent()
			m.scrollToSelected()
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.issues)-1 {
			m.selected++
			m.refreshContent()
			m.scrollToSelected()
		}

	case key.Matches(msg, m.keys.Open):
		if m.selected < len(m.issues) && m.open != nil {
			url, open := m.issues[m.selected].HTMLURL, m.open
			return m, func() tea.Msg {
				return urlOpenedMsg{url: url, err: open(url)}
			}
		}
	}

	return m, nil
}

func (m *DetailViewModel) resize() {
	fixed := layout.TitleHeight
	if m.repo != nil {
		fixed += layout.PanelHeight
	}
	m.viewport.Width = layout.ContentWidth(m.windowWidth)
	m.viewport.Height = layout.ListHeight(m.windowHeight, fixed)
	m.refreshContent()
}

func (m *DetailViewModel) refreshContent() {
	m.viewport.SetContent(renderIssueList(m.issues, m.selected))
}

func (m *DetailViewModel) scrollToSelected() {
	top := m.selected * layout.IssueRowHeight
	bottom := top + layout.IssueRowHeight
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// View renders the detail view.
func (m DetailViewModel) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	width := layout.ContentWidth(m.windowWidth)

	sections := []string{m.renderHeader()}

	switch {
	case m.err != nil:
		banner := NewErrorBanner(fmt.Sprintf("Could not load %s", m.fullName)).
			WithTitle("Repository unavailable").
			WithActions("Press r to try again", "Press esc to go back to the search").
			WithWidth(width)
		sections = append(sections, banner.Render())
	case m.loading && m.repo == nil:
		sections = append(sections, styles.Loading.Render(m.spinner.View()+" Loading "+m.fullName+"..."))
	}

	if m.repo != nil {
		sections = append(sections, renderRepositoryPanel(m.repo, width))
		sections = append(sections, renderSeparator(width))
	}

	sections = append(sections, m.viewport.View())

	if m.status != "" {
		sections = append(sections, styles.StatusWarning.Render(m.status))
	}

	footer := styles.Footer.Render(m.help.View(m.keys))
	if m.fullName != "" {
		footer += " " + styles.Metadata.Render(DetailRoute(m.fullName).String())
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DetailViewModel) renderHeader() string {
	styles := GetGlobalThemeManager().GetStyles()
	return styles.Chevron.Render("‹ back") + "  " + styles.Header.Render("GitHub Explorer")
}

// renderRepositoryPanel renders owner, name, description and the counters.
func renderRepositoryPanel(repo *domain.RepositoryDetail, width int) string {
	styles := GetGlobalThemeManager().GetStyles()

	panelStyle := styles.Panel
	if width > 0 {
		panelStyle = panelStyle.Width(width - 2)
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Avatar.Render("◉ "+repo.Owner.Login)+"  "+styles.RowTitle.Render(repo.FullName),
		styles.RowDesc.Render(repo.Description),
	)

	stat := func(value int, label string) string {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			styles.StatValue.Render(fmt.Sprintf("%d", value)),
			styles.StatLabel.Render(label),
		)
	}

	stats := lipgloss.JoinHorizontal(
		lipgloss.Top,
		stat(repo.Stars, "Stars"),
		strings.Repeat(" ", layout.SpacingLG),
		stat(repo.Forks, "Forks"),
		strings.Repeat(" ", layout.SpacingLG),
		stat(repo.IssuesOpened, "Open issues"),
	)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", stats))
}

// renderIssueRow renders one issue: title and author.
func renderIssueRow(is domain.Issue, selected bool) string {
	styles := GetGlobalThemeManager().GetStyles()

	rowStyle := styles.RowNormal
	if selected {
		rowStyle = styles.RowSelected
	}

	text := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.IssueTitle.Render(is.Title),
		styles.IssueUser.Render(is.AuthorLogin),
	)

	return rowStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, text, "  ", styles.Chevron.Render("›")))
}

// FullName returns the repository the screen is showing.
func (m DetailViewModel) FullName() string {
	return m.fullName
}

// Repository returns the loaded metadata, or nil before it has loaded.
func (m DetailViewModel) Repository() *domain.RepositoryDetail {
	return m.repo
}

// Issues returns the loaded issues in response order.
func (m DetailViewModel) Issues() []domain.Issue {
	return m.issues
}

// Err returns the last load failure.
func (m DetailViewModel) Err() error {
	return m.err
}

// Loading reports whether a load is in flight.
func (m DetailViewModel) Loading() bool {
	return m.loading
}

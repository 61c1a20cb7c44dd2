package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/ghexplorer/internal/domain"
	"github.com/yourusername/ghexplorer/internal/ui/layout"
	"github.com/yourusername/ghexplorer/internal/usecase"
)

type searchFocus int

const (
	focusInput searchFocus = iota
	focusList
)

// searchResultMsg carries the outcome of a repository lookup.
type searchResultMsg struct {
	query string
	entry domain.SearchHistoryEntry
	err   error
}

// SearchViewModel is the search/list screen.
type SearchViewModel struct {
	ctx    context.Context
	search *usecase.SearchRepositoryUseCase

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    searchKeyMap

	focus        searchFocus
	selected     int
	offset       int
	errorMessage string
	pending      int

	windowWidth  int
	windowHeight int
}

// NewSearchViewModel creates the search screen over the use case's history.
func NewSearchViewModel(ctx context.Context, search *usecase.SearchRepositoryUseCase) SearchViewModel {
	input := textinput.New()
	input.Placeholder = "Type the author/repository name"
	input.CharLimit = 0 // identifiers are forwarded as typed
	input.Width = 50
	input.Prompt = ""
	input.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return SearchViewModel{
		ctx:          ctx,
		search:       search,
		input:        input,
		spinner:      sp,
		help:         help.New(),
		keys:         newSearchKeyMap(),
		focus:        focusInput,
		windowWidth:  layout.DefaultWidth,
		windowHeight: layout.DefaultHeight,
	}
}

// Init initializes the search view.
func (m SearchViewModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SearchViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.input.Width = layout.ContentWidth(msg.Width) - 20
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil

	case searchResultMsg:
		return m.handleResult(msg)

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.focus == focusInput {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m SearchViewModel) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Focus), msg.Type == tea.KeyDown:
		if m.search.History().Len() > 0 {
			m.focus = focusList
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SearchViewModel) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Input):
		m.focus = focusInput
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.ensureVisible()
		} else {
			m.focus = focusInput
			return m, m.input.Focus()
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.search.History().Len()-1 {
			m.selected++
			m.ensureVisible()
		}

	case key.Matches(msg, m.keys.Open):
		if entry, ok := m.search.History().At(m.selected); ok {
			return m, Navigate(DetailRoute(entry.FullName))
		}
	}

	return m, nil
}

// submit validates the query and starts the lookup. The input stays
// editable while the lookup runs.
func (m SearchViewModel) submit() (tea.Model, tea.Cmd) {
	query := m.input.Value()
	if query == "" {
		m.errorMessage = domain.MsgEmptyQuery
		return m, nil
	}

	m.pending++
	return m, tea.Batch(m.spinner.Tick, m.lookup(query))
}

func (m SearchViewModel) lookup(query string) tea.Cmd {
	ctx, search := m.ctx, m.search
	return func() tea.Msg {
		entry, err := search.Lookup(ctx, query)
		return searchResultMsg{query: query, entry: entry, err: err}
	}
}

func (m SearchViewModel) handleResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}

	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrEmptyQuery) {
			m.errorMessage = domain.MsgEmptyQuery
		} else {
			m.errorMessage = domain.MsgSearchFailed
		}
		return m, nil
	}

	m.search.Record(msg.entry)
	m.input.SetValue("")
	m.errorMessage = ""
	m.ensureVisible()

	return m, nil
}

// visibleRows returns how many history rows fit on screen.
func (m SearchViewModel) visibleRows() int {
	h := layout.ListHeight(m.windowHeight, layout.TitleHeight+layout.SearchFormHeight)
	return layout.VisibleRows(h, layout.HistoryRowHeight)
}

// ensureVisible scrolls so the selected row is on screen.
func (m *SearchViewModel) ensureVisible() {
	rows := m.visibleRows()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the search view.
func (m SearchViewModel) View() string {
	styles := GetGlobalThemeManager().GetStyles()
	width := layout.ContentWidth(m.windowWidth)

	var content strings.Builder

	content.WriteString(styles.Title.Render("Explore repositories on GitHub"))
	content.WriteString("\n")
	content.WriteString(m.renderForm())
	content.WriteString("\n")

	if m.errorMessage != "" {
		content.WriteString(styles.InputError.Render(m.errorMessage))
		content.WriteString("\n")
	}

	if m.pending > 0 {
		content.WriteString(styles.Loading.Render(m.spinner.View() + " Searching..."))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.renderHistory(width))
	content.WriteString("\n")
	content.WriteString(styles.Footer.Render(m.help.View(m.keys)))

	return content.String()
}

func (m SearchViewModel) renderForm() string {
	styles := GetGlobalThemeManager().GetStyles()

	inputStyle := styles.FormInput
	switch {
	case m.errorMessage != "":
		inputStyle = styles.FormInputError
	case m.focus == focusInput:
		inputStyle = styles.FormInputFocused
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		inputStyle.Render(m.input.View()),
		" ",
		styles.FormButton.Render("Search"),
	)
}

func (m SearchViewModel) renderHistory(width int) string {
	entries := m.search.History().Entries()
	if len(entries) == 0 {
		styles := GetGlobalThemeManager().GetStyles()
		return styles.RowDesc.Italic(true).Render("No repositories searched yet")
	}

	end := min(m.offset+m.visibleRows(), len(entries))

	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		selected := m.focus == focusList && i == m.selected
		rows = append(rows, renderHistoryRow(entries[i], selected, width))
	}

	return strings.Join(rows, "\n")
}

// renderHistoryRow renders one entry: avatar marker, full name, description.
func renderHistoryRow(e domain.SearchHistoryEntry, selected bool, width int) string {
	styles := GetGlobalThemeManager().GetStyles()

	rowStyle := styles.RowNormal
	if selected {
		rowStyle = styles.RowSelected
	}
	if width > 0 {
		rowStyle = rowStyle.Width(width - 2)
	}

	text := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.Avatar.Render("◉ "+e.Owner.Login)+"  "+styles.RowTitle.Render(e.FullName),
		styles.RowDesc.Render(describe(e.Description, width)),
	)

	return rowStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, text, "  ", styles.Chevron.Render("›")))
}

// describe fits a description on one line of a row of the given width.
// A zero width leaves it untruncated.
func describe(description string, width int) string {
	description = singleLine(description)
	if width <= 0 {
		return description
	}
	return truncateText(description, width-8)
}

// FocusInput moves keyboard focus to the search input.
func (m SearchViewModel) FocusInput() (SearchViewModel, tea.Cmd) {
	m.focus = focusInput
	return m, m.input.Focus()
}

// QueryText returns the current input value.
func (m SearchViewModel) QueryText() string {
	return m.input.Value()
}

// ErrorMessage returns the message shown under the form, if any.
func (m SearchViewModel) ErrorMessage() string {
	return m.errorMessage
}

// History returns the entries currently listed.
func (m SearchViewModel) History() []domain.SearchHistoryEntry {
	return m.search.History().Entries()
}

// Searching reports whether a lookup is in flight.
func (m SearchViewModel) Searching() bool {
	return m.pending > 0
}

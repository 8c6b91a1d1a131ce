package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ngmaloney/charter-terminal/internal/catalog"
	"github.com/ngmaloney/charter-terminal/internal/derive"
	"github.com/ngmaloney/charter-terminal/internal/filter"
	"github.com/ngmaloney/charter-terminal/internal/grouping"
	"github.com/ngmaloney/charter-terminal/internal/models"
)

// AppState represents the current load state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching both sheets
	StateError                   // Fetch failed; waiting for retry
	StateReady                   // Snapshot loaded
)

// View represents which screen is shown
type View int

const (
	ViewTrips View = iota // Trip search (default)
	ViewBoats             // Boat directory
)

// publishHint is shown with load errors; the usual cause is an unpublished sheet
const publishHint = "スプレッドシートが「ウェブに公開」されているか確認してください。"

// Model represents the application's state
type Model struct {
	state  AppState
	view   View
	width  int
	height int
	err    error

	loader   *catalog.Loader
	snapshot *catalog.Snapshot
	memo     *derive.Memo
	now      func() time.Time

	// Trip search
	inputs   []textinput.Model
	focus    int
	category int // index into models.Categories, -1 for all
	statuses []models.Status
	scroll   int

	// Boat directory
	boatList list.Model

	spinner spinner.Model
}

// NewModel creates a new application model backed by loader
func NewModel(loader *catalog.Loader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		state:    StateLoading,
		view:     ViewTrips,
		loader:   loader,
		memo:     derive.NewMemo(),
		now:      time.Now,
		inputs:   newFilterInputs(),
		focus:    noFocus,
		category: -1,
		statuses: models.DefaultCriteria().Statuses,
		spinner:  s,
	}
}

// Init starts the initial load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCatalog(m.loader))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.snapshot != nil {
			m.boatList.SetSize(max(msg.Width-4, 0), m.boatListHeight())
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			m.snapshot = nil
			return m, nil
		}
		m.err = nil
		m.snapshot = msg.snapshot
		m.memo.Reset()
		m.scroll = 0
		m.boatList = createBoatList(msg.snapshot.Boats, m.memo, max(m.width-4, 0), m.boatListHeight())
		m.state = StateReady
		return m, nil
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateLoading:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil

		case StateError:
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "r":
				return m.retry()
			}
			return m, nil

		case StateReady:
			if m.view == ViewTrips {
				return m.handleTripKeys(keyMsg)
			}
			return m.handleBoatKeys(keyMsg)
		}
	}

	if m.state == StateLoading {
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// retry starts a manual reload unless one was started too recently
func (m Model) retry() (tea.Model, tea.Cmd) {
	if !m.loader.AllowRetry() {
		return m, nil
	}
	m.state = StateLoading
	m.err = nil
	m.snapshot = nil
	return m, tea.Batch(m.spinner.Tick, retryCatalog(m.loader))
}

// handleTripKeys handles keyboard input in the trip search view
func (m Model) handleTripKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus != noFocus {
		return m.handleFilterInput(msg)
	}

	if msg.Type == tea.KeyTab {
		m.view = ViewBoats
		return m, nil
	}

	key := msg.String()
	if s, ok := statusKeys[key]; ok {
		m.toggleStatus(s)
		return m, nil
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "r":
		return m.retry()
	case "/", "f":
		return m, m.focusField(fieldFrom)
	case "c":
		m.cycleCategory()
		m.scroll = 0
	case "x":
		m.clearFilters()
		m.scroll = 0
	case "down", "j":
		m.scroll++
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "pgdown":
		m.scroll += m.resultsHeight()
	case "pgup":
		m.scroll -= m.resultsHeight()
		if m.scroll < 0 {
			m.scroll = 0
		}
	}
	return m, nil
}

// handleBoatKeys handles keyboard input in the boat directory
func (m Model) handleBoatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// the list owns every key while its filter prompt is open
	if m.boatList.FilterState() != list.Filtering {
		if msg.Type == tea.KeyTab {
			m.view = ViewTrips
			return m, nil
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			return m.retry()
		}
	}

	m.boatList, cmd = m.boatList.Update(msg)
	return m, cmd
}

// visibleGroups runs the filter and grouping pipeline over the snapshot
func (m Model) visibleGroups() []models.DateGroup {
	if m.snapshot == nil {
		return nil
	}
	now := m.now()
	listings := filter.Apply(m.snapshot.Listings, m.snapshot.Boats, m.criteria(), now)
	return grouping.GroupAndSortIn(listings, m.snapshot.Boats, now.Location())
}

func (m Model) boatListHeight() int {
	h := m.height - 16
	if h < 5 {
		h = 5
	}
	return h
}

func (m Model) resultsHeight() int {
	h := m.height - 14
	if h < 5 {
		h = 5
	}
	return h
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "読み込み中..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateError:
		return m.viewError()
	case StateReady:
		if m.view == ViewBoats {
			return m.viewBoats()
		}
		return m.viewTrips()
	}

	return ""
}

// viewTabs renders the view switcher
func (m Model) viewTabs() string {
	trips, boats := tabStyle, tabStyle
	if m.view == ViewTrips {
		trips = activeTabStyle
	} else {
		boats = activeTabStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("⚓ Charter Terminal  "),
		trips.Render("プラン検索"),
		boats.Render("遊漁船一覧"),
	)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("⚓ Charter Terminal"),
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), "読み込み中..."),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ エラーが発生しました")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("R: Retry • Q: Quit")

	var sections []string
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, errorMsg)
	sections = append(sections, mutedStyle.Render(publishHint))
	sections = append(sections, "")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewTrips renders the trip search view
func (m Model) viewTrips() string {
	groups := m.visibleGroups()
	lines := m.renderDateGroups(groups, models.IndexBoats(m.snapshot.Boats))

	// clamp scroll to the content
	height := m.resultsHeight()
	start := m.scroll
	if start > len(lines)-height {
		start = len(lines) - height
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}

	var help string
	if m.focus != noFocus {
		help = helpStyle.Render("Tab/↑/↓: Next field • Esc: Done • Ctrl+C: Quit")
	} else {
		help = helpStyle.Render("/: Edit filters • C: Category • 1-4: Status • X: Clear • ↑/↓: Scroll • Tab: Boats • R: Reload • Q: Quit")
	}

	var sections []string
	sections = append(sections, m.viewTabs())
	sections = append(sections, m.viewFilterPanel())
	sections = append(sections, resultsHeader(models.CountListings(groups)))
	sections = append(sections, lines[start:end]...)
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewBoats renders the boat directory
func (m Model) viewBoats() string {
	var sections []string
	sections = append(sections, m.viewTabs())
	sections = append(sections, "")
	sections = append(sections, m.boatList.View())

	if item, ok := m.boatList.SelectedItem().(boatItem); ok {
		sections = append(sections, m.renderBoatDetail(&item.boat))
	}

	help := helpStyle.Render("↑/↓: Navigate • /: Search • Tab: Trips • R: Reload • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

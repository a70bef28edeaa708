// Package tui implements the terminal dashboard. The code is split across
// several files:
//   - model.go: Model type, screens, Init
//   - update.go: the Update loop
//   - commands.go: async tea.Cmd constructors and their result messages
//   - forms.go: login/signup form state
//   - filters.go: filter panel state
//   - view.go: login/signup/restoring rendering
//   - dashboard_view.go: dashboard rendering
//   - charts.go: time-series and comparison chart rendering
//   - format.go: indicator value formatting
//   - styles.go: lipgloss styles
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/client/services"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

// screen identifies which view the event loop is driving.
type screen int

const (
	screenRestoring screen = iota
	screenLogin
	screenSignup
	screenDashboard
)

// Model is the bubbletea model for the whole client. All state mutation
// happens on the event loop; async work (auth calls, fetch cycles) runs in
// commands and comes back as messages.
type Model struct {
	session   *services.SessionService
	dashboard *services.DashboardService
	log       logging.Logger

	screen screen
	width  int
	height int

	spinner spinner.Model
	styles  Styles

	login  authForm
	signup authForm
	notice string // one-line info shown above the login form

	// dashboard state
	filters  models.FilterSet // committed selection driving the charts
	panel    filterPanel      // pending, uncommitted selections
	snapshot services.Snapshot
	loading  bool
	seq      int // sequence number of the newest issued fetch cycle
}

// New constructs the model in the restoring state. The first fetch cycle is
// issued once the persisted session has been loaded.
func New(session *services.SessionService, dashboard *services.DashboardService, log logging.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	styles := DefaultStyles()
	sp.Style = styles.Spinner

	return Model{
		session:   session,
		dashboard: dashboard,
		log:       log,
		screen:    screenRestoring,
		spinner:   sp,
		styles:    styles,
		login:     newLoginForm(),
		signup:    newSignupForm(),
		filters:   models.DefaultFilterSet(),
		panel:     newFilterPanel(models.DefaultFilterSet()),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.restoreCmd())
}

// startFetch commits f, bumps the cycle sequence number and issues the fetch
// command. Results carrying an older sequence number are discarded in Update.
func (m *Model) startFetch(f models.FilterSet) tea.Cmd {
	m.filters = f
	m.seq++
	m.loading = true
	m.snapshot.Err = ""
	return m.fetchCmd(m.seq, f)
}

// Package app implements the dashboard: the root bubbletea model that owns
// the catalog view, talks to the API and composes the UI components.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/sweetshop/internal/api"
	"github.com/llehouerou/sweetshop/internal/auth"
	"github.com/llehouerou/sweetshop/internal/keymap"
	"github.com/llehouerou/sweetshop/internal/state"
	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/cursor"
	"github.com/llehouerou/sweetshop/internal/ui/searchbar"
	"github.com/llehouerou/sweetshop/internal/ui/styles"
	"github.com/llehouerou/sweetshop/internal/ui/toast"
)

const defaultRequestTimeout = 15 * time.Second

// Deps are the collaborators and settings of the dashboard.
type Deps struct {
	API            api.Service
	State          state.Interface
	Logger         *zap.Logger
	Viewer         auth.Viewer
	CardWidth      int
	ToastDuration  time.Duration
	RequestTimeout time.Duration
}

// Model is the root application model containing all state.
type Model struct {
	api     api.Service
	state   state.Interface
	log     *zap.Logger
	viewer  auth.Viewer
	keys    *keymap.Resolver
	timeout time.Duration

	// all is the last full catalog; filtered is what the criteria select
	// from it (or the server search result).
	all      []sweets.Item
	filtered []sweets.Item
	criteria sweets.Criteria
	sortMode sweets.SortMode

	selectedID  string
	grid        cursor.Grid
	cardWidth   int
	loading     bool
	pendingKeys string

	Search  searchbar.Model
	Toast   toast.Model
	Popups  *PopupManager
	Spinner spinner.Model

	width  int
	height int
}

// New creates the dashboard. The saved view (sort mode and selected item)
// is restored from deps.State when available.
func New(deps Deps) Model {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Key

	m := Model{
		api:       deps.API,
		state:     deps.State,
		log:       log,
		viewer:    deps.Viewer,
		keys:      keymap.NewResolver(keymap.InContexts(keymap.ContextGlobal, keymap.ContextGrid, keymap.ContextAdmin)),
		timeout:   timeout,
		cardWidth: max(deps.CardWidth, ui.MinCardWidth),
		loading:   true,
		Search:    searchbar.New(),
		Toast:     toast.New(deps.ToastDuration),
		Popups:    NewPopupManager(),
		Spinner:   sp,
	}

	if deps.State != nil {
		view, err := deps.State.GetView()
		switch {
		case err != nil:
			log.Warn("load saved view", zap.Error(err))
		case view != nil:
			m.sortMode = view.SortMode
			m.selectedID = view.SelectedID
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(FetchCmd(m.api, m.timeout), m.Spinner.Tick)
}

// Viewer returns the identity the dashboard renders for.
func (m Model) Viewer() auth.Viewer {
	return m.viewer
}

// Items returns the items in grid order.
func (m Model) Items() []sweets.Item {
	return sweets.Sorted(m.filtered, m.sortMode)
}

// Selected returns the item under the cursor.
func (m Model) Selected() (sweets.Item, bool) {
	items := m.Items()
	if len(items) == 0 {
		return sweets.Item{}, false
	}
	return items[min(m.grid.Pos(), len(items)-1)], true
}

// Loading reports whether the first fetch is still running.
func (m Model) Loading() bool {
	return m.loading
}

// Criteria returns the active search criteria.
func (m Model) Criteria() sweets.Criteria {
	return m.criteria
}

// SortMode returns the grid order.
func (m Model) SortMode() sweets.SortMode {
	return m.sortMode
}

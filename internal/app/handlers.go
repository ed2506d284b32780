package app

import (
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/sweetshop/internal/api"
	"github.com/llehouerou/sweetshop/internal/errmsg"
	"github.com/llehouerou/sweetshop/internal/state"
	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui/action"
	"github.com/llehouerou/sweetshop/internal/ui/confirm"
	"github.com/llehouerou/sweetshop/internal/ui/helpbindings"
	"github.com/llehouerou/sweetshop/internal/ui/itemform"
	"github.com/llehouerou/sweetshop/internal/ui/restock"
	"github.com/llehouerou/sweetshop/internal/ui/searchbar"
	"github.com/llehouerou/sweetshop/internal/ui/toast"
)

func (m Model) handleItemsLoaded(msg ItemsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.Err != nil {
		m.log.Error("fetch sweets", zap.Error(msg.Err))
		return m, nil
	}
	m.log.Debug("sweets loaded", zap.Int("count", len(msg.Items)))
	m.all = msg.Items
	return m, m.deriveFiltered()
}

// deriveFiltered recomputes the filtered view from the criteria. With no
// criterion set the full catalog is shown without a request.
func (m *Model) deriveFiltered() tea.Cmd {
	if m.criteria.IsEmpty() {
		m.setFiltered(m.all)
		return nil
	}
	return SearchCmd(m.api, m.criteria, m.timeout)
}

func (m Model) handleSearchResult(msg SearchResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.log.Warn("search sweets, showing full list",
			zap.String("criteria", msg.Criteria.Summary()),
			zap.Error(msg.Err))
		m.setFiltered(m.all)
		return m, nil
	}
	m.setFiltered(msg.Items)
	return m, nil
}

func (m *Model) setFiltered(items []sweets.Item) {
	m.filtered = items
	m.restoreSelection()
}

// restoreSelection keeps the cursor on the selected item after the grid
// contents or geometry change.
func (m *Model) restoreSelection() {
	items := m.Items()
	cols, rows := m.gridCols(), m.gridRows()
	idx := -1
	for i, it := range items {
		if it.ID == m.selectedID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		m.grid.Jump(idx, len(items), cols, rows)
		return
	}
	m.grid.Clamp(len(items), cols, rows)
	if sel, ok := m.Selected(); ok {
		m.selectedID = sel.ID
	}
}

func (m Model) handleMutationResult(msg MutationResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		notice := errmsg.Notice(msg.Op, msg.Err)
		m.log.Error("mutation failed",
			zap.String("op", string(msg.Op)),
			zap.String("item_id", msg.ItemID),
			zap.Error(msg.Err))
		switch msg.Op {
		case errmsg.OpCreate, errmsg.OpUpdate:
			if f := m.Popups.ItemForm(); f != nil {
				f.SetError(notice)
			}
		case errmsg.OpRestock:
			if f := m.Popups.Restock(); f != nil {
				f.SetError(notice)
			}
		}
		if msg.Op != errmsg.OpCreate && api.IsStatus(msg.Err, http.StatusNotFound) {
			// Removed upstream: reload so its card goes away.
			if it, ok := sweets.FindByID(m.all, msg.ItemID); ok {
				m.log.Info("item no longer exists", zap.String("item_id", it.ID), zap.String("name", it.Name))
			}
			return m, tea.Batch(m.Toast.Show(toast.Error, notice), FetchCmd(m.api, m.timeout))
		}
		return m, m.Toast.Show(toast.Error, notice)
	}

	m.log.Info("mutation succeeded", zap.String("op", string(msg.Op)), zap.String("item_id", msg.ItemID))
	switch {
	case msg.Op == errmsg.OpRestock && m.Popups.Active() == PopupRestock,
		(msg.Op == errmsg.OpCreate || msg.Op == errmsg.OpUpdate) && m.Popups.Active() == PopupItemForm:
		m.Popups.Close()
	}
	return m, tea.Batch(m.Toast.Show(toast.Success, msg.Success), FetchCmd(m.api, m.timeout))
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case searchbar.CriteriaChanged:
		m.criteria = a.Criteria
		return m, m.deriveFiltered()

	case searchbar.Leave:
		m.Search.SetFocused(false)
		return m, nil

	case confirm.Result:
		m.Popups.Close()
		id, ok := a.Context.(string)
		if !a.Confirmed || !ok || !m.viewer.IsAdmin() {
			return m, nil
		}
		return m, mutateCmd(m.api, deleteMutation(id), m.timeout)

	case itemform.Submitted:
		if !m.viewer.IsAdmin() {
			m.Popups.Close()
			return m, nil
		}
		if a.Editing() {
			return m, mutateCmd(m.api, updateMutation(a.ID, a.Input), m.timeout)
		}
		return m, mutateCmd(m.api, createMutation(a.Input), m.timeout)

	case restock.Submitted:
		if !m.viewer.IsAdmin() {
			m.Popups.Close()
			return m, nil
		}
		return m, mutateCmd(m.api, restockMutation(a.ItemID, a.Quantity), m.timeout)

	case itemform.Canceled, restock.Canceled, helpbindings.Close:
		m.Popups.Close()
		return m, nil
	}
	return m, nil
}

// saveView persists the selection and sort mode.
func (m Model) saveView() {
	if m.state == nil {
		return
	}
	m.state.SaveView(state.ViewState{SelectedID: m.selectedID, SortMode: m.sortMode})
}

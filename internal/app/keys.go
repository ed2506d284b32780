package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/keymap"
	"github.com/llehouerou/sweetshop/internal/ui/itemform"
	"github.com/llehouerou/sweetshop/internal/ui/restock"
)

// handleKey routes a key to the open popup, the focused search bar, or the
// dashboard bindings, in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.Popups.Active() != PopupNone {
		return m, m.Popups.Update(msg)
	}

	if m.Search.IsFocused() {
		return m, m.Search.Update(msg)
	}

	if m.pendingKeys != "" {
		prefix := m.pendingKeys
		m.pendingKeys = ""
		return m.runAction(m.keys.ResolveSequence(prefix, key), key)
	}

	return m.runAction(m.keys.Resolve(key), key)
}

func (m Model) runAction(a keymap.Action, key string) (tea.Model, tea.Cmd) {
	switch a {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp(m.viewer.IsAdmin())

	case keymap.ActionSearch:
		m.Search.SetFocused(true)
		return m, nil

	case keymap.ActionGPrefix:
		m.pendingKeys = key
		return m, nil

	case keymap.ActionRefresh:
		return m, FetchCmd(m.api, m.timeout)

	case keymap.ActionSort:
		m.sortMode = m.sortMode.Next()
		m.restoreSelection()
		m.saveView()
		return m, nil

	case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionMoveLeft,
		keymap.ActionMoveRight, keymap.ActionJumpStart, keymap.ActionJumpEnd:
		m.grid.HandleKey(key, len(m.filtered), m.gridCols(), m.gridRows())
		if sel, ok := m.Selected(); ok && sel.ID != m.selectedID {
			m.selectedID = sel.ID
			m.saveView()
		}
		return m, nil

	case keymap.ActionPurchase:
		sel, ok := m.Selected()
		if !ok || !sel.InStock() {
			return m, nil
		}
		return m, mutateCmd(m.api, purchaseMutation(sel.ID), m.timeout)
	}

	if m.viewer.IsAdmin() {
		return m.runAdminAction(a)
	}
	return m, nil
}

func (m Model) runAdminAction(a keymap.Action) (tea.Model, tea.Cmd) {
	if a == keymap.ActionNew {
		return m, m.Popups.ShowItemForm(itemform.NewCreate())
	}

	sel, ok := m.Selected()
	if !ok {
		return m, nil
	}

	switch a {
	case keymap.ActionEdit:
		return m, m.Popups.ShowItemForm(itemform.NewEdit(sel))
	case keymap.ActionDelete:
		return m, m.Popups.ShowConfirm(
			"Delete Sweet",
			fmt.Sprintf("Delete %q? This cannot be undone.", sel.Name),
			sel.ID,
		)
	case keymap.ActionRestock:
		return m, m.Popups.ShowRestock(restock.New(sel))
	}
	return m, nil
}

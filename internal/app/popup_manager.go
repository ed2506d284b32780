package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/ui/confirm"
	"github.com/llehouerou/sweetshop/internal/ui/helpbindings"
	"github.com/llehouerou/sweetshop/internal/ui/itemform"
	"github.com/llehouerou/sweetshop/internal/ui/popup"
	"github.com/llehouerou/sweetshop/internal/ui/restock"
)

// PopupType identifies which popup is currently active.
type PopupType int

const (
	PopupNone PopupType = iota
	PopupHelp
	PopupConfirm
	PopupItemForm
	PopupRestock
)

// PopupManager owns the single modal shown over the grid.
type PopupManager struct {
	kind    PopupType
	current popup.Popup
	confirm *confirm.Model

	width  int
	height int
}

// NewPopupManager creates a manager with no popup shown.
func NewPopupManager() *PopupManager {
	c := confirm.New()
	return &PopupManager{confirm: &c}
}

// SetSize updates the dimensions for popup rendering.
func (p *PopupManager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.current != nil {
		p.current.SetSize(width, height)
	}
}

// Active returns which popup is shown.
func (p *PopupManager) Active() PopupType {
	return p.kind
}

func (p *PopupManager) show(kind PopupType, pp popup.Popup) tea.Cmd {
	p.kind = kind
	p.current = pp
	pp.SetSize(p.width, p.height)
	return pp.Init()
}

// ShowHelp opens the key binding help.
func (p *PopupManager) ShowHelp(isAdmin bool) tea.Cmd {
	return p.show(PopupHelp, helpbindings.New(isAdmin))
}

// ShowConfirm asks a yes/no question. context comes back in confirm.Result.
func (p *PopupManager) ShowConfirm(title, message string, context any) tea.Cmd {
	p.confirm.Show(title, message, context, p.width, p.height)
	return p.show(PopupConfirm, p.confirm)
}

// ShowItemForm opens the create or edit form.
func (p *PopupManager) ShowItemForm(form *itemform.Model) tea.Cmd {
	return p.show(PopupItemForm, form)
}

// ShowRestock opens the restock form.
func (p *PopupManager) ShowRestock(form *restock.Model) tea.Cmd {
	return p.show(PopupRestock, form)
}

// ItemForm returns the open item form, or nil.
func (p *PopupManager) ItemForm() *itemform.Model {
	f, _ := p.current.(*itemform.Model)
	return f
}

// Restock returns the open restock form, or nil.
func (p *PopupManager) Restock() *restock.Model {
	f, _ := p.current.(*restock.Model)
	return f
}

// Close hides the current popup.
func (p *PopupManager) Close() {
	if p.kind == PopupConfirm {
		p.confirm.Reset()
	}
	p.kind = PopupNone
	p.current = nil
}

// Update forwards msg to the active popup.
func (p *PopupManager) Update(msg tea.Msg) tea.Cmd {
	if p.current == nil {
		return nil
	}
	var cmd tea.Cmd
	p.current, cmd = p.current.Update(msg)
	return cmd
}

// RenderOverlay draws the active popup centered over base.
func (p *PopupManager) RenderOverlay(base string) string {
	if p.current == nil {
		return base
	}
	size := popup.SizeAuto
	if p.kind == PopupItemForm || p.kind == PopupRestock {
		size = popup.SizeForm
	}
	box := popup.RenderBordered(p.current.View(), p.width, p.height, size)
	return popup.Compose(base, box, p.width)
}

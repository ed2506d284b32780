package app

import (
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/headerbar"
	"github.com/llehouerou/sweetshop/internal/ui/layout"
)

// gridHeight is the space left for cards once the fixed rows are placed.
// One notification line is always reserved so toasts do not shift the grid.
func (m Model) gridHeight() int {
	return layout.ContentHeight(m.height, layout.ContentOpts{
		HeaderHeight:      headerbar.Height,
		SearchBarHeight:   ui.SearchBarHeight,
		FooterHeight:      ui.FooterHeight,
		NotificationCount: 1,
	})
}

func (m Model) gridCols() int {
	return layout.GridColumns(m.width, m.cardWidth, ui.CardGap)
}

func (m Model) gridRows() int {
	return layout.GridRows(m.gridHeight(), ui.CardHeight)
}

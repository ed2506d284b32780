package itemcard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui"
	"github.com/llehouerou/sweetshop/internal/ui/testutil"
)

func fudge(quantity int) sweets.Item {
	return sweets.Item{
		ID:       "s1",
		Name:     "Chocolate Fudge",
		Category: "Chocolate",
		Price:    decimal.RequireFromString("2.5"),
		Quantity: quantity,
	}
}

func TestRender_Content(t *testing.T) {
	view := Render(Props{Item: fudge(1234), Width: 30})

	for _, want := range []string{"Chocolate Fudge", "Chocolate", "$2.50", "1,234 in stock", "[b] Purchase"} {
		assert.Empty(t, testutil.AssertContains(view, want))
	}
	assert.Empty(t, testutil.AssertNotContains(view, OutOfStockLabel))
}

func TestRender_OutOfStockDisablesPurchase(t *testing.T) {
	view := Render(Props{Item: fudge(0), Width: 30})

	assert.Empty(t, testutil.AssertContains(view, OutOfStockLabel))
	assert.Empty(t, testutil.AssertContains(view, "0 in stock"))
	assert.Empty(t, testutil.AssertContains(view, "[-] Purchase"))
	assert.Empty(t, testutil.AssertNotContains(view, "[b] Purchase"))
}

func TestRender_AdminControls(t *testing.T) {
	admin := Render(Props{Item: fudge(5), IsAdmin: true, Width: 30})
	for _, want := range []string{"[e] Edit", "[d] Delete", "[r] Restock"} {
		assert.Empty(t, testutil.AssertContains(admin, want))
	}

	viewer := Render(Props{Item: fudge(5), IsAdmin: false, Width: 30})
	for _, absent := range []string{"Edit", "Delete", "Restock"} {
		assert.Empty(t, testutil.AssertNotContains(viewer, absent))
	}
}

func TestRender_FixedSize(t *testing.T) {
	for _, p := range []Props{
		{Item: fudge(5), Width: 30},
		{Item: fudge(0), IsAdmin: true, Selected: true, Width: 30},
		{Item: sweets.Item{Name: "An extremely long sweet name that will not fit"}, Width: 30},
	} {
		lines := testutil.SplitLines(Render(p))
		assert.Len(t, lines, ui.CardHeight)
		for _, line := range lines {
			assert.Equal(t, 30, testutil.MeasureWidth(line))
		}
	}
}

func TestRender_NarrowWidthUsesMinimum(t *testing.T) {
	lines := testutil.SplitLines(Render(Props{Item: fudge(5), Width: 5}))
	assert.Equal(t, ui.MinCardWidth, testutil.MeasureWidth(lines[0]))
}

func TestStockLabel(t *testing.T) {
	assert.Equal(t, "0 in stock", StockLabel(0))
	assert.Equal(t, "12,000 in stock", StockLabel(12000))
}

package restock

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui/testutil"
)

func newTestRestock() *testutil.PopupHarness {
	m := New(sweets.Item{ID: "s1", Name: "Lollipop", Price: decimal.NewFromInt(1), Quantity: 3})
	h := testutil.NewPopupHarness(m)
	h.SetSize(80, 24)
	return h
}

func TestRestock_SubmitsQuantity(t *testing.T) {
	h := newTestRestock()

	h.Type("12")
	h.SendEnter()

	actions := h.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, Source, actions[0].Source)
	assert.Equal(t, Submitted{ItemID: "s1", Quantity: 12}, actions[0].Action)
}

func TestRestock_IgnoresNonDigits(t *testing.T) {
	h := newTestRestock()

	h.Type("1x.5")
	h.SendEnter()

	actions := h.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, Submitted{ItemID: "s1", Quantity: 15}, actions[0].Action)
}

func TestRestock_RejectsZeroAndEmpty(t *testing.T) {
	for _, typed := range []string{"", "0", "00"} {
		h := newTestRestock()

		h.Type(typed)
		h.SendEnter()

		assert.Empty(t, h.Actions(), "typed %q", typed)
		assert.True(t, h.ViewContains("at least 1"), "typed %q", typed)
	}
}

func TestRestock_ErrorClearsOnEdit(t *testing.T) {
	h := newTestRestock()
	h.SendEnter()
	require.True(t, h.ViewContains("at least 1"))

	h.Type("4")

	assert.False(t, h.ViewContains("at least 1"))
}

func TestRestock_Escape(t *testing.T) {
	h := newTestRestock()

	h.SendEscape()

	actions := h.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, Canceled{}, actions[0].Action)
}

func TestRestock_ServerError(t *testing.T) {
	h := newTestRestock()
	m, ok := h.Popup().(*Model)
	require.True(t, ok)

	m.SetError("Not authorized")

	assert.True(t, h.ViewContains("Not authorized"))
}

func TestRestock_View(t *testing.T) {
	h := newTestRestock()

	assert.True(t, h.ViewContains("Restock Lollipop"))
	assert.True(t, h.ViewContains("Currently 3 in stock"))
	assert.True(t, h.ViewContains("Quantity:"))
}

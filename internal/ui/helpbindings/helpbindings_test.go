package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sweetshop/internal/ui/testutil"
)

func newTestHelpPopup(isAdmin bool, height int) (*Model, *testutil.PopupHarness) {
	m := New(isAdmin)
	m.SetSize(80, height)
	return m, testutil.NewPopupHarness(m)
}

func TestHelpBindings_CloseKeys(t *testing.T) {
	for _, key := range []string{"?", "q"} {
		_, h := newTestHelpPopup(false, 24)

		h.SendKey(key)

		actions := h.Actions()
		require.Len(t, actions, 1, key)
		assert.Equal(t, Source, actions[0].Source)
		assert.Equal(t, Close{}, actions[0].Action)
	}

	_, h := newTestHelpPopup(false, 24)
	h.SendEscape()
	require.Len(t, h.Actions(), 1)
}

func TestHelpBindings_Scroll(t *testing.T) {
	m, h := newTestHelpPopup(true, 24)

	h.SendDown()
	h.SendKey("j")
	assert.Equal(t, 2, m.scrollOffset)

	h.SendKey("k")
	assert.Equal(t, 1, m.scrollOffset)

	h.SendKey("k")
	h.SendKey("k")
	assert.Equal(t, 0, m.scrollOffset, "does not scroll above the top")
}

func TestHelpBindings_ScrollStopsAtBottom(t *testing.T) {
	m, h := newTestHelpPopup(true, 24)

	for range 100 {
		h.SendDown()
	}

	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	assert.Positive(t, m.scrollOffset)
}

func TestHelpBindings_AdminSection(t *testing.T) {
	_, admin := newTestHelpPopup(true, 100)
	assert.Empty(t, admin.AssertViewContains("Admin"))
	assert.Empty(t, admin.AssertViewContains("Restock sweet"))

	_, viewer := newTestHelpPopup(false, 100)
	assert.Empty(t, viewer.AssertViewNotContains("Admin"))
	assert.Empty(t, viewer.AssertViewNotContains("Delete sweet"))
}

func TestHelpBindings_CategoryOrder(t *testing.T) {
	_, h := newTestHelpPopup(true, 100)
	view := testutil.StripANSI(h.View())

	global := strings.Index(view, "Global")
	grid := strings.Index(view, "Sweets")
	search := strings.Index(view, "Search Bar")
	admin := strings.Index(view, "Admin")

	assert.True(t, global < grid && grid < search && search < admin,
		"order global=%d grid=%d search=%d admin=%d", global, grid, search, admin)
}

func TestHelpBindings_ViewChrome(t *testing.T) {
	_, h := newTestHelpPopup(false, 100)

	assert.Empty(t, h.AssertViewContains("Keyboard Shortcuts"))
	assert.Empty(t, h.AssertViewContains("?/esc close"))
	assert.Empty(t, h.AssertViewNotContains("j/k scroll"), "everything fits")
	assert.Empty(t, h.AssertViewContains("g r"))
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	h := testutil.NewPopupHarness(New(false))

	assert.Empty(t, h.View())
}

package confirm

import (
	"testing"

	"github.com/llehouerou/sweetshop/internal/ui/action"
	"github.com/llehouerou/sweetshop/internal/ui/testutil"
)

const testContext = "sweet-42"

func newTestConfirm(title, message string, context any) *testutil.PopupHarness {
	m := New()
	m.Show(title, message, context, 80, 24)
	return testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := testutil.ExecuteCmd(cmd)
	actionMsg, ok := msg.(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msg)
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestConfirm_Keys(t *testing.T) {
	tests := []struct {
		name string
		send func(h *testutil.PopupHarness)
		want bool
	}{
		{"enter confirms", func(h *testutil.PopupHarness) { h.SendEnter() }, true},
		{"y confirms", func(h *testutil.PopupHarness) { h.SendKey("y") }, true},
		{"Y confirms", func(h *testutil.PopupHarness) { h.SendKey("Y") }, true},
		{"escape cancels", func(h *testutil.PopupHarness) { h.SendEscape() }, false},
		{"n cancels", func(h *testutil.PopupHarness) { h.SendKey("n") }, false},
		{"N cancels", func(h *testutil.PopupHarness) { h.SendKey("N") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestConfirm("Delete?", "Are you sure?", testContext)
			tt.send(h)

			result := getResult(t, h)
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if result.Context != testContext {
				t.Errorf("Context = %v, want %q", result.Context, testContext)
			}
		})
	}
}

func TestConfirm_OtherKeysIgnored(t *testing.T) {
	h := newTestConfirm("Delete?", "Are you sure?", nil)
	h.ClearCommands()

	h.SendKey("x")
	h.SendDown()

	if len(h.Commands()) != 0 {
		t.Errorf("expected no commands, got %d", len(h.Commands()))
	}
}

func TestConfirm_DeactivatesAfterAnswer(t *testing.T) {
	m := New()
	m.Show("Delete?", "Are you sure?", nil, 80, 24)
	h := testutil.NewPopupHarness(&m)

	h.SendEnter()
	if m.Active() {
		t.Error("expected Active=false after answering")
	}

	h.ClearCommands()
	h.SendEnter()
	if len(h.Commands()) != 0 {
		t.Error("inactive popup should not produce commands")
	}
}

func TestConfirm_View(t *testing.T) {
	h := newTestConfirm("Delete sweet?", "Fudge will be removed", nil)

	if err := h.AssertViewContains("Delete sweet?"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewContains("Fudge will be removed"); err != "" {
		t.Error(err)
	}
	if err := h.AssertViewContains("Enter/Y: confirm"); err != "" {
		t.Error(err)
	}
}

func TestInactive_EmptyView(t *testing.T) {
	m := New()
	h := testutil.NewPopupHarness(&m)

	if h.View() != "" {
		t.Errorf("inactive popup view = %q, want empty", h.View())
	}
}

func TestReset(t *testing.T) {
	m := New()
	m.Show("Title", "Message", "context", 80, 24)

	if !m.Active() {
		t.Error("expected Active=true after Show")
	}

	m.Reset()

	if m.Active() {
		t.Error("expected Active=false after Reset")
	}
}

package app

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/llehouerou/sweetshop/internal/api"
	"github.com/llehouerou/sweetshop/internal/auth"
	"github.com/llehouerou/sweetshop/internal/state"
	"github.com/llehouerou/sweetshop/internal/sweets"
	"github.com/llehouerou/sweetshop/internal/ui/action"
	"github.com/llehouerou/sweetshop/internal/ui/confirm"
	"github.com/llehouerou/sweetshop/internal/ui/itemform"
	"github.com/llehouerou/sweetshop/internal/ui/restock"
	"github.com/llehouerou/sweetshop/internal/ui/toast"
)

var (
	admin  = auth.Viewer{Username: "alice", Role: auth.RoleAdmin}
	member = auth.Viewer{Username: "bob", Role: auth.RoleUser}
)

func catalog() []sweets.Item {
	return []sweets.Item{
		{ID: "s1", Name: "Chocolate Fudge", Category: "Chocolate", Price: decimal.RequireFromString("2.50"), Quantity: 2},
		{ID: "s2", Name: "Gummy Bears", Category: "Gummies", Price: decimal.RequireFromString("1.25"), Quantity: 0},
		{ID: "s3", Name: "Almond Brittle", Category: "Nuts", Price: decimal.RequireFromString("4.00"), Quantity: 10},
	}
}

// fixture bundles a dashboard with its fakes.
type fixture struct {
	t      *testing.T
	m      Model
	viewer auth.Viewer
	api    *api.Mock
	state  *state.Mock
	logs   *observer.ObservedLogs
}

type option func(*fixture)

func withViewer(v auth.Viewer) option {
	return func(f *fixture) { f.viewer = v }
}

func withState(s *state.Mock) option {
	return func(f *fixture) { f.state = s }
}

func withAPI(configure func(*api.Mock)) option {
	return func(f *fixture) { configure(f.api) }
}

// newFixture builds a 120x40 admin dashboard and runs its initial fetch.
func newFixture(t *testing.T, opts ...option) *fixture {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	f := &fixture{
		t:      t,
		viewer: admin,
		api:    api.NewMock(catalog()...),
		state:  state.NewMock(),
		logs:   logs,
	}
	for _, o := range opts {
		o(f)
	}
	f.m = New(Deps{
		API:           f.api,
		State:         f.state,
		Logger:        zap.New(core),
		Viewer:        f.viewer,
		CardWidth:     30,
		ToastDuration: time.Millisecond,
	})
	f.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	f.run(f.m.Init())
	return f
}

// send delivers msg and then runs every resulting command until the model
// is idle. Timer messages (spinner frames, toast dismissals) are dropped so
// tests can inspect transient state.
func (f *fixture) send(msg tea.Msg) {
	f.t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(f.t, steps, 200, "message loop did not settle")
		next := queue[0]
		queue = queue[1:]
		model, cmd := f.m.Update(next)
		f.m = model.(Model)
		queue = append(queue, execute(cmd)...)
	}
}

func (f *fixture) run(cmd tea.Cmd) {
	f.t.Helper()
	for _, msg := range execute(cmd) {
		f.send(msg)
	}
}

func execute(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil, spinner.TickMsg, toast.DismissMsg, tea.QuitMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, execute(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// press sends keys one at a time. Named keys are recognized; anything else
// is typed as runes.
func (f *fixture) press(keys ...string) {
	f.t.Helper()
	for _, k := range keys {
		f.send(keyMsg(k))
	}
}

// typeText types s one rune at a time.
func (f *fixture) typeText(s string) {
	f.t.Helper()
	for _, r := range s {
		f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+x":    tea.KeyCtrlX,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
}

func keyMsg(k string) tea.KeyMsg {
	if t, ok := namedKeys[k]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// selectID moves the cursor to the item with the given id.
func (f *fixture) selectID(id string) {
	f.t.Helper()
	f.press("home")
	for range len(f.m.Items()) {
		if sel, ok := f.m.Selected(); ok && sel.ID == id {
			return
		}
		f.press("l")
	}
	f.t.Fatalf("item %q not in grid", id)
}

func (f *fixture) item(id string) sweets.Item {
	f.t.Helper()
	it, ok := sweets.FindByID(f.m.Items(), id)
	require.True(f.t, ok, "item %q not in grid", id)
	return it
}

func (f *fixture) toast() (toast.Toast, bool) {
	return f.m.Toast.Current()
}

func (f *fixture) ids() []string {
	var out []string
	for _, it := range f.m.Items() {
		out = append(out, it.ID)
	}
	return out
}

func itemformSubmitted(id string) action.Msg {
	return action.Msg{Source: itemform.Source, Action: itemform.Submitted{
		ID:    id,
		Input: sweets.Input{Name: "Hacked", Category: "None", Quantity: 1},
	}}
}

func restockSubmitted(id string, quantity int) action.Msg {
	return action.Msg{Source: restock.Source, Action: restock.Submitted{ItemID: id, Quantity: quantity}}
}

func confirmResult(confirmed bool, context any) action.Msg {
	return action.Msg{Source: "confirm", Action: confirm.Result{Confirmed: confirmed, Context: context}}
}

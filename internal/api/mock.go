package api

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/llehouerou/sweetshop/internal/sweets"
)

// Call records one request made against a Mock.
type Call struct {
	Method   string
	ID       string
	Quantity int
	Input    sweets.Input
	Criteria sweets.Criteria
}

// Mock is an in-memory Service for tests. It keeps a catalog, applies
// mutations to it, and records every call. Setting an Err field makes the
// corresponding operation fail without touching the catalog.
type Mock struct {
	mu    sync.Mutex
	items []sweets.Item
	calls []Call
	next  int

	ListErr     error
	SearchErr   error
	PurchaseErr error
	RestockErr  error
	CreateErr   error
	UpdateErr   error
	DeleteErr   error
}

// Verify Mock implements Service at compile time.
var _ Service = (*Mock)(nil)

// NewMock creates a mock holding a copy of items.
func NewMock(items ...sweets.Item) *Mock {
	return &Mock{items: slices.Clone(items)}
}

// Calls returns the recorded calls in order.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

// CallsTo returns the recorded calls for one method.
func (m *Mock) CallsTo(method string) []Call {
	var out []Call
	for _, c := range m.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Items returns the current catalog.
func (m *Mock) Items() []sweets.Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

func (m *Mock) record(c Call) {
	m.calls = append(m.calls, c)
}

func (m *Mock) List(_ context.Context) ([]sweets.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "List"})
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.items), nil
}

func (m *Mock) Search(_ context.Context, c sweets.Criteria) ([]sweets.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "Search", Criteria: c})
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}

	var out []sweets.Item
	for _, it := range m.items {
		if c.Name != "" && !containsFold(it.Name, c.Name) {
			continue
		}
		if c.Category != "" && !containsFold(it.Category, c.Category) {
			continue
		}
		if lo, err := sweets.ParsePrice(c.MinPrice); err == nil && it.Price.LessThan(lo) {
			continue
		}
		if hi, err := sweets.ParsePrice(c.MaxPrice); err == nil && it.Price.GreaterThan(hi) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *Mock) Purchase(_ context.Context, id string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "Purchase", ID: id, Quantity: quantity})
	if m.PurchaseErr != nil {
		return m.PurchaseErr
	}
	i := m.index(id)
	if i < 0 {
		return &Error{Status: 404, Message: "Sweet not found"}
	}
	if m.items[i].Quantity < quantity {
		return &Error{Status: 400, Message: "Insufficient stock"}
	}
	m.items[i].Quantity -= quantity
	return nil
}

func (m *Mock) Restock(_ context.Context, id string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "Restock", ID: id, Quantity: quantity})
	if m.RestockErr != nil {
		return m.RestockErr
	}
	i := m.index(id)
	if i < 0 {
		return &Error{Status: 404, Message: "Sweet not found"}
	}
	m.items[i].Quantity += quantity
	return nil
}

func (m *Mock) Create(_ context.Context, in sweets.Input) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "Create", Input: in})
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.next++
	m.items = append(m.items, sweets.Item{
		ID:       fmt.Sprintf("mock-%d", m.next),
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Quantity: in.Quantity,
	})
	return nil
}

func (m *Mock) Update(_ context.Context, id string, in sweets.Input) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "Update", ID: id, Input: in})
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	i := m.index(id)
	if i < 0 {
		return &Error{Status: 404, Message: "Sweet not found"}
	}
	m.items[i].Name = in.Name
	m.items[i].Category = in.Category
	m.items[i].Price = in.Price
	m.items[i].Quantity = in.Quantity
	return nil
}

func (m *Mock) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record(Call{Method: "Delete", ID: id})
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	i := m.index(id)
	if i < 0 {
		return &Error{Status: 404, Message: "Sweet not found"}
	}
	m.items = slices.Delete(m.items, i, i+1)
	return nil
}

func (m *Mock) index(id string) int {
	return slices.IndexFunc(m.items, func(it sweets.Item) bool { return it.ID == id })
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

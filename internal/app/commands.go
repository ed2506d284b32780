package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/sweetshop/internal/api"
	"github.com/llehouerou/sweetshop/internal/errmsg"
	"github.com/llehouerou/sweetshop/internal/sweets"
)

// Toast texts for successful mutations.
const (
	msgPurchased = "Purchase successful!"
	msgCreated   = "Sweet created successfully!"
	msgUpdated   = "Sweet updated successfully!"
	msgDeleted   = "Sweet deleted successfully!"
)

func restockedMessage(quantity int) string {
	return fmt.Sprintf("Successfully added %d items to stock!", quantity)
}

// FetchCmd loads the full catalog.
func FetchCmd(svc api.Service, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, err := svc.List(ctx)
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}

// SearchCmd runs a filtered search for c.
func SearchCmd(svc api.Service, c sweets.Criteria, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		items, err := svc.Search(ctx, c)
		return SearchResultMsg{Criteria: c, Items: items, Err: err}
	}
}

// mutation describes one write request against the API.
type mutation struct {
	op      errmsg.Op
	itemID  string
	success string
	run     func(ctx context.Context, svc api.Service) error
}

// mutateCmd runs a write request and reports it as a MutationResultMsg.
func mutateCmd(svc api.Service, mu mutation, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := mu.run(ctx, svc)
		return MutationResultMsg{Op: mu.op, ItemID: mu.itemID, Success: mu.success, Err: err}
	}
}

func purchaseMutation(id string) mutation {
	return mutation{
		op: errmsg.OpPurchase, itemID: id, success: msgPurchased,
		run: func(ctx context.Context, svc api.Service) error {
			return svc.Purchase(ctx, id, 1)
		},
	}
}

func restockMutation(id string, quantity int) mutation {
	return mutation{
		op: errmsg.OpRestock, itemID: id, success: restockedMessage(quantity),
		run: func(ctx context.Context, svc api.Service) error {
			return svc.Restock(ctx, id, quantity)
		},
	}
}

func createMutation(in sweets.Input) mutation {
	return mutation{
		op: errmsg.OpCreate, success: msgCreated,
		run: func(ctx context.Context, svc api.Service) error {
			return svc.Create(ctx, in)
		},
	}
}

func updateMutation(id string, in sweets.Input) mutation {
	return mutation{
		op: errmsg.OpUpdate, itemID: id, success: msgUpdated,
		run: func(ctx context.Context, svc api.Service) error {
			return svc.Update(ctx, id, in)
		},
	}
}

func deleteMutation(id string) mutation {
	return mutation{
		op: errmsg.OpDelete, itemID: id, success: msgDeleted,
		run: func(ctx context.Context, svc api.Service) error {
			return svc.Delete(ctx, id)
		},
	}
}

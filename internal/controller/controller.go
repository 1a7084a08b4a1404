// Package controller holds the front end's screen state and the operations
// that change it. Every successful mutation is followed by a full refetch,
// so the list always mirrors the server.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/rpggio/itemboard/internal/domain/item"
)

// Gateway is the remote item API. *client.Client satisfies it.
type Gateway interface {
	List(ctx context.Context) ([]item.Item, error)
	Create(ctx context.Context, draft item.Draft) (*item.Item, error)
	Update(ctx context.Context, id string, draft item.Draft) (*item.Item, error)
	Delete(ctx context.Context, id string) error
}

// ErrNothingToDelete is returned by ConfirmDelete without a pending request.
var ErrNothingToDelete = errors.New("no delete pending")

// State is everything the screen renders from.
type State struct {
	Items       []item.Item
	Loading     bool
	SearchQuery string
	ModalOpen   bool
	// Editing is the item being edited; nil while creating.
	Editing       *item.Item
	PendingDelete *item.Item
	LastError     string
}

// Controller serializes state changes. Remote calls run without the lock.
type Controller struct {
	gw     Gateway
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

// New returns a controller in the initial loading state.
func New(gw Gateway, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		gw:     gw,
		logger: logger,
		state: State{
			Items:   []item.Item{},
			Loading: true,
		},
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := c.state
	s.Items = append([]item.Item(nil), c.state.Items...)
	if s.Items == nil {
		s.Items = []item.Item{}
	}
	s.Editing = copyItem(c.state.Editing)
	s.PendingDelete = copyItem(c.state.PendingDelete)
	return s
}

func copyItem(it *item.Item) *item.Item {
	if it == nil {
		return nil
	}
	cp := *it
	return &cp
}

// Load fetches the full list. On failure the previous items stay in place.
// Loading is only true before the first load completes; refetches after a
// mutation leave it false. It is false afterwards either way.
func (c *Controller) Load(ctx context.Context) error {
	items, err := c.gw.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if err != nil {
		c.logger.Error("error fetching items", "error", err)
		c.state.LastError = "Could not load items: " + err.Error()
		return err
	}
	if items == nil {
		items = []item.Item{}
	}
	c.state.Items = items
	c.state.LastError = ""
	return nil
}

// SetSearch records the search text. It never touches Items.
func (c *Controller) SetSearch(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SearchQuery = query
}

// Visible returns the items matching the current search, in list order.
func (c *Controller) Visible() []item.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return item.Filter(c.state.Items, c.state.SearchQuery)
}

// OpenCreate opens the form for a new item.
func (c *Controller) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Editing = nil
	c.state.ModalOpen = true
}

// OpenEdit opens the form seeded with it.
func (c *Controller) OpenEdit(it item.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Editing = &it
	c.state.ModalOpen = true
}

// CloseModal closes the form and forgets the item being edited.
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeModalLocked()
}

func (c *Controller) closeModalLocked() {
	c.state.ModalOpen = false
	c.state.Editing = nil
}

// Save submits the form: Update when editing, Create otherwise. On success
// the form closes and the list is refetched. On failure the form stays open
// and the error is returned so the caller can clear its busy indicator.
func (c *Controller) Save(ctx context.Context, draft item.Draft) error {
	c.mu.Lock()
	editing := copyItem(c.state.Editing)
	c.mu.Unlock()

	var err error
	if editing != nil {
		_, err = c.gw.Update(ctx, editing.ID, draft)
	} else {
		_, err = c.gw.Create(ctx, draft)
	}
	if err != nil {
		c.logger.Error("error saving item", "editing", editing != nil, "error", err)
		c.recordError("Could not save item: " + err.Error())
		return err
	}

	c.mu.Lock()
	c.closeModalLocked()
	c.state.LastError = ""
	c.mu.Unlock()

	_ = c.Load(ctx)
	return nil
}

// RequestDelete asks for confirmation before deleting it.
func (c *Controller) RequestDelete(it item.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PendingDelete = &it
}

// CancelDelete drops a pending delete request.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PendingDelete = nil
}

// ConfirmDelete deletes the pending item and refetches the list.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	pending := copyItem(c.state.PendingDelete)
	c.state.PendingDelete = nil
	c.mu.Unlock()

	if pending == nil {
		return ErrNothingToDelete
	}

	if err := c.gw.Delete(ctx, pending.ID); err != nil {
		c.logger.Error("error deleting item", "id", pending.ID, "error", err)
		c.recordError("Could not delete item: " + err.Error())
		return err
	}

	_ = c.Load(ctx)
	return nil
}

func (c *Controller) recordError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.LastError = msg
}

package memstore

import (
	"context"
	"sync"

	domainitem "circulation-engine/internal/domain/item"
	"circulation-engine/internal/infra"
	"circulation-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type ItemRecord struct {
	ID              uuid.UUID
	Title           string
	TotalCopies     int
	AvailableCopies int
}

// Catalog is the reference implementation of the item catalog collaborator.
// Counter mutations round-trip through the item entity so the
// 0 <= available <= total invariant is enforced in exactly one place.
type Catalog struct {
	mu      sync.RWMutex
	records map[uuid.UUID]ItemRecord
}

func NewCatalog() *Catalog {
	return &Catalog{records: make(map[uuid.UUID]ItemRecord)}
}

// Add registers a new item and returns its ID.
func (c *Catalog) Add(title string, totalCopies int) (uuid.UUID, error) {
	it, err := domainitem.NewItem(title, totalCopies)
	if err != nil {
		return uuid.Nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[it.ID()] = ItemRecord{
		ID:              it.ID(),
		Title:           it.Title(),
		TotalCopies:     it.TotalCopies(),
		AvailableCopies: it.AvailableCopies(),
	}
	return it.ID(), nil
}

func (c *Catalog) Get(_ context.Context, itemID uuid.UUID) (ItemRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[itemID]
	if !ok {
		return ItemRecord{}, infra.WrapStoreErr(infra.KindNotFound, "item not found", nil)
	}
	return rec, nil
}

func (c *Catalog) GetAvailability(ctx context.Context, itemID uuid.UUID) (domainitem.Availability, error) {
	rec, err := c.Get(ctx, itemID)
	if err != nil {
		return domainitem.Availability{}, err
	}
	return domainitem.Availability{Available: rec.AvailableCopies, Total: rec.TotalCopies}, nil
}

// Decrement hands one copy out. Fails when no copy is on the shelf.
func (c *Catalog) Decrement(_ context.Context, itemID uuid.UUID) error {
	return c.mutate(itemID, func(it *domainitem.Item) error {
		if err := it.Checkout(); err != nil {
			return errs.Mark(err, errs.ErrNoCopiesAvailable)
		}
		return nil
	})
}

// Increment puts one copy back.
func (c *Catalog) Increment(_ context.Context, itemID uuid.UUID) error {
	return c.mutate(itemID, func(it *domainitem.Item) error {
		return it.Restore()
	})
}

// StateOf derives the item's lifecycle state given the number of pending
// reservations queued on it.
func (c *Catalog) StateOf(ctx context.Context, itemID uuid.UUID, pendingReservations int) (domainitem.State, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[itemID]
	if !ok {
		return "", infra.WrapStoreErr(infra.KindNotFound, "item not found", nil)
	}
	it, err := domainitem.ReconstructItem(rec.ID, rec.Title, rec.TotalCopies, rec.AvailableCopies)
	if err != nil {
		return "", err
	}
	return it.StateWith(pendingReservations), nil
}

func (c *Catalog) mutate(itemID uuid.UUID, op func(*domainitem.Item) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.records[itemID]
	if !ok {
		return infra.WrapStoreErr(infra.KindNotFound, "item not found", nil)
	}
	it, err := domainitem.ReconstructItem(rec.ID, rec.Title, rec.TotalCopies, rec.AvailableCopies)
	if err != nil {
		return err
	}
	if err := op(it); err != nil {
		return err
	}
	rec.AvailableCopies = it.AvailableCopies()
	c.records[itemID] = rec
	return nil
}

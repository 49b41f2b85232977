package item

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errors.New("item title is required")
	ErrInvalidCopyCount    = errors.New("total copies must not be negative")
	ErrCopyCountOutOfRange = errors.New("available copies out of range")
	ErrNoCopiesAvailable   = errors.New("no copies available")
	ErrAllCopiesPresent    = errors.New("all copies already present")
)

// State is a derived view of an item's circulation situation. It is computed
// from the copy counters and queue occupancy, never stored independently.
type State string

const (
	StateAvailable   State = "AVAILABLE"
	StateLoaned      State = "LOANED"
	StateReserved    State = "RESERVED"
	StateUnavailable State = "UNAVAILABLE"
)

// Item tracks the copy counters of one catalog entry. Invariant:
// 0 <= available <= total, enforced on every mutation.
type Item struct {
	id              uuid.UUID
	title           string
	totalCopies     int
	availableCopies int
}

type Availability struct {
	Available int
	Total     int
}

func NewItem(title string, totalCopies int) (*Item, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if totalCopies < 0 {
		return nil, ErrInvalidCopyCount
	}
	return &Item{
		id:              uuid.New(),
		title:           title,
		totalCopies:     totalCopies,
		availableCopies: totalCopies,
	}, nil
}

func ReconstructItem(id uuid.UUID, title string, totalCopies, availableCopies int) (*Item, error) {
	if availableCopies < 0 || availableCopies > totalCopies {
		return nil, ErrCopyCountOutOfRange
	}
	return &Item{
		id:              id,
		title:           title,
		totalCopies:     totalCopies,
		availableCopies: availableCopies,
	}, nil
}

// Checkout hands one copy out.
func (i *Item) Checkout() error {
	if i.availableCopies == 0 {
		return ErrNoCopiesAvailable
	}
	i.availableCopies--
	return nil
}

// Restore puts one copy back on the shelf.
func (i *Item) Restore() error {
	if i.availableCopies == i.totalCopies {
		return ErrAllCopiesPresent
	}
	i.availableCopies++
	return nil
}

// StateWith derives the lifecycle state from the counters and the number of
// pending reservations queued on the item.
func (i *Item) StateWith(pendingReservations int) State {
	switch {
	case i.totalCopies == 0:
		return StateUnavailable
	case i.availableCopies == 0:
		return StateLoaned
	case pendingReservations > 0:
		return StateReserved
	default:
		return StateAvailable
	}
}

func (i *Item) Availability() Availability {
	return Availability{Available: i.availableCopies, Total: i.totalCopies}
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Title() string        { return i.title }
func (i *Item) TotalCopies() int     { return i.totalCopies }
func (i *Item) AvailableCopies() int { return i.availableCopies }

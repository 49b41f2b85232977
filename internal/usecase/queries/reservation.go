package queries

import (
	"context"
	"time"

	"circulation-engine/internal/domain/reservation"
	"circulation-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"item_id"`
	MemberID   uuid.UUID `json:"member_id"`
	ReservedOn time.Time `json:"reserved_on"`
	ExpiresOn  time.Time `json:"expires_on"`
	Status     string    `json:"status"`
	Notified   bool      `json:"notified"`
}

// ReservationQueries answers read requests about the queue. A pending
// reservation past its window reads as EXPIRED even before the sweep has
// persisted the transition.
type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*ReservationView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*ReservationView, error)
}

// ReservationViewRepo supplies raw view rows. FindPendingByItem returns
// queue order: reservation date ascending, ID string ascending on ties.
type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*ReservationView, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo  ReservationViewRepo
	clock clock.Clock
}

func NewReservationQueries(repo ReservationViewRepo, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, clock: clk}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.decorate(v)
	return v, nil
}

// ListPendingByItem returns the item's queue in pickup order, dropping
// entries whose window has already lapsed.
func (q *reservationQueriesImpl) ListPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.repo.FindPendingByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	pending := make([]*ReservationView, 0, len(views))
	for _, v := range views {
		q.decorate(v)
		if v.Status == reservation.StatusPending.String() {
			pending = append(pending, v)
		}
	}
	return pending, nil
}

func (q *reservationQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*ReservationView, error) {
	views, err := q.repo.FindByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		q.decorate(v)
	}
	return views, nil
}

func (q *reservationQueriesImpl) decorate(v *ReservationView) {
	if v.Status == reservation.StatusPending.String() && q.clock.Today().After(v.ExpiresOn) {
		v.Status = reservation.StatusExpired.String()
	}
}

package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"circulation-engine/internal/domain/policy"
	"circulation-engine/internal/domain/reservation"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReservationCommands is the reservation queue: FIFO per item, bounded pickup
// window, one pending reservation per (member, item) pair. Every entry point
// sweeps stale entries first so decisions are always made against current
// state.
type ReservationCommands interface {
	Reserve(ctx context.Context, memberID, itemID uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID uuid.UUID) error
	Fulfil(ctx context.Context, reservationID uuid.UUID) (*queries.ReservationView, error)
	RefreshExpirations(ctx context.Context) (int, error)
	NextInLine(ctx context.Context, itemID uuid.UUID) (*queries.ReservationView, error)
	HasPending(ctx context.Context, itemID uuid.UUID) (bool, error)
	NotifyAvailability(ctx context.Context, itemID uuid.UUID) (int, error)
}

type reservationQueueImpl struct {
	mu           sync.Mutex
	reservations ReservationRepository
	notifier     PickupNotifier
	resQueries   queries.ReservationQueries
	clock        clock.Clock
	policy       policy.Policy
	logger       *slog.Logger
}

func NewReservationQueue(
	reservations ReservationRepository,
	notifier PickupNotifier,
	resQueries queries.ReservationQueries,
	clk clock.Clock,
	pol policy.Policy,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationQueueImpl{
		reservations: reservations,
		notifier:     notifier,
		resQueries:   resQueries,
		clock:        clk,
		policy:       pol,
		logger:       logger,
	}
}

// Reserve queues a member for an item. The item does not have to be out of
// copies; reserving an available item is allowed and simply holds a place in
// line.
func (u *reservationQueueImpl) Reserve(ctx context.Context, memberID, itemID uuid.UUID) (*queries.ReservationView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	today := u.clock.Today()
	if _, err := u.expireStale(ctx, today); err != nil {
		return nil, err
	}

	existing, err := u.reservations.FindPendingByMemberAndItem(ctx, memberID, itemID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to check for existing reservation")
	}
	if existing != nil {
		return nil, errs.ErrDuplicateReservation
	}

	r := reservation.NewReservation(itemID, memberID, today, u.policy.ReservationWindowDays)
	if err := u.reservations.Insert(ctx, r); err != nil {
		return nil, errs.Wrap(err, "failed to store reservation")
	}

	u.logger.Info("reservation created",
		slog.String("reservation_id", r.ID().String()),
		slog.String("item_id", itemID.String()),
		slog.String("member_id", memberID.String()),
		slog.Time("expires_on", r.ExpiresOn()),
	)
	return u.resQueries.GetByID(ctx, r.ID())
}

func (u *reservationQueueImpl) Cancel(ctx context.Context, reservationID uuid.UUID) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	r, err := u.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := r.Cancel(); err != nil {
		return u.markReservationErr(err)
	}
	if err := u.reservations.Update(ctx, r); err != nil {
		return errs.Wrap(err, "failed to update reservation")
	}

	u.logger.Info("reservation cancelled", slog.String("reservation_id", reservationID.String()))
	return nil
}

// Fulfil completes a pickup. A reservation past its window is moved to
// EXPIRED on the spot and the pickup is rejected.
func (u *reservationQueueImpl) Fulfil(ctx context.Context, reservationID uuid.UUID) (*queries.ReservationView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	r, err := u.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	today := u.clock.Today()
	if r.Expire(today) {
		if err := u.reservations.Update(ctx, r); err != nil {
			return nil, errs.Wrap(err, "failed to persist expiration")
		}
		return nil, errs.ErrReservationExpired
	}
	if err := r.Fulfil(today); err != nil {
		return nil, u.markReservationErr(err)
	}
	if err := u.reservations.Update(ctx, r); err != nil {
		return nil, errs.Wrap(err, "failed to update reservation")
	}

	u.logger.Info("reservation fulfilled", slog.String("reservation_id", reservationID.String()))
	return u.resQueries.GetByID(ctx, r.ID())
}

// RefreshExpirations sweeps every pending reservation past its window to
// EXPIRED. Idempotent for a fixed day.
func (u *reservationQueueImpl) RefreshExpirations(ctx context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.expireStale(ctx, u.clock.Today())
}

// NextInLine returns the head of the item's queue after sweeping stale
// entries: earliest reservation date first, ID string ascending on ties.
// Returns nil when the queue is empty.
func (u *reservationQueueImpl) NextInLine(ctx context.Context, itemID uuid.UUID) (*queries.ReservationView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.expireStale(ctx, u.clock.Today()); err != nil {
		return nil, err
	}
	pending, err := u.reservations.FindPendingByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list pending reservations")
	}
	if len(pending) == 0 {
		return nil, nil
	}
	return u.resQueries.GetByID(ctx, pending[0].ID())
}

// HasPending is the renewal veto consumed by the loan ledger.
func (u *reservationQueueImpl) HasPending(ctx context.Context, itemID uuid.UUID) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.expireStale(ctx, u.clock.Today()); err != nil {
		return false, err
	}
	pending, err := u.reservations.FindPendingByItem(ctx, itemID)
	if err != nil {
		return false, errs.Wrap(err, "failed to list pending reservations")
	}
	return len(pending) > 0, nil
}

// NotifyAvailability marks every still-valid pending reservation on the item
// as notified and emits one pickup notice per newly marked holder. It never
// fulfils anything; pickup stays an explicit action.
func (u *reservationQueueImpl) NotifyAvailability(ctx context.Context, itemID uuid.UUID) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := u.expireStale(ctx, u.clock.Today()); err != nil {
		return 0, err
	}
	pending, err := u.reservations.FindPendingByItem(ctx, itemID)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list pending reservations")
	}

	notified := 0
	for _, r := range pending {
		if !r.MarkNotified() {
			continue
		}
		if err := u.reservations.Update(ctx, r); err != nil {
			return notified, errs.Wrap(err, "failed to persist notified flag")
		}
		notice := PickupNotice{
			ReservationID: r.ID(),
			ItemID:        r.ItemID(),
			MemberID:      r.MemberID(),
			ExpiresOn:     r.ExpiresOn(),
		}
		if err := u.notifier.PickupAvailable(ctx, notice); err != nil {
			// The flag stays set; the holder is not notified twice on retry.
			u.logger.Warn("pickup notice delivery failed",
				slog.String("reservation_id", r.ID().String()),
				slog.String("error", err.Error()),
			)
		}
		notified++
	}
	return notified, nil
}

// expireStale applies the PENDING -> EXPIRED edge across the whole queue.
// Callers must hold the mutex.
func (u *reservationQueueImpl) expireStale(ctx context.Context, today time.Time) (int, error) {
	pending, err := u.reservations.FindPending(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list pending reservations")
	}

	expired := 0
	for _, r := range pending {
		if !r.Expire(today) {
			continue
		}
		if err := u.reservations.Update(ctx, r); err != nil {
			return expired, errs.Wrap(err, "failed to persist expiration")
		}
		expired++
	}
	if expired > 0 {
		u.logger.Info("expiration sweep", slog.Int("expired", expired))
	}
	return expired, nil
}

func (u *reservationQueueImpl) markReservationErr(err error) error {
	switch {
	case errs.Is(err, reservation.ErrAlreadyResolved):
		return errs.Mark(err, errs.ErrAlreadyResolved)
	case errs.Is(err, reservation.ErrReservationExpired):
		return errs.Mark(err, errs.ErrReservationExpired)
	default:
		return errs.Wrap(err, "reservation transition rejected")
	}
}

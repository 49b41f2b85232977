package reservation

import (
	"errors"
	"time"

	"circulation-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrAlreadyResolved    = errors.New("reservation is already resolved")
	ErrReservationExpired = errors.New("reservation has expired")
)

// Reservation records one member's place in an item's pickup queue, valid
// only within a bounded window.
//
// State machine: PENDING -> FULFILLED | CANCELLED | EXPIRED, all terminal.
// The notified flag is a delivery marker for pickup notices, not a state.
type Reservation struct {
	id         uuid.UUID
	itemID     uuid.UUID
	memberID   uuid.UUID
	reservedOn time.Time
	expiresOn  time.Time
	status     Status
	notified   bool
}

func NewReservation(itemID, memberID uuid.UUID, reservedOn time.Time, windowDays int) *Reservation {
	day := clock.DateOf(reservedOn)
	return &Reservation{
		id:         uuid.New(),
		itemID:     itemID,
		memberID:   memberID,
		reservedOn: day,
		expiresOn:  day.AddDate(0, 0, windowDays),
		status:     StatusPending,
	}
}

func ReconstructReservation(
	id, itemID, memberID uuid.UUID,
	reservedOn, expiresOn time.Time,
	status Status,
	notified bool,
) *Reservation {
	return &Reservation{
		id:         id,
		itemID:     itemID,
		memberID:   memberID,
		reservedOn: reservedOn,
		expiresOn:  expiresOn,
		status:     status,
		notified:   notified,
	}
}

// Expire applies the time-driven PENDING -> EXPIRED edge and reports whether
// it fired. Idempotent for a fixed day.
func (r *Reservation) Expire(today time.Time) bool {
	if r.status == StatusPending && clock.DateOf(today).After(r.expiresOn) {
		r.status = StatusExpired
		return true
	}
	return false
}

// Fulfil completes the pickup. Past-window reservations cannot be fulfilled
// even if the expiry sweep has not caught them yet.
func (r *Reservation) Fulfil(today time.Time) error {
	if r.status != StatusPending {
		return ErrAlreadyResolved
	}
	if clock.DateOf(today).After(r.expiresOn) {
		return ErrReservationExpired
	}
	r.status = StatusFulfilled
	return nil
}

func (r *Reservation) Cancel() error {
	if r.status != StatusPending {
		return ErrAlreadyResolved
	}
	r.status = StatusCancelled
	return nil
}

// MarkNotified flags a pending reservation as having received a pickup
// notice. Reports whether the flag was newly set.
func (r *Reservation) MarkNotified() bool {
	if r.status != StatusPending || r.notified {
		return false
	}
	r.notified = true
	return true
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ItemID() uuid.UUID     { return r.itemID }
func (r *Reservation) MemberID() uuid.UUID   { return r.memberID }
func (r *Reservation) ReservedOn() time.Time { return r.reservedOn }
func (r *Reservation) ExpiresOn() time.Time  { return r.expiresOn }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Notified() bool        { return r.notified }

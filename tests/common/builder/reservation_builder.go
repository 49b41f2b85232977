//go:build unit

package builder

import (
	"time"

	"circulation-engine/internal/domain/reservation"
	"circulation-engine/internal/infra/memstore"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	MemberID   uuid.UUID
	ReservedOn time.Time
	ExpiresOn  time.Time
	Status     reservation.Status
	Notified   bool
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		MemberID:   uuid.New(),
		ReservedOn: BaseDay,
		ExpiresOn:  BaseDay.AddDate(0, 0, 3),
		Status:     reservation.StatusPending,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		b.ID, b.ItemID, b.MemberID,
		b.ReservedOn, b.ExpiresOn,
		b.Status, b.Notified,
	)
}

func (b *ReservationBuilder) BuildRecord() memstore.ReservationRecord {
	return memstore.ReservationRecord{
		ID:         b.ID,
		ItemID:     b.ItemID,
		MemberID:   b.MemberID,
		ReservedOn: b.ReservedOn,
		ExpiresOn:  b.ExpiresOn,
		Status:     b.Status.String(),
		Notified:   b.Notified,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithItemID(id uuid.UUID) *ReservationBuilder {
	b.ItemID = id
	return b
}

func (b *ReservationBuilder) WithMemberID(id uuid.UUID) *ReservationBuilder {
	b.MemberID = id
	return b
}

// WithReservedOn moves the reservation date and keeps the expiry one standard
// pickup window (3 days) after it.
func (b *ReservationBuilder) WithReservedOn(day time.Time) *ReservationBuilder {
	b.ReservedOn = day
	b.ExpiresOn = day.AddDate(0, 0, 3)
	return b
}

func (b *ReservationBuilder) WithStatus(s reservation.Status) *ReservationBuilder {
	b.Status = s
	return b
}

func (b *ReservationBuilder) AsNotified() *ReservationBuilder {
	b.Notified = true
	return b
}

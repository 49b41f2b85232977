package commands

import (
	"context"
	"time"

	"circulation-engine/internal/domain/item"
	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/domain/member"
	"circulation-engine/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collaborator contracts the engine is handed by the composition root. The
// engine never reaches for them through ambient state; everything arrives by
// injection.

// ItemCatalog exposes the copy counters of circulation items. Decrement
// fails when no copy is on the shelf.
type ItemCatalog interface {
	GetAvailability(ctx context.Context, itemID uuid.UUID) (item.Availability, error)
	Decrement(ctx context.Context, itemID uuid.UUID) error
	Increment(ctx context.Context, itemID uuid.UUID) error
}

// MemberDirectory exposes member eligibility and keeps the member-side loan
// back-references (IDs only, the ledger owns the records).
type MemberDirectory interface {
	GetEligibility(ctx context.Context, memberID uuid.UUID) (member.EligibilitySnapshot, error)
	CountActiveLoans(ctx context.Context, memberID uuid.UUID) (int, error)
	AddFine(ctx context.Context, memberID uuid.UUID, amount decimal.Decimal) error
	RecordLoan(ctx context.Context, memberID, loanID uuid.UUID) error
	RecordReturn(ctx context.Context, memberID, loanID uuid.UUID) error
}

// LoanRepository owns the loan records. Loans are never deleted.
type LoanRepository interface {
	Insert(ctx context.Context, l *loan.Loan) error
	Update(ctx context.Context, l *loan.Loan) error
	FindByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error)
	FindOpen(ctx context.Context) ([]*loan.Loan, error)
}

// ReservationRepository owns the reservation records. FindPendingByItem
// returns queue order: reservation date ascending, ID string ascending on
// ties.
type ReservationRepository interface {
	Insert(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	FindPending(ctx context.Context) ([]*reservation.Reservation, error)
	FindPendingByItem(ctx context.Context, itemID uuid.UUID) ([]*reservation.Reservation, error)
	FindPendingByMemberAndItem(ctx context.Context, memberID, itemID uuid.UUID) (*reservation.Reservation, error)
}

// ReservationGate is the slice of the reservation queue the loan ledger
// needs: the renewal veto and the post-return availability signal.
type ReservationGate interface {
	HasPending(ctx context.Context, itemID uuid.UUID) (bool, error)
	NotifyAvailability(ctx context.Context, itemID uuid.UUID) (int, error)
}

// PickupNotice tells a collaborator that a reserved item is waiting.
type PickupNotice struct {
	ReservationID uuid.UUID
	ItemID        uuid.UUID
	MemberID      uuid.UUID
	ExpiresOn     time.Time
}

// PickupNotifier delivers pickup notices. Delivery failures never roll back
// queue state; the notified flag stays set.
type PickupNotifier interface {
	PickupAvailable(ctx context.Context, notice PickupNotice) error
}

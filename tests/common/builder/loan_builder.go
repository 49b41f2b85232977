//go:build unit

package builder

import (
	"time"

	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/infra/memstore"

	"github.com/google/uuid"
)

// BaseDay anchors builder dates so tests can do whole-day arithmetic without
// touching the wall clock.
var BaseDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type LoanBuilder struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	MemberID   uuid.UUID
	LoanedOn   time.Time
	DueOn      time.Time
	ReturnedOn *time.Time
	Renewals   int
	Status     loan.Status
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		ID:       uuid.New(),
		ItemID:   uuid.New(),
		MemberID: uuid.New(),
		LoanedOn: BaseDay,
		DueOn:    BaseDay.AddDate(0, 0, 14),
		Status:   loan.StatusActive,
	}
}

func (b *LoanBuilder) With(mutate func(*LoanBuilder)) *LoanBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *LoanBuilder) BuildDomain() *loan.Loan {
	return loan.ReconstructLoan(
		b.ID, b.ItemID, b.MemberID,
		b.LoanedOn, b.DueOn, b.ReturnedOn,
		b.Renewals, b.Status,
	)
}

func (b *LoanBuilder) BuildRecord() memstore.LoanRecord {
	return memstore.LoanRecord{
		ID:         b.ID,
		ItemID:     b.ItemID,
		MemberID:   b.MemberID,
		LoanedOn:   b.LoanedOn,
		DueOn:      b.DueOn,
		ReturnedOn: b.ReturnedOn,
		Renewals:   b.Renewals,
		Status:     b.Status.String(),
	}
}

// Fluent builder methods
func (b *LoanBuilder) WithItemID(id uuid.UUID) *LoanBuilder {
	b.ItemID = id
	return b
}

func (b *LoanBuilder) WithMemberID(id uuid.UUID) *LoanBuilder {
	b.MemberID = id
	return b
}

// WithLoanedOn moves the loan date and keeps the due date one standard period
// (14 days) after it.
func (b *LoanBuilder) WithLoanedOn(day time.Time) *LoanBuilder {
	b.LoanedOn = day
	b.DueOn = day.AddDate(0, 0, 14)
	return b
}

func (b *LoanBuilder) WithDueOn(day time.Time) *LoanBuilder {
	b.DueOn = day
	return b
}

func (b *LoanBuilder) WithRenewals(n int) *LoanBuilder {
	b.Renewals = n
	return b
}

func (b *LoanBuilder) AsOverdue() *LoanBuilder {
	b.Status = loan.StatusOverdue
	return b
}

func (b *LoanBuilder) AsReturned(day time.Time) *LoanBuilder {
	b.ReturnedOn = &day
	b.Status = loan.StatusReturned
	return b
}

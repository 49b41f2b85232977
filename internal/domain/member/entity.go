package member

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName    = errors.New("member name is required")
	ErrInvalidKind  = errors.New("invalid member kind")
	ErrNegativeFine = errors.New("fine amount cannot be negative")
)

// Member is the engine's view of an account: identity plus the borrowing
// eligibility the lending policy consumes. Loan history lives in the ledger
// and is referenced by ID only.
type Member struct {
	id        uuid.UUID
	name      string
	kind      Kind
	course    *string // students only
	staffID   *string // staff only
	blocked   bool
	fineTotal decimal.Decimal
}

// EligibilitySnapshot is the slice of member state the lending policy needs
// to decide whether a borrow may start.
type EligibilitySnapshot struct {
	Blocked   bool
	FineTotal decimal.Decimal
}

func NewMember(name string, kind Kind, course, staffID *string) (*Member, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Member{
		id:        uuid.New(),
		name:      name,
		kind:      kind,
		course:    course,
		staffID:   staffID,
		fineTotal: decimal.Zero,
	}, nil
}

func ReconstructMember(
	id uuid.UUID,
	name string,
	kind Kind,
	course, staffID *string,
	blocked bool,
	fineTotal decimal.Decimal,
) *Member {
	return &Member{
		id:        id,
		name:      name,
		kind:      kind,
		course:    course,
		staffID:   staffID,
		blocked:   blocked,
		fineTotal: fineTotal,
	}
}

// AddFine accrues a charge onto the member's running total.
func (m *Member) AddFine(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeFine
	}
	m.fineTotal = m.fineTotal.Add(amount)
	return nil
}

func (m *Member) Block()   { m.blocked = true }
func (m *Member) Unblock() { m.blocked = false }

func (m *Member) Snapshot() EligibilitySnapshot {
	return EligibilitySnapshot{Blocked: m.blocked, FineTotal: m.fineTotal}
}

func (m *Member) ID() uuid.UUID              { return m.id }
func (m *Member) Name() string               { return m.name }
func (m *Member) Kind() Kind                 { return m.kind }
func (m *Member) Course() *string            { return m.course }
func (m *Member) StaffID() *string           { return m.staffID }
func (m *Member) IsBlocked() bool            { return m.blocked }
func (m *Member) FineTotal() decimal.Decimal { return m.fineTotal }

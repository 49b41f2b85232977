package loan

import (
	"errors"
	"time"

	"circulation-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReturned     = errors.New("loan is already returned")
	ErrLoanOverdue         = errors.New("loan is overdue")
	ErrRenewalLimitReached = errors.New("renewal limit reached")
	ErrReturnBeforeLoan    = errors.New("return date precedes loan date")
)

// Loan records one item held by one member for a bounded period.
//
// State machine: ACTIVE -(renew)-> ACTIVE, ACTIVE -(time)-> OVERDUE,
// {ACTIVE, OVERDUE} -(return)-> RETURNED. RETURNED is terminal; loans are
// never deleted and serve as history.
type Loan struct {
	id         uuid.UUID
	itemID     uuid.UUID
	memberID   uuid.UUID
	loanedOn   time.Time
	dueOn      time.Time
	returnedOn *time.Time
	renewals   int
	status     Status
}

func NewLoan(itemID, memberID uuid.UUID, loanedOn time.Time, periodDays int) *Loan {
	day := clock.DateOf(loanedOn)
	return &Loan{
		id:       uuid.New(),
		itemID:   itemID,
		memberID: memberID,
		loanedOn: day,
		dueOn:    day.AddDate(0, 0, periodDays),
		status:   StatusActive,
	}
}

func ReconstructLoan(
	id, itemID, memberID uuid.UUID,
	loanedOn, dueOn time.Time,
	returnedOn *time.Time,
	renewals int,
	status Status,
) *Loan {
	return &Loan{
		id:         id,
		itemID:     itemID,
		memberID:   memberID,
		loanedOn:   loanedOn,
		dueOn:      dueOn,
		returnedOn: returnedOn,
		renewals:   renewals,
		status:     status,
	}
}

// RefreshStatus applies the time-driven ACTIVE -> OVERDUE edge and reports
// whether anything changed. Calling it again with the same day is a no-op.
func (l *Loan) RefreshStatus(today time.Time) bool {
	if l.status == StatusActive && clock.DateOf(today).After(l.dueOn) {
		l.status = StatusOverdue
		return true
	}
	return false
}

// Renew pushes the due date forward by one loan period. Overdue loans and
// loans at the renewal cap may not renew.
func (l *Loan) Renew(today time.Time, maxRenewals, periodDays int) error {
	if l.status == StatusReturned {
		return ErrAlreadyReturned
	}
	if l.status == StatusOverdue || clock.DateOf(today).After(l.dueOn) {
		return ErrLoanOverdue
	}
	if l.renewals >= maxRenewals {
		return ErrRenewalLimitReached
	}
	l.dueOn = l.dueOn.AddDate(0, 0, periodDays)
	l.renewals++
	return nil
}

// Close records the return. The status freezes at RETURNED; the overdue flag
// is irrelevant once the item is back.
func (l *Loan) Close(returnedOn time.Time) error {
	if l.status == StatusReturned {
		return ErrAlreadyReturned
	}
	day := clock.DateOf(returnedOn)
	if day.Before(l.loanedOn) {
		return ErrReturnBeforeLoan
	}
	l.returnedOn = &day
	l.status = StatusReturned
	return nil
}

func (l *Loan) IsOpen() bool {
	return l.status.IsOpen()
}

func (l *Loan) ID() uuid.UUID          { return l.id }
func (l *Loan) ItemID() uuid.UUID      { return l.itemID }
func (l *Loan) MemberID() uuid.UUID    { return l.memberID }
func (l *Loan) LoanedOn() time.Time    { return l.loanedOn }
func (l *Loan) DueOn() time.Time       { return l.dueOn }
func (l *Loan) ReturnedOn() *time.Time { return l.returnedOn }
func (l *Loan) Renewals() int          { return l.renewals }
func (l *Loan) Status() Status         { return l.status }

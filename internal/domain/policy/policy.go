package policy

import (
	"errors"
	"time"

	"circulation-engine/internal/domain/member"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/config"

	"github.com/shopspring/decimal"
)

var (
	ErrMemberBlocked     = errors.New("member is blocked")
	ErrFineLimitExceeded = errors.New("outstanding fines exceed the permitted maximum")
	ErrLoanLimitReached  = errors.New("active loan limit reached")
	ErrInvalidRate       = errors.New("invalid policy rate")
)

// Policy centralizes the circulation constants and eligibility predicates
// consumed by both the loan ledger and the reservation queue. It holds no
// state and never touches collaborators, so every method is deterministic
// given its inputs.
type Policy struct {
	LoanPeriodDays        int
	MaxRenewals           int
	MaxActiveLoans        int
	ReservationWindowDays int
	DailyFineRate         decimal.Decimal
	MaxPermittedFine      decimal.Decimal
}

// FromConfig parses the string-typed money knobs and rejects nonsensical
// values up front, so the rest of the engine can trust the policy blindly.
func FromConfig(cfg config.PolicyConfig) (Policy, error) {
	rate, err := decimal.NewFromString(cfg.DailyFineRate)
	if err != nil {
		return Policy{}, ErrInvalidRate
	}
	maxFine, err := decimal.NewFromString(cfg.MaxPermittedFine)
	if err != nil {
		return Policy{}, ErrInvalidRate
	}
	if rate.IsNegative() || maxFine.IsNegative() {
		return Policy{}, ErrInvalidRate
	}
	if cfg.LoanPeriodDays <= 0 || cfg.MaxRenewals < 0 || cfg.MaxActiveLoans <= 0 || cfg.ReservationWindowDays <= 0 {
		return Policy{}, ErrInvalidRate
	}
	return Policy{
		LoanPeriodDays:        cfg.LoanPeriodDays,
		MaxRenewals:           cfg.MaxRenewals,
		MaxActiveLoans:        cfg.MaxActiveLoans,
		ReservationWindowDays: cfg.ReservationWindowDays,
		DailyFineRate:         rate,
		MaxPermittedFine:      maxFine,
	}, nil
}

// Default returns the standard circulation rules (14-day loans, 2 renewals,
// 3 concurrent loans, 3-day pickup window, 0.50/day fine capped at 10.00).
func Default() Policy {
	p, err := FromConfig(config.NewTestConfig().Policy)
	if err != nil {
		panic(err) // defaults are compile-time constants
	}
	return p
}

// CanBorrow reports whether a member may start a new loan. A nil return means
// eligible; otherwise the error names the first failing rule.
func (p Policy) CanBorrow(snap member.EligibilitySnapshot, activeLoans int) error {
	if snap.Blocked {
		return ErrMemberBlocked
	}
	if snap.FineTotal.GreaterThan(p.MaxPermittedFine) {
		return ErrFineLimitExceeded
	}
	if activeLoans >= p.MaxActiveLoans {
		return ErrLoanLimitReached
	}
	return nil
}

// ComputeFine charges the daily rate for every whole day the reference date
// sits past the due date. The result is zero for on-time returns and grows
// monotonically while a loan stays open.
func (p Policy) ComputeFine(dueDate, reference time.Time) decimal.Decimal {
	daysLate := clock.DaysBetween(dueDate, reference)
	if daysLate <= 0 {
		return decimal.Zero
	}
	return p.DailyFineRate.Mul(decimal.NewFromInt(int64(daysLate)))
}

// DueDate computes when a loan started on the given day falls due.
func (p Policy) DueDate(loanedOn time.Time) time.Time {
	return clock.DateOf(loanedOn).AddDate(0, 0, p.LoanPeriodDays)
}

// ExpiryDate computes when a reservation placed on the given day lapses.
func (p Policy) ExpiryDate(reservedOn time.Time) time.Time {
	return clock.DateOf(reservedOn).AddDate(0, 0, p.ReservationWindowDays)
}

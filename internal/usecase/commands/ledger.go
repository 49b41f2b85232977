package commands

import (
	"context"
	"log/slog"
	"sync"

	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/domain/policy"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

// LoanCommands is the loan ledger: it decides whether a borrow may start and
// advances loans through their lifecycle. Mutating operations serialize under
// a single mutex so two concurrent borrows can never both see the last copy
// as available.
type LoanCommands interface {
	Borrow(ctx context.Context, memberID, itemID uuid.UUID) (*queries.LoanView, error)
	Return(ctx context.Context, loanID uuid.UUID) (*queries.LoanView, error)
	Renew(ctx context.Context, loanID uuid.UUID) (*queries.LoanView, error)
	RefreshOverdueStatus(ctx context.Context) (int, error)
}

type loanLedgerImpl struct {
	mu           sync.Mutex
	loans        LoanRepository
	catalog      ItemCatalog
	directory    MemberDirectory
	reservations ReservationGate
	loanQueries  queries.LoanQueries
	clock        clock.Clock
	policy       policy.Policy
	logger       *slog.Logger
}

func NewLoanLedger(
	loans LoanRepository,
	catalog ItemCatalog,
	directory MemberDirectory,
	reservations ReservationGate,
	loanQueries queries.LoanQueries,
	clk clock.Clock,
	pol policy.Policy,
	logger *slog.Logger,
) LoanCommands {
	return &loanLedgerImpl{
		loans:        loans,
		catalog:      catalog,
		directory:    directory,
		reservations: reservations,
		loanQueries:  loanQueries,
		clock:        clk,
		policy:       pol,
		logger:       logger,
	}
}

// Borrow starts a loan. All preconditions are checked before the first
// mutation; a failed store insert rolls the catalog decrement back, so a
// rejected request leaves no trace.
func (u *loanLedgerImpl) Borrow(ctx context.Context, memberID, itemID uuid.UUID) (*queries.LoanView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	avail, err := u.catalog.GetAvailability(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrItemUnavailable)
	}
	if avail.Available == 0 {
		return nil, errs.ErrItemUnavailable
	}

	snap, err := u.directory.GetEligibility(ctx, memberID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load member eligibility")
	}
	activeLoans, err := u.directory.CountActiveLoans(ctx, memberID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count active loans")
	}
	if err := u.policy.CanBorrow(snap, activeLoans); err != nil {
		return nil, errs.Mark(err, errs.ErrBorrowingNotPermitted)
	}

	if err := u.catalog.Decrement(ctx, itemID); err != nil {
		return nil, errs.Mark(err, errs.ErrItemUnavailable)
	}

	l := loan.NewLoan(itemID, memberID, u.clock.Today(), u.policy.LoanPeriodDays)
	if err := u.loans.Insert(ctx, l); err != nil {
		u.compensateCheckout(ctx, itemID)
		return nil, errs.Wrap(err, "failed to store loan")
	}
	if err := u.directory.RecordLoan(ctx, memberID, l.ID()); err != nil {
		u.compensateCheckout(ctx, itemID)
		return nil, errs.Wrap(err, "failed to record loan on member")
	}

	u.logger.Info("loan created",
		slog.String("loan_id", l.ID().String()),
		slog.String("item_id", itemID.String()),
		slog.String("member_id", memberID.String()),
		slog.Time("due_on", l.DueOn()),
	)
	return u.loanQueries.GetByID(ctx, l.ID())
}

// Return closes a loan, settles the final fine, puts the copy back and wakes
// the reservation queue.
func (u *loanLedgerImpl) Return(ctx context.Context, loanID uuid.UUID) (*queries.LoanView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	l, err := u.loans.FindByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	returnedOn := u.clock.Today()
	if err := l.Close(returnedOn); err != nil {
		return nil, u.markLoanErr(err)
	}

	fine := u.policy.ComputeFine(l.DueOn(), returnedOn)
	if fine.IsPositive() {
		if err := u.directory.AddFine(ctx, l.MemberID(), fine); err != nil {
			return nil, errs.Wrap(err, "failed to add fine")
		}
	}

	if err := u.loans.Update(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to update loan")
	}
	if err := u.directory.RecordReturn(ctx, l.MemberID(), l.ID()); err != nil {
		return nil, errs.Wrap(err, "failed to record return on member")
	}
	if err := u.catalog.Increment(ctx, l.ItemID()); err != nil {
		return nil, errs.Wrap(err, "failed to restore item availability")
	}

	if notified, err := u.reservations.NotifyAvailability(ctx, l.ItemID()); err != nil {
		// The return itself is committed; a notification failure is not a
		// reason to surface an error to the borrower.
		u.logger.Warn("pickup notification failed",
			slog.String("item_id", l.ItemID().String()),
			slog.String("error", err.Error()),
		)
	} else if notified > 0 {
		u.logger.Info("reservation holders notified",
			slog.String("item_id", l.ItemID().String()),
			slog.Int("count", notified),
		)
	}

	u.logger.Info("loan returned",
		slog.String("loan_id", l.ID().String()),
		slog.String("fine", fine.StringFixed(2)),
	)
	return u.loanQueries.GetByID(ctx, l.ID())
}

// Renew extends a loan by one period. Overdue loans, loans at the renewal
// cap and loans on items with a pending reservation are each rejected with
// their own reason.
func (u *loanLedgerImpl) Renew(ctx context.Context, loanID uuid.UUID) (*queries.LoanView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	l, err := u.loans.FindByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	today := u.clock.Today()
	if l.RefreshStatus(today) {
		if err := u.loans.Update(ctx, l); err != nil {
			return nil, errs.Wrap(err, "failed to persist overdue status")
		}
	}
	if l.Status() == loan.StatusReturned {
		return nil, errs.ErrAlreadyReturned
	}
	if l.Status() == loan.StatusOverdue {
		return nil, errs.ErrLoanOverdue
	}

	pending, err := u.reservations.HasPending(ctx, l.ItemID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to check reservation queue")
	}
	if pending {
		return nil, errs.ErrReservationPending
	}

	if err := l.Renew(today, u.policy.MaxRenewals, u.policy.LoanPeriodDays); err != nil {
		return nil, u.markLoanErr(err)
	}
	if err := u.loans.Update(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to update loan")
	}

	u.logger.Info("loan renewed",
		slog.String("loan_id", l.ID().String()),
		slog.Int("renewals", l.Renewals()),
		slog.Time("due_on", l.DueOn()),
	)
	return u.loanQueries.GetByID(ctx, l.ID())
}

// RefreshOverdueStatus sweeps all open loans and applies the time-driven
// ACTIVE -> OVERDUE edge. Idempotent for a fixed day; safe on every read
// path or on a periodic schedule.
func (u *loanLedgerImpl) RefreshOverdueStatus(ctx context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	open, err := u.loans.FindOpen(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "failed to list open loans")
	}

	today := u.clock.Today()
	changed := 0
	for _, l := range open {
		if !l.RefreshStatus(today) {
			continue
		}
		if err := u.loans.Update(ctx, l); err != nil {
			return changed, errs.Wrap(err, "failed to persist overdue status")
		}
		changed++
	}
	if changed > 0 {
		u.logger.Info("overdue sweep", slog.Int("marked", changed))
	}
	return changed, nil
}

// compensateCheckout undoes a catalog decrement after a later step failed.
func (u *loanLedgerImpl) compensateCheckout(ctx context.Context, itemID uuid.UUID) {
	if err := u.catalog.Increment(ctx, itemID); err != nil {
		u.logger.Error("failed to roll back item checkout",
			slog.String("item_id", itemID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (u *loanLedgerImpl) markLoanErr(err error) error {
	switch {
	case errs.Is(err, loan.ErrAlreadyReturned):
		return errs.Mark(err, errs.ErrAlreadyReturned)
	case errs.Is(err, loan.ErrLoanOverdue):
		return errs.Mark(err, errs.ErrLoanOverdue)
	case errs.Is(err, loan.ErrRenewalLimitReached):
		return errs.Mark(err, errs.ErrRenewalLimitReached)
	default:
		return errs.Wrap(err, "loan transition rejected")
	}
}

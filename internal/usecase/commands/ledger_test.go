//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"circulation-engine/internal/domain/item"
	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/domain/policy"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/infra/repo"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/commands"
	"circulation-engine/internal/usecase/queries"
	"circulation-engine/tests/common/builder"
	commandsmock "circulation-engine/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func day(n int) time.Time {
	return builder.BaseDay.AddDate(0, 0, n)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decimalEq matches a decimal by value rather than internal representation.
func decimalEq(expected string) gomock.Matcher {
	want := decimal.RequireFromString(expected)
	return gomock.Cond(func(x decimal.Decimal) bool { return x.Equal(want) })
}

type LoanLedgerTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	catalog   *commandsmock.MockItemCatalog
	directory *commandsmock.MockMemberDirectory
	gate      *commandsmock.MockReservationGate
	clock     *clock.MockClock
	store     *memstore.LoanStore
	ledger    commands.LoanCommands
}

func (s *LoanLedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.catalog = commandsmock.NewMockItemCatalog(s.ctrl)
	s.directory = commandsmock.NewMockMemberDirectory(s.ctrl)
	s.gate = commandsmock.NewMockReservationGate(s.ctrl)
	s.clock = clock.NewMockClock(builder.BaseDay)
	s.store = memstore.NewLoanStore()

	pol := policy.Default()
	loanQueries := queries.NewLoanQueries(repo.NewLoanViewRepository(s.store), s.clock, pol)
	s.ledger = commands.NewLoanLedger(
		repo.NewLoanRepository(s.store),
		s.catalog,
		s.directory,
		s.gate,
		loanQueries,
		s.clock,
		pol,
		discardLogger(),
	)
}

// SetupSubTest rebuilds the stores and mocks so each s.Run case starts from
// an empty ledger.
func (s *LoanLedgerTestSuite) SetupSubTest() {
	s.SetupTest()
}

func TestLoanLedgerSuite(t *testing.T) {
	suite.Run(t, new(LoanLedgerTestSuite))
}

func (s *LoanLedgerTestSuite) seedLoan(b *builder.LoanBuilder) *builder.LoanBuilder {
	s.Require().NoError(s.store.Insert(b.BuildRecord()))
	return b
}

// ================================================================================
// Borrow
// ================================================================================

func (s *LoanLedgerTestSuite) TestBorrow() {
	s.Run("success: creates an active loan due one period out", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 1, Total: 1}, nil)
		s.directory.EXPECT().GetEligibility(gomock.Any(), memberID).
			Return(builder.NewMemberBuilder().BuildSnapshot(), nil)
		s.directory.EXPECT().CountActiveLoans(gomock.Any(), memberID).Return(0, nil)
		s.catalog.EXPECT().Decrement(gomock.Any(), itemID).Return(nil)
		s.directory.EXPECT().RecordLoan(gomock.Any(), memberID, gomock.Any()).Return(nil)

		view, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().NoError(err)
		s.Require().NotNil(view)
		s.Equal(itemID, view.ItemID)
		s.Equal(memberID, view.MemberID)
		s.Equal(day(0), view.LoanedOn)
		s.Equal(day(14), view.DueOn)
		s.Equal(loan.StatusActive.String(), view.Status)
		s.Equal(0, view.Renewals)
		s.True(view.AccruedFine.IsZero())
	})

	s.Run("no copies on the shelf leaves the ledger untouched", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 0, Total: 2}, nil)

		view, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().ErrorIs(err, errs.ErrItemUnavailable)
		s.Nil(view)
		s.Empty(s.store.ListOpen())
	})

	s.Run("blocked member is rejected before any mutation", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 1, Total: 1}, nil)
		s.directory.EXPECT().GetEligibility(gomock.Any(), memberID).
			Return(builder.NewMemberBuilder().AsBlocked().BuildSnapshot(), nil)
		s.directory.EXPECT().CountActiveLoans(gomock.Any(), memberID).Return(0, nil)

		_, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().ErrorIs(err, errs.ErrBorrowingNotPermitted)
		s.Empty(s.store.ListOpen())
	})

	s.Run("fines above the cap reject the borrow", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 1, Total: 1}, nil)
		s.directory.EXPECT().GetEligibility(gomock.Any(), memberID).
			Return(builder.NewMemberBuilder().WithFineTotal("10.01").BuildSnapshot(), nil)
		s.directory.EXPECT().CountActiveLoans(gomock.Any(), memberID).Return(0, nil)

		_, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().ErrorIs(err, errs.ErrBorrowingNotPermitted)
	})

	s.Run("active loan limit rejects the borrow", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 1, Total: 1}, nil)
		s.directory.EXPECT().GetEligibility(gomock.Any(), memberID).
			Return(builder.NewMemberBuilder().BuildSnapshot(), nil)
		s.directory.EXPECT().CountActiveLoans(gomock.Any(), memberID).Return(3, nil)

		_, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().ErrorIs(err, errs.ErrBorrowingNotPermitted)
		s.Empty(s.store.ListOpen())
	})

	s.Run("losing the last copy to a race surfaces as unavailable", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 1, Total: 1}, nil)
		s.directory.EXPECT().GetEligibility(gomock.Any(), memberID).
			Return(builder.NewMemberBuilder().BuildSnapshot(), nil)
		s.directory.EXPECT().CountActiveLoans(gomock.Any(), memberID).Return(0, nil)
		s.catalog.EXPECT().Decrement(gomock.Any(), itemID).Return(errs.ErrNoCopiesAvailable)

		_, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().ErrorIs(err, errs.ErrItemUnavailable)
		s.Empty(s.store.ListOpen())
	})

	s.Run("directory failure after the decrement rolls the checkout back", func() {
		memberID, itemID := uuid.New(), uuid.New()
		s.catalog.EXPECT().GetAvailability(gomock.Any(), itemID).
			Return(item.Availability{Available: 1, Total: 1}, nil)
		s.directory.EXPECT().GetEligibility(gomock.Any(), memberID).
			Return(builder.NewMemberBuilder().BuildSnapshot(), nil)
		s.directory.EXPECT().CountActiveLoans(gomock.Any(), memberID).Return(0, nil)
		s.catalog.EXPECT().Decrement(gomock.Any(), itemID).Return(nil)
		s.directory.EXPECT().RecordLoan(gomock.Any(), memberID, gomock.Any()).
			Return(errs.New("directory down"))
		s.catalog.EXPECT().Increment(gomock.Any(), itemID).Return(nil)

		view, err := s.ledger.Borrow(s.ctx, memberID, itemID)

		s.Require().Error(err)
		s.Nil(view)
	})
}

// ================================================================================
// Return
// ================================================================================

func (s *LoanLedgerTestSuite) TestReturn() {
	s.Run("success: on-time return carries no fine", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(10))
		s.directory.EXPECT().RecordReturn(gomock.Any(), b.MemberID, b.ID).Return(nil)
		s.catalog.EXPECT().Increment(gomock.Any(), b.ItemID).Return(nil)
		s.gate.EXPECT().NotifyAvailability(gomock.Any(), b.ItemID).Return(0, nil)

		view, err := s.ledger.Return(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(loan.StatusReturned.String(), view.Status)
		s.Require().NotNil(view.ReturnedOn)
		s.Equal(day(10), *view.ReturnedOn)
		s.True(view.AccruedFine.IsZero())
	})

	s.Run("late return settles the accrued fine", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(20)) // six days past the due date
		s.directory.EXPECT().AddFine(gomock.Any(), b.MemberID, decimalEq("3.00")).Return(nil)
		s.directory.EXPECT().RecordReturn(gomock.Any(), b.MemberID, b.ID).Return(nil)
		s.catalog.EXPECT().Increment(gomock.Any(), b.ItemID).Return(nil)
		s.gate.EXPECT().NotifyAvailability(gomock.Any(), b.ItemID).Return(0, nil)

		view, err := s.ledger.Return(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(loan.StatusReturned.String(), view.Status)
		s.True(view.AccruedFine.Equal(decimal.RequireFromString("3.00")),
			"accrued fine = %s", view.AccruedFine)
	})

	s.Run("the fine freezes at the return date", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(20))
		s.directory.EXPECT().AddFine(gomock.Any(), b.MemberID, decimalEq("3.00")).Return(nil)
		s.directory.EXPECT().RecordReturn(gomock.Any(), b.MemberID, b.ID).Return(nil)
		s.catalog.EXPECT().Increment(gomock.Any(), b.ItemID).Return(nil)
		s.gate.EXPECT().NotifyAvailability(gomock.Any(), b.ItemID).Return(0, nil)
		_, err := s.ledger.Return(s.ctx, b.ID)
		s.Require().NoError(err)

		s.clock.Set(day(40))
		rec, err := s.store.Get(b.ID)
		s.Require().NoError(err)
		s.Require().NotNil(rec.ReturnedOn)
		s.Equal(day(20), *rec.ReturnedOn)
	})

	s.Run("returning twice is rejected", func() {
		b := s.seedLoan(builder.NewLoanBuilder().AsReturned(day(5)))
		s.clock.Set(day(6))

		_, err := s.ledger.Return(s.ctx, b.ID)

		s.Require().ErrorIs(err, errs.ErrAlreadyReturned)
	})

	s.Run("unknown loan", func() {
		_, err := s.ledger.Return(s.ctx, uuid.New())
		s.Require().ErrorIs(err, errs.ErrLoanNotFound)
	})

	s.Run("notification failure never fails the return", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(3))
		s.directory.EXPECT().RecordReturn(gomock.Any(), b.MemberID, b.ID).Return(nil)
		s.catalog.EXPECT().Increment(gomock.Any(), b.ItemID).Return(nil)
		s.gate.EXPECT().NotifyAvailability(gomock.Any(), b.ItemID).
			Return(0, errs.New("queue unavailable"))

		view, err := s.ledger.Return(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(loan.StatusReturned.String(), view.Status)
	})
}

// ================================================================================
// Renew
// ================================================================================

func (s *LoanLedgerTestSuite) TestRenew() {
	s.Run("success: pushes the due date out one period", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(1))
		s.gate.EXPECT().HasPending(gomock.Any(), b.ItemID).Return(false, nil)

		view, err := s.ledger.Renew(s.ctx, b.ID)

		s.Require().NoError(err)
		s.Equal(day(28), view.DueOn)
		s.Equal(1, view.Renewals)
		s.Equal(loan.StatusActive.String(), view.Status)
	})

	s.Run("renewals stop at the cap", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(1))
		s.gate.EXPECT().HasPending(gomock.Any(), b.ItemID).Return(false, nil).Times(3)

		_, err := s.ledger.Renew(s.ctx, b.ID)
		s.Require().NoError(err)
		view, err := s.ledger.Renew(s.ctx, b.ID)
		s.Require().NoError(err)
		s.Equal(day(42), view.DueOn)

		_, err = s.ledger.Renew(s.ctx, b.ID)
		s.Require().ErrorIs(err, errs.ErrRenewalLimitReached)

		rec, recErr := s.store.Get(b.ID)
		s.Require().NoError(recErr)
		s.Equal(2, rec.Renewals)
	})

	s.Run("a pending reservation vetoes the renewal", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(1))
		s.gate.EXPECT().HasPending(gomock.Any(), b.ItemID).Return(true, nil)

		_, err := s.ledger.Renew(s.ctx, b.ID)

		s.Require().ErrorIs(err, errs.ErrReservationPending)
		rec, recErr := s.store.Get(b.ID)
		s.Require().NoError(recErr)
		s.Equal(day(14), rec.DueOn)
		s.Equal(0, rec.Renewals)
	})

	s.Run("an overdue loan cannot renew and the status is persisted", func() {
		b := s.seedLoan(builder.NewLoanBuilder())
		s.clock.Set(day(20))

		_, err := s.ledger.Renew(s.ctx, b.ID)

		s.Require().ErrorIs(err, errs.ErrLoanOverdue)
		rec, recErr := s.store.Get(b.ID)
		s.Require().NoError(recErr)
		s.Equal(loan.StatusOverdue.String(), rec.Status)
	})

	s.Run("a returned loan cannot renew", func() {
		b := s.seedLoan(builder.NewLoanBuilder().AsReturned(day(5)))
		s.clock.Set(day(6))

		_, err := s.ledger.Renew(s.ctx, b.ID)

		s.Require().ErrorIs(err, errs.ErrAlreadyReturned)
	})

	s.Run("unknown loan", func() {
		_, err := s.ledger.Renew(s.ctx, uuid.New())
		s.Require().ErrorIs(err, errs.ErrLoanNotFound)
	})
}

// ================================================================================
// RefreshOverdueStatus
// ================================================================================

func (s *LoanLedgerTestSuite) TestRefreshOverdueStatus() {
	s.Run("marks only past-due open loans and is idempotent", func() {
		late := s.seedLoan(builder.NewLoanBuilder())
		onTime := s.seedLoan(builder.NewLoanBuilder().WithLoanedOn(day(10)))
		closed := s.seedLoan(builder.NewLoanBuilder().AsReturned(day(2)))
		s.clock.Set(day(20))

		marked, err := s.ledger.RefreshOverdueStatus(s.ctx)

		s.Require().NoError(err)
		s.Equal(1, marked)

		lateRec, _ := s.store.Get(late.ID)
		s.Equal(loan.StatusOverdue.String(), lateRec.Status)
		onTimeRec, _ := s.store.Get(onTime.ID)
		s.Equal(loan.StatusActive.String(), onTimeRec.Status)
		closedRec, _ := s.store.Get(closed.ID)
		s.Equal(loan.StatusReturned.String(), closedRec.Status)

		marked, err = s.ledger.RefreshOverdueStatus(s.ctx)
		s.Require().NoError(err)
		s.Equal(0, marked)
	})
}

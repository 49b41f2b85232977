package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"circulation-engine/cmd/bootstrap"
	"circulation-engine/internal/domain/member"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/commands"
	"circulation-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

// The binary runs a dated walkthrough of the circulation engine against a
// simulated calendar: borrow, reservation veto, return with fine, pickup
// notice, expiration sweep. It doubles as a smoke test of the full wiring.
func main() {
	mock := clock.NewMockClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	app := fx.New(
		bootstrap.Module,
		fx.Decorate(func(clock.Clock) clock.Clock { return mock }),
		fx.Invoke(func(p walkthroughParams) error {
			return runWalkthrough(mock, p)
		}),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("walkthrough failed", "error", err)
		os.Exit(1)
	}
	_ = app.Stop(context.Background())
}

type walkthroughParams struct {
	fx.In

	Ledger    commands.LoanCommands
	Queue     commands.ReservationCommands
	LoanQ     queries.LoanQueries
	Catalog   *memstore.Catalog
	Directory *memstore.Directory
	Logger    *slog.Logger
}

func runWalkthrough(cal *clock.MockClock, p walkthroughParams) error {
	ctx := context.Background()
	log := p.Logger

	bookID, err := p.Catalog.Add("Clean Architecture", 1)
	if err != nil {
		return err
	}
	course := "Computer Science"
	anaID, err := p.Directory.Add("Ana Souza", member.KindStudent, &course, nil)
	if err != nil {
		return err
	}
	staffNo := "ST-0042"
	brunoID, err := p.Directory.Add("Bruno Lima", member.KindStaff, nil, &staffNo)
	if err != nil {
		return err
	}

	// Day 0: Ana takes the only copy.
	loanView, err := p.Ledger.Borrow(ctx, anaID, bookID)
	if err != nil {
		return err
	}
	log.Info("walkthrough: borrowed", "member", "Ana", "due_on", loanView.DueOn)

	// Day 1: Bruno queues up for the same book.
	cal.AdvanceDays(1)
	resView, err := p.Queue.Reserve(ctx, brunoID, bookID)
	if err != nil {
		return err
	}
	log.Info("walkthrough: reserved", "member", "Bruno", "expires_on", resView.ExpiresOn)

	// Day 2: the pending reservation vetoes Ana's renewal.
	cal.AdvanceDays(1)
	if _, err := p.Ledger.Renew(ctx, loanView.ID); !errs.Is(err, errs.ErrReservationPending) {
		return errs.New("expected renewal veto")
	}
	log.Info("walkthrough: renewal vetoed by pending reservation")

	// Day 3: Ana returns; Bruno gets a pickup notice and collects.
	cal.AdvanceDays(1)
	if _, err := p.Ledger.Return(ctx, loanView.ID); err != nil {
		return err
	}
	if _, err := p.Queue.Fulfil(ctx, resView.ID); err != nil {
		return err
	}
	brunoLoan, err := p.Ledger.Borrow(ctx, brunoID, bookID)
	if err != nil {
		return err
	}
	log.Info("walkthrough: picked up", "member", "Bruno", "due_on", brunoLoan.DueOn)

	// Day 23: six days late. The overdue sweep flags it, the return settles
	// the fine on Bruno's account.
	cal.AdvanceDays(20)
	marked, err := p.Ledger.RefreshOverdueStatus(ctx)
	if err != nil {
		return err
	}
	log.Info("walkthrough: overdue sweep", "marked", marked)

	closed, err := p.Ledger.Return(ctx, brunoLoan.ID)
	if err != nil {
		return err
	}
	rec, err := p.Directory.Get(ctx, brunoID)
	if err != nil {
		return err
	}
	log.Info("walkthrough: returned late",
		"fine", closed.AccruedFine.StringFixed(2),
		"member_fine_total", rec.FineTotal.StringFixed(2),
	)

	overdue, err := p.LoanQ.ListOverdue(ctx)
	if err != nil {
		return err
	}
	log.Info("walkthrough: done", "open_overdue_loans", len(overdue))
	return nil
}

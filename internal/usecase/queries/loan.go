package queries

import (
	"context"
	"time"

	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/domain/policy"
	"circulation-engine/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanView is the read model handed to callers. Views are copies; mutating
// one never touches ledger state.
type LoanView struct {
	ID          uuid.UUID       `json:"id"`
	ItemID      uuid.UUID       `json:"item_id"`
	MemberID    uuid.UUID       `json:"member_id"`
	LoanedOn    time.Time       `json:"loaned_on"`
	DueOn       time.Time       `json:"due_on"`
	ReturnedOn  *time.Time      `json:"returned_on,omitempty"`
	Renewals    int             `json:"renewals"`
	Status      string          `json:"status"`
	AccruedFine decimal.Decimal `json:"accrued_fine"`
}

// LoanQueries answers read requests about loans. Statuses and fines are
// computed against the current date on every read, so callers see overdue
// loans as overdue even if the periodic sweep has not run yet.
type LoanQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	ListActive(ctx context.Context) ([]*LoanView, error)
	ListOverdue(ctx context.Context) ([]*LoanView, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*LoanView, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*LoanView, error)
}

// LoanViewRepo supplies raw view rows from the loan store.
type LoanViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	FindOpen(ctx context.Context) ([]*LoanView, error)
	FindByMember(ctx context.Context, memberID uuid.UUID) ([]*LoanView, error)
	FindByItem(ctx context.Context, itemID uuid.UUID) ([]*LoanView, error)
}

type loanQueriesImpl struct {
	repo   LoanViewRepo
	clock  clock.Clock
	policy policy.Policy
}

func NewLoanQueries(repo LoanViewRepo, clk clock.Clock, pol policy.Policy) LoanQueries {
	return &loanQueriesImpl{repo: repo, clock: clk, policy: pol}
}

func (q *loanQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q.decorate(v)
	return v, nil
}

// ListActive returns every loan still out, overdue ones included.
func (q *loanQueriesImpl) ListActive(ctx context.Context) ([]*LoanView, error) {
	views, err := q.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	q.decorateAll(views)
	return views, nil
}

func (q *loanQueriesImpl) ListOverdue(ctx context.Context) ([]*LoanView, error) {
	views, err := q.repo.FindOpen(ctx)
	if err != nil {
		return nil, err
	}
	q.decorateAll(views)
	overdue := make([]*LoanView, 0, len(views))
	for _, v := range views {
		if v.Status == loan.StatusOverdue.String() {
			overdue = append(overdue, v)
		}
	}
	return overdue, nil
}

func (q *loanQueriesImpl) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*LoanView, error) {
	views, err := q.repo.FindByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	q.decorateAll(views)
	return views, nil
}

func (q *loanQueriesImpl) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*LoanView, error) {
	views, err := q.repo.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	q.decorateAll(views)
	return views, nil
}

// decorate applies the time-derived pieces of the view: the effective status
// and the fine accrued so far (frozen at the return date once closed).
func (q *loanQueriesImpl) decorate(v *LoanView) {
	today := q.clock.Today()
	if v.Status == loan.StatusActive.String() && today.After(v.DueOn) {
		v.Status = loan.StatusOverdue.String()
	}
	if v.ReturnedOn != nil {
		v.AccruedFine = q.policy.ComputeFine(v.DueOn, *v.ReturnedOn)
	} else {
		v.AccruedFine = q.policy.ComputeFine(v.DueOn, today)
	}
}

func (q *loanQueriesImpl) decorateAll(views []*LoanView) {
	for _, v := range views {
		q.decorate(v)
	}
}

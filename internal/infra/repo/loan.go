// Package repo adapts the memstore record stores to the repository and view
// contracts the usecase layer consumes, converting records to domain
// entities and read models at the boundary.
package repo

import (
	"context"

	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/infra"
	"circulation-engine/internal/infra/converter"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/commands"
	"circulation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanRepository struct {
	store *memstore.LoanStore
}

func NewLoanRepository(store *memstore.LoanStore) commands.LoanRepository {
	return &LoanRepository{store: store}
}

func (r *LoanRepository) Insert(_ context.Context, l *loan.Loan) error {
	return r.store.Insert(loanToRecord(l))
}

func (r *LoanRepository) Update(_ context.Context, l *loan.Loan) error {
	return r.store.Update(loanToRecord(l))
}

func (r *LoanRepository) FindByID(_ context.Context, id uuid.UUID) (*loan.Loan, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLoanNotFound)
		}
		return nil, err
	}
	return loanFromRecord(rec), nil
}

func (r *LoanRepository) FindOpen(_ context.Context) ([]*loan.Loan, error) {
	recs := r.store.ListOpen()
	loans := make([]*loan.Loan, len(recs))
	for i, rec := range recs {
		loans[i] = loanFromRecord(rec)
	}
	return loans, nil
}

func loanToRecord(l *loan.Loan) memstore.LoanRecord {
	return memstore.LoanRecord{
		ID:         l.ID(),
		ItemID:     l.ItemID(),
		MemberID:   l.MemberID(),
		LoanedOn:   l.LoanedOn(),
		DueOn:      l.DueOn(),
		ReturnedOn: l.ReturnedOn(),
		Renewals:   l.Renewals(),
		Status:     l.Status().String(),
	}
}

func loanFromRecord(rec memstore.LoanRecord) *loan.Loan {
	return loan.ReconstructLoan(
		rec.ID, rec.ItemID, rec.MemberID,
		rec.LoanedOn, rec.DueOn, rec.ReturnedOn,
		rec.Renewals, loan.Status(rec.Status),
	)
}

type LoanViewRepository struct {
	store *memstore.LoanStore
}

func NewLoanViewRepository(store *memstore.LoanStore) queries.LoanViewRepo {
	return &LoanViewRepository{store: store}
}

func (r *LoanViewRepository) FindByID(_ context.Context, id uuid.UUID) (*queries.LoanView, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLoanNotFound)
		}
		return nil, err
	}
	return converter.LoanRecordToView(rec)
}

func (r *LoanViewRepository) FindOpen(_ context.Context) ([]*queries.LoanView, error) {
	return converter.LoanRecordsToViews(r.store.ListOpen())
}

func (r *LoanViewRepository) FindByMember(_ context.Context, memberID uuid.UUID) ([]*queries.LoanView, error) {
	return converter.LoanRecordsToViews(r.store.ListByMember(memberID))
}

func (r *LoanViewRepository) FindByItem(_ context.Context, itemID uuid.UUID) ([]*queries.LoanView, error) {
	return converter.LoanRecordsToViews(r.store.ListByItem(itemID))
}

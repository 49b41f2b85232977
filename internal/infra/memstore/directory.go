package memstore

import (
	"context"
	"sync"

	domainmember "circulation-engine/internal/domain/member"
	"circulation-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MemberRecord struct {
	ID          uuid.UUID
	Name        string
	Kind        string
	Course      *string
	StaffID     *string
	Blocked     bool
	FineTotal   decimal.Decimal
	LoanRefs    []uuid.UUID // full history, IDs only
	ActiveLoans int
}

// Directory is the reference implementation of the member directory
// collaborator. It keeps eligibility state plus ID-only loan back-references;
// the ledger owns the loan records themselves.
type Directory struct {
	mu      sync.RWMutex
	records map[uuid.UUID]MemberRecord
}

func NewDirectory() *Directory {
	return &Directory{records: make(map[uuid.UUID]MemberRecord)}
}

// Add registers a member and returns their ID.
func (d *Directory) Add(name string, kind domainmember.Kind, course, staffID *string) (uuid.UUID, error) {
	m, err := domainmember.NewMember(name, kind, course, staffID)
	if err != nil {
		return uuid.Nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.records[m.ID()] = MemberRecord{
		ID:        m.ID(),
		Name:      m.Name(),
		Kind:      m.Kind().String(),
		Course:    m.Course(),
		StaffID:   m.StaffID(),
		Blocked:   m.IsBlocked(),
		FineTotal: m.FineTotal(),
	}
	return m.ID(), nil
}

func (d *Directory) Get(_ context.Context, memberID uuid.UUID) (MemberRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec, ok := d.records[memberID]
	if !ok {
		return MemberRecord{}, infra.WrapStoreErr(infra.KindNotFound, "member not found", nil)
	}
	rec.LoanRefs = append([]uuid.UUID(nil), rec.LoanRefs...)
	return rec, nil
}

func (d *Directory) GetEligibility(_ context.Context, memberID uuid.UUID) (domainmember.EligibilitySnapshot, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec, ok := d.records[memberID]
	if !ok {
		return domainmember.EligibilitySnapshot{}, infra.WrapStoreErr(infra.KindNotFound, "member not found", nil)
	}
	return domainmember.EligibilitySnapshot{Blocked: rec.Blocked, FineTotal: rec.FineTotal}, nil
}

func (d *Directory) CountActiveLoans(_ context.Context, memberID uuid.UUID) (int, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rec, ok := d.records[memberID]
	if !ok {
		return 0, infra.WrapStoreErr(infra.KindNotFound, "member not found", nil)
	}
	return rec.ActiveLoans, nil
}

func (d *Directory) AddFine(_ context.Context, memberID uuid.UUID, amount decimal.Decimal) error {
	return d.mutate(memberID, func(rec *MemberRecord) error {
		m := domainmember.ReconstructMember(
			rec.ID, rec.Name, domainmember.Kind(rec.Kind),
			rec.Course, rec.StaffID, rec.Blocked, rec.FineTotal,
		)
		if err := m.AddFine(amount); err != nil {
			return err
		}
		rec.FineTotal = m.FineTotal()
		return nil
	})
}

func (d *Directory) RecordLoan(_ context.Context, memberID, loanID uuid.UUID) error {
	return d.mutate(memberID, func(rec *MemberRecord) error {
		rec.LoanRefs = append(rec.LoanRefs, loanID)
		rec.ActiveLoans++
		return nil
	})
}

func (d *Directory) RecordReturn(_ context.Context, memberID, _ uuid.UUID) error {
	return d.mutate(memberID, func(rec *MemberRecord) error {
		if rec.ActiveLoans > 0 {
			rec.ActiveLoans--
		}
		return nil
	})
}

// SetBlocked toggles the administrative block flag.
func (d *Directory) SetBlocked(_ context.Context, memberID uuid.UUID, blocked bool) error {
	return d.mutate(memberID, func(rec *MemberRecord) error {
		rec.Blocked = blocked
		return nil
	})
}

func (d *Directory) mutate(memberID uuid.UUID, op func(*MemberRecord) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.records[memberID]
	if !ok {
		return infra.WrapStoreErr(infra.KindNotFound, "member not found", nil)
	}
	if err := op(&rec); err != nil {
		return err
	}
	d.records[memberID] = rec
	return nil
}

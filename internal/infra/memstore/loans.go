// Package memstore holds the engine's in-memory record stores. Records are
// plain exported-field structs guarded by store-level locks; domain entities
// and read models are built from copies, never from shared pointers. Nothing
// here is process-wide state: each store is constructed by the composition
// root and passed by reference.
package memstore

import (
	"sort"
	"sync"
	"time"

	"circulation-engine/internal/infra"

	"github.com/google/uuid"
)

type LoanRecord struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	MemberID   uuid.UUID
	LoanedOn   time.Time
	DueOn      time.Time
	ReturnedOn *time.Time
	Renewals   int
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LoanStore keeps every loan ever created; returned loans stay as history.
type LoanStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]LoanRecord
}

func NewLoanStore() *LoanStore {
	return &LoanStore{records: make(map[uuid.UUID]LoanRecord)}
}

func (s *LoanStore) Insert(rec LoanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.ID]; ok {
		return infra.WrapStoreErr(infra.KindDuplicateKey, "loan already exists", nil)
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.records[rec.ID] = rec
	return nil
}

func (s *LoanStore) Update(rec LoanRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[rec.ID]
	if !ok {
		return infra.WrapStoreErr(infra.KindNotFound, "loan not found", nil)
	}
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = time.Now()
	s.records[rec.ID] = rec
	return nil
}

func (s *LoanStore) Get(id uuid.UUID) (LoanRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return LoanRecord{}, infra.WrapStoreErr(infra.KindNotFound, "loan not found", nil)
	}
	return rec, nil
}

func (s *LoanStore) ListOpen() []LoanRecord {
	return s.list(func(rec LoanRecord) bool {
		return rec.ReturnedOn == nil
	})
}

func (s *LoanStore) ListByMember(memberID uuid.UUID) []LoanRecord {
	return s.list(func(rec LoanRecord) bool {
		return rec.MemberID == memberID
	})
}

func (s *LoanStore) ListByItem(itemID uuid.UUID) []LoanRecord {
	return s.list(func(rec LoanRecord) bool {
		return rec.ItemID == itemID
	})
}

func (s *LoanStore) list(keep func(LoanRecord) bool) []LoanRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LoanRecord, 0, len(s.records))
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LoanedOn.Equal(out[j].LoanedOn) {
			return out[i].LoanedOn.Before(out[j].LoanedOn)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

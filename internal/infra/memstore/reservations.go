package memstore

import (
	"sort"
	"sync"
	"time"

	"circulation-engine/internal/domain/reservation"
	"circulation-engine/internal/infra"

	"github.com/google/uuid"
)

type ReservationRecord struct {
	ID         uuid.UUID
	ItemID     uuid.UUID
	MemberID   uuid.UUID
	ReservedOn time.Time
	ExpiresOn  time.Time
	Status     string
	Notified   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReservationStore keeps every reservation; terminal entries stay as history.
type ReservationStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]ReservationRecord
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{records: make(map[uuid.UUID]ReservationRecord)}
}

func (s *ReservationStore) Insert(rec ReservationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.ID]; ok {
		return infra.WrapStoreErr(infra.KindDuplicateKey, "reservation already exists", nil)
	}
	now := time.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.records[rec.ID] = rec
	return nil
}

func (s *ReservationStore) Update(rec ReservationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[rec.ID]
	if !ok {
		return infra.WrapStoreErr(infra.KindNotFound, "reservation not found", nil)
	}
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = time.Now()
	s.records[rec.ID] = rec
	return nil
}

func (s *ReservationStore) Get(id uuid.UUID) (ReservationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return ReservationRecord{}, infra.WrapStoreErr(infra.KindNotFound, "reservation not found", nil)
	}
	return rec, nil
}

// ListPending returns every pending reservation in queue order.
func (s *ReservationStore) ListPending() []ReservationRecord {
	return s.listQueued(func(rec ReservationRecord) bool {
		return rec.Status == reservation.StatusPending.String()
	})
}

// ListPendingByItem returns the item's queue in pickup order: reservation
// date ascending, ID string ascending on ties.
func (s *ReservationStore) ListPendingByItem(itemID uuid.UUID) []ReservationRecord {
	return s.listQueued(func(rec ReservationRecord) bool {
		return rec.Status == reservation.StatusPending.String() && rec.ItemID == itemID
	})
}

func (s *ReservationStore) ListByMember(memberID uuid.UUID) []ReservationRecord {
	return s.listQueued(func(rec ReservationRecord) bool {
		return rec.MemberID == memberID
	})
}

// GetPendingByMemberAndItem returns the member's pending reservation for the
// item, or false when none exists.
func (s *ReservationStore) GetPendingByMemberAndItem(memberID, itemID uuid.UUID) (ReservationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.Status == reservation.StatusPending.String() &&
			rec.MemberID == memberID && rec.ItemID == itemID {
			return rec, true
		}
	}
	return ReservationRecord{}, false
}

func (s *ReservationStore) listQueued(keep func(ReservationRecord) bool) []ReservationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ReservationRecord, 0, len(s.records))
	for _, rec := range s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ReservedOn.Equal(out[j].ReservedOn) {
			return out[i].ReservedOn.Before(out[j].ReservedOn)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

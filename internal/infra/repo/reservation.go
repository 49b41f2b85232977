package repo

import (
	"context"

	"circulation-engine/internal/domain/reservation"
	"circulation-engine/internal/infra"
	"circulation-engine/internal/infra/converter"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/commands"
	"circulation-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	store *memstore.ReservationStore
}

func NewReservationRepository(store *memstore.ReservationStore) commands.ReservationRepository {
	return &ReservationRepository{store: store}
}

func (r *ReservationRepository) Insert(_ context.Context, res *reservation.Reservation) error {
	return r.store.Insert(reservationToRecord(res))
}

func (r *ReservationRepository) Update(_ context.Context, res *reservation.Reservation) error {
	return r.store.Update(reservationToRecord(res))
}

func (r *ReservationRepository) FindByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return reservationFromRecord(rec), nil
}

func (r *ReservationRepository) FindPending(_ context.Context) ([]*reservation.Reservation, error) {
	return reservationsFromRecords(r.store.ListPending()), nil
}

func (r *ReservationRepository) FindPendingByItem(_ context.Context, itemID uuid.UUID) ([]*reservation.Reservation, error) {
	return reservationsFromRecords(r.store.ListPendingByItem(itemID)), nil
}

func (r *ReservationRepository) FindPendingByMemberAndItem(_ context.Context, memberID, itemID uuid.UUID) (*reservation.Reservation, error) {
	rec, ok := r.store.GetPendingByMemberAndItem(memberID, itemID)
	if !ok {
		return nil, nil
	}
	return reservationFromRecord(rec), nil
}

func reservationToRecord(res *reservation.Reservation) memstore.ReservationRecord {
	return memstore.ReservationRecord{
		ID:         res.ID(),
		ItemID:     res.ItemID(),
		MemberID:   res.MemberID(),
		ReservedOn: res.ReservedOn(),
		ExpiresOn:  res.ExpiresOn(),
		Status:     res.Status().String(),
		Notified:   res.Notified(),
	}
}

func reservationFromRecord(rec memstore.ReservationRecord) *reservation.Reservation {
	return reservation.ReconstructReservation(
		rec.ID, rec.ItemID, rec.MemberID,
		rec.ReservedOn, rec.ExpiresOn,
		reservation.Status(rec.Status), rec.Notified,
	)
}

func reservationsFromRecords(recs []memstore.ReservationRecord) []*reservation.Reservation {
	out := make([]*reservation.Reservation, len(recs))
	for i, rec := range recs {
		out[i] = reservationFromRecord(rec)
	}
	return out
}

type ReservationViewRepository struct {
	store *memstore.ReservationStore
}

func NewReservationViewRepository(store *memstore.ReservationStore) queries.ReservationViewRepo {
	return &ReservationViewRepository{store: store}
}

func (r *ReservationViewRepository) FindByID(_ context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return converter.ReservationRecordToView(rec)
}

func (r *ReservationViewRepository) FindPendingByItem(_ context.Context, itemID uuid.UUID) ([]*queries.ReservationView, error) {
	return converter.ReservationRecordsToViews(r.store.ListPendingByItem(itemID))
}

func (r *ReservationViewRepository) FindByMember(_ context.Context, memberID uuid.UUID) ([]*queries.ReservationView, error) {
	return converter.ReservationRecordsToViews(r.store.ListByMember(memberID))
}

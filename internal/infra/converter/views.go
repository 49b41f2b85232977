// Package converter maps store records onto read models. Copying through
// copier guarantees views share no memory with store state.
package converter

import (
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

func LoanRecordToView(rec memstore.LoanRecord) (*queries.LoanView, error) {
	var v queries.LoanView
	if err := copier.Copy(&v, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to convert loan record")
	}
	return &v, nil
}

func LoanRecordsToViews(recs []memstore.LoanRecord) ([]*queries.LoanView, error) {
	views := make([]*queries.LoanView, len(recs))
	for i, rec := range recs {
		v, err := LoanRecordToView(rec)
		if err != nil {
			return nil, err
		}
		views[i] = v
	}
	return views, nil
}

func ReservationRecordToView(rec memstore.ReservationRecord) (*queries.ReservationView, error) {
	var v queries.ReservationView
	if err := copier.Copy(&v, &rec); err != nil {
		return nil, errs.Wrap(err, "failed to convert reservation record")
	}
	return &v, nil
}

func ReservationRecordsToViews(recs []memstore.ReservationRecord) ([]*queries.ReservationView, error) {
	views := make([]*queries.ReservationView, len(recs))
	for i, rec := range recs {
		v, err := ReservationRecordToView(rec)
		if err != nil {
			return nil, err
		}
		views[i] = v
	}
	return views, nil
}

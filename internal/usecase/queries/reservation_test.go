//go:build unit

package queries_test

import (
	"context"
	"testing"

	"circulation-engine/internal/domain/reservation"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/infra/repo"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/queries"
	"circulation-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationQueries(t *testing.T, clk clock.Clock) (queries.ReservationQueries, *memstore.ReservationStore) {
	t.Helper()
	store := memstore.NewReservationStore()
	return queries.NewReservationQueries(repo.NewReservationViewRepository(store), clk), store
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("a lapsed pending reservation reads as expired before the sweep runs", func(t *testing.T) {
		clk := clock.NewMockClock(day(4))
		q, store := newReservationQueries(t, clk)
		b := builder.NewReservationBuilder()
		require.NoError(t, store.Insert(b.BuildRecord()))

		view, err := q.GetByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusExpired.String(), view.Status)

		rec, err := store.Get(b.ID)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending.String(), rec.Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		clk := clock.NewMockClock(day(0))
		q, _ := newReservationQueries(t, clk)

		_, err := q.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestReservationQueries_Lists(t *testing.T) {
	ctx := context.Background()

	t.Run("pending by item keeps queue order and drops lapsed entries", func(t *testing.T) {
		clk := clock.NewMockClock(day(4))
		q, store := newReservationQueries(t, clk)
		itemID := uuid.New()

		stale := builder.NewReservationBuilder().WithItemID(itemID)
		second := builder.NewReservationBuilder().WithItemID(itemID).WithReservedOn(day(2))
		third := builder.NewReservationBuilder().WithItemID(itemID).WithReservedOn(day(3))
		for _, b := range []*builder.ReservationBuilder{third, stale, second} {
			require.NoError(t, store.Insert(b.BuildRecord()))
		}

		views, err := q.ListPendingByItem(ctx, itemID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, second.ID, views[0].ID)
		assert.Equal(t, third.ID, views[1].ID)
	})

	t.Run("by member returns history with effective statuses", func(t *testing.T) {
		clk := clock.NewMockClock(day(4))
		q, store := newReservationQueries(t, clk)
		memberID := uuid.New()

		lapsed := builder.NewReservationBuilder().WithMemberID(memberID)
		fulfilled := builder.NewReservationBuilder().WithMemberID(memberID).
			WithStatus(reservation.StatusFulfilled)
		for _, b := range []*builder.ReservationBuilder{lapsed, fulfilled} {
			require.NoError(t, store.Insert(b.BuildRecord()))
		}

		views, err := q.ListByMember(ctx, memberID)

		require.NoError(t, err)
		require.Len(t, views, 2)
		got := map[uuid.UUID]string{}
		for _, v := range views {
			got[v.ID] = v.Status
		}
		assert.Equal(t, reservation.StatusExpired.String(), got[lapsed.ID])
		assert.Equal(t, reservation.StatusFulfilled.String(), got[fulfilled.ID])
	})
}

//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"circulation-engine/internal/domain/loan"
	"circulation-engine/internal/domain/policy"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/infra/repo"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/errs"
	"circulation-engine/internal/usecase/queries"
	"circulation-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return builder.BaseDay.AddDate(0, 0, n)
}

func newLoanQueries(t *testing.T, clk clock.Clock) (queries.LoanQueries, *memstore.LoanStore) {
	t.Helper()
	store := memstore.NewLoanStore()
	return queries.NewLoanQueries(repo.NewLoanViewRepository(store), clk, policy.Default()), store
}

func TestLoanQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("an open loan past its due date reads as overdue with the fine so far", func(t *testing.T) {
		clk := clock.NewMockClock(day(20))
		q, store := newLoanQueries(t, clk)
		b := builder.NewLoanBuilder()
		require.NoError(t, store.Insert(b.BuildRecord()))

		view, err := q.GetByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, loan.StatusOverdue.String(), view.Status)
		assert.True(t, view.AccruedFine.Equal(decimal.RequireFromString("3.00")),
			"accrued fine = %s", view.AccruedFine)

		// The derived status is a read-side view; the stored record is untouched.
		rec, err := store.Get(b.ID)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusActive.String(), rec.Status)
	})

	t.Run("a returned loan freezes its fine at the return date", func(t *testing.T) {
		clk := clock.NewMockClock(day(40))
		q, store := newLoanQueries(t, clk)
		b := builder.NewLoanBuilder().AsReturned(day(16))
		require.NoError(t, store.Insert(b.BuildRecord()))

		view, err := q.GetByID(ctx, b.ID)

		require.NoError(t, err)
		assert.Equal(t, loan.StatusReturned.String(), view.Status)
		assert.True(t, view.AccruedFine.Equal(decimal.RequireFromString("1.00")),
			"accrued fine = %s", view.AccruedFine)
	})

	t.Run("views are copies: mutating one never leaks back", func(t *testing.T) {
		clk := clock.NewMockClock(day(1))
		q, store := newLoanQueries(t, clk)
		b := builder.NewLoanBuilder()
		require.NoError(t, store.Insert(b.BuildRecord()))

		first, err := q.GetByID(ctx, b.ID)
		require.NoError(t, err)
		pristine := *first

		first.Status = "TAMPERED"
		first.Renewals = 99

		second, err := q.GetByID(ctx, b.ID)
		require.NoError(t, err)
		if diff := cmp.Diff(&pristine, second); diff != "" {
			t.Errorf("view changed after caller mutation (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown loan", func(t *testing.T) {
		clk := clock.NewMockClock(day(0))
		q, _ := newLoanQueries(t, clk)

		_, err := q.GetByID(ctx, uuid.New())
		require.ErrorIs(t, err, errs.ErrLoanNotFound)
	})
}

func TestLoanQueries_Lists(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(day(20))
	q, store := newLoanQueries(t, clk)

	memberID, itemID := uuid.New(), uuid.New()
	late := builder.NewLoanBuilder().WithMemberID(memberID).WithItemID(itemID)
	onTime := builder.NewLoanBuilder().WithLoanedOn(day(10))
	closed := builder.NewLoanBuilder().WithMemberID(memberID).AsReturned(day(5))
	for _, b := range []*builder.LoanBuilder{late, onTime, closed} {
		require.NoError(t, store.Insert(b.BuildRecord()))
	}

	t.Run("active includes effectively overdue loans but never returned ones", func(t *testing.T) {
		views, err := q.ListActive(ctx)
		require.NoError(t, err)

		require.Len(t, views, 2)
		got := map[uuid.UUID]string{}
		for _, v := range views {
			got[v.ID] = v.Status
		}
		assert.Equal(t, loan.StatusOverdue.String(), got[late.ID])
		assert.Equal(t, loan.StatusActive.String(), got[onTime.ID])
	})

	t.Run("overdue filters to effectively late loans only", func(t *testing.T) {
		views, err := q.ListOverdue(ctx)
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, late.ID, views[0].ID)
	})

	t.Run("by member returns the full history", func(t *testing.T) {
		views, err := q.ListByMember(ctx, memberID)
		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("by item", func(t *testing.T) {
		views, err := q.ListByItem(ctx, itemID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, late.ID, views[0].ID)
	})
}

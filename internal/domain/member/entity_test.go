//go:build unit

package member_test

import (
	"testing"

	"circulation-engine/internal/domain/member"
	"circulation-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.MemberBuilder)
	errIs  error
}

func TestNewMember(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewMemberBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Ana Souza", actual.Name())
		assert.Equal(t, member.KindStudent, actual.Kind())
		require.NotNil(t, actual.Course())
		assert.Equal(t, "Computer Science", *actual.Course())
		assert.Nil(t, actual.StaffID())
		assert.False(t, actual.IsBlocked())
		assert.True(t, actual.FineTotal().IsZero())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.MemberBuilder) { b.WithName("") },
				errIs:  member.ErrEmptyName,
			},
			{
				name:   "unknown kind",
				mutate: func(b *builder.MemberBuilder) { b.WithKind("alumni") },
				errIs:  member.ErrInvalidKind,
			},
			{
				name:   "staff member with staff ID",
				mutate: func(b *builder.MemberBuilder) { b.AsStaff("S-1042") },
			},
			{
				name:   "external member without extras",
				mutate: func(b *builder.MemberBuilder) { b.WithKind(member.KindExternal); b.Course = nil },
			},
		})
	})
}

func TestMember_AddFine(t *testing.T) {
	t.Run("accumulates onto the running total", func(t *testing.T) {
		m := builder.NewMemberBuilder().WithFineTotal("2.50").BuildReconstructed()

		require.NoError(t, m.AddFine(decimal.RequireFromString("1.00")))

		assert.True(t, m.FineTotal().Equal(decimal.RequireFromString("3.50")),
			"fine total = %s", m.FineTotal())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		m := builder.NewMemberBuilder().BuildReconstructed()

		err := m.AddFine(decimal.RequireFromString("-0.50"))

		require.ErrorIs(t, err, member.ErrNegativeFine)
		assert.True(t, m.FineTotal().IsZero())
	})
}

func TestMember_Snapshot(t *testing.T) {
	m := builder.NewMemberBuilder().WithFineTotal("4.00").BuildReconstructed()

	m.Block()
	snap := m.Snapshot()
	assert.True(t, snap.Blocked)
	assert.True(t, snap.FineTotal.Equal(decimal.RequireFromString("4.00")))

	m.Unblock()
	assert.False(t, m.Snapshot().Blocked)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewMemberBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

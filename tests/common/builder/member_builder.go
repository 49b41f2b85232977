//go:build unit

package builder

import (
	"circulation-engine/internal/domain/member"
	"circulation-engine/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MemberBuilder struct {
	ID        uuid.UUID
	Name      string
	Kind      member.Kind
	Course    *string
	StaffID   *string
	Blocked   bool
	FineTotal decimal.Decimal
}

func NewMemberBuilder() *MemberBuilder {
	course := "Computer Science"
	return &MemberBuilder{
		ID:        uuid.New(),
		Name:      "Ana Souza",
		Kind:      member.KindStudent,
		Course:    &course,
		FineTotal: decimal.Zero,
	}
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MemberBuilder) BuildDomain() (*member.Member, error) {
	return member.NewMember(b.Name, b.Kind, b.Course, b.StaffID)
}

func (b *MemberBuilder) BuildReconstructed() *member.Member {
	return member.ReconstructMember(b.ID, b.Name, b.Kind, b.Course, b.StaffID, b.Blocked, b.FineTotal)
}

func (b *MemberBuilder) BuildSnapshot() member.EligibilitySnapshot {
	return member.EligibilitySnapshot{Blocked: b.Blocked, FineTotal: b.FineTotal}
}

func (b *MemberBuilder) BuildRecord() memstore.MemberRecord {
	return memstore.MemberRecord{
		ID:        b.ID,
		Name:      b.Name,
		Kind:      b.Kind.String(),
		Course:    b.Course,
		StaffID:   b.StaffID,
		Blocked:   b.Blocked,
		FineTotal: b.FineTotal,
	}
}

// Fluent builder methods
func (b *MemberBuilder) WithName(name string) *MemberBuilder {
	b.Name = name
	return b
}

func (b *MemberBuilder) WithKind(kind member.Kind) *MemberBuilder {
	b.Kind = kind
	return b
}

func (b *MemberBuilder) AsStaff(staffID string) *MemberBuilder {
	b.Kind = member.KindStaff
	b.Course = nil
	b.StaffID = &staffID
	return b
}

func (b *MemberBuilder) AsBlocked() *MemberBuilder {
	b.Blocked = true
	return b
}

func (b *MemberBuilder) WithFineTotal(amount string) *MemberBuilder {
	b.FineTotal = decimal.RequireFromString(amount)
	return b
}

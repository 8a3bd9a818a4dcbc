package siblingdiscount_test

import (
	"context"
	"testing"
	"time"

	"go-schoolfee/internal/roster"
	rosterMock "go-schoolfee/internal/roster/mock"
	"go-schoolfee/internal/siblingdiscount"
	siblingMock "go-schoolfee/internal/siblingdiscount/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func pct(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func standardTiers() []siblingdiscount.SiblingDiscountTier {
	return []siblingdiscount.SiblingDiscountTier{
		{SiblingOrdinal: 1, DiscountPercent: pct(0)},
		{SiblingOrdinal: 2, DiscountPercent: pct(10)},
		{SiblingOrdinal: 3, DiscountPercent: pct(20)},
	}
}

func TestResolvePercent(t *testing.T) {
	base := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	first := siblingdiscount.Sibling{StudentID: uuid.New(), EnrolledAt: base}
	second := siblingdiscount.Sibling{StudentID: uuid.New(), EnrolledAt: base.AddDate(0, 1, 0)}
	third := siblingdiscount.Sibling{StudentID: uuid.New(), EnrolledAt: base.AddDate(0, 2, 0)}
	fourth := siblingdiscount.Sibling{StudentID: uuid.New(), EnrolledAt: base.AddDate(0, 3, 0)}

	family := []siblingdiscount.Sibling{fourth, second, first, third}

	tests := []struct {
		name    string
		tiers   []siblingdiscount.SiblingDiscountTier
		family  []siblingdiscount.Sibling
		student uuid.UUID
		want    decimal.Decimal
	}{
		{name: "eldest gets first tier", tiers: standardTiers(), family: family, student: first.StudentID, want: pct(0)},
		{name: "second enrolled", tiers: standardTiers(), family: family, student: second.StudentID, want: pct(10)},
		{name: "third enrolled", tiers: standardTiers(), family: family, student: third.StudentID, want: pct(20)},
		{name: "fourth falls into third-plus tier", tiers: standardTiers(), family: family, student: fourth.StudentID, want: pct(20)},
		{name: "no tiers", tiers: nil, family: family, student: third.StudentID, want: decimal.Zero},
		{name: "only child", tiers: standardTiers(), family: []siblingdiscount.Sibling{first}, student: first.StudentID, want: decimal.Zero},
		{name: "student outside family", tiers: standardTiers(), family: family, student: uuid.New(), want: decimal.Zero},
		{
			name:    "no tier at or below ordinal",
			tiers:   []siblingdiscount.SiblingDiscountTier{{SiblingOrdinal: 3, DiscountPercent: pct(15)}},
			family:  family,
			student: second.StudentID,
			want:    decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := siblingdiscount.ResolvePercent(tt.tiers, tt.family, tt.student)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestResolvePercent_TieBrokenByStudentID(t *testing.T) {
	enrolled := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	family := []siblingdiscount.Sibling{
		{StudentID: b, EnrolledAt: enrolled},
		{StudentID: a, EnrolledAt: enrolled},
	}

	assert.True(t, pct(0).Equal(siblingdiscount.ResolvePercent(standardTiers(), family, a)))
	assert.True(t, pct(10).Equal(siblingdiscount.ResolvePercent(standardTiers(), family, b)))
}

func TestResolver_ResolveStudent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := siblingMock.NewMockRepository(ctrl)
	directory := rosterMock.NewMockDirectory(ctrl)
	resolver := siblingdiscount.NewResolver(repo, directory)

	ctx := context.Background()
	schoolID := uuid.New()
	enrolled := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	family := []roster.Student{
		{ID: uuid.New(), SchoolID: schoolID, FamilyKey: "fam-1", EnrolledAt: enrolled},
		{ID: uuid.New(), SchoolID: schoolID, FamilyKey: "fam-1", EnrolledAt: enrolled.AddDate(1, 0, 0)},
		{ID: uuid.New(), SchoolID: schoolID, FamilyKey: "fam-1", EnrolledAt: enrolled.AddDate(2, 0, 0)},
	}
	student := family[2]

	t.Run("third sibling gets third tier", func(t *testing.T) {
		repo.EXPECT().FindBySchool(ctx, schoolID.String()).Return(standardTiers(), nil)
		directory.EXPECT().ListSiblings(ctx, schoolID.String(), "fam-1", "2025-2026").Return(family, nil)

		got, err := resolver.ResolveStudent(ctx, student, "2025-2026")

		assert.NoError(t, err)
		assert.True(t, pct(20).Equal(got))
	})

	t.Run("no tiers skips roster lookup", func(t *testing.T) {
		repo.EXPECT().FindBySchool(ctx, schoolID.String()).Return(nil, nil)

		got, err := resolver.ResolveStudent(ctx, student, "2025-2026")

		assert.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("resolve by id loads the student", func(t *testing.T) {
		directory.EXPECT().GetStudent(ctx, schoolID.String(), student.ID.String()).Return(&student, nil)
		repo.EXPECT().FindBySchool(ctx, schoolID.String()).Return(standardTiers(), nil)
		directory.EXPECT().ListSiblings(ctx, schoolID.String(), "fam-1", "2025-2026").Return(family, nil)

		got, err := resolver.Resolve(ctx, schoolID.String(), student.ID.String(), "2025-2026")

		assert.NoError(t, err)
		assert.True(t, pct(20).Equal(got))
	})
}

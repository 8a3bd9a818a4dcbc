package siblingdiscount_test

import (
	"context"
	"testing"

	"go-schoolfee/internal/siblingdiscount"
	siblingdiscounterrors "go-schoolfee/internal/siblingdiscount/errors"
	siblingMock "go-schoolfee/internal/siblingdiscount/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func percentPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestSiblingDiscountService_ReplaceTiers(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.NewString()

	setup := func(t *testing.T) (siblingdiscount.Service, *siblingMock.MockRepository, sqlmock.Sqlmock) {
		ctrl := gomock.NewController(t)
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		t.Cleanup(func() { db.Close() })

		repo := siblingMock.NewMockRepository(ctrl)
		resolver := siblingMock.NewMockResolver(ctrl)
		return siblingdiscount.NewService(db, repo, resolver), repo, mock
	}

	t.Run("success replaces all tiers in one transaction", func(t *testing.T) {
		svc, repo, mock := setup(t)

		mock.ExpectBegin()
		mock.ExpectCommit()
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().DeleteBySchool(ctx, schoolID).Return(nil)
		repo.EXPECT().
			CreateMany(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tiers []siblingdiscount.SiblingDiscountTier) error {
				assert.Len(t, tiers, 3)
				assert.Equal(t, 3, tiers[2].SiblingOrdinal)
				return nil
			})

		resp, err := svc.ReplaceTiers(ctx, schoolID, siblingdiscount.ReplaceTiersRequest{
			Tiers: []siblingdiscount.TierRequest{
				{SiblingOrdinal: 1, DiscountPercent: percentPtr("0")},
				{SiblingOrdinal: 2, DiscountPercent: percentPtr("10")},
				{SiblingOrdinal: 3, DiscountPercent: percentPtr("20")},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, resp, 3)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate ordinal rejected before any write", func(t *testing.T) {
		svc, _, mock := setup(t)

		_, err := svc.ReplaceTiers(ctx, schoolID, siblingdiscount.ReplaceTiersRequest{
			Tiers: []siblingdiscount.TierRequest{
				{SiblingOrdinal: 2, DiscountPercent: percentPtr("10")},
				{SiblingOrdinal: 2, DiscountPercent: percentPtr("15")},
			},
		})

		assert.ErrorIs(t, err, siblingdiscounterrors.ErrDuplicateOrdinal)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("percent above 100 rejected", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.ReplaceTiers(ctx, schoolID, siblingdiscount.ReplaceTiersRequest{
			Tiers: []siblingdiscount.TierRequest{{SiblingOrdinal: 1, DiscountPercent: percentPtr("100.5")}},
		})

		assert.ErrorIs(t, err, siblingdiscounterrors.ErrInvalidPercent)
	})
}

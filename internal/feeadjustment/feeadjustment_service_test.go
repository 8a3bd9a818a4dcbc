package feeadjustment_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-schoolfee/internal/feeadjustment"
	feeadjustmenterrors "go-schoolfee/internal/feeadjustment/errors"
	feeadjustmentMock "go-schoolfee/internal/feeadjustment/mock"
	"go-schoolfee/internal/feecatalog"
	feecatalogMock "go-schoolfee/internal/feecatalog/mock"
	siblingMock "go-schoolfee/internal/siblingdiscount/mock"
	"go-schoolfee/internal/studentfee"
	studentfeeerrors "go-schoolfee/internal/studentfee/errors"
	studentfeeMock "go-schoolfee/internal/studentfee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type deps struct {
	svc      feeadjustment.Service
	sql      sqlmock.Sqlmock
	repo     *feeadjustmentMock.MockRepository
	fees     *studentfeeMock.MockRepository
	catalog  *feecatalogMock.MockRepository
	resolver *siblingMock.MockResolver
}

func setup(t *testing.T) deps {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := deps{
		sql:      mock,
		repo:     feeadjustmentMock.NewMockRepository(ctrl),
		fees:     studentfeeMock.NewMockRepository(ctrl),
		catalog:  feecatalogMock.NewMockRepository(ctrl),
		resolver: siblingMock.NewMockResolver(ctrl),
	}
	d.svc = feeadjustment.NewService(db, d.repo, d.fees, d.catalog, d.resolver, zap.NewNop())
	return d
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// overdueFee is a $100 fee that lost its 10% discount and carries a $5 late fee.
func overdueFee(schoolID uuid.UUID) *studentfee.StudentFee {
	at := time.Date(2026, time.September, 3, 6, 0, 0, 0, time.UTC)
	fee := &studentfee.StudentFee{
		ID:                uuid.New(),
		SchoolID:          schoolID,
		StudentID:         uuid.New(),
		FeeCategoryID:     uuid.New(),
		AcademicYear:      "2026-2027",
		BaseAmount:        dec("100"),
		DiscountPercent:   dec("10"),
		DiscountForfeited: true,
		LateFeeAmount:     dec("5"),
		LateFeeAppliedAt:  &at,
		AmountPaid:        dec("20"),
		Status:            studentfee.StatusOverdue,
	}
	fee.Recalculate()
	return fee
}

func (d deps) expectAdjusted(ctx context.Context, schoolID string, fee *studentfee.StudentFee, check func(a *feeadjustment.FeeAdjustment)) {
	d.sql.ExpectBegin()
	d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
	d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID, fee.ID.String()).Return(fee, nil)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *feeadjustment.FeeAdjustment) error {
			check(a)
			return nil
		}).
		Times(1)
	d.fees.EXPECT().Update(ctx, fee).Return(nil)
	d.sql.ExpectCommit()
}

func TestFeeAdjustmentService_AdjustFee(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	adminID := uuid.NewString()

	t.Run("waive zeroes balance and keeps amount paid", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		d.expectAdjusted(ctx, schoolID.String(), fee, func(a *feeadjustment.FeeAdjustment) {
			assert.Equal(t, feeadjustment.TypeWaive, a.Type)
			assert.Equal(t, "family hardship", a.Reason)
			assert.Equal(t, adminID, a.AdminID.String())
			assert.JSONEq(t, `{"status":"overdue","balance":"85"}`, string(a.PreviousValue))
			assert.JSONEq(t, `{"status":"waived","balance":"0"}`, string(a.NewValue))
		})

		res, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeWaive,
			Reason: "  family hardship ",
		})

		assert.NoError(t, err)
		assert.Equal(t, studentfee.StatusWaived, res.Fee.Status)
		assert.True(t, res.Fee.Balance.IsZero())
		assert.True(t, res.Fee.AmountPaid.Equal(dec("20")))
		assert.Equal(t, feeadjustment.TypeWaive, res.Adjustment.Type)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("empty reason rejected before any read", func(t *testing.T) {
		d := setup(t)

		_, err := d.svc.AdjustFee(ctx, schoolID.String(), uuid.NewString(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeWaive,
			Reason: "   ",
		})

		assert.ErrorIs(t, err, feeadjustmenterrors.ErrReasonRequired)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("remove late fee keeps the fee overdue", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		d.expectAdjusted(ctx, schoolID.String(), fee, func(a *feeadjustment.FeeAdjustment) {
			assert.JSONEq(t, `{"late_fee_amount":"5"}`, string(a.PreviousValue))
			assert.JSONEq(t, `{"late_fee_amount":"0"}`, string(a.NewValue))
		})

		res, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeRemoveLateFee,
			Reason: "bank delay",
		})

		assert.NoError(t, err)
		assert.True(t, res.Fee.FinalAmount.Equal(dec("100")))
		assert.True(t, res.Fee.Balance.Equal(dec("80")))
		assert.Equal(t, studentfee.StatusOverdue, res.Fee.Status)
	})

	t.Run("custom discount leaves forfeiture flag alone", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		d.expectAdjusted(ctx, schoolID.String(), fee, func(a *feeadjustment.FeeAdjustment) {
			assert.Equal(t, feeadjustment.TypeCustomDiscount, a.Type)
		})
		discount := dec("25")

		res, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:           feeadjustment.TypeCustomDiscount,
			CustomDiscount: &discount,
			Reason:         "scholarship",
		})

		assert.NoError(t, err)
		assert.True(t, res.Fee.DiscountAmount.Equal(dec("25")))
		assert.True(t, res.Fee.DiscountPercent.Equal(dec("25")))
		assert.True(t, res.Fee.DiscountForfeited)
		assert.True(t, res.Fee.FinalAmount.Equal(dec("80")))
	})

	t.Run("custom discount above base rejected", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		discount := dec("150")

		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.sql.ExpectRollback()

		_, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:           feeadjustment.TypeCustomDiscount,
			CustomDiscount: &discount,
			Reason:         "typo",
		})

		assert.ErrorIs(t, err, feeadjustmenterrors.ErrInvalidCustomDiscount)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("restore discount recomputes through the resolver", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)

		d.catalog.EXPECT().
			FindCategoryByID(ctx, schoolID.String(), fee.FeeCategoryID.String()).
			Return(&feecatalog.FeeCategory{ID: fee.FeeCategoryID, IsDiscountable: true, IsActive: true}, nil)
		d.resolver.EXPECT().Resolve(ctx, schoolID.String(), fee.StudentID.String(), "2026-2027").Return(dec("10"), nil)
		d.expectAdjusted(ctx, schoolID.String(), fee, func(a *feeadjustment.FeeAdjustment) {
			var next map[string]any
			assert.NoError(t, json.Unmarshal(a.NewValue, &next))
			assert.Equal(t, false, next["discount_forfeited"])
		})

		res, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeRestoreDiscount,
			Reason: "paid late with approval",
		})

		assert.NoError(t, err)
		assert.False(t, res.Fee.DiscountForfeited)
		assert.True(t, res.Fee.DiscountAmount.Equal(dec("10")))
		assert.True(t, res.Fee.FinalAmount.Equal(dec("95")))
	})

	t.Run("restore discount on a settled fee leaves a credit balance", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		fee.AmountPaid = dec("105")
		fee.Recalculate()
		assert.Equal(t, studentfee.StatusPaid, fee.Status)

		d.catalog.EXPECT().
			FindCategoryByID(ctx, schoolID.String(), fee.FeeCategoryID.String()).
			Return(&feecatalog.FeeCategory{ID: fee.FeeCategoryID, IsDiscountable: true, IsActive: true}, nil)
		d.resolver.EXPECT().Resolve(ctx, schoolID.String(), fee.StudentID.String(), "2026-2027").Return(dec("10"), nil)
		d.expectAdjusted(ctx, schoolID.String(), fee, func(*feeadjustment.FeeAdjustment) {})

		res, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeRestoreDiscount,
			Reason: "discount reinstated after settlement",
		})

		assert.NoError(t, err)
		assert.True(t, res.Fee.FinalAmount.Equal(dec("95")))
		assert.True(t, res.Fee.AmountPaid.Equal(dec("105")))
		assert.True(t, res.Fee.Balance.Equal(dec("-10")))
		assert.Equal(t, studentfee.StatusPaid, res.Fee.Status)
	})

	t.Run("restore discount without forfeiture is invalid state", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		fee.DiscountForfeited = false

		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.sql.ExpectRollback()

		_, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeRestoreDiscount,
			Reason: "retry",
		})

		assert.ErrorIs(t, err, feeadjustmenterrors.ErrDiscountNotForfeited)
	})

	t.Run("waived fee cannot be adjusted", func(t *testing.T) {
		d := setup(t)
		fee := overdueFee(schoolID)
		fee.Status = studentfee.StatusWaived
		fee.Recalculate()

		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.sql.ExpectRollback()

		_, err := d.svc.AdjustFee(ctx, schoolID.String(), fee.ID.String(), adminID, feeadjustment.AdjustRequest{
			Type:   feeadjustment.TypeRemoveLateFee,
			Reason: "again",
		})

		assert.ErrorIs(t, err, studentfeeerrors.ErrFeeWaived)
	})
}

func TestFeeAdjustmentService_GetFeeAdjustments(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	d := setup(t)
	fee := overdueFee(schoolID)

	d.fees.EXPECT().FindByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
	d.repo.EXPECT().ListByFee(ctx, schoolID.String(), fee.ID.String()).Return([]feeadjustment.FeeAdjustment{
		{ID: uuid.New(), StudentFeeID: fee.ID, Type: feeadjustment.TypeRemoveLateFee, Reason: "first"},
		{ID: uuid.New(), StudentFeeID: fee.ID, Type: feeadjustment.TypeWaive, Reason: "second"},
	}, nil)

	resp, err := d.svc.GetFeeAdjustments(ctx, schoolID.String(), fee.ID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "first", resp[0].Reason)
	assert.Nil(t, resp[1].AdminID)
}

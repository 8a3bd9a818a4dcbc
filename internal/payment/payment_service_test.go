package payment_test

import (
	"context"
	"testing"
	"time"

	kafkaMock "go-schoolfee/internal/messaging/kafka/mock"
	"go-schoolfee/internal/payment"
	paymenterrors "go-schoolfee/internal/payment/errors"
	paymentMock "go-schoolfee/internal/payment/mock"
	counterMock "go-schoolfee/internal/shared/counter/mock"
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

var fixedNow = time.Date(2025, 12, 31, 23, 30, 0, 0, time.UTC)

type deps struct {
	svc      payment.Service
	sql      sqlmock.Sqlmock
	repo     *paymentMock.MockRepository
	fees     *studentfeeMock.MockRepository
	outbox   *kafkaMock.MockOutboxRepository
	receipts *counterMock.MockRepository
}

func setup(t *testing.T, tolerance string) deps {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := deps{
		sql:      mock,
		repo:     paymentMock.NewMockRepository(ctrl),
		fees:     studentfeeMock.NewMockRepository(ctrl),
		outbox:   kafkaMock.NewMockOutboxRepository(ctrl),
		receipts: counterMock.NewMockRepository(ctrl),
	}
	d.svc = payment.NewService(db, d.repo, d.fees, d.outbox, d.receipts, payment.Options{
		OverpaymentTolerance: decimal.RequireFromString(tolerance),
		Now:                  func() time.Time { return fixedNow },
	}, zap.NewNop())
	return d
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

// discountedFee is a $100 fee with a 10% sibling discount.
func discountedFee(schoolID uuid.UUID) *studentfee.StudentFee {
	fee := &studentfee.StudentFee{
		ID:              uuid.New(),
		SchoolID:        schoolID,
		StudentID:       uuid.New(),
		BaseAmount:      dec("100"),
		DiscountPercent: dec("10"),
		DiscountAmount:  dec("10"),
		Status:          studentfee.StatusPending,
	}
	fee.Recalculate()
	return fee
}

func (d deps) expectRecord(ctx context.Context, schoolID string, fee *studentfee.StudentFee) {
	d.sql.ExpectBegin()
	d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
	d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID, fee.ID.String()).Return(fee, nil)
	d.receipts.EXPECT().WithTx(gomock.Any()).Return(d.receipts)
	d.receipts.EXPECT().NextValue(ctx, schoolID, "payment_receipt:2025").Return(int64(7), nil)
	d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
	d.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.fees.EXPECT().Update(ctx, fee).Return(nil)
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.sql.ExpectCommit()
}

func TestPaymentService_RecordPayment(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()
	actorID := uuid.NewString()

	t.Run("full balance marks fee paid", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		assert.True(t, fee.Balance.Equal(dec("90")))
		d.expectRecord(ctx, schoolID.String(), fee)

		resp, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  fee.ID.String(),
			Amount:        decPtr("90"),
			PaymentMethod: "cash",
		})

		assert.NoError(t, err)
		assert.Equal(t, studentfee.StatusPaid, resp.Fee.Status)
		assert.True(t, resp.Fee.Balance.IsZero())
		assert.True(t, resp.Fee.AmountPaid.Equal(dec("90")))
		assert.Equal(t, actorID, *resp.Payment.ReceivedBy)
		assert.Equal(t, "RCPT-2025-000007", resp.Payment.ReceiptNumber)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("half balance marks fee partial", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		d.expectRecord(ctx, schoolID.String(), fee)

		resp, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  fee.ID.String(),
			Amount:        decPtr("45"),
			PaymentMethod: "bank_transfer",
		})

		assert.NoError(t, err)
		assert.Equal(t, studentfee.StatusPartial, resp.Fee.Status)
		assert.True(t, resp.Fee.Balance.Equal(dec("45")))
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("non-positive amount rejected before any read", func(t *testing.T) {
		d := setup(t, "0")

		_, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  uuid.NewString(),
			Amount:        decPtr("0"),
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, paymenterrors.ErrInvalidAmount)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("amount rounding to zero cents rejected before any read", func(t *testing.T) {
		d := setup(t, "0")

		_, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  uuid.NewString(),
			Amount:        decPtr("0.004"),
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, paymenterrors.ErrInvalidAmount)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("amount is stored rounded to cents", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		d.expectRecord(ctx, schoolID.String(), fee)

		resp, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  fee.ID.String(),
			Amount:        decPtr("10.005"),
			PaymentMethod: "cash",
		})

		assert.NoError(t, err)
		assert.True(t, resp.Payment.Amount.Equal(dec("10.01")))
		assert.True(t, resp.Fee.Balance.Equal(dec("79.99")))
	})

	t.Run("overpayment rejected without tolerance", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)

		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.sql.ExpectRollback()

		_, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  fee.ID.String(),
			Amount:        decPtr("90.01"),
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, paymenterrors.ErrOverpayment)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("overpayment within tolerance accepted", func(t *testing.T) {
		d := setup(t, "1")
		fee := discountedFee(schoolID)
		d.expectRecord(ctx, schoolID.String(), fee)

		resp, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  fee.ID.String(),
			Amount:        decPtr("90.50"),
			PaymentMethod: "cash",
		})

		assert.NoError(t, err)
		assert.Equal(t, studentfee.StatusPaid, resp.Fee.Status)
		assert.True(t, resp.Fee.Balance.Equal(dec("-0.5")))
	})

	t.Run("waived fee rejected", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		fee.Status = studentfee.StatusWaived
		fee.Recalculate()

		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.sql.ExpectRollback()

		_, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  fee.ID.String(),
			Amount:        decPtr("10"),
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, studentfeeerrors.ErrFeeWaived)
	})

	t.Run("unknown fee", func(t *testing.T) {
		d := setup(t, "0")
		feeID := uuid.NewString()

		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), feeID).Return(nil, studentfeeerrors.ErrFeeNotFound)
		d.sql.ExpectRollback()

		_, err := d.svc.RecordPayment(ctx, schoolID.String(), actorID, payment.RecordPaymentRequest{
			StudentFeeID:  feeID,
			Amount:        decPtr("10"),
			PaymentMethod: "cash",
		})

		assert.ErrorIs(t, err, studentfeeerrors.ErrFeeNotFound)
	})
}

func TestPaymentService_DeletePayment(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	t.Run("reverts fee to its pre-payment state", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		before := *fee

		fee.AmountPaid = dec("45")
		fee.Recalculate()
		assert.Equal(t, studentfee.StatusPartial, fee.Status)

		p := &payment.Payment{ID: uuid.New(), SchoolID: schoolID, StudentFeeID: fee.ID, Amount: dec("45"), PaymentMethod: "cash"}

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByIDAndSchool(ctx, schoolID.String(), p.ID.String()).Return(p, nil)
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.repo.EXPECT().Delete(ctx, schoolID.String(), p.ID.String()).Return(nil)
		d.repo.EXPECT().SumByFee(ctx, fee.ID.String()).Return(decimal.Zero, nil)
		d.fees.EXPECT().Update(ctx, fee).Return(nil)
		d.sql.ExpectCommit()

		resp, err := d.svc.DeletePayment(ctx, schoolID.String(), p.ID.String())

		assert.NoError(t, err)
		assert.Nil(t, resp.Payment)
		assert.Equal(t, before.Status, resp.Fee.Status)
		assert.True(t, before.Balance.Equal(resp.Fee.Balance))
		assert.True(t, resp.Fee.AmountPaid.IsZero())
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("payment of another school is not found", func(t *testing.T) {
		d := setup(t, "0")
		id := uuid.NewString()

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByIDAndSchool(ctx, schoolID.String(), id).Return(nil, paymenterrors.ErrPaymentNotFound)
		d.sql.ExpectRollback()

		_, err := d.svc.DeletePayment(ctx, schoolID.String(), id)

		assert.ErrorIs(t, err, paymenterrors.ErrPaymentNotFound)
	})
}

func TestPaymentService_UpdatePayment(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	t.Run("amount change recomputes from the ledger", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		fee.AmountPaid = dec("45")
		fee.Recalculate()
		p := &payment.Payment{ID: uuid.New(), SchoolID: schoolID, StudentFeeID: fee.ID, Amount: dec("45"), PaymentMethod: "cash"}

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByIDAndSchool(ctx, schoolID.String(), p.ID.String()).Return(p, nil)
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.repo.EXPECT().Update(ctx, p).Return(nil)
		d.repo.EXPECT().SumByFee(ctx, fee.ID.String()).Return(dec("90"), nil)
		d.fees.EXPECT().Update(ctx, fee).Return(nil)
		d.sql.ExpectCommit()

		resp, err := d.svc.UpdatePayment(ctx, schoolID.String(), p.ID.String(), payment.UpdatePaymentRequest{Amount: decPtr("90")})

		assert.NoError(t, err)
		assert.True(t, resp.Payment.Amount.Equal(dec("90")))
		assert.Equal(t, studentfee.StatusPaid, resp.Fee.Status)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("ledger above final amount rolls back", func(t *testing.T) {
		d := setup(t, "0")
		fee := discountedFee(schoolID)
		p := &payment.Payment{ID: uuid.New(), SchoolID: schoolID, StudentFeeID: fee.ID, Amount: dec("45"), PaymentMethod: "cash"}

		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().FindByIDAndSchool(ctx, schoolID.String(), p.ID.String()).Return(p, nil)
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), fee.ID.String()).Return(fee, nil)
		d.repo.EXPECT().Update(ctx, p).Return(nil)
		d.repo.EXPECT().SumByFee(ctx, fee.ID.String()).Return(dec("120"), nil)
		d.sql.ExpectRollback()

		_, err := d.svc.UpdatePayment(ctx, schoolID.String(), p.ID.String(), payment.UpdatePaymentRequest{Amount: decPtr("120")})

		assert.ErrorIs(t, err, paymenterrors.ErrOverpayment)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("amount rounding to zero cents rejected before any read", func(t *testing.T) {
		d := setup(t, "0")

		_, err := d.svc.UpdatePayment(ctx, schoolID.String(), uuid.NewString(), payment.UpdatePaymentRequest{Amount: decPtr("0.004")})

		assert.ErrorIs(t, err, paymenterrors.ErrInvalidAmount)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})
}

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "RCPT-2026-000042", payment.ReceiptNumber(2026, 42))
	assert.Equal(t, "RCPT-2026-1234567", payment.ReceiptNumber(2026, 1234567))
}

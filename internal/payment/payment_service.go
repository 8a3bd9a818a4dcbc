package payment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go-schoolfee/internal/events"
	"go-schoolfee/internal/messaging/kafka"
	paymenterrors "go-schoolfee/internal/payment/errors"
	"go-schoolfee/internal/shared/contextutil"
	"go-schoolfee/internal/shared/counter"
	"go-schoolfee/internal/studentfee"
	studentfeeerrors "go-schoolfee/internal/studentfee/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payment_service.go -destination=mock/payment_service_mock.go -package=mock
type Service interface {
	RecordPayment(ctx context.Context, schoolID, actorID string, req RecordPaymentRequest) (LedgerResponse, error)
	UpdatePayment(ctx context.Context, schoolID, id string, req UpdatePaymentRequest) (LedgerResponse, error)
	DeletePayment(ctx context.Context, schoolID, id string) (LedgerResponse, error)
	GetPaymentsByFee(ctx context.Context, schoolID, feeID string) ([]PaymentResponse, error)
}

// Options tune the ledger. OverpaymentTolerance is how far a payment may take
// the balance below zero; zero disallows overpayment.
type Options struct {
	OverpaymentTolerance decimal.Decimal
	Now                  func() time.Time
}

type service struct {
	db       *sql.DB
	repo     Repository
	fees     studentfee.Repository
	outbox   kafka.OutboxRepository
	receipts counter.Repository
	opts     Options
	logger   *zap.Logger
}

// ReceiptNumber formats the n-th receipt a school issued in year.
func ReceiptNumber(year int, n int64) string {
	return fmt.Sprintf("RCPT-%d-%06d", year, n)
}

func receiptCounter(year int) string {
	return fmt.Sprintf("payment_receipt:%d", year)
}

func NewService(
	db *sql.DB,
	repo Repository,
	fees studentfee.Repository,
	outbox kafka.OutboxRepository,
	receipts counter.Repository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.service")
	}
	if opts.OverpaymentTolerance.IsNegative() {
		opts.OverpaymentTolerance = decimal.Zero
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{db: db, repo: repo, fees: fees, outbox: outbox, receipts: receipts, opts: opts, logger: l}
}

func (s *service) RecordPayment(ctx context.Context, schoolID, actorID string, req RecordPaymentRequest) (LedgerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("record payment requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("student_fee_id", req.StudentFeeID),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return LedgerResponse{}, paymenterrors.ErrInvalidSchoolID
	}
	feeUUID, err := uuid.Parse(req.StudentFeeID)
	if err != nil {
		return LedgerResponse{}, studentfeeerrors.ErrInvalidFeeID
	}
	amount, ok := roundedAmount(req.Amount)
	if !ok {
		s.logger.Warn("record payment rejected: non-positive amount", zap.String("request_id", rid))
		return LedgerResponse{}, paymenterrors.ErrInvalidAmount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record payment begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}
	defer tx.Rollback()

	fees := s.fees.WithTx(tx)
	fee, err := fees.LockByIDAndSchool(ctx, schoolID, req.StudentFeeID)
	if err != nil {
		return LedgerResponse{}, err
	}
	if fee.IsWaived() {
		s.logger.Warn("record payment rejected: fee waived",
			zap.String("request_id", rid),
			zap.String("student_fee_id", req.StudentFeeID),
		)
		return LedgerResponse{}, studentfeeerrors.ErrFeeWaived
	}
	if amount.GreaterThan(fee.Balance.Add(s.opts.OverpaymentTolerance)) {
		s.logger.Warn("record payment rejected: overpayment",
			zap.String("request_id", rid),
			zap.String("student_fee_id", req.StudentFeeID),
			zap.String("amount", amount.String()),
			zap.String("balance", fee.Balance.String()),
		)
		return LedgerResponse{}, paymenterrors.ErrOverpayment
	}

	year := s.opts.Now().UTC().Year()
	seq, err := s.receipts.WithTx(tx).NextValue(ctx, schoolID, receiptCounter(year))
	if err != nil {
		s.logger.Error("record payment receipt number failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	p := &Payment{
		ID:               uuid.New(),
		SchoolID:         schoolUUID,
		StudentFeeID:     feeUUID,
		ReceiptNumber:    ReceiptNumber(year, seq),
		Amount:           amount,
		PaymentMethod:    req.PaymentMethod,
		PaymentReference: trimmed(req.PaymentReference),
		ReceivedBy:       parseActor(actorID),
		Notes:            trimmed(req.Notes),
	}
	if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
		s.logger.Error("record payment persist failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	fee.AmountPaid = fee.AmountPaid.Add(amount)
	fee.Recalculate()
	if err := fees.Update(ctx, fee); err != nil {
		s.logger.Error("record payment update fee failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	if err := s.enqueueRecorded(ctx, tx, *p, *fee, actorID); err != nil {
		s.logger.Error("record payment enqueue event failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record payment commit failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	s.logger.Info("record payment success",
		zap.String("request_id", rid),
		zap.String("payment_id", p.ID.String()),
		zap.String("receipt_number", p.ReceiptNumber),
		zap.String("student_fee_id", req.StudentFeeID),
		zap.String("fee_status", fee.Status),
	)
	resp := ToResponse(*p)
	return LedgerResponse{Payment: &resp, Fee: studentfee.ToResponse(*fee)}, nil
}

func (s *service) UpdatePayment(ctx context.Context, schoolID, id string, req UpdatePaymentRequest) (LedgerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update payment requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("payment_id", id),
	)

	var amount decimal.Decimal
	if req.Amount != nil {
		var ok bool
		if amount, ok = roundedAmount(req.Amount); !ok {
			return LedgerResponse{}, paymenterrors.ErrInvalidAmount
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update payment begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	p, err := repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return LedgerResponse{}, err
	}

	fees := s.fees.WithTx(tx)
	fee, err := fees.LockByIDAndSchool(ctx, schoolID, p.StudentFeeID.String())
	if err != nil {
		return LedgerResponse{}, err
	}
	if fee.IsWaived() {
		return LedgerResponse{}, studentfeeerrors.ErrFeeWaived
	}

	if req.Amount != nil {
		p.Amount = amount
	}
	if req.PaymentMethod != "" {
		p.PaymentMethod = req.PaymentMethod
	}
	if req.PaymentReference != nil {
		p.PaymentReference = trimmed(req.PaymentReference)
	}
	if req.Notes != nil {
		p.Notes = trimmed(req.Notes)
	}
	if err := repo.Update(ctx, p); err != nil {
		s.logger.Error("update payment persist failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	if err := s.resync(ctx, repo, fees, fee); err != nil {
		return LedgerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update payment commit failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	s.logger.Info("update payment success",
		zap.String("request_id", rid),
		zap.String("payment_id", id),
		zap.String("fee_status", fee.Status),
	)
	resp := ToResponse(*p)
	return LedgerResponse{Payment: &resp, Fee: studentfee.ToResponse(*fee)}, nil
}

func (s *service) DeletePayment(ctx context.Context, schoolID, id string) (LedgerResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete payment requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("payment_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete payment begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}
	defer tx.Rollback()

	repo := s.repo.WithTx(tx)
	p, err := repo.FindByIDAndSchool(ctx, schoolID, id)
	if err != nil {
		return LedgerResponse{}, err
	}

	fees := s.fees.WithTx(tx)
	fee, err := fees.LockByIDAndSchool(ctx, schoolID, p.StudentFeeID.String())
	if err != nil {
		return LedgerResponse{}, err
	}
	if fee.IsWaived() {
		return LedgerResponse{}, studentfeeerrors.ErrFeeWaived
	}

	if err := repo.Delete(ctx, schoolID, id); err != nil {
		s.logger.Error("delete payment persist failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	if err := s.resync(ctx, repo, fees, fee); err != nil {
		return LedgerResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete payment commit failed", zap.String("request_id", rid), zap.Error(err))
		return LedgerResponse{}, err
	}

	s.logger.Info("delete payment success",
		zap.String("request_id", rid),
		zap.String("payment_id", id),
		zap.String("fee_status", fee.Status),
	)
	return LedgerResponse{Fee: studentfee.ToResponse(*fee)}, nil
}

func (s *service) GetPaymentsByFee(ctx context.Context, schoolID, feeID string) ([]PaymentResponse, error) {
	if _, err := s.fees.FindByIDAndSchool(ctx, schoolID, feeID); err != nil {
		return nil, err
	}

	payments, err := s.repo.ListByFee(ctx, schoolID, feeID)
	if err != nil {
		s.logger.Error("list payments failed", zap.String("student_fee_id", feeID), zap.Error(err))
		return nil, err
	}

	resp := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = ToResponse(p)
	}
	return resp, nil
}

// resync recomputes amount_paid from the stored payments and derives the fee
// state from scratch. The fee must already be locked by the caller.
func (s *service) resync(ctx context.Context, repo Repository, fees studentfee.Repository, fee *studentfee.StudentFee) error {
	total, err := repo.SumByFee(ctx, fee.ID.String())
	if err != nil {
		return err
	}
	if total.GreaterThan(fee.FinalAmount.Add(s.opts.OverpaymentTolerance)) {
		return paymenterrors.ErrOverpayment
	}

	fee.AmountPaid = total
	fee.Recalculate()
	return fees.Update(ctx, fee)
}

func (s *service) enqueueRecorded(ctx context.Context, tx *sql.Tx, p Payment, fee studentfee.StudentFee, actorID string) error {
	payload := events.PaymentRecordedEvent{
		EventType:     "payment_recorded",
		RequestID:     contextutil.GetRequestID(ctx),
		PaymentID:     p.ID.String(),
		ReceiptNumber: p.ReceiptNumber,
		FeeID:         fee.ID.String(),
		SchoolID:      fee.SchoolID.String(),
		StudentID:     fee.StudentID.String(),
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Balance:       fee.Balance,
		FeeStatus:     fee.Status,
		ReceivedBy:    actorID,
		OccurredAt:    s.opts.Now().UTC(),
	}
	event, err := kafka.NewEvent(ctx, payload.SchoolID, "student_fee", payload.FeeID, payload.EventType, events.PaymentRecordedTopic, payload)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

// roundedAmount rounds to cents before the sign check, so 0.004 is rejected
// rather than stored as a zero payment.
func roundedAmount(v *decimal.Decimal) (decimal.Decimal, bool) {
	if v == nil {
		return decimal.Zero, false
	}
	amount := v.Round(2)
	return amount, amount.IsPositive()
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}

package feeadjustment

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"go-schoolfee/internal/feecatalog"
	feeadjustmenterrors "go-schoolfee/internal/feeadjustment/errors"
	"go-schoolfee/internal/shared/contextutil"
	"go-schoolfee/internal/shared/money"
	"go-schoolfee/internal/siblingdiscount"
	"go-schoolfee/internal/studentfee"
	studentfeeerrors "go-schoolfee/internal/studentfee/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

//go:generate mockgen -source=feeadjustment_service.go -destination=mock/feeadjustment_service_mock.go -package=mock
type Service interface {
	AdjustFee(ctx context.Context, schoolID, feeID, adminID string, req AdjustRequest) (AdjustResult, error)
	GetFeeAdjustments(ctx context.Context, schoolID, feeID string) ([]AdjustmentResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	fees     studentfee.Repository
	catalog  feecatalog.Repository
	resolver siblingdiscount.Resolver
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	fees studentfee.Repository,
	catalog feecatalog.Repository,
	resolver siblingdiscount.Resolver,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("feeadjustment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feeadjustment.service")
	}
	return &service{db: db, repo: repo, fees: fees, catalog: catalog, resolver: resolver, logger: l}
}

func (s *service) AdjustFee(ctx context.Context, schoolID, feeID, adminID string, req AdjustRequest) (AdjustResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("adjust fee requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("student_fee_id", feeID),
		zap.String("type", req.Type),
	)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		s.logger.Warn("adjust fee rejected: missing reason", zap.String("request_id", rid), zap.String("student_fee_id", feeID))
		return AdjustResult{}, feeadjustmenterrors.ErrReasonRequired
	}
	if err := validateRequest(req); err != nil {
		return AdjustResult{}, err
	}

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return AdjustResult{}, feeadjustmenterrors.ErrInvalidSchoolID
	}
	if _, err := uuid.Parse(feeID); err != nil {
		return AdjustResult{}, studentfeeerrors.ErrInvalidFeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("adjust fee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AdjustResult{}, err
	}
	defer tx.Rollback()

	fees := s.fees.WithTx(tx)
	fee, err := fees.LockByIDAndSchool(ctx, schoolID, feeID)
	if err != nil {
		return AdjustResult{}, err
	}
	if fee.IsWaived() {
		s.logger.Warn("adjust fee rejected: fee waived", zap.String("request_id", rid), zap.String("student_fee_id", feeID))
		return AdjustResult{}, studentfeeerrors.ErrFeeWaived
	}

	before, after, err := s.apply(ctx, fee, req)
	if err != nil {
		return AdjustResult{}, err
	}

	adjustment := &FeeAdjustment{
		ID:            uuid.New(),
		SchoolID:      schoolUUID,
		StudentFeeID:  fee.ID,
		Type:          req.Type,
		AdminID:       parseActor(adminID),
		Reason:        reason,
		PreviousValue: before,
		NewValue:      after,
	}
	if err := s.repo.WithTx(tx).Create(ctx, adjustment); err != nil {
		s.logger.Error("adjust fee persist adjustment failed", zap.String("request_id", rid), zap.Error(err))
		return AdjustResult{}, err
	}

	if err := fees.Update(ctx, fee); err != nil {
		s.logger.Error("adjust fee update fee failed", zap.String("request_id", rid), zap.Error(err))
		return AdjustResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("adjust fee commit failed", zap.String("request_id", rid), zap.Error(err))
		return AdjustResult{}, err
	}

	s.logger.Info("adjust fee success",
		zap.String("request_id", rid),
		zap.String("student_fee_id", feeID),
		zap.String("type", req.Type),
		zap.String("admin_id", adminID),
		zap.String("status", fee.Status),
	)
	return AdjustResult{
		Fee:        studentfee.ToResponse(*fee),
		Adjustment: mapAdjustmentResponse(*adjustment),
	}, nil
}

// apply mutates fee for req and returns JSON snapshots of the touched fields
// before and after.
func (s *service) apply(ctx context.Context, fee *studentfee.StudentFee, req AdjustRequest) (datatypes.JSON, datatypes.JSON, error) {
	var before, after map[string]any

	switch req.Type {
	case TypeRemoveLateFee:
		before = map[string]any{"late_fee_amount": fee.LateFeeAmount}
		fee.LateFeeAmount = decimal.Zero
		if req.NewLateFee != nil {
			fee.LateFeeAmount = money.Round2(*req.NewLateFee)
		}
		fee.Recalculate()
		after = map[string]any{"late_fee_amount": fee.LateFeeAmount}

	case TypeCustomDiscount:
		value := money.Round2(*req.CustomDiscount)
		if value.GreaterThan(fee.BaseAmount) {
			return nil, nil, feeadjustmenterrors.ErrInvalidCustomDiscount
		}
		before = map[string]any{"discount_amount": fee.DiscountAmount, "discount_percent": fee.DiscountPercent}
		fee.DiscountAmount = value
		fee.DiscountPercent = decimal.Zero
		if fee.BaseAmount.IsPositive() {
			fee.DiscountPercent = money.Round2(value.Mul(decimal.NewFromInt(100)).Div(fee.BaseAmount))
		}
		fee.Recalculate()
		after = map[string]any{"discount_amount": fee.DiscountAmount, "discount_percent": fee.DiscountPercent}

	case TypeWaive:
		before = map[string]any{"status": fee.Status, "balance": fee.Balance}
		fee.Status = studentfee.StatusWaived
		fee.Recalculate()
		after = map[string]any{"status": fee.Status, "balance": fee.Balance}

	case TypeRestoreDiscount:
		if !fee.DiscountForfeited {
			return nil, nil, feeadjustmenterrors.ErrDiscountNotForfeited
		}
		percent, err := s.restoredPercent(ctx, fee)
		if err != nil {
			return nil, nil, err
		}
		before = map[string]any{"discount_forfeited": true, "discount_amount": fee.DiscountAmount}
		fee.DiscountForfeited = false
		fee.DiscountPercent = percent
		fee.DiscountAmount = money.PercentOf(fee.BaseAmount, percent)
		fee.Recalculate()
		after = map[string]any{"discount_forfeited": false, "discount_amount": fee.DiscountAmount}

	default:
		return nil, nil, feeadjustmenterrors.ErrInvalidType
	}

	prev, err := json.Marshal(before)
	if err != nil {
		return nil, nil, err
	}
	next, err := json.Marshal(after)
	if err != nil {
		return nil, nil, err
	}
	return datatypes.JSON(prev), datatypes.JSON(next), nil
}

// restoredPercent is the sibling percent the fee would carry today; zero for
// categories that are not discountable.
func (s *service) restoredPercent(ctx context.Context, fee *studentfee.StudentFee) (decimal.Decimal, error) {
	schoolID := fee.SchoolID.String()

	category, err := s.catalog.FindCategoryByID(ctx, schoolID, fee.FeeCategoryID.String())
	if err != nil {
		return decimal.Zero, err
	}
	if !category.IsDiscountable {
		return decimal.Zero, nil
	}
	return s.resolver.Resolve(ctx, schoolID, fee.StudentID.String(), fee.AcademicYear)
}

func (s *service) GetFeeAdjustments(ctx context.Context, schoolID, feeID string) ([]AdjustmentResponse, error) {
	if _, err := s.fees.FindByIDAndSchool(ctx, schoolID, feeID); err != nil {
		return nil, err
	}

	adjustments, err := s.repo.ListByFee(ctx, schoolID, feeID)
	if err != nil {
		s.logger.Error("list fee adjustments failed", zap.String("student_fee_id", feeID), zap.Error(err))
		return nil, err
	}

	resp := make([]AdjustmentResponse, len(adjustments))
	for i, a := range adjustments {
		resp[i] = mapAdjustmentResponse(a)
	}
	return resp, nil
}

func validateRequest(req AdjustRequest) error {
	if !ValidType(req.Type) {
		return feeadjustmenterrors.ErrInvalidType
	}
	switch req.Type {
	case TypeRemoveLateFee:
		if req.NewLateFee != nil && req.NewLateFee.IsNegative() {
			return feeadjustmenterrors.ErrInvalidNewLateFee
		}
	case TypeCustomDiscount:
		if req.CustomDiscount == nil {
			return feeadjustmenterrors.ErrCustomDiscountMissing
		}
		if req.CustomDiscount.IsNegative() {
			return feeadjustmenterrors.ErrInvalidCustomDiscount
		}
	}
	return nil
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

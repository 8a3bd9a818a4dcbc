package latefee

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-schoolfee/internal/events"
	latefeeerrors "go-schoolfee/internal/latefee/errors"
	"go-schoolfee/internal/messaging/kafka"
	"go-schoolfee/internal/roster"
	"go-schoolfee/internal/shared/batch"
	"go-schoolfee/internal/shared/contextutil"
	"go-schoolfee/internal/shared/money"
	"go-schoolfee/internal/studentfee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=latefee_service.go -destination=mock/latefee_service_mock.go -package=mock
type Service interface {
	ApplyLateFees(ctx context.Context, schoolID string, asOf time.Time) (SweepResult, error)
	ApplyLateFeesGlobal(ctx context.Context, asOf time.Time) (GlobalResult, error)
	GetPolicy(ctx context.Context, schoolID string) (PolicyResponse, error)
	UpsertPolicy(ctx context.Context, schoolID, actorID string, req PolicyRequest) (PolicyResponse, error)
}

// Defaults apply to schools without a late_fee_policies row.
type Defaults struct {
	Amount          decimal.Decimal
	GraceDays       int
	ForfeitDiscount bool
}

type Options struct {
	Defaults          Defaults
	SchoolConcurrency int
	Now               func() time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	fees      studentfee.Repository
	directory roster.Directory
	outbox    kafka.OutboxRepository
	opts      Options
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	fees studentfee.Repository,
	directory roster.Directory,
	outbox kafka.OutboxRepository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("latefee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("latefee.service")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SchoolConcurrency < 1 {
		opts.SchoolConcurrency = 1
	}
	return &service{
		db:        db,
		repo:      repo,
		fees:      fees,
		directory: directory,
		outbox:    outbox,
		opts:      opts,
		logger:    l,
	}
}

func (s *service) ApplyLateFees(ctx context.Context, schoolID string, asOf time.Time) (SweepResult, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(schoolID); err != nil {
		return SweepResult{}, latefeeerrors.ErrInvalidSchoolID
	}

	// A sweep never runs ahead of the clock: fees not yet due stay untouched.
	if now := s.opts.Now(); asOf.After(now) {
		s.logger.Warn("late fee sweep as_of in the future, using now",
			zap.String("request_id", rid),
			zap.String("school_id", schoolID),
			zap.Time("as_of", asOf),
		)
		asOf = now
	}

	policy, _, err := s.effectivePolicy(ctx, schoolID)
	if err != nil {
		s.logger.Error("late fee sweep load policy failed", zap.String("request_id", rid), zap.String("school_id", schoolID), zap.Error(err))
		return SweepResult{}, err
	}

	cutoff := policy.Cutoff(asOf)
	candidates, err := s.fees.ListLateFeeCandidates(ctx, schoolID, cutoff)
	if err != nil {
		s.logger.Error("late fee sweep list candidates failed", zap.String("request_id", rid), zap.String("school_id", schoolID), zap.Error(err))
		return SweepResult{}, err
	}

	var result SweepResult
	if len(candidates) == 0 {
		return result, nil
	}

	overrides, err := s.repo.StructureOverrides(ctx, schoolID)
	if err != nil {
		return SweepResult{}, err
	}

	var firstErr error
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		amount := policy.Amount
		if candidate.FeeStructureID != nil {
			if override, ok := overrides[candidate.FeeStructureID.String()]; ok {
				amount = override
			}
		}
		if !policy.IsEnabled {
			amount = decimal.Zero
		}

		outcome, err := s.applyOne(ctx, schoolID, candidate.ID.String(), cutoff, amount, policy.IsEnabled && policy.ForfeitDiscount)
		if err != nil {
			result.FeesFailed++
			if firstErr == nil {
				firstErr = err
			}
			s.logger.Error("late fee sweep fee failed",
				zap.String("request_id", rid),
				zap.String("school_id", schoolID),
				zap.String("student_fee_id", candidate.ID.String()),
				zap.Error(err),
			)
			continue
		}

		if !outcome.applied {
			result.FeesSkipped++
			continue
		}
		result.FeesUpdated++
		if outcome.forfeited {
			result.DiscountsForfeited++
		}
		if outcome.newlyOverdue {
			result.MarkedOverdue++
		}
	}

	s.logger.Info("late fee sweep finished",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.Int("fees_updated", result.FeesUpdated),
		zap.Int("discounts_forfeited", result.DiscountsForfeited),
		zap.Int("fees_skipped", result.FeesSkipped),
		zap.Int("fees_failed", result.FeesFailed),
	)

	if firstErr != nil {
		return result, fmt.Errorf("%d of %d fees failed: %w", result.FeesFailed, len(candidates), firstErr)
	}
	return result, nil
}

type applyOutcome struct {
	applied      bool
	forfeited    bool
	newlyOverdue bool
}

// applyOne re-reads the fee under a row lock and charges it only if it is
// still outstanding, past the cutoff and untouched by a previous sweep.
func (s *service) applyOne(ctx context.Context, schoolID, feeID string, cutoff time.Time, amount decimal.Decimal, forfeit bool) (applyOutcome, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return applyOutcome{}, err
	}
	defer tx.Rollback()

	fees := s.fees.WithTx(tx)
	fee, err := fees.LockByIDAndSchool(ctx, schoolID, feeID)
	if err != nil {
		return applyOutcome{}, err
	}

	if !fee.Outstanding() || fee.LateFeeAppliedAt != nil || !fee.LateFeeAmount.IsZero() || !fee.DueDate.Before(cutoff) {
		return applyOutcome{}, nil
	}

	now := s.opts.Now().UTC()
	outcome := applyOutcome{applied: true, newlyOverdue: fee.Status != studentfee.StatusOverdue}

	fee.LateFeeAmount = money.Round2(amount)
	fee.LateFeeAppliedAt = &now
	if forfeit && !fee.DiscountForfeited {
		fee.DiscountForfeited = true
		fee.DiscountAmount = decimal.Zero
		outcome.forfeited = true
	}
	fee.Status = studentfee.StatusOverdue
	fee.Recalculate()

	if err := fees.Update(ctx, fee); err != nil {
		return applyOutcome{}, err
	}

	if err := s.enqueueOverdue(ctx, tx, *fee, now); err != nil {
		return applyOutcome{}, err
	}

	if err := tx.Commit(); err != nil {
		return applyOutcome{}, err
	}
	return outcome, nil
}

func (s *service) ApplyLateFeesGlobal(ctx context.Context, asOf time.Time) (GlobalResult, error) {
	rid := contextutil.GetRequestID(ctx)

	schoolIDs, err := s.directory.ListActiveSchoolIDs(ctx)
	if err != nil {
		s.logger.Error("global late fee sweep list schools failed", zap.String("request_id", rid), zap.Error(err))
		return GlobalResult{}, err
	}

	outcomes := batch.ForEachSchool(ctx, schoolIDs, s.opts.SchoolConcurrency,
		func(ctx context.Context, schoolID string) (SweepResult, error) {
			return s.ApplyLateFees(ctx, schoolID, asOf)
		},
	)

	result := GlobalResult{Schools: make([]SchoolSweep, 0, len(outcomes))}
	for _, o := range outcomes {
		sweep := SchoolSweep{
			SchoolID:           o.SchoolID,
			OK:                 o.OK(),
			FeesUpdated:        o.Result.FeesUpdated,
			DiscountsForfeited: o.Result.DiscountsForfeited,
		}
		if o.Err != nil {
			sweep.Error = o.Err.Error()
			result.SchoolsFailed++
		}
		result.SchoolsProcessed++
		result.TotalFeesUpdated += o.Result.FeesUpdated
		result.TotalDiscountsLost += o.Result.DiscountsForfeited
		result.Schools = append(result.Schools, sweep)
	}

	s.logger.Info("global late fee sweep finished",
		zap.String("request_id", rid),
		zap.Int("schools_processed", result.SchoolsProcessed),
		zap.Int("schools_failed", result.SchoolsFailed),
		zap.Int("total_fees_updated", result.TotalFeesUpdated),
	)
	return result, nil
}

func (s *service) GetPolicy(ctx context.Context, schoolID string) (PolicyResponse, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return PolicyResponse{}, latefeeerrors.ErrInvalidSchoolID
	}

	policy, isDefault, err := s.effectivePolicy(ctx, schoolID)
	if err != nil {
		s.logger.Error("get late fee policy failed", zap.String("school_id", schoolID), zap.Error(err))
		return PolicyResponse{}, err
	}
	return mapPolicyResponse(policy, isDefault), nil
}

func (s *service) UpsertPolicy(ctx context.Context, schoolID, actorID string, req PolicyRequest) (PolicyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("upsert late fee policy requested",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
	)

	schoolUUID, err := uuid.Parse(schoolID)
	if err != nil {
		return PolicyResponse{}, latefeeerrors.ErrInvalidSchoolID
	}
	if req.Amount == nil || req.Amount.IsNegative() {
		return PolicyResponse{}, latefeeerrors.ErrInvalidAmount
	}
	if req.GraceDays != nil && (*req.GraceDays < 0 || *req.GraceDays > 90) {
		return PolicyResponse{}, latefeeerrors.ErrInvalidGraceDays
	}

	current, _, err := s.effectivePolicy(ctx, schoolID)
	if err != nil {
		return PolicyResponse{}, err
	}

	policy := current
	policy.SchoolID = schoolUUID
	policy.Amount = money.Round2(*req.Amount)
	if req.GraceDays != nil {
		policy.GraceDays = *req.GraceDays
	}
	if req.ForfeitDiscount != nil {
		policy.ForfeitDiscount = *req.ForfeitDiscount
	}
	if req.IsEnabled != nil {
		policy.IsEnabled = *req.IsEnabled
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		policy.UpdatedBy = &actor
	}
	policy.UpdatedAt = s.opts.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert late fee policy begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).UpsertPolicy(ctx, &policy); err != nil {
		s.logger.Error("upsert late fee policy persist failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert late fee policy commit failed", zap.String("request_id", rid), zap.Error(err))
		return PolicyResponse{}, err
	}

	s.logger.Info("upsert late fee policy success",
		zap.String("request_id", rid),
		zap.String("school_id", schoolID),
		zap.String("amount", policy.Amount.String()),
		zap.Int("grace_days", policy.GraceDays),
	)
	return mapPolicyResponse(policy, false), nil
}

func (s *service) effectivePolicy(ctx context.Context, schoolID string) (LateFeePolicy, bool, error) {
	stored, err := s.repo.FindPolicy(ctx, schoolID)
	if err != nil {
		return LateFeePolicy{}, false, err
	}
	if stored != nil {
		return *stored, false, nil
	}

	schoolUUID, _ := uuid.Parse(schoolID)
	return LateFeePolicy{
		SchoolID:        schoolUUID,
		Amount:          s.opts.Defaults.Amount,
		GraceDays:       s.opts.Defaults.GraceDays,
		ForfeitDiscount: s.opts.Defaults.ForfeitDiscount,
		IsEnabled:       true,
	}, true, nil
}

func (s *service) enqueueOverdue(ctx context.Context, tx *sql.Tx, fee studentfee.StudentFee, at time.Time) error {
	payload := events.FeeOverdueEvent{
		EventType:         "fee_overdue",
		RequestID:         contextutil.GetRequestID(ctx),
		FeeID:             fee.ID.String(),
		SchoolID:          fee.SchoolID.String(),
		StudentID:         fee.StudentID.String(),
		DueDate:           fee.DueDate.Format("2006-01-02"),
		LateFeeAmount:     fee.LateFeeAmount,
		Balance:           fee.Balance,
		DiscountForfeited: fee.DiscountForfeited,
		OccurredAt:        at,
	}
	event, err := kafka.NewEvent(ctx, payload.SchoolID, "student_fee", payload.FeeID, payload.EventType, events.FeeOverdueTopic, payload)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

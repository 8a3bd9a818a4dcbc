package latefee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-schoolfee/internal/latefee"
	latefeeerrors "go-schoolfee/internal/latefee/errors"
	latefeeMock "go-schoolfee/internal/latefee/mock"
	kafkaMock "go-schoolfee/internal/messaging/kafka/mock"
	rosterMock "go-schoolfee/internal/roster/mock"
	"go-schoolfee/internal/studentfee"
	studentfeeMock "go-schoolfee/internal/studentfee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	today  = time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
	sweeps = today.Add(6 * time.Hour)
)

type deps struct {
	svc       latefee.Service
	sql       sqlmock.Sqlmock
	repo      *latefeeMock.MockRepository
	fees      *studentfeeMock.MockRepository
	directory *rosterMock.MockDirectory
	outbox    *kafkaMock.MockOutboxRepository
}

func setup(t *testing.T) deps {
	ctrl := gomock.NewController(t)
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	d := deps{
		sql:       mock,
		repo:      latefeeMock.NewMockRepository(ctrl),
		fees:      studentfeeMock.NewMockRepository(ctrl),
		directory: rosterMock.NewMockDirectory(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
	}
	d.svc = latefee.NewService(db, d.repo, d.fees, d.directory, d.outbox,
		latefee.Options{
			Defaults: latefee.Defaults{
				Amount:          decimal.NewFromInt(5),
				ForfeitDiscount: true,
			},
			SchoolConcurrency: 1,
			Now:               func() time.Time { return sweeps },
		},
		zap.NewNop(),
	)
	return d
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func unpaidFee(schoolID uuid.UUID, base, discount string) *studentfee.StudentFee {
	structureID := uuid.New()
	fee := &studentfee.StudentFee{
		ID:             uuid.New(),
		SchoolID:       schoolID,
		StudentID:      uuid.New(),
		FeeStructureID: &structureID,
		BaseAmount:     dec(base),
		DiscountAmount: dec(discount),
		DueDate:        today.AddDate(0, 0, -1),
		Status:         studentfee.StatusPending,
	}
	fee.Recalculate()
	return fee
}

func (d deps) expectApplied(ctx context.Context, schoolID string, fee *studentfee.StudentFee) {
	d.sql.ExpectBegin()
	d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
	d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID, fee.ID.String()).Return(fee, nil)
	d.fees.EXPECT().Update(ctx, fee).Return(nil)
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.sql.ExpectCommit()
}

func TestLateFeeService_ApplyLateFees(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	t.Run("future as_of is clamped to now", func(t *testing.T) {
		d := setup(t)

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)
		d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return(nil, nil)

		res, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps.AddDate(1, 0, 0))

		assert.NoError(t, err)
		assert.Equal(t, latefee.SweepResult{}, res)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("charges late fee once and forfeits discount", func(t *testing.T) {
		d := setup(t)
		fee := unpaidFee(schoolID, "50", "0")
		candidate := *fee

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil).Times(2)
		gomock.InOrder(
			d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return([]studentfee.StudentFee{candidate}, nil),
			d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return(nil, nil),
		)
		d.repo.EXPECT().StructureOverrides(ctx, schoolID.String()).Return(map[string]decimal.Decimal{}, nil)
		d.expectApplied(ctx, schoolID.String(), fee)

		first, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps)
		assert.NoError(t, err)
		assert.Equal(t, latefee.SweepResult{FeesUpdated: 1, DiscountsForfeited: 1, MarkedOverdue: 1}, first)

		assert.True(t, fee.LateFeeAmount.Equal(dec("5")))
		assert.True(t, fee.DiscountForfeited)
		assert.True(t, fee.FinalAmount.Equal(dec("55")))
		assert.True(t, fee.Balance.Equal(dec("55")))
		assert.Equal(t, studentfee.StatusOverdue, fee.Status)
		assert.NotNil(t, fee.LateFeeAppliedAt)

		snapshot := *fee
		second, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps.Add(3*time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, latefee.SweepResult{}, second)
		assert.Equal(t, snapshot, *fee)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("discounted fee loses its discount", func(t *testing.T) {
		d := setup(t)
		fee := unpaidFee(schoolID, "100", "10")

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)
		d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return([]studentfee.StudentFee{*fee}, nil)
		d.repo.EXPECT().StructureOverrides(ctx, schoolID.String()).Return(nil, nil)
		d.expectApplied(ctx, schoolID.String(), fee)

		_, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps)

		assert.NoError(t, err)
		assert.True(t, fee.DiscountAmount.IsZero())
		assert.True(t, fee.FinalAmount.Equal(dec("105")))
	})

	t.Run("row already charged by a concurrent sweep is skipped", func(t *testing.T) {
		d := setup(t)
		candidate := unpaidFee(schoolID, "50", "0")
		locked := *candidate
		at := sweeps.Add(-time.Minute)
		locked.LateFeeAppliedAt = &at
		locked.LateFeeAmount = dec("5")
		locked.Recalculate()

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)
		d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return([]studentfee.StudentFee{*candidate}, nil)
		d.repo.EXPECT().StructureOverrides(ctx, schoolID.String()).Return(nil, nil)
		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), candidate.ID.String()).Return(&locked, nil)
		d.sql.ExpectRollback()

		res, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps)

		assert.NoError(t, err)
		assert.Equal(t, latefee.SweepResult{FeesSkipped: 1}, res)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("fee paid before the lock is a no-op", func(t *testing.T) {
		d := setup(t)
		candidate := unpaidFee(schoolID, "90", "0")
		locked := *candidate
		locked.AmountPaid = dec("90")
		locked.Recalculate()
		assert.Equal(t, studentfee.StatusPaid, locked.Status)

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)
		d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return([]studentfee.StudentFee{*candidate}, nil)
		d.repo.EXPECT().StructureOverrides(ctx, schoolID.String()).Return(nil, nil)
		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), candidate.ID.String()).Return(&locked, nil)
		d.sql.ExpectRollback()

		res, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.FeesUpdated)
		assert.True(t, locked.Balance.IsZero())
	})

	t.Run("structure amount overrides policy and grace days move the cutoff", func(t *testing.T) {
		d := setup(t)
		fee := unpaidFee(schoolID, "50", "0")
		fee.DueDate = today.AddDate(0, 0, -4)
		policy := &latefee.LateFeePolicy{
			SchoolID:        schoolID,
			Amount:          dec("5"),
			GraceDays:       3,
			ForfeitDiscount: false,
			IsEnabled:       true,
		}

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(policy, nil)
		d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today.AddDate(0, 0, -3)).Return([]studentfee.StudentFee{*fee}, nil)
		d.repo.EXPECT().
			StructureOverrides(ctx, schoolID.String()).
			Return(map[string]decimal.Decimal{fee.FeeStructureID.String(): dec("7.5")}, nil)
		d.expectApplied(ctx, schoolID.String(), fee)

		res, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.DiscountsForfeited)
		assert.True(t, fee.LateFeeAmount.Equal(dec("7.5")))
		assert.False(t, fee.DiscountForfeited)
		assert.True(t, fee.Balance.Equal(dec("57.5")))
	})

	t.Run("failed fee is reported and the rest continue", func(t *testing.T) {
		d := setup(t)
		broken := unpaidFee(schoolID, "50", "0")
		fee := unpaidFee(schoolID, "20", "0")

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)
		d.fees.EXPECT().ListLateFeeCandidates(ctx, schoolID.String(), today).Return([]studentfee.StudentFee{*broken, *fee}, nil)
		d.repo.EXPECT().StructureOverrides(ctx, schoolID.String()).Return(nil, nil)
		d.sql.ExpectBegin()
		d.fees.EXPECT().WithTx(gomock.Any()).Return(d.fees)
		d.fees.EXPECT().LockByIDAndSchool(ctx, schoolID.String(), broken.ID.String()).Return(nil, errors.New("lock timeout"))
		d.sql.ExpectRollback()
		d.expectApplied(ctx, schoolID.String(), fee)

		res, err := d.svc.ApplyLateFees(ctx, schoolID.String(), sweeps)

		assert.Error(t, err)
		assert.Equal(t, 1, res.FeesUpdated)
		assert.Equal(t, 1, res.FeesFailed)
	})
}

func TestLateFeeService_ApplyLateFeesGlobal(t *testing.T) {
	ctx := context.Background()
	failing := uuid.New()
	healthy := uuid.New()

	d := setup(t)
	fee := unpaidFee(healthy, "50", "0")

	d.directory.EXPECT().ListActiveSchoolIDs(ctx).Return([]string{failing.String(), healthy.String()}, nil)
	d.repo.EXPECT().FindPolicy(ctx, failing.String()).Return(nil, errors.New("db unavailable"))
	d.repo.EXPECT().FindPolicy(ctx, healthy.String()).Return(nil, nil)
	d.fees.EXPECT().ListLateFeeCandidates(ctx, healthy.String(), today).Return([]studentfee.StudentFee{*fee}, nil)
	d.repo.EXPECT().StructureOverrides(ctx, healthy.String()).Return(nil, nil)
	d.expectApplied(ctx, healthy.String(), fee)

	res, err := d.svc.ApplyLateFeesGlobal(ctx, sweeps)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.SchoolsProcessed)
	assert.Equal(t, 1, res.SchoolsFailed)
	assert.Equal(t, 1, res.TotalFeesUpdated)
	assert.False(t, res.Schools[0].OK)
	assert.Equal(t, "db unavailable", res.Schools[0].Error)
	assert.True(t, res.Schools[1].OK)
}

func TestLateFeeService_Policy(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.New()

	t.Run("defaults when school has no policy", func(t *testing.T) {
		d := setup(t)
		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)

		resp, err := d.svc.GetPolicy(ctx, schoolID.String())

		assert.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.True(t, resp.Amount.Equal(dec("5")))
		assert.True(t, resp.ForfeitDiscount)
	})

	t.Run("upsert keeps unspecified fields", func(t *testing.T) {
		d := setup(t)
		grace := 2

		d.repo.EXPECT().FindPolicy(ctx, schoolID.String()).Return(nil, nil)
		d.sql.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().
			UpsertPolicy(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p *latefee.LateFeePolicy) error {
				assert.Equal(t, schoolID, p.SchoolID)
				assert.True(t, p.Amount.Equal(dec("12.5")))
				assert.Equal(t, 2, p.GraceDays)
				assert.True(t, p.ForfeitDiscount)
				return nil
			})
		d.sql.ExpectCommit()

		amount := dec("12.5")
		resp, err := d.svc.UpsertPolicy(ctx, schoolID.String(), uuid.NewString(), latefee.PolicyRequest{
			Amount:    &amount,
			GraceDays: &grace,
		})

		assert.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.NoError(t, d.sql.ExpectationsWereMet())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		d := setup(t)
		amount := dec("-1")

		_, err := d.svc.UpsertPolicy(ctx, schoolID.String(), "", latefee.PolicyRequest{Amount: &amount})

		assert.ErrorIs(t, err, latefeeerrors.ErrInvalidAmount)
	})
}

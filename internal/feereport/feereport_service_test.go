package feereport_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-schoolfee/internal/feereport"
	feereporterrors "go-schoolfee/internal/feereport/errors"
	feereportMock "go-schoolfee/internal/feereport/mock"
	"go-schoolfee/internal/payment"
	"go-schoolfee/internal/studentfee"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const cacheTTL = 60 * time.Second

type deps struct {
	svc       feereport.Service
	repo      *feereportMock.MockRepository
	redismock redismock.ClientMock
}

func setup(t *testing.T) deps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := feereportMock.NewMockRepository(ctrl)

	return deps{
		svc:       feereport.NewService(repo, rdb, cacheTTL, zap.NewNop()),
		repo:      repo,
		redismock: redisMock,
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestFeeReportService_Dashboard(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.NewString()
	cacheKey := feereport.GetDashboardKey(schoolID, "2026-2027")

	rows := []feereport.StatusTotal{
		{Status: studentfee.StatusPaid, FeeCount: 1, Billed: dec("90"), Collected: dec("90"), Outstanding: dec("0")},
		{Status: studentfee.StatusPending, FeeCount: 2, Billed: dec("200"), Collected: dec("0"), Outstanding: dec("200")},
		{Status: studentfee.StatusWaived, FeeCount: 1, Billed: dec("50"), Collected: dec("10"), Outstanding: dec("0")},
	}
	want := feereport.Dashboard{
		AcademicYear:     "2026-2027",
		FeeCount:         4,
		TotalBilled:      dec("290"),
		TotalCollected:   dec("100"),
		TotalOutstanding: dec("200"),
		ByStatus:         rows,
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		d := setup(t)
		payload, _ := json.Marshal(want)
		d.redismock.ExpectGet(cacheKey).SetVal(string(payload))

		got, err := d.svc.Dashboard(ctx, schoolID, "2026-2027")

		assert.NoError(t, err)
		assert.Equal(t, int64(4), got.FeeCount)
		assert.True(t, got.TotalBilled.Equal(dec("290")))
		assert.Len(t, got.ByStatus, 3)
		assert.NoError(t, d.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss aggregates and stores", func(t *testing.T) {
		d := setup(t)
		payload, _ := json.Marshal(want)
		d.redismock.ExpectGet(cacheKey).RedisNil()
		d.repo.EXPECT().StatusTotals(ctx, schoolID, "2026-2027").Return(rows, nil)
		d.redismock.ExpectSet(cacheKey, string(payload), cacheTTL).SetVal("OK")

		got, err := d.svc.Dashboard(ctx, schoolID, "2026-2027")

		assert.NoError(t, err)
		assert.True(t, got.TotalBilled.Equal(dec("290")))
		assert.True(t, got.TotalCollected.Equal(dec("100")))
		assert.True(t, got.TotalOutstanding.Equal(dec("200")))
		assert.NoError(t, d.redismock.ExpectationsWereMet())
	})

	t.Run("store error is returned", func(t *testing.T) {
		d := setup(t)
		d.redismock.ExpectGet(cacheKey).RedisNil()
		d.repo.EXPECT().StatusTotals(ctx, schoolID, "2026-2027").Return(nil, errors.New("db down"))

		_, err := d.svc.Dashboard(ctx, schoolID, "2026-2027")

		assert.EqualError(t, err, "db down")
	})

	t.Run("invalid school", func(t *testing.T) {
		d := setup(t)

		_, err := d.svc.Dashboard(ctx, "nope", "")

		assert.ErrorIs(t, err, feereporterrors.ErrInvalidSchoolID)
	})
}

func TestGetDashboardKey(t *testing.T) {
	assert.Equal(t, "fee:dashboard:s1:all", feereport.GetDashboardKey("s1", ""))
	assert.Equal(t, "fee:dashboard:s1:2026-2027", feereport.GetDashboardKey("s1", "2026-2027"))
}

func TestFeeReportService_ListStudentFees(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.NewString()
	d := setup(t)

	fee := studentfee.StudentFee{ID: uuid.New(), Status: studentfee.StatusOverdue, DueDate: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)}
	d.repo.EXPECT().
		ListStudentFees(ctx, schoolID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f feereport.StudentFeeFilter) ([]studentfee.StudentFee, int64, error) {
			assert.Equal(t, 1, f.Page)
			assert.Equal(t, 100, f.PageSize)
			assert.Equal(t, studentfee.StatusOverdue, f.Status)
			return []studentfee.StudentFee{fee}, 101, nil
		})

	page, err := d.svc.ListStudentFees(ctx, schoolID, feereport.StudentFeeFilter{Status: studentfee.StatusOverdue, PageSize: 500})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), page.Total)
	assert.Len(t, page.Fees, 1)
	assert.Equal(t, "2026-09-10", page.Fees[0].DueDate)
}

func TestFeeReportService_ByGrade(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.NewString()
	d := setup(t)
	d.repo.EXPECT().GradeTotals(ctx, schoolID, "").Return(nil, nil)

	rows, err := d.svc.ByGrade(ctx, schoolID, "")

	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFeeReportService_History(t *testing.T) {
	ctx := context.Background()
	schoolID := uuid.NewString()
	studentID := uuid.NewString()

	t.Run("groups payments under their fee", func(t *testing.T) {
		d := setup(t)
		paid := studentfee.StudentFee{ID: uuid.New(), FinalAmount: dec("90"), AmountPaid: dec("90"), Balance: dec("0"), Status: studentfee.StatusPaid}
		open := studentfee.StudentFee{ID: uuid.New(), FinalAmount: dec("105"), AmountPaid: dec("0"), Balance: dec("105"), Status: studentfee.StatusOverdue}
		waived := studentfee.StudentFee{ID: uuid.New(), FinalAmount: dec("40"), AmountPaid: dec("5"), Balance: dec("0"), Status: studentfee.StatusWaived}

		d.repo.EXPECT().FeesByStudent(ctx, schoolID, studentID).Return([]studentfee.StudentFee{paid, open, waived}, nil)
		d.repo.EXPECT().
			PaymentsByFees(ctx, schoolID, []string{paid.ID.String(), open.ID.String(), waived.ID.String()}).
			Return([]payment.Payment{
				{ID: uuid.New(), StudentFeeID: paid.ID, Amount: dec("50")},
				{ID: uuid.New(), StudentFeeID: paid.ID, Amount: dec("40")},
				{ID: uuid.New(), StudentFeeID: waived.ID, Amount: dec("5")},
			}, nil)

		h, err := d.svc.History(ctx, schoolID, studentID)

		assert.NoError(t, err)
		assert.Len(t, h.Fees, 3)
		assert.Len(t, h.Fees[0].Payments, 2)
		assert.Empty(t, h.Fees[1].Payments)
		assert.NotNil(t, h.Fees[1].Payments)
		assert.True(t, h.TotalBilled.Equal(dec("195")))
		assert.True(t, h.TotalPaid.Equal(dec("95")))
		assert.True(t, h.TotalOutstanding.Equal(dec("105")))
	})

	t.Run("no fees skips the payment lookup", func(t *testing.T) {
		d := setup(t)
		d.repo.EXPECT().FeesByStudent(ctx, schoolID, studentID).Return(nil, nil)

		h, err := d.svc.History(ctx, schoolID, studentID)

		assert.NoError(t, err)
		assert.Empty(t, h.Fees)
		assert.True(t, h.TotalBilled.IsZero())
	})

	t.Run("invalid student id", func(t *testing.T) {
		d := setup(t)

		_, err := d.svc.History(ctx, schoolID, "abc")

		assert.ErrorIs(t, err, feereporterrors.ErrInvalidStudentID)
	})
}

package feereport

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	feereporterrors "go-schoolfee/internal/feereport/errors"
	"go-schoolfee/internal/payment"
	"go-schoolfee/internal/shared/contextutil"
	"go-schoolfee/internal/studentfee"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DashboardKeyPrefix = "fee:dashboard:"

func GetDashboardKey(schoolID, academicYear string) string {
	if academicYear == "" {
		academicYear = "all"
	}
	return DashboardKeyPrefix + schoolID + ":" + academicYear
}

//go:generate mockgen -source=feereport_service.go -destination=mock/feereport_service_mock.go -package=mock
type Service interface {
	ListStudentFees(ctx context.Context, schoolID string, filter StudentFeeFilter) (StudentFeePage, error)
	ByGrade(ctx context.Context, schoolID, academicYear string) ([]GradeSummary, error)
	Dashboard(ctx context.Context, schoolID, academicYear string) (Dashboard, error)
	History(ctx context.Context, schoolID, studentID string) (StudentHistory, error)
}

type service struct {
	repo     Repository
	rdb      *redis.Client
	cacheTTL time.Duration
	sf       singleflight.Group
	logger   *zap.Logger
}

// NewService builds the reporting service. A nil rdb disables the dashboard
// cache.
func NewService(repo Repository, rdb *redis.Client, cacheTTL time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("feereport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("feereport.service")
	}
	return &service{repo: repo, rdb: rdb, cacheTTL: cacheTTL, logger: l}
}

func (s *service) ListStudentFees(ctx context.Context, schoolID string, filter StudentFeeFilter) (StudentFeePage, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return StudentFeePage{}, feereporterrors.ErrInvalidSchoolID
	}
	filter.normalize()

	fees, total, err := s.repo.ListStudentFees(ctx, schoolID, filter)
	if err != nil {
		s.logger.Error("list student fees failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("school_id", schoolID),
			zap.Error(err),
		)
		return StudentFeePage{}, err
	}

	return StudentFeePage{
		Fees:     studentfee.ToListResponse(fees),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *service) ByGrade(ctx context.Context, schoolID, academicYear string) ([]GradeSummary, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return nil, feereporterrors.ErrInvalidSchoolID
	}

	rows, err := s.repo.GradeTotals(ctx, schoolID, academicYear)
	if err != nil {
		s.logger.Error("grade totals failed", zap.String("school_id", schoolID), zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []GradeSummary{}
	}
	return rows, nil
}

func (s *service) Dashboard(ctx context.Context, schoolID, academicYear string) (Dashboard, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return Dashboard{}, feereporterrors.ErrInvalidSchoolID
	}
	cacheKey := GetDashboardKey(schoolID, academicYear)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp Dashboard
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("dashboard cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		rows, err := s.repo.StatusTotals(ctx, schoolID, academicYear)
		if err != nil {
			return nil, err
		}

		resp := buildDashboard(academicYear, rows)
		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(payload), s.cacheTTL).Err(); err != nil {
					s.logger.Warn("dashboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("dashboard failed", zap.String("school_id", schoolID), zap.Error(err))
		return Dashboard{}, err
	}

	return v.(Dashboard), nil
}

func buildDashboard(academicYear string, rows []StatusTotal) Dashboard {
	d := Dashboard{
		AcademicYear:     academicYear,
		TotalBilled:      decimal.Zero,
		TotalCollected:   decimal.Zero,
		TotalOutstanding: decimal.Zero,
		ByStatus:         rows,
	}
	if d.ByStatus == nil {
		d.ByStatus = []StatusTotal{}
	}
	for _, row := range rows {
		d.FeeCount += row.FeeCount
		d.TotalCollected = d.TotalCollected.Add(row.Collected)
		d.TotalOutstanding = d.TotalOutstanding.Add(row.Outstanding)
		if row.Status != studentfee.StatusWaived {
			d.TotalBilled = d.TotalBilled.Add(row.Billed)
		}
	}
	return d
}

func (s *service) History(ctx context.Context, schoolID, studentID string) (StudentHistory, error) {
	if _, err := uuid.Parse(schoolID); err != nil {
		return StudentHistory{}, feereporterrors.ErrInvalidSchoolID
	}
	if _, err := uuid.Parse(studentID); err != nil {
		return StudentHistory{}, feereporterrors.ErrInvalidStudentID
	}

	fees, err := s.repo.FeesByStudent(ctx, schoolID, studentID)
	if err != nil {
		s.logger.Error("student fee history failed", zap.String("student_id", studentID), zap.Error(err))
		return StudentHistory{}, err
	}

	history := StudentHistory{
		StudentID:        studentID,
		TotalBilled:      decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
		Fees:             make([]HistoryEntry, 0, len(fees)),
	}
	if len(fees) == 0 {
		return history, nil
	}

	ids := make([]string, len(fees))
	for i, f := range fees {
		ids[i] = f.ID.String()
	}
	payments, err := s.repo.PaymentsByFees(ctx, schoolID, ids)
	if err != nil {
		s.logger.Error("student payment history failed", zap.String("student_id", studentID), zap.Error(err))
		return StudentHistory{}, err
	}

	byFee := make(map[uuid.UUID][]payment.PaymentResponse, len(fees))
	for _, p := range payments {
		byFee[p.StudentFeeID] = append(byFee[p.StudentFeeID], payment.ToResponse(p))
	}

	for _, f := range fees {
		entry := HistoryEntry{Fee: studentfee.ToResponse(f), Payments: byFee[f.ID]}
		if entry.Payments == nil {
			entry.Payments = []payment.PaymentResponse{}
		}
		history.Fees = append(history.Fees, entry)

		history.TotalPaid = history.TotalPaid.Add(f.AmountPaid)
		history.TotalOutstanding = history.TotalOutstanding.Add(f.Balance)
		if !f.IsWaived() {
			history.TotalBilled = history.TotalBilled.Add(f.FinalAmount)
		}
	}
	return history, nil
}

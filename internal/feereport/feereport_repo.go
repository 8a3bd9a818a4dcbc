package feereport

import (
	"context"

	"go-schoolfee/internal/payment"
	"go-schoolfee/internal/studentfee"
	"go-schoolfee/internal/tenant"

	"gorm.io/gorm"
)

const totalsSelect = "COUNT(*) AS fee_count, " +
	"COALESCE(SUM(final_amount), 0) AS billed, " +
	"COALESCE(SUM(amount_paid), 0) AS collected, " +
	"COALESCE(SUM(balance), 0) AS outstanding"

//go:generate mockgen -source=feereport_repo.go -destination=mock/feereport_repo_mock.go -package=mock
type Repository interface {
	ListStudentFees(ctx context.Context, schoolID string, filter StudentFeeFilter) ([]studentfee.StudentFee, int64, error)
	GradeTotals(ctx context.Context, schoolID, academicYear string) ([]GradeSummary, error)
	StatusTotals(ctx context.Context, schoolID, academicYear string) ([]StatusTotal, error)
	FeesByStudent(ctx context.Context, schoolID, studentID string) ([]studentfee.StudentFee, error)
	PaymentsByFees(ctx context.Context, schoolID string, feeIDs []string) ([]payment.Payment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) fees(ctx context.Context, schoolID, academicYear string) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&studentfee.StudentFee{}).
		Scopes(tenant.Scope(schoolID))
	if academicYear != "" {
		q = q.Where("academic_year = ?", academicYear)
	}
	return q
}

func (r *repository) ListStudentFees(ctx context.Context, schoolID string, filter StudentFeeFilter) ([]studentfee.StudentFee, int64, error) {
	q := r.fees(ctx, schoolID, filter.AcademicYear)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.GradeLevelID != "" {
		q = q.Where("grade_level_id = ?", filter.GradeLevelID)
	}
	if filter.StudentID != "" {
		q = q.Where("student_id = ?", filter.StudentID)
	}
	if filter.FeeMonth != "" {
		q = q.Where("fee_month = ?", filter.FeeMonth)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fees []studentfee.StudentFee
	err := q.Order("due_date DESC").Order("id").
		Offset(filter.offset()).
		Limit(filter.PageSize).
		Find(&fees).Error
	return fees, total, err
}

func (r *repository) GradeTotals(ctx context.Context, schoolID, academicYear string) ([]GradeSummary, error) {
	var rows []GradeSummary
	err := r.fees(ctx, schoolID, academicYear).
		Select("grade_level_id, " + totalsSelect).
		Group("grade_level_id").
		Order("grade_level_id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) StatusTotals(ctx context.Context, schoolID, academicYear string) ([]StatusTotal, error) {
	var rows []StatusTotal
	err := r.fees(ctx, schoolID, academicYear).
		Select("status, " + totalsSelect).
		Group("status").
		Order("status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FeesByStudent(ctx context.Context, schoolID, studentID string) ([]studentfee.StudentFee, error) {
	var fees []studentfee.StudentFee
	err := r.fees(ctx, schoolID, "").
		Where("student_id = ?", studentID).
		Order("due_date").Order("id").
		Find(&fees).Error
	return fees, err
}

func (r *repository) PaymentsByFees(ctx context.Context, schoolID string, feeIDs []string) ([]payment.Payment, error) {
	var payments []payment.Payment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("student_fee_id IN ?", feeIDs).
		Order("created_at").Order("id").
		Find(&payments).Error
	return payments, err
}

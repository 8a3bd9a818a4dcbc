package studentfee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-schoolfee/internal/shared/connection"
	studentfeeerrors "go-schoolfee/internal/studentfee/errors"
	"go-schoolfee/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=studentfee_repo.go -destination=mock/studentfee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// CreateIfAbsent inserts fee unless a row for the same (student, structure,
	// period) exists. It reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, fee *StudentFee) (bool, error)
	FindByPeriod(ctx context.Context, schoolID, studentID, structureID, periodKey string) (*StudentFee, error)
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*StudentFee, error)
	// LockByIDAndSchool reads the fee with SELECT ... FOR UPDATE. Only
	// meaningful inside a transaction.
	LockByIDAndSchool(ctx context.Context, schoolID, id string) (*StudentFee, error)
	Update(ctx context.Context, fee *StudentFee) error
	ListLateFeeCandidates(ctx context.Context, schoolID string, dueBefore time.Time) ([]StudentFee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.GormTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) CreateIfAbsent(ctx context.Context, fee *StudentFee) (bool, error) {
	res := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"},
				{Name: "fee_structure_id"},
				{Name: "period_key"},
			},
			DoNothing: true,
		}).
		Create(fee)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) FindByPeriod(ctx context.Context, schoolID, studentID, structureID, periodKey string) (*StudentFee, error) {
	var fee StudentFee
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("student_id = ? AND fee_structure_id = ? AND period_key = ?", studentID, structureID, periodKey).
		First(&fee).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &fee, nil
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*StudentFee, error) {
	var fee StudentFee
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&fee, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &fee, nil
}

func (r *repository) LockByIDAndSchool(ctx context.Context, schoolID, id string) (*StudentFee, error) {
	var fee StudentFee
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(schoolID)).
		First(&fee, "id = ?", id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &fee, nil
}

func (r *repository) Update(ctx context.Context, fee *StudentFee) error {
	return r.conn(ctx).Save(fee).Error
}

func (r *repository) ListLateFeeCandidates(ctx context.Context, schoolID string, dueBefore time.Time) ([]StudentFee, error) {
	var fees []StudentFee
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("status IN ?", []string{StatusPending, StatusPartial, StatusOverdue}).
		Where("balance > 0").
		Where("due_date < ?", dueBefore).
		Where("late_fee_applied_at IS NULL").
		Order("due_date ASC, id ASC").
		Find(&fees).Error
	return fees, err
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return studentfeeerrors.ErrFeeNotFound
	}
	return err
}

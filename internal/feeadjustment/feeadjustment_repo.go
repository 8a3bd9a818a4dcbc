package feeadjustment

import (
	"context"
	"database/sql"

	"go-schoolfee/internal/shared/connection"
	"go-schoolfee/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=feeadjustment_repo.go -destination=mock/feeadjustment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, adjustment *FeeAdjustment) error
	ListByFee(ctx context.Context, schoolID, feeID string) ([]FeeAdjustment, error)
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

func (r *repository) Create(ctx context.Context, adjustment *FeeAdjustment) error {
	return r.conn(ctx).Create(adjustment).Error
}

func (r *repository) ListByFee(ctx context.Context, schoolID, feeID string) ([]FeeAdjustment, error) {
	var adjustments []FeeAdjustment
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("student_fee_id = ?", feeID).
		Order("created_at ASC, id ASC").
		Find(&adjustments).Error
	return adjustments, err
}

package latefee

import (
	"context"
	"database/sql"
	"errors"

	"go-schoolfee/internal/shared/connection"
	"go-schoolfee/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=latefee_repo.go -destination=mock/latefee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindPolicy returns nil without error when the school has no policy.
	FindPolicy(ctx context.Context, schoolID string) (*LateFeePolicy, error)
	UpsertPolicy(ctx context.Context, policy *LateFeePolicy) error
	// StructureOverrides maps fee structure id to its own late fee amount.
	StructureOverrides(ctx context.Context, schoolID string) (map[string]decimal.Decimal, error)
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

func (r *repository) FindPolicy(ctx context.Context, schoolID string) (*LateFeePolicy, error) {
	var policy LateFeePolicy
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

func (r *repository) UpsertPolicy(ctx context.Context, policy *LateFeePolicy) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "school_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"amount", "grace_days", "forfeit_discount", "is_enabled", "updated_by", "updated_at",
			}),
		}).
		Create(policy).Error
}

func (r *repository) StructureOverrides(ctx context.Context, schoolID string) (map[string]decimal.Decimal, error) {
	var rows []struct {
		ID            string
		LateFeeAmount decimal.Decimal
	}
	err := r.conn(ctx).
		Table("fee_structures").
		Select("id::text AS id, late_fee_amount").
		Scopes(tenant.Scope(schoolID)).
		Where("late_fee_amount IS NOT NULL").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.ID] = row.LateFeeAmount
	}
	return out, nil
}

package siblingdiscount

import (
	"context"
	"database/sql"

	"go-schoolfee/internal/shared/connection"
	"go-schoolfee/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=siblingdiscount_repo.go -destination=mock/siblingdiscount_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindBySchool(ctx context.Context, schoolID string) ([]SiblingDiscountTier, error)
	DeleteBySchool(ctx context.Context, schoolID string) error
	CreateMany(ctx context.Context, tiers []SiblingDiscountTier) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.GormTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) FindBySchool(ctx context.Context, schoolID string) ([]SiblingDiscountTier, error) {
	var tiers []SiblingDiscountTier
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Order("sibling_ordinal ASC").
		Find(&tiers).Error
	return tiers, err
}

func (r *repository) DeleteBySchool(ctx context.Context, schoolID string) error {
	return r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&SiblingDiscountTier{}).Error
}

func (r *repository) CreateMany(ctx context.Context, tiers []SiblingDiscountTier) error {
	if len(tiers) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&tiers).Error
}

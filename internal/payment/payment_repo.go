package payment

import (
	"context"
	"database/sql"
	"errors"

	paymenterrors "go-schoolfee/internal/payment/errors"
	"go-schoolfee/internal/shared/connection"
	"go-schoolfee/internal/tenant"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payment_repo.go -destination=mock/payment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Payment) error
	FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Payment, error)
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, schoolID, id string) error
	SumByFee(ctx context.Context, feeID string) (decimal.Decimal, error)
	ListByFee(ctx context.Context, schoolID, feeID string) ([]Payment, error)
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

func (r *repository) Create(ctx context.Context, p *Payment) error {
	return r.conn(ctx).Create(p).Error
}

func (r *repository) FindByIDAndSchool(ctx context.Context, schoolID, id string) (*Payment, error) {
	var p Payment
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, paymenterrors.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Payment) error {
	return r.conn(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, schoolID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Delete(&Payment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return paymenterrors.ErrPaymentNotFound
	}
	return nil
}

func (r *repository) SumByFee(ctx context.Context, feeID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.conn(ctx).
		Model(&Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("student_fee_id = ?", feeID).
		Row().
		Scan(&total)
	return total, err
}

func (r *repository) ListByFee(ctx context.Context, schoolID, feeID string) ([]Payment, error) {
	var payments []Payment
	err := r.conn(ctx).
		Scopes(tenant.Scope(schoolID)).
		Where("student_fee_id = ?", feeID).
		Order("created_at ASC, id ASC").
		Find(&payments).Error
	return payments, err
}

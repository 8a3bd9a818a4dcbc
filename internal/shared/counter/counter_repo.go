package counter

import (
	"context"
	"database/sql"
	"time"

	"go-schoolfee/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Counter is a per-school monotonic sequence, one row per counter type.
type Counter struct {
	SchoolID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CounterType string    `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (Counter) TableName() string {
	return "school_counters"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// NextValue increments and returns the counter. Inside a transaction the
	// row stays locked until commit, so values are gap-free per school.
	NextValue(ctx context.Context, schoolID, counterType string) (int64, error)
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

func (r *repository) NextValue(ctx context.Context, schoolID, counterType string) (int64, error) {
	var next int64
	err := connection.GormTx(r.db, r.tx).WithContext(ctx).Raw(`
		INSERT INTO school_counters (school_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (school_id, counter_type) DO UPDATE
		SET last_value = school_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, schoolID, counterType).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

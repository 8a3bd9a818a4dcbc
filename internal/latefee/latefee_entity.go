package latefee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LateFeePolicy is the per-school sweep configuration. Schools without a row
// use the environment defaults.
type LateFeePolicy struct {
	SchoolID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	GraceDays       int             `gorm:"not null;default:0"`
	ForfeitDiscount bool            `gorm:"not null;default:true"`
	IsEnabled       bool            `gorm:"not null;default:true"`
	UpdatedBy       *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (LateFeePolicy) TableName() string {
	return "late_fee_policies"
}

// Cutoff returns the date a fee must be due strictly before to be late on
// asOf.
func (p LateFeePolicy) Cutoff(asOf time.Time) time.Time {
	d := asOf.UTC()
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -p.GraceDays)
}

package feeadjustment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TypeRemoveLateFee   = "remove_late_fee"
	TypeCustomDiscount  = "custom_discount"
	TypeWaive           = "waive"
	TypeRestoreDiscount = "restore_discount"
)

// FeeAdjustment is append-only: rows are inserted and never updated or
// deleted.
type FeeAdjustment struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	StudentFeeID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_fee_adjustment_fee_created"`
	Type          string         `gorm:"type:varchar(30);not null"`
	AdminID       *uuid.UUID     `gorm:"type:uuid"`
	Reason        string         `gorm:"type:text;not null"`
	PreviousValue datatypes.JSON `gorm:"type:jsonb"`
	NewValue      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"index:idx_fee_adjustment_fee_created"`
}

func (FeeAdjustment) TableName() string {
	return "fee_adjustments"
}

func ValidType(t string) bool {
	switch t {
	case TypeRemoveLateFee, TypeCustomDiscount, TypeWaive, TypeRestoreDiscount:
		return true
	default:
		return false
	}
}

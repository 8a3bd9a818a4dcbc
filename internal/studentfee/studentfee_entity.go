package studentfee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
	StatusWaived  = "waived"
)

// Period keys for non-monthly obligations. Monthly obligations use "YYYY-MM".
const (
	PeriodOneTime    = "one-time"
	PeriodTermPrefix = "term-"
)

// StudentFee is one billing obligation. Amount columns are derived through
// Recalculate and must never be written independently.
type StudentFee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_student_fee_school_status"`
	StudentID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_student_fee_period;index"`
	FeeStructureID *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_student_fee_period"`
	FeeCategoryID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	GradeLevelID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AcademicYear   string     `gorm:"type:varchar(20);not null;index"`
	PeriodKey      string     `gorm:"type:varchar(20);not null;uniqueIndex:uq_student_fee_period"`
	FeeMonth       *string    `gorm:"type:varchar(7);index"`

	BaseAmount        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DiscountPercent   decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	DiscountAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DiscountForfeited bool            `gorm:"not null;default:false"`
	LateFeeAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LateFeeAppliedAt  *time.Time
	FinalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AmountPaid        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Balance           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	DueDate   time.Time  `gorm:"type:date;not null;index"`
	Status    string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_student_fee_school_status"`
	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StudentFee) TableName() string {
	return "student_fees"
}

// Recalculate derives final_amount, balance and status from the stored
// components. A waived fee keeps balance 0 and its status.
func (f *StudentFee) Recalculate() {
	f.FinalAmount = f.BaseAmount.Sub(f.DiscountAmount).Add(f.LateFeeAmount)

	if f.Status == StatusWaived {
		f.Balance = decimal.Zero
		return
	}

	f.Balance = f.FinalAmount.Sub(f.AmountPaid)
	f.Status = f.deriveStatus()
}

func (f *StudentFee) deriveStatus() string {
	if !f.Balance.IsPositive() {
		return StatusPaid
	}
	if f.Status == StatusOverdue || f.LateFeeAppliedAt != nil || f.LateFeeAmount.IsPositive() || f.DiscountForfeited {
		return StatusOverdue
	}
	if f.AmountPaid.IsPositive() {
		return StatusPartial
	}
	return StatusPending
}

func (f *StudentFee) IsWaived() bool {
	return f.Status == StatusWaived
}

// Outstanding reports whether the fee still has something to collect.
func (f *StudentFee) Outstanding() bool {
	switch f.Status {
	case StatusPending, StatusPartial, StatusOverdue:
		return f.Balance.IsPositive()
	default:
		return false
	}
}

func MonthKey(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

package feecatalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PeriodOneTime = "one-time"
	PeriodMonthly = "monthly"
	PeriodTerm    = "term"
)

type FeeCategory struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_fee_category_code"`
	Name           string    `gorm:"type:varchar(120);not null"`
	Code           string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_fee_category_code"`
	Description    *string   `gorm:"type:text"`
	IsMandatory    bool      `gorm:"not null;default:false"`
	IsDiscountable bool      `gorm:"not null;default:true"`
	DisplayOrder   int       `gorm:"not null;default:0"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (FeeCategory) TableName() string {
	return "fee_categories"
}

// FeeStructure is a billing rule. Only one active structure may exist per
// (school, academic year, grade, category, period type).
type FeeStructure struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SchoolID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:uq_fee_structure_active,where:is_active = true"`
	AcademicYear  string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_fee_structure_active,where:is_active = true"`
	GradeLevelID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_fee_structure_active,where:is_active = true"`
	FeeCategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_fee_structure_active,where:is_active = true"`
	Category      *FeeCategory    `gorm:"foreignKey:FeeCategoryID;references:ID"`
	PeriodType    string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_fee_structure_active,where:is_active = true"`
	Name          string          `gorm:"type:varchar(120)"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	// Due-date rule: DueDay applies to monthly structures, DueDate to
	// one-time and term structures.
	DueDay  *int       `gorm:"type:smallint"`
	DueDate *time.Time `gorm:"type:date"`

	LateFeeAmount *decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive      bool             `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (FeeStructure) TableName() string {
	return "fee_structures"
}

// Discountable reports whether sibling discounts apply to this structure.
func (s FeeStructure) Discountable() bool {
	return s.Category != nil && s.Category.IsDiscountable
}

// DueDateFor resolves the due date of an obligation generated from s.
// billingMonth is the first day of the billed month for monthly structures.
func (s FeeStructure) DueDateFor(billingMonth, generatedAt time.Time, defaultDueDay int) time.Time {
	switch s.PeriodType {
	case PeriodMonthly:
		day := defaultDueDay
		if s.DueDay != nil {
			day = *s.DueDay
		}
		if day < 1 || day > 28 {
			day = 10
		}
		return time.Date(billingMonth.Year(), billingMonth.Month(), day, 0, 0, 0, 0, time.UTC)
	default:
		if s.DueDate != nil {
			return *s.DueDate
		}
		d := generatedAt.UTC().AddDate(0, 0, 14)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
}

func ValidPeriodType(p string) bool {
	switch p {
	case PeriodOneTime, PeriodMonthly, PeriodTerm:
		return true
	default:
		return false
	}
}

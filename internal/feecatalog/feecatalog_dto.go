package feecatalog

import (
	"github.com/shopspring/decimal"
)

type CategoryRequest struct {
	Name           string  `json:"name" binding:"required,max=120"`
	Code           string  `json:"code" binding:"required,max=30"`
	Description    *string `json:"description"`
	IsMandatory    bool    `json:"is_mandatory"`
	IsDiscountable *bool   `json:"is_discountable"`
	DisplayOrder   int     `json:"display_order" binding:"gte=0"`
	IsActive       *bool   `json:"is_active"`
}

type CategoryResponse struct {
	ID             string  `json:"id"`
	SchoolID       string  `json:"school_id"`
	Name           string  `json:"name"`
	Code           string  `json:"code"`
	Description    *string `json:"description"`
	IsMandatory    bool    `json:"is_mandatory"`
	IsDiscountable bool    `json:"is_discountable"`
	DisplayOrder   int     `json:"display_order"`
	IsActive       bool    `json:"is_active"`
}

type StructureRequest struct {
	AcademicYear  string           `json:"academic_year" binding:"required,max=20"`
	GradeLevelID  string           `json:"grade_level_id" binding:"required,uuid"`
	FeeCategoryID string           `json:"fee_category_id" binding:"required,uuid"`
	PeriodType    string           `json:"period_type" binding:"required,oneof=one-time monthly term"`
	Name          string           `json:"name" binding:"max=120"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	DueDay        *int             `json:"due_day" binding:"omitempty,min=1,max=28"`
	DueDate       *string          `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	LateFeeAmount *decimal.Decimal `json:"late_fee_amount"`
	IsActive      *bool            `json:"is_active"`
}

type StructureFilter struct {
	AcademicYear   string   `form:"academic_year"`
	GradeLevelID   string   `form:"grade_level_id"`
	PeriodType     string   `form:"period_type"`
	FeeCategoryIDs []string `form:"fee_category_id"`
	IsActive       *bool    `form:"is_active"`

	// Billable restricts to active structures of active categories.
	Billable bool `form:"-"`
}

type StructureResponse struct {
	ID            string           `json:"id"`
	SchoolID      string           `json:"school_id"`
	AcademicYear  string           `json:"academic_year"`
	GradeLevelID  string           `json:"grade_level_id"`
	FeeCategoryID string           `json:"fee_category_id"`
	CategoryName  string           `json:"category_name,omitempty"`
	PeriodType    string           `json:"period_type"`
	Name          string           `json:"name"`
	Amount        decimal.Decimal  `json:"amount"`
	DueDay        *int             `json:"due_day"`
	DueDate       *string          `json:"due_date"`
	LateFeeAmount *decimal.Decimal `json:"late_fee_amount"`
	IsActive      bool             `json:"is_active"`
}

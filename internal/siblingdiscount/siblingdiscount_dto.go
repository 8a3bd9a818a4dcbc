package siblingdiscount

import (
	"github.com/shopspring/decimal"
)

type TierRequest struct {
	SiblingOrdinal  int              `json:"sibling_ordinal" binding:"required,min=1"`
	DiscountPercent *decimal.Decimal `json:"discount_percent" binding:"required"`
}

type ReplaceTiersRequest struct {
	Tiers []TierRequest `json:"tiers" binding:"omitempty,dive"`
}

type TierResponse struct {
	SiblingOrdinal  int             `json:"sibling_ordinal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

type PreviewRequest struct {
	StudentID    string `form:"student_id" binding:"required,uuid"`
	AcademicYear string `form:"academic_year" binding:"required"`
}

type PreviewResponse struct {
	StudentID       string          `json:"student_id"`
	AcademicYear    string          `json:"academic_year"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

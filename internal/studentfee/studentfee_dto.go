package studentfee

import (
	"github.com/shopspring/decimal"
)

type StudentFeeResponse struct {
	ID                string          `json:"id"`
	SchoolID          string          `json:"school_id"`
	StudentID         string          `json:"student_id"`
	FeeStructureID    *string         `json:"fee_structure_id"`
	FeeCategoryID     string          `json:"fee_category_id"`
	GradeLevelID      string          `json:"grade_level_id"`
	AcademicYear      string          `json:"academic_year"`
	FeeMonth          *string         `json:"fee_month"`
	BaseAmount        decimal.Decimal `json:"base_amount"`
	DiscountPercent   decimal.Decimal `json:"discount_percent"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	DiscountForfeited bool            `json:"discount_forfeited"`
	LateFeeAmount     decimal.Decimal `json:"late_fee_amount"`
	FinalAmount       decimal.Decimal `json:"final_amount"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	Balance           decimal.Decimal `json:"balance"`
	DueDate           string          `json:"due_date"`
	Status            string          `json:"status"`
	CreatedAt         string          `json:"created_at"`
	UpdatedAt         string          `json:"updated_at"`
}

func ToResponse(f StudentFee) StudentFeeResponse {
	resp := StudentFeeResponse{
		ID:                f.ID.String(),
		SchoolID:          f.SchoolID.String(),
		StudentID:         f.StudentID.String(),
		FeeCategoryID:     f.FeeCategoryID.String(),
		GradeLevelID:      f.GradeLevelID.String(),
		AcademicYear:      f.AcademicYear,
		FeeMonth:          f.FeeMonth,
		BaseAmount:        f.BaseAmount,
		DiscountPercent:   f.DiscountPercent,
		DiscountAmount:    f.DiscountAmount,
		DiscountForfeited: f.DiscountForfeited,
		LateFeeAmount:     f.LateFeeAmount,
		FinalAmount:       f.FinalAmount,
		AmountPaid:        f.AmountPaid,
		Balance:           f.Balance,
		DueDate:           f.DueDate.Format("2006-01-02"),
		Status:            f.Status,
		CreatedAt:         f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:         f.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if f.FeeStructureID != nil {
		v := f.FeeStructureID.String()
		resp.FeeStructureID = &v
	}
	return resp
}

func ToListResponse(fees []StudentFee) []StudentFeeResponse {
	resp := make([]StudentFeeResponse, len(fees))
	for i, f := range fees {
		resp[i] = ToResponse(f)
	}
	return resp
}

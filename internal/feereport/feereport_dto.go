package feereport

import (
	"go-schoolfee/internal/payment"
	"go-schoolfee/internal/studentfee"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type StudentFeeFilter struct {
	Status       string `form:"status" binding:"omitempty,oneof=pending partial paid overdue waived"`
	GradeLevelID string `form:"grade_level_id" binding:"omitempty,uuid"`
	StudentID    string `form:"student_id" binding:"omitempty,uuid"`
	AcademicYear string `form:"academic_year"`
	FeeMonth     string `form:"fee_month" binding:"omitempty,datetime=2006-01"`
	Page         int    `form:"page" binding:"omitempty,min=1"`
	PageSize     int    `form:"page_size" binding:"omitempty,min=1"`
}

func (f *StudentFeeFilter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
}

func (f StudentFeeFilter) offset() int {
	return (f.Page - 1) * f.PageSize
}

type StudentFeePage struct {
	Fees     []studentfee.StudentFeeResponse
	Total    int64
	Page     int
	PageSize int
}

type GradeSummary struct {
	GradeLevelID string          `json:"grade_level_id"`
	FeeCount     int64           `json:"fee_count"`
	Billed       decimal.Decimal `json:"billed"`
	Collected    decimal.Decimal `json:"collected"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

type StatusTotal struct {
	Status      string          `json:"status"`
	FeeCount    int64           `json:"fee_count"`
	Billed      decimal.Decimal `json:"billed"`
	Collected   decimal.Decimal `json:"collected"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

type Dashboard struct {
	AcademicYear     string          `json:"academic_year,omitempty"`
	FeeCount         int64           `json:"fee_count"`
	TotalBilled      decimal.Decimal `json:"total_billed"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	ByStatus         []StatusTotal   `json:"by_status"`
}

type HistoryEntry struct {
	Fee      studentfee.StudentFeeResponse `json:"fee"`
	Payments []payment.PaymentResponse     `json:"payments"`
}

type StudentHistory struct {
	StudentID        string          `json:"student_id"`
	TotalBilled      decimal.Decimal `json:"total_billed"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	Fees             []HistoryEntry  `json:"fees"`
}

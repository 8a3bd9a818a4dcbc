package feegenerator

import (
	"go-schoolfee/internal/studentfee"
)

// BillingPeriod selects the month (monthly structures) and term (term
// structures) being billed. Zero values fall back to the current month and
// the first term.
type BillingPeriod struct {
	Month int `json:"month" binding:"omitempty,min=1,max=12"`
	Year  int `json:"year" binding:"omitempty,min=2000,max=2100"`
	Term  int `json:"term" binding:"omitempty,min=1,max=6"`
}

type NewStudentRequest struct {
	StudentID    string   `json:"student_id" binding:"required,uuid"`
	GradeLevelID string   `json:"grade_level_id" binding:"omitempty,uuid"`
	AcademicYear string   `json:"academic_year" binding:"required,max=20"`
	CategoryIDs  []string `json:"category_ids" binding:"omitempty,dive,uuid"`
	BillingPeriod
}

type MonthlyRequest struct {
	Month        int    `json:"month" binding:"required,min=1,max=12"`
	Year         int    `json:"year" binding:"required,min=2000,max=2100"`
	AcademicYear string `json:"academic_year" binding:"required,max=20"`
	GradeLevelID string `json:"grade_level_id" binding:"omitempty,uuid"`
	SectionID    string `json:"section_id" binding:"omitempty,uuid"`
	CategoryID   string `json:"category_id" binding:"omitempty,uuid"`
}

type StructureRequest struct {
	FeeStructureID string   `json:"fee_structure_id" binding:"required,uuid"`
	StudentIDs     []string `json:"student_ids" binding:"omitempty,dive,uuid"`
	BillingPeriod
}

type NewStudentResult struct {
	StudentID   string                          `json:"student_id"`
	FeesCreated int                             `json:"fees_created"`
	FeesSkipped int                             `json:"fees_skipped"`
	Fees        []studentfee.StudentFeeResponse `json:"fees"`
}

type BatchResult struct {
	FeesCreated       int `json:"fees_created"`
	FeesSkipped       int `json:"fees_skipped"`
	StudentsProcessed int `json:"students_processed"`
}

type SchoolOutcome struct {
	SchoolID          string `json:"school_id"`
	OK                bool   `json:"ok"`
	FeesCreated       int    `json:"fees_created"`
	StudentsProcessed int    `json:"students_processed"`
	Error             string `json:"error,omitempty"`
}

type AllSchoolsResult struct {
	TotalFeesCreated int             `json:"total_fees_created"`
	SchoolsProcessed int             `json:"schools_processed"`
	SchoolsFailed    int             `json:"schools_failed"`
	Schools          []SchoolOutcome `json:"schools"`
}

// CronMonthlyRequest is the scheduler payload; month and year default to the
// current UTC month.
type CronMonthlyRequest struct {
	Month        int    `json:"month" binding:"omitempty,min=1,max=12"`
	Year         int    `json:"year" binding:"omitempty,min=2000,max=2100"`
	AcademicYear string `json:"academic_year" binding:"required,max=20"`
}

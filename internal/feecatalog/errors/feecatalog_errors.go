package feecatalogerrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrCategoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fee category not found",
		http.StatusNotFound,
	)
	ErrCategoryCodeExists = apperror.New(
		apperror.CodeConflict,
		"Fee category code already exists in this school",
		http.StatusConflict,
	)
	ErrCategoryInUse = apperror.New(
		apperror.CodeConflict,
		"Fee category is referenced by fee structures or student fees; deactivate it instead",
		http.StatusConflict,
	)
	ErrCategoryInactive = apperror.New(
		apperror.CodeInvalidState,
		"Fee category is inactive",
		http.StatusUnprocessableEntity,
	)
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Fee structure not found",
		http.StatusNotFound,
	)
	ErrStructureDuplicate = apperror.New(
		apperror.CodeConflict,
		"An active fee structure already exists for this academic year, grade, category and period",
		http.StatusConflict,
	)
	ErrStructureInUse = apperror.New(
		apperror.CodeConflict,
		"Fee structure is referenced by student fees; deactivate it instead",
		http.StatusConflict,
	)
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid school id",
		http.StatusUnauthorized,
	)

	ErrInvalidAmount      = apperror.InvalidField("amount")
	ErrInvalidLateFee     = apperror.InvalidField("late_fee_amount")
	ErrInvalidDueDay      = apperror.InvalidField("due_day")
	ErrInvalidDueDate     = apperror.InvalidField("due_date")
	ErrInvalidPeriodType  = apperror.InvalidField("period_type")
	ErrInvalidGradeLevel  = apperror.InvalidField("grade_level_id")
	ErrInvalidCategoryRef = apperror.InvalidField("fee_category_id")
)

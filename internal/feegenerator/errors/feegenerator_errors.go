package feegeneratorerrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrStructureInactive = apperror.New(
		apperror.CodeInvalidState,
		"Fee structure or its category is inactive",
		http.StatusUnprocessableEntity,
	)
	ErrNoApplicableStructures = apperror.New(
		apperror.CodeNotFound,
		"No active fee structures match the student's grade and categories",
		http.StatusNotFound,
	)
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid school id",
		http.StatusUnauthorized,
	)

	ErrInvalidMonth        = apperror.InvalidField("month")
	ErrInvalidYear         = apperror.InvalidField("year")
	ErrInvalidTerm         = apperror.InvalidField("term")
	ErrAcademicYearMissing = apperror.RequiredField("academic_year")
)

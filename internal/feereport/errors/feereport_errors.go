package feereporterrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid school id",
		http.StatusUnauthorized,
	)

	ErrInvalidStudentID = apperror.InvalidField("student_id")
)

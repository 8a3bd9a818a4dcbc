package rostererrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"student not found",
		http.StatusNotFound,
	)
	ErrStudentInactive = apperror.New(
		apperror.CodeInvalidState,
		"student is not actively enrolled",
		http.StatusUnprocessableEntity,
	)
)

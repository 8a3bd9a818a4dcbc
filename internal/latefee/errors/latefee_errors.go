package latefeeerrors

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

	ErrInvalidAmount    = apperror.InvalidField("amount")
	ErrInvalidGraceDays = apperror.InvalidField("grace_days")
	ErrInvalidAsOf      = apperror.InvalidField("as_of")
)

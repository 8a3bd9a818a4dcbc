package siblingdiscounterrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrDuplicateOrdinal = apperror.New(
		apperror.CodeInvalidInput,
		"sibling_ordinal must be unique",
		http.StatusBadRequest,
	).WithDetails(map[string]string{"field": "sibling_ordinal"})
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid school id",
		http.StatusUnauthorized,
	)

	ErrInvalidOrdinal = apperror.InvalidField("sibling_ordinal")
	ErrInvalidPercent = apperror.InvalidField("discount_percent")
)

package studentfeeerrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrFeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student fee not found",
		http.StatusNotFound,
	)
	ErrFeeWaived = apperror.New(
		apperror.CodeInvalidState,
		"Student fee has been waived",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidFeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student fee ID",
		http.StatusBadRequest,
	)
)

package paymenterrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payment not found",
		http.StatusNotFound,
	)
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid school id",
		http.StatusUnauthorized,
	)
	ErrOverpayment = apperror.New(
		apperror.CodeInvalidInput,
		"Payment amount exceeds the outstanding balance",
		http.StatusBadRequest,
	).WithDetails(map[string]string{"field": "amount"})

	ErrInvalidAmount = apperror.InvalidField("amount")
)

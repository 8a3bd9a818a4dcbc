package feeadjustmenterrors

import (
	"net/http"

	"go-schoolfee/internal/shared/apperror"
)

var (
	ErrDiscountNotForfeited = apperror.New(
		apperror.CodeInvalidState,
		"Discount has not been forfeited",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeUnauthorized,
		"invalid school id",
		http.StatusUnauthorized,
	)

	ErrReasonRequired        = apperror.RequiredField("reason")
	ErrInvalidType           = apperror.InvalidField("type")
	ErrCustomDiscountMissing = apperror.RequiredField("custom_discount")
	ErrInvalidCustomDiscount = apperror.InvalidField("custom_discount")
	ErrInvalidNewLateFee     = apperror.InvalidField("new_late_fee")
)
